package pool

import (
	"net"
	"strconv"
)

// Broker identifies a destination node by id and network location. Brokers
// are supplied by the caller; the pool only reads them to build connection
// configuration.
type Broker struct {
	ID   int32
	Host string
	Port int
}

// Addr returns the broker's location in host:port form.
func (b Broker) Addr() string {
	return net.JoinHostPort(b.Host, strconv.Itoa(b.Port))
}

// BrokerPartition is the destination of a single Data: a partition owned by
// a specific broker.
type BrokerPartition struct {
	BrokerID    int32
	PartitionID int32
}

// Data is one routed unit of work: an ordered run of payloads bound for a
// single (topic, broker, partition). It is built by the caller for one Send
// call and not retained by the pool.
type Data struct {
	Topic    string
	Dest     BrokerPartition
	Payloads []interface{}
}

// NewData packages payloads for dest. It has no side effects.
func NewData(topic string, dest BrokerPartition, payloads ...interface{}) *Data {
	return &Data{
		Topic:    topic,
		Dest:     dest,
		Payloads: payloads,
	}
}
