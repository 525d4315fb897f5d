package pool

import (
	"time"

	"github.com/harborq/brokerpool/codec"
	"github.com/harborq/brokerpool/common"
)

// ProduceRequest is one wire-level request bound for a single topic and
// partition, carrying every encoded envelope of one Data.
type ProduceRequest struct {
	Topic     string
	Partition int32
	Envelopes [][]byte
}

// SyncProducer is the blocking producer handle for one broker. Both send
// methods perform a full round trip and return only once the broker has
// acknowledged or the underlying implementation gave up. Retry and timeout
// policy belong to the implementation, not to the pool.
type SyncProducer interface {
	SendRequest(req *ProduceRequest) error
	SendRequests(reqs []*ProduceRequest) error
	Close() error
}

// AsyncProducer is the buffered producer handle for one broker. Enqueue
// never blocks on the network; transmission happens on the producer's own
// goroutines and delivery failures are reported out of band.
type AsyncProducer interface {
	Enqueue(topic string, payload interface{}, partition int32)
	Close() error
}

// SyncProducerConfig carries everything a SyncFactory needs to open a
// blocking producer for one broker.
type SyncProducerConfig struct {
	Addr              string
	ClientID          string
	BufferSize        int
	ConnectTimeout    time.Duration
	ReconnectInterval time.Duration
}

// AsyncProducerConfig carries everything an AsyncFactory needs to open a
// buffered producer for one broker.
type AsyncProducerConfig struct {
	Addr     string
	ClientID string
	Codec    codec.Codec
	Logger   common.StdLogger
}

// SyncFactory opens a blocking producer. Factory errors are returned to the
// AddProducer caller untouched; the pool never retries connection setup.
type SyncFactory func(cfg SyncProducerConfig) (SyncProducer, error)

// AsyncFactory opens a buffered producer.
type AsyncFactory func(cfg AsyncProducerConfig) (AsyncProducer, error)
