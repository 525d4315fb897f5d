package pool

import (
	"github.com/Shopify/sarama"
	"github.com/pkg/errors"

	"github.com/harborq/brokerpool/codec"
	"github.com/harborq/brokerpool/common"
)

// saramaConfig builds the base sarama configuration shared by both producer
// variants. The partitioner is manual: the caller has already resolved the
// destination partition, so sarama must not re-route by key.
func saramaConfig(clientID string) *sarama.Config {
	c := sarama.NewConfig()
	c.Version = sarama.V1_0_0_0
	c.ClientID = clientID
	c.Producer.Partitioner = sarama.NewManualPartitioner
	c.Producer.Return.Successes = true
	c.Producer.Return.Errors = true
	return c
}

// saramaSyncProducer adapts a sarama.SyncProducer to the SyncProducer
// contract. Each envelope becomes one message on the request's topic and
// partition; a whole batch goes out through a single SendMessages call.
type saramaSyncProducer struct {
	sarama.SyncProducer
}

// newSaramaSyncProducer is the default SyncFactory.
func newSaramaSyncProducer(cfg SyncProducerConfig) (SyncProducer, error) {
	sc := saramaConfig(cfg.ClientID)
	sc.Net.DialTimeout = cfg.ConnectTimeout
	sc.Metadata.Retry.Backoff = cfg.ReconnectInterval
	sc.Producer.MaxMessageBytes = cfg.BufferSize

	p, err := sarama.NewSyncProducer([]string{cfg.Addr}, sc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sync producer for %s", cfg.Addr)
	}

	return &saramaSyncProducer{SyncProducer: p}, nil
}

func (p *saramaSyncProducer) SendRequest(req *ProduceRequest) error {
	return errors.Wrap(p.SendMessages(produceMessages(nil, req)), "failed to send request")
}

func (p *saramaSyncProducer) SendRequests(reqs []*ProduceRequest) error {
	var msgs []*sarama.ProducerMessage
	for _, req := range reqs {
		msgs = produceMessages(msgs, req)
	}
	return errors.Wrap(p.SendMessages(msgs), "failed to send request batch")
}

func produceMessages(dst []*sarama.ProducerMessage, req *ProduceRequest) []*sarama.ProducerMessage {
	for _, env := range req.Envelopes {
		dst = append(dst, &sarama.ProducerMessage{
			Topic:     req.Topic,
			Partition: req.Partition,
			Value:     sarama.ByteEncoder(env),
		})
	}
	return dst
}

// saramaAsyncProducer adapts a sarama.AsyncProducer to the AsyncProducer
// contract. Payloads are encoded lazily on sarama's dispatcher goroutine
// through the cached codec.Encoder.
type saramaAsyncProducer struct {
	sarama.AsyncProducer

	codec codec.Codec
	done  chan struct{}
}

// newSaramaAsyncProducer is the default AsyncFactory. Buffered delivery has
// no caller to report failures to, so they are drained to the pool logger.
func newSaramaAsyncProducer(cfg AsyncProducerConfig) (AsyncProducer, error) {
	sc := saramaConfig(cfg.ClientID)
	sc.Producer.Return.Successes = false

	p, err := sarama.NewAsyncProducer([]string{cfg.Addr}, sc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open async producer for %s", cfg.Addr)
	}

	a := &saramaAsyncProducer{
		AsyncProducer: p,
		codec:         cfg.Codec,
		done:          make(chan struct{}),
	}
	go a.drainErrors(cfg.Logger)

	return a, nil
}

func (p *saramaAsyncProducer) drainErrors(log common.StdLogger) {
	defer close(p.done)
	for err := range p.Errors() {
		log.Printf("async delivery failed on topic %s: %v", err.Msg.Topic, err.Err)
	}
}

func (p *saramaAsyncProducer) Enqueue(topic string, payload interface{}, partition int32) {
	p.Input() <- &sarama.ProducerMessage{
		Topic:     topic,
		Partition: partition,
		Value:     codec.NewEncoder(p.codec, payload),
	}
}

// Close flushes the queue, closes the underlying producer and waits for the
// error drain to finish.
func (p *saramaAsyncProducer) Close() error {
	err := p.AsyncProducer.Close()
	<-p.done
	return errors.Wrap(err, "failed to close async producer")
}
