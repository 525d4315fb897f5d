package pool

import (
	stderrors "errors"

	"github.com/pkg/errors"

	"github.com/harborq/brokerpool/common"
)

// Pool routes produce requests to per-broker producer handles. It is a
// passive structure: all work happens on the caller's goroutine, and
// AddProducer and Send are safe for concurrent use. Close is not safe to
// call while Sends are in flight; callers must quiesce sends first.
type Pool struct {
	mode Mode
	cfg  Config
	reg  *registry
	log  common.StdLogger
}

// New creates a Pool in the delivery mode named by cfg.Type. A type outside
// {"sync", "async"} fails construction; there is no default mode.
func New(cfg Config) (*Pool, error) {
	mode, err := parseMode(cfg.Type)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults()

	return &Pool{
		mode: mode,
		cfg:  cfg,
		reg:  newRegistry(),
		log:  cfg.Logger,
	}, nil
}

// Mode reports the pool's delivery mode.
func (p *Pool) Mode() Mode {
	return p.mode
}

// AddProducer opens a producer handle for b in the pool's mode and registers
// it under b.ID, replacing any previous handle for that id. The displaced
// handle is not closed: a concurrent Send may still be using it, so its
// connection is left to the underlying implementation's lifetime. Factory
// errors are returned as-is and leave the previous handle, if any, in place.
func (p *Pool) AddProducer(b Broker) error {
	h, err := p.newHandle(b)
	if err != nil {
		return err
	}

	if old := p.reg.set(b.ID, h); old != nil {
		p.log.Printf("replaced producer for broker %d at %s", b.ID, b.Addr())
	}
	return nil
}

func (p *Pool) newHandle(b Broker) (handle, error) {
	if p.mode == ModeAsync {
		h, err := p.cfg.AsyncFactory(AsyncProducerConfig{
			Addr:     b.Addr(),
			ClientID: p.cfg.ClientID,
			Codec:    p.cfg.Codec,
			Logger:   p.log,
		})
		if err != nil {
			return nil, err
		}
		return h, nil
	}

	h, err := p.cfg.SyncFactory(SyncProducerConfig{
		Addr:              b.Addr(),
		ClientID:          p.cfg.ClientID,
		BufferSize:        p.cfg.BufferSize,
		ConnectTimeout:    p.cfg.ConnectTimeout,
		ReconnectInterval: p.cfg.ReconnectInterval,
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Send routes data to the registered producer handles, grouping units by
// destination broker. Units whose broker has no registered handle are
// dropped: nothing is delivered for them and no error is returned, only a
// log line. In sync mode each broker's group goes out as one blocking call;
// in async mode every payload is enqueued individually and Send returns
// without waiting for delivery. A failure on one broker's group does not
// stop dispatch to the remaining groups; Send returns all group failures
// joined together.
func (p *Pool) Send(data ...*Data) error {
	var errs []error
	for _, g := range groupByBroker(data) {
		h, ok := p.reg.get(g.brokerID)
		if !ok {
			p.log.Printf("dropping %d unit(s): no producer registered for broker %d", len(g.data), g.brokerID)
			continue
		}

		if err := p.dispatch(h, g); err != nil {
			errs = append(errs, errors.Wrapf(err, "broker %d", g.brokerID))
		}
	}

	return stderrors.Join(errs...)
}

// dispatch delivers one broker group through its handle. The handle's
// concrete type is fixed by the pool mode, which never changes after New.
func (p *Pool) dispatch(h handle, g group) error {
	if p.mode == ModeAsync {
		ap := h.(AsyncProducer)
		for _, d := range g.data {
			for _, payload := range d.Payloads {
				ap.Enqueue(d.Topic, payload, d.Dest.PartitionID)
			}
		}
		return nil
	}

	sp := h.(SyncProducer)
	reqs := make([]*ProduceRequest, 0, len(g.data))
	for _, d := range g.data {
		req, err := p.encodeRequest(d)
		if err != nil {
			return err
		}
		reqs = append(reqs, req)
	}

	if len(reqs) == 1 {
		return sp.SendRequest(reqs[0])
	}
	return sp.SendRequests(reqs)
}

// encodeRequest encodes every payload of d into its wire envelope.
func (p *Pool) encodeRequest(d *Data) (*ProduceRequest, error) {
	envelopes := make([][]byte, len(d.Payloads))
	for i, payload := range d.Payloads {
		env, err := p.cfg.Codec.Encode(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode payload for topic %s", d.Topic)
		}
		envelopes[i] = env
	}

	return &ProduceRequest{
		Topic:     d.Topic,
		Partition: d.Dest.PartitionID,
		Envelopes: envelopes,
	}, nil
}

// Brokers returns the ids of the brokers that currently have a registered
// handle, in ascending order.
func (p *Pool) Brokers() []int32 {
	return p.reg.ids()
}

// Close releases every handle registered in the pool's mode, attempting
// each one even if an earlier close fails. The joined failures, if any, are
// returned. Close is idempotent: a second call finds no handles left.
func (p *Pool) Close() error {
	return p.reg.closeAll(p.log)
}
