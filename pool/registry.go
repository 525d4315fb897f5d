package pool

import (
	stderrors "errors"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/harborq/brokerpool/common"
)

// handle is the common surface of both producer variants as seen by the
// registry: an owned resource that must be released at shutdown.
type handle interface {
	Close() error
}

// registry is the broker id to handle mapping for one delivery mode. A
// plain map under a mutex is plenty at the expected cardinality of tens of
// brokers.
type registry struct {
	mu      sync.RWMutex
	handles map[int32]handle
}

func newRegistry() *registry {
	return &registry{handles: make(map[int32]handle)}
}

// set inserts or replaces the handle for a broker id. Last write wins; the
// displaced handle, if any, is returned so the caller can decide its fate.
func (r *registry) set(id int32, h handle) handle {
	r.mu.Lock()
	old := r.handles[id]
	r.handles[id] = h
	r.mu.Unlock()
	return old
}

// get returns the current handle for a broker id. A missing handle is a
// valid routing outcome, not an error.
func (r *registry) get(id int32) (handle, bool) {
	r.mu.RLock()
	h, ok := r.handles[id]
	r.mu.RUnlock()
	return h, ok
}

// ids returns the registered broker ids in ascending order.
func (r *registry) ids() []int32 {
	r.mu.RLock()
	ids := make([]int32, 0, len(r.handles))
	for id := range r.handles {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// closeAll releases every registered handle exactly once. A failing close
// does not stop the remaining ones; every failure is logged and the joined
// error is returned.
func (r *registry) closeAll(log common.StdLogger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for id, h := range r.handles {
		if err := h.Close(); err != nil {
			log.Printf("failed to close producer for broker %d: %v", id, err)
			errs = append(errs, errors.Wrapf(err, "broker %d", id))
		}
		delete(r.handles, id)
	}

	return stderrors.Join(errs...)
}
