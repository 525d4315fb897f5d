package pool

import "github.com/pkg/errors"

// Mode selects the delivery behaviour of a Pool. It is resolved once at
// construction and never changes afterwards.
type Mode int

const (
	// ModeSync blocks each Send until the destination brokers acknowledge.
	ModeSync Mode = iota

	// ModeAsync enqueues payloads on a buffered producer and returns
	// immediately, without delivery acknowledgment.
	ModeAsync
)

const (
	typeSync  = "sync"
	typeAsync = "async"
)

// parseMode maps a configured producer type onto a Mode. There is no
// default: anything outside {"sync", "async"} is a configuration error.
func parseMode(s string) (Mode, error) {
	switch s {
	case typeSync:
		return ModeSync, nil
	case typeAsync:
		return ModeAsync, nil
	}

	return 0, errors.Errorf("invalid producer type %q, must be %q or %q", s, typeSync, typeAsync)
}

func (m Mode) String() string {
	if m == ModeAsync {
		return typeAsync
	}
	return typeSync
}
