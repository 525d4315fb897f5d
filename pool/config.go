package pool

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/rogpeppe/fastuuid"

	"github.com/harborq/brokerpool/codec"
	"github.com/harborq/brokerpool/common"
)

var uuids = fastuuid.MustNewGenerator()

// Config is used to configure the Pool.
type Config struct {
	// Type selects the delivery mode and must be either "sync" or "async".
	// There is no default; an unknown value fails New.
	Type string `env:"PRODUCER_TYPE"`

	// ClientID identifies this pool to the brokers. Defaults to a generated
	// "brokerpool-<uuid>" id.
	ClientID string `env:"CLIENT_ID"`

	// BufferSize caps the size in bytes of a single produce request in sync
	// mode. Defaults to 64 KiB.
	BufferSize int `env:"BUFFER_SIZE"`

	// ConnectTimeout bounds connection establishment in sync mode.
	// Defaults to 5 seconds.
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// ReconnectInterval is the backoff between reconnection attempts in
	// sync mode. Defaults to 10 seconds.
	ReconnectInterval time.Duration `env:"RECONNECT_INTERVAL"`

	// Codec encodes payloads into the bytes put on the wire. Defaults to
	// codec.JSON.
	Codec codec.Codec

	// Logger receives the pool's diagnostics, notably dropped groups and
	// close failures. Defaults to a discard logger.
	Logger common.StdLogger

	// SyncFactory and AsyncFactory open the producer handle for a broker in
	// the matching mode. They default to the sarama backed producers and
	// exist so tests and alternative transports can plug in their own.
	SyncFactory  SyncFactory
	AsyncFactory AsyncFactory
}

// NewConfig creates a config with sane defaults for the given producer type.
func NewConfig(producerType string) Config {
	return Config{
		Type:              producerType,
		BufferSize:        64 * 1024,
		ConnectTimeout:    5 * time.Second,
		ReconnectInterval: 10 * time.Second,
	}
}

// ConfigFromEnv builds a Config from BROKERPOOL_* environment variables,
// starting from the NewConfig defaults with a "sync" producer type. The
// recognized variables are BROKERPOOL_PRODUCER_TYPE, BROKERPOOL_CLIENT_ID,
// BROKERPOOL_BUFFER_SIZE, BROKERPOOL_CONNECT_TIMEOUT and
// BROKERPOOL_RECONNECT_INTERVAL.
func ConfigFromEnv() (Config, error) {
	c := NewConfig(typeSync)
	if err := env.ParseWithOptions(&c, env.Options{Prefix: "BROKERPOOL_"}); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse pool configuration from environment")
	}

	return c, nil
}

// setDefaults fills the zero-valued optional fields. Type is deliberately
// left alone: mode selection has no default.
func (c *Config) setDefaults() {
	if c.ClientID == "" {
		c.ClientID = "brokerpool-" + uuids.Hex128()
	}
	if c.BufferSize <= 0 {
		c.BufferSize = 64 * 1024
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = 5 * time.Second
	}
	if c.ReconnectInterval <= 0 {
		c.ReconnectInterval = 10 * time.Second
	}
	if c.Codec == nil {
		c.Codec = codec.JSON()
	}
	if c.Logger == nil {
		c.Logger = common.DiscardLogger()
	}
	if c.SyncFactory == nil {
		c.SyncFactory = newSaramaSyncProducer
	}
	if c.AsyncFactory == nil {
		c.AsyncFactory = newSaramaAsyncProducer
	}
}
