package shardqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups all tunables. Values are taken from environment variables with
// the prefix "USERCTL_SQ_". Example: USERCTL_SQ_SHARDS=8 USERCTL_SQ_QUEUE_SIZE=256 .
type Config struct {
	Shards         int           `envconfig:"SHARDS"          default:"4"`
	QueueSize      int           `envconfig:"QUEUE_SIZE"      default:"128"`
	EnqueueTimeout time.Duration `envconfig:"ENQUEUE_TIMEOUT" default:"100ms"`

	// ErrorHandler is called synchronously after a Job returns a non-nil error
	// or panics. Leave nil if you do not care.
	ErrorHandler func(error) `envconfig:"-"`
}

// LoadConfig populates Config from environment variables (prefix USERCTL_SQ_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("USERCTL_SQ", &c)
}
