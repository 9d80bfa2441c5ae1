package retry

import "time"

// Config holds the retry budget shared by every outbound call.
type Config struct {
	// MaxRetries is the total number of attempts before giving up.
	MaxRetries int `mapstructure:"max_retries" default:"20"`
	// RetryDelay is the fixed pause between two attempts.
	RetryDelay time.Duration `mapstructure:"retry_delay" default:"2s"`
	// Timeout bounds a single attempt.
	Timeout time.Duration `mapstructure:"timeout" default:"30s"`
}

const (
	DefaultMaxRetries = 20
	DefaultRetryDelay = 2 * time.Second
	DefaultTimeout    = 30 * time.Second
)

func (c Config) withDefaults() Config {
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RetryDelay < 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
