package api

import "time"

// Config holds HTTP API limits.
type Config struct {
	MaxBodyBytes   int64         `env:"API_MAX_BODY_BYTES" envDefault:"65536"`
	RequestTimeout time.Duration `env:"API_REQUEST_TIMEOUT" envDefault:"30s"`
}

func (c Config) withDefaults() Config {
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = 64 << 10
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30 * time.Second
	}
	return c
}
