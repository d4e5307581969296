package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultEnvironment = "paper"
	DefaultAPITimeout  = 30 * time.Second
	DefaultLogLevel    = "info"
)

func (c *Config) applyDefaults() {
	if c.API.Environment == "" {
		c.API.Environment = DefaultEnvironment
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}
