package config

import "time"

// Config is the configuration for the command-line tools. The library
// itself takes credentials as constructor arguments; this only feeds
// cmd/apitest.
type Config struct {
	Account AccountConfig `yaml:"account"`
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
}

// AccountConfig holds the Tradier account credentials.
type AccountConfig struct {
	Number string `yaml:"number"`
	Token  string `yaml:"token"`
}

// APIConfig holds transport settings.
type APIConfig struct {
	// Environment is "paper" or "live".
	Environment string        `yaml:"environment"`
	Timeout     time.Duration `yaml:"timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is a logrus level name (trace, debug, info, warn, error).
	Level string `yaml:"level"`
}
