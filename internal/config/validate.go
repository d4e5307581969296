package config

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Account.Number == "" {
		return errors.New("account.number is required")
	}
	if c.Account.Token == "" {
		return errors.New("account.token is required")
	}

	if c.API.Environment != "paper" && c.API.Environment != "live" {
		return fmt.Errorf("api.environment must be paper or live, got %q", c.API.Environment)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %v", c.API.Timeout)
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}

	return nil
}
