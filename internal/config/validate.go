package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Identity.validate(); err != nil {
		return fmt.Errorf("identity: %w", err)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	return nil
}

func (c IdentityConfig) validate() error {
	if c.MaxPerOwner <= 0 {
		return fmt.Errorf("max_per_owner must be > 0 (got %d)", c.MaxPerOwner)
	}
	if c.SearchMaxLimit <= 0 || c.SearchMaxLimit > 50 {
		return fmt.Errorf("search_max_limit must be in 1..50 (got %d)", c.SearchMaxLimit)
	}
	if c.SearchDefaultLimit <= 0 || c.SearchDefaultLimit > c.SearchMaxLimit {
		return fmt.Errorf("search_default_limit must be in 1..search_max_limit (got %d)", c.SearchDefaultLimit)
	}
	return nil
}
