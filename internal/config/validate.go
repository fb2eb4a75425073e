package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.SessionSecret) < 32 {
		return fmt.Errorf("auth.session_secret must be at least 32 characters (got %d)", len(c.Auth.SessionSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}
	if strings.TrimSpace(c.Auth.CookieName) == "" {
		return fmt.Errorf("auth.cookie_name is required")
	}
	if c.Auth.LoginRateLimit <= 0 {
		return fmt.Errorf("auth.login_rate_limit must be > 0 (got %d)", c.Auth.LoginRateLimit)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.CORS.AllowCredentials {
		for _, o := range c.CORS.Origins() {
			if o == "*" {
				return fmt.Errorf("cors.allowed_origins must not contain \"*\" when credentials are allowed")
			}
		}
	}

	if len(c.Seed.AdminPassword) < 6 {
		return fmt.Errorf("seed.admin_password must be at least 6 characters")
	}

	return nil
}
