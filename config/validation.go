package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that everything the server cannot run without is
// present. Development and test get defaults for most values; secrets are
// always required in production.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.LLMAPIKey == "" {
		errors = append(errors, "LLM_API_KEY or LLM_API_KEY_FILE must be set")
	}

	if IsProduction() {
		if cfg.JWTSecret == "" {
			errors = append(errors, "JWT_SECRET is required in production")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
		if cfg.DBSSLMode == "disable" {
			errors = append(errors, "DB_SSL_MODE must not be disable in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
