package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/finsmart/finsmart/pkg/validation"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string `env:"APP_NAME" validate:"required"`
	Env     string `env:"APP_ENV" validate:"oneof=development staging production"` // development, staging, production

	// LogLevel overrides the level derived from Env when set (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`

	// Demo toggle (default true; the binary does nothing else)
	DemoEnabled bool `env:"DEMO_ENABLED"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName:     getenv("APP_NAME", "finsmart"),
		Env:         strings.ToLower(getenv("APP_ENV", "development")),
		LogLevel:    strings.ToLower(getenv("LOG_LEVEL", "")),
		DemoEnabled: getbool("DEMO_ENABLED", true),
	}
}

var validate = validation.New()

// Validate checks the loaded values against the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
