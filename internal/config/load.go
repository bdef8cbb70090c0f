package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and built-in defaults.
// Environment variables use the POWERCONF_ prefix with underscores for
// nesting (POWERCONF_LOGGING_LEVEL, POWERCONF_FEATURES_FILE, ...).
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults also register the keys so environment-only values are
	// visible to Unmarshal.
	v.SetDefault("logging.level", "info")
	v.SetDefault("features.file", "")
	v.SetDefault("features.locale", "en")

	v.SetEnvPrefix("POWERCONF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
