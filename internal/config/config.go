package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" validate:"required"`
	Features FeaturesConfig `mapstructure:"features" validate:"required"`
}

// LoggingConfig contains all logging-related configuration settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// FeaturesConfig locates the external feature-configuration source and
// selects the locale messages resolve in.
type FeaturesConfig struct {
	// File is an optional path to the feature configuration file. When
	// empty, features come from environment variables and defaults only.
	File string `mapstructure:"file"`

	// Locale is the BCP 47 tag messages are resolved for.
	Locale string `mapstructure:"locale" validate:"required,bcp47_language_tag"`
}
