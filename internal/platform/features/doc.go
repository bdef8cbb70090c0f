// Package features provides the keyed feature-configuration source the
// domain layer reads its defaults from. It wraps viper: values come from
// environment variables (POWERCONF_ prefix) and an optional
// configuration file, with per-key fallbacks supplied by the caller.
package features
