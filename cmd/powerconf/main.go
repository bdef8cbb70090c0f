// Package main implements the powerconf entry point, which loads the
// power configuration from its external sources, validates it, and
// reports the resolved units and components. It exits non-zero when the
// configuration is invalid, so deployments fail at startup instead of at
// first use.
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/powerconf/internal/config"
	"github.com/phrazzld/powerconf/internal/domain"
	"github.com/phrazzld/powerconf/internal/platform/features"
	"github.com/phrazzld/powerconf/internal/platform/logger"
	"github.com/phrazzld/powerconf/internal/platform/messages"
	"golang.org/x/text/language"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to validate power configuration: %v", err)
	}
}

// run loads application configuration, wires the feature source and
// message resolver, and validates the default power configuration.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Logging); err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	src, err := features.New(features.Options{File: cfg.Features.File})
	if err != nil {
		return fmt.Errorf("failed to open feature source: %w", err)
	}

	tag, err := language.Parse(cfg.Features.Locale)
	if err != nil {
		return fmt.Errorf("failed to parse locale %q: %w", cfg.Features.Locale, err)
	}
	resolver := messages.New(tag)

	if err := domain.Validate(src, resolver); err != nil {
		var cfgErr *domain.ConfigurationError
		if errors.As(err, &cfgErr) {
			slog.Error("power configuration is invalid",
				"message_key", cfgErr.MessageKey,
				"message", cfgErr.Resolve(resolver))
		}
		return err
	}

	power, err := domain.DefaultPowerConfiguration(src)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(power.Units()))
	for _, unit := range power.Units() {
		names = append(names, unit.Name())
	}

	slog.Info("Power configuration validated",
		"units_required", power.UnitsRequired(),
		"unit_names", names,
		"components", power.Components(),
		"unique_components", power.UniqueComponents())

	return nil
}
