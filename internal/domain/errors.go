package domain

import (
	"errors"
	"fmt"
)

// Power configuration validation errors. Each sentinel identifies one
// category of construction failure; the ConfigurationError returned by
// NewPowerConfiguration wraps one of these, so callers can match with
// errors.Is while still receiving the localizable message details.
var (
	// ErrUnitsRequiredRange is returned when the number of required power
	// units falls outside the supported range.
	ErrUnitsRequiredRange = errors.New("power units required out of range")

	// ErrComponentsUnspecified is returned when units are required but no
	// unit components were configured.
	ErrComponentsUnspecified = errors.New("unit components unspecified")

	// ErrInvalidComponent is returned when a unit component entry is blank
	// or carries leading/trailing whitespace.
	ErrInvalidComponent = errors.New("invalid unit component")

	// ErrInvalidUniqueComponent is returned when a unique component entry
	// is malformed or is not one of the configured unit components.
	ErrInvalidUniqueComponent = errors.New("invalid unique component")
)

// Message keys emitted to the external message-resolution system. Each
// key resolves to a localized text; the default English fallback is kept
// alongside it in this package.
const (
	MsgUnitsRequiredRange        = "powerconfiguration.unitsRequired.range"
	MsgUnitComponentsUnspecified = "powerconfiguration.unitComponents.unspecified"
	MsgUnitComponentsInvalid     = "powerconfiguration.unitComponents.invalid"
	MsgUniqueComponentsInvalid   = "powerconfiguration.uniqueComponents.invalid"

	// Template keys for downstream validation. PowerConfiguration never
	// raises these itself; consumers checking concrete unit values do.
	MsgMissingRequiredComponent = "powerconfiguration.unitComponents.missing"
	MsgNonUniqueValue           = "powerconfiguration.uniqueComponents.duplicate"
)

// Default English fallback texts, one per message key.
const (
	defaultTextUnitsRequiredRange        = "power units required must be between %d and %d, got %d"
	defaultTextUnitComponentsUnspecified = "at least one unit component must be configured when power units are required"
	defaultTextInvalidComponent          = "invalid unit component %q: entries must be non-blank with no surrounding whitespace"
	defaultTextInvalidUnique             = "invalid unique component %q: entries must be non-blank, unpadded, and present in the configured unit components"
	defaultTextMissingRequiredComponent  = "unit %s is missing required component %s"
	defaultTextNonUniqueValue            = "%s value %q is already used by another unit"
	defaultTextUnitComponentLabel        = "Unit %s %s"
)

// ConfigurationError describes a power configuration validation failure.
// It carries the message key and positional parameters needed to render
// a localized text, plus the default English fallback. Error() renders
// the fallback so unlocalized callers still get a readable message.
type ConfigurationError struct {
	MessageKey  string
	DefaultText string
	Params      []any

	category error
}

func newConfigurationError(category error, key, defaultText string, params ...any) *ConfigurationError {
	return &ConfigurationError{
		MessageKey:  key,
		DefaultText: defaultText,
		Params:      params,
		category:    category,
	}
}

// Error renders the default English text with the positional parameters
// applied.
func (e *ConfigurationError) Error() string {
	if len(e.Params) == 0 {
		return e.DefaultText
	}
	return fmt.Sprintf(e.DefaultText, e.Params...)
}

// Unwrap exposes the sentinel category so errors.Is works against the
// package-level validation errors.
func (e *ConfigurationError) Unwrap() error {
	return e.category
}

// Resolve renders the failure through the given message resolver,
// falling back to the default English text for unlocalized keys.
func (e *ConfigurationError) Resolve(r MessageResolver) string {
	return r.Resolve(e.MessageKey, e.DefaultText, e.Params...)
}
