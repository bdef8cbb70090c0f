package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewPowerConfiguration(t *testing.T) {
	t.Parallel() // Enable parallel execution
	// Test valid configuration creation
	cfg, err := NewPowerConfiguration(2, true, []string{"engine", "battery"}, []string{"engine"})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.UnitsRequired() != 2 {
		t.Errorf("Expected 2 units required, got %d", cfg.UnitsRequired())
	}

	if !cfg.UseAlphabeticNames() {
		t.Error("Expected alphabetic names to be enabled")
	}

	components := cfg.Components()
	if len(components) != 2 || components[0] != "BATTERY" || components[1] != "ENGINE" {
		t.Errorf("Expected components [BATTERY ENGINE], got %v", components)
	}

	uniques := cfg.UniqueComponents()
	if len(uniques) != 1 || uniques[0] != "ENGINE" {
		t.Errorf("Expected unique components [ENGINE], got %v", uniques)
	}

	if len(cfg.Units()) != 2 {
		t.Errorf("Expected 2 units, got %d", len(cfg.Units()))
	}
}

func TestNewPowerConfigurationUnitsRange(t *testing.T) {
	t.Parallel() // Enable parallel execution
	components := []string{"engine"}

	// Every value inside the range constructs successfully
	for n := MinUnitsRequired; n <= MaxUnitsRequired; n++ {
		if _, err := NewPowerConfiguration(n, true, components, nil); err != nil {
			t.Errorf("Expected no error for %d units, got %v", n, err)
		}
	}

	// Values just outside the range fail with the range error
	for _, n := range []int{-1, 19} {
		_, err := NewPowerConfiguration(n, true, components, nil)
		if !errors.Is(err, ErrUnitsRequiredRange) {
			t.Errorf("Expected ErrUnitsRequiredRange for %d units, got %v", n, err)
		}

		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("Expected a *ConfigurationError, got %T", err)
		}
		if cfgErr.MessageKey != MsgUnitsRequiredRange {
			t.Errorf("Expected message key %q, got %q", MsgUnitsRequiredRange, cfgErr.MessageKey)
		}
	}
}

func TestNewPowerConfigurationComponentsUnspecified(t *testing.T) {
	t.Parallel() // Enable parallel execution
	_, err := NewPowerConfiguration(1, true, nil, nil)
	if !errors.Is(err, ErrComponentsUnspecified) {
		t.Errorf("Expected ErrComponentsUnspecified, got %v", err)
	}

	// Zero units with no components is a valid, empty configuration
	cfg, err := NewPowerConfiguration(0, true, nil, nil)
	if err != nil {
		t.Fatalf("Expected no error for zero units, got %v", err)
	}
	if len(cfg.Units()) != 0 {
		t.Errorf("Expected no units, got %d", len(cfg.Units()))
	}
}

func TestNewPowerConfigurationInvalidComponent(t *testing.T) {
	t.Parallel() // Enable parallel execution
	invalidEntries := []string{" engine", "engine ", "\tengine", "", "  "}

	for _, entry := range invalidEntries {
		_, err := NewPowerConfiguration(1, true, []string{entry}, nil)
		if !errors.Is(err, ErrInvalidComponent) {
			t.Errorf("Expected ErrInvalidComponent for %q, got %v", entry, err)
			continue
		}

		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("Expected a *ConfigurationError, got %T", err)
		}
		if cfgErr.MessageKey != MsgUnitComponentsInvalid {
			t.Errorf("Expected message key %q, got %q", MsgUnitComponentsInvalid, cfgErr.MessageKey)
		}
		if len(cfgErr.Params) != 1 || cfgErr.Params[0] != entry {
			t.Errorf("Expected offending entry %q in params, got %v", entry, cfgErr.Params)
		}
	}
}

func TestNewPowerConfigurationInvalidComponentMessage(t *testing.T) {
	t.Parallel() // Enable parallel execution
	_, err := NewPowerConfiguration(1, true, []string{" engine"}, nil)
	if err == nil {
		t.Fatal("Expected an error for padded component")
	}
	if !strings.Contains(err.Error(), `" engine"`) {
		t.Errorf("Expected error message to reference the offending entry, got %q", err.Error())
	}
}

func TestNewPowerConfigurationInvalidUnique(t *testing.T) {
	t.Parallel() // Enable parallel execution
	// Padded unique entry
	_, err := NewPowerConfiguration(1, true, []string{"engine"}, []string{"engine "})
	if !errors.Is(err, ErrInvalidUniqueComponent) {
		t.Errorf("Expected ErrInvalidUniqueComponent for padded unique, got %v", err)
	}

	// Unique that is not a configured component
	_, err = NewPowerConfiguration(1, true, []string{"engine"}, []string{"battery"})
	if !errors.Is(err, ErrInvalidUniqueComponent) {
		t.Errorf("Expected ErrInvalidUniqueComponent for unknown unique, got %v", err)
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected a *ConfigurationError, got %T", err)
	}
	if cfgErr.MessageKey != MsgUniqueComponentsInvalid {
		t.Errorf("Expected message key %q, got %q", MsgUniqueComponentsInvalid, cfgErr.MessageKey)
	}
	if len(cfgErr.Params) != 1 || cfgErr.Params[0] != "BATTERY" {
		t.Errorf("Expected offending entry BATTERY in params, got %v", cfgErr.Params)
	}

	// Unique matching is case-insensitive
	if _, err := NewPowerConfiguration(1, true, []string{"ENGINE"}, []string{"engine"}); err != nil {
		t.Errorf("Expected no error for case-insensitive unique match, got %v", err)
	}
}

func TestNewPowerConfigurationDeterministicReporting(t *testing.T) {
	t.Parallel() // Enable parallel execution
	// With several offending entries the lexicographically smallest one
	// is reported, regardless of input order.
	_, err := NewPowerConfiguration(1, true, []string{" z", " a", " m"}, nil)

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected a *ConfigurationError, got %T", err)
	}
	if len(cfgErr.Params) != 1 || cfgErr.Params[0] != " a" {
		t.Errorf("Expected first offending entry in sorted order, got %v", cfgErr.Params)
	}
}

func TestHasComponent(t *testing.T) {
	t.Parallel() // Enable parallel execution
	cfg, err := NewPowerConfiguration(1, true, []string{"engine", "battery"}, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Membership is case-insensitive
	if cfg.HasComponent("engine") != cfg.HasComponent("ENGINE") {
		t.Error("Expected HasComponent to be case-insensitive")
	}
	if !cfg.HasComponent("Engine") {
		t.Error("Expected Engine to be a configured component")
	}
	if cfg.HasComponent("turbine") {
		t.Error("Expected turbine to be absent")
	}
}

func TestIsUniqueComponent(t *testing.T) {
	t.Parallel() // Enable parallel execution
	cfg, err := NewPowerConfiguration(1, true, []string{"engine", "battery"}, []string{"engine"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !cfg.IsUniqueComponent("engine") || !cfg.IsUniqueComponent("ENGINE") {
		t.Error("Expected engine to be unique regardless of case")
	}
	if cfg.IsUniqueComponent("battery") {
		t.Error("Expected battery not to be unique")
	}
}

func TestUnits(t *testing.T) {
	t.Parallel() // Enable parallel execution
	cfg, err := NewPowerConfiguration(3, true, []string{"engine"}, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	units := cfg.Units()
	if len(units) != 3 {
		t.Fatalf("Expected 3 units, got %d", len(units))
	}

	for i, unit := range units {
		if unit.Index() != i {
			t.Errorf("Expected unit index %d, got %d", i, unit.Index())
		}
		if unit.Configuration() != cfg {
			t.Error("Expected unit to reference its owning configuration")
		}
	}

	// The derived slice is built once and cached
	again := cfg.Units()
	if &units[0] != &again[0] {
		t.Error("Expected repeated Units calls to return the cached slice")
	}
}
