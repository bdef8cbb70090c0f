package domain

import (
	"sort"
	"strings"
	"sync"
)

// Bounds for the number of power units a configuration may require.
const (
	MinUnitsRequired = 0
	MaxUnitsRequired = 18
)

// PowerConfiguration describes how many power units an entity requires,
// which named components each unit is composed of, and which of those
// components must hold unique values across units.
//
// It is an immutable value object: construction validates every field
// and fails fast, so no partially-valid instance ever escapes. Component
// identifiers are normalized to uppercase. The value is safe for
// concurrent readers.
type PowerConfiguration struct {
	unitsRequired      int
	useAlphabeticNames bool
	components         map[string]struct{}
	uniqueComponents   map[string]struct{}

	unitsOnce sync.Once
	units     []PowerUnit
}

// NewPowerConfiguration creates a validated PowerConfiguration.
//
// It returns a *ConfigurationError (wrapping one of the package
// sentinels) when unitsRequired falls outside [MinUnitsRequired,
// MaxUnitsRequired], when units are required but no components were
// given, when any component or unique entry is blank or padded with
// whitespace, or when a unique entry names a component that was not
// configured. Entries are checked in sorted order, so the offending
// entry reported is deterministic.
func NewPowerConfiguration(
	unitsRequired int,
	useAlphabeticNames bool,
	components []string,
	uniqueComponents []string,
) (*PowerConfiguration, error) {
	if unitsRequired < MinUnitsRequired || unitsRequired > MaxUnitsRequired {
		return nil, newConfigurationError(
			ErrUnitsRequiredRange,
			MsgUnitsRequiredRange,
			defaultTextUnitsRequiredRange,
			MinUnitsRequired, MaxUnitsRequired, unitsRequired,
		)
	}

	if unitsRequired > 0 && len(components) == 0 {
		return nil, newConfigurationError(
			ErrComponentsUnspecified,
			MsgUnitComponentsUnspecified,
			defaultTextUnitComponentsUnspecified,
		)
	}

	componentSet, err := normalizeComponentSet(
		components, ErrInvalidComponent, MsgUnitComponentsInvalid, defaultTextInvalidComponent,
	)
	if err != nil {
		return nil, err
	}

	uniqueSet, err := normalizeComponentSet(
		uniqueComponents, ErrInvalidUniqueComponent, MsgUniqueComponentsInvalid, defaultTextInvalidUnique,
	)
	if err != nil {
		return nil, err
	}

	for _, unique := range sortedKeys(uniqueSet) {
		if _, ok := componentSet[unique]; !ok {
			return nil, newConfigurationError(
				ErrInvalidUniqueComponent,
				MsgUniqueComponentsInvalid,
				defaultTextInvalidUnique,
				unique,
			)
		}
	}

	return &PowerConfiguration{
		unitsRequired:      unitsRequired,
		useAlphabeticNames: useAlphabeticNames,
		components:         componentSet,
		uniqueComponents:   uniqueSet,
	}, nil
}

// UnitsRequired returns how many power units the configuration requires.
func (c *PowerConfiguration) UnitsRequired() int {
	return c.unitsRequired
}

// UseAlphabeticNames reports whether units are named alphabetically
// ("A", "B", ...) rather than numerically ("1", "2", ...).
func (c *PowerConfiguration) UseAlphabeticNames() bool {
	return c.useAlphabeticNames
}

// HasComponent reports whether the named component is configured.
// The check is case-insensitive.
func (c *PowerConfiguration) HasComponent(name string) bool {
	_, ok := c.components[strings.ToUpper(name)]
	return ok
}

// IsUniqueComponent reports whether the named component must hold unique
// values across units. The check is case-insensitive.
func (c *PowerConfiguration) IsUniqueComponent(name string) bool {
	_, ok := c.uniqueComponents[strings.ToUpper(name)]
	return ok
}

// Components returns the configured component identifiers, uppercased
// and sorted.
func (c *PowerConfiguration) Components() []string {
	return sortedKeys(c.components)
}

// UniqueComponents returns the component identifiers that must hold
// unique values across units, uppercased and sorted.
func (c *PowerConfiguration) UniqueComponents() []string {
	return sortedKeys(c.uniqueComponents)
}

// Units returns one PowerUnit descriptor per required unit, indexed
// 0..UnitsRequired()-1, each back-referencing this configuration. The
// slice is built on first access and cached; callers must not modify it.
func (c *PowerConfiguration) Units() []PowerUnit {
	c.unitsOnce.Do(func() {
		units := make([]PowerUnit, c.unitsRequired)
		for i := range units {
			units[i] = PowerUnit{index: i, config: c}
		}
		c.units = units
	})
	return c.units
}

// normalizeComponentSet validates the raw entries and returns them as an
// uppercase set. Entries are visited in sorted order so the first
// offending entry reported is deterministic. Whitespace checks run
// against the raw input; normalization happens only after an entry
// passes.
func normalizeComponentSet(
	entries []string,
	category error,
	key, defaultText string,
) (map[string]struct{}, error) {
	ordered := make([]string, len(entries))
	copy(ordered, entries)
	sort.Strings(ordered)

	set := make(map[string]struct{}, len(ordered))
	for _, entry := range ordered {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" || trimmed != entry {
			return nil, newConfigurationError(category, key, defaultText, entry)
		}
		set[strings.ToUpper(entry)] = struct{}{}
	}
	return set, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
