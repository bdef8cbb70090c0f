package domain

// FeatureNamespace prefixes every key this package reads from the
// external feature-configuration source.
const FeatureNamespace = "powerconfiguration"

// Keys read from the feature-configuration source by
// DefaultPowerConfiguration.
const (
	FeatureKeyUnitsRequired      = FeatureNamespace + ".unitsRequired"
	FeatureKeyUseAlphabeticNames = FeatureNamespace + ".useAlphabeticNames"
	FeatureKeyUnitComponents     = FeatureNamespace + ".unitComponents"
	FeatureKeyUniqueComponents   = FeatureNamespace + ".uniqueComponents"
)

const (
	defaultUnitsRequired      = 1
	defaultUseAlphabeticNames = true
)

// FeatureSource is the keyed feature/property source defaults are read
// from. Accessors return the given fallback when the key is unset.
//
// See internal/platform/features for the viper-backed implementation.
type FeatureSource interface {
	Int(key string, fallback int) int
	Bool(key string, fallback bool) bool
	StringSet(key string, fallback []string) []string
}

// DefaultPowerConfiguration builds a PowerConfiguration from the feature
// source, applying per-key defaults: 1 required unit (out-of-range
// values also fall back to 1), alphabetic names on, empty component
// sets. The result passes through the same validation as
// NewPowerConfiguration.
func DefaultPowerConfiguration(src FeatureSource) (*PowerConfiguration, error) {
	unitsRequired := src.Int(FeatureKeyUnitsRequired, defaultUnitsRequired)
	if unitsRequired < MinUnitsRequired || unitsRequired > MaxUnitsRequired {
		unitsRequired = defaultUnitsRequired
	}

	return NewPowerConfiguration(
		unitsRequired,
		src.Bool(FeatureKeyUseAlphabeticNames, defaultUseAlphabeticNames),
		src.StringSet(FeatureKeyUnitComponents, nil),
		src.StringSet(FeatureKeyUniqueComponents, nil),
	)
}

// Coalesce returns cfg when it is present, otherwise the default
// configuration read from the feature source.
func Coalesce(cfg *PowerConfiguration, src FeatureSource) (*PowerConfiguration, error) {
	if cfg != nil {
		return cfg, nil
	}
	return DefaultPowerConfiguration(src)
}

// Validate eagerly constructs the default configuration and forces
// realization of every derived unit and its metadata, so configuration
// errors surface at startup instead of at first use.
func Validate(src FeatureSource, r MessageResolver) error {
	cfg, err := DefaultPowerConfiguration(src)
	if err != nil {
		return err
	}

	components := cfg.Components()
	for _, unit := range cfg.Units() {
		_ = unit.Name()
		for _, component := range components {
			_ = unit.ComponentLabel(r, component)
		}
	}
	return nil
}
