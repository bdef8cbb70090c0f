package features

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// defaultEnvPrefix is prepended to environment variable lookups, so the
// key "powerconfiguration.unitsRequired" is satisfied by
// POWERCONF_POWERCONFIGURATION_UNITSREQUIRED.
const defaultEnvPrefix = "POWERCONF"

// Options configures a Provider.
type Options struct {
	// File is an optional path to a feature configuration file in any
	// format viper reads natively (YAML, JSON, TOML). When set, the file
	// must exist and parse.
	File string

	// EnvPrefix overrides the environment variable prefix. Defaults to
	// POWERCONF.
	EnvPrefix string
}

// Provider is a viper-backed keyed feature source. Values come from
// environment variables and an optional configuration file; unset keys
// fall back to the caller-supplied default. Reads are one-shot: the
// provider does not watch for changes.
type Provider struct {
	v *viper.Viper
}

// New builds a Provider from the given options.
func New(opts Options) (*Provider, error) {
	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = defaultEnvPrefix
	}

	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read feature configuration file: %w", err)
		}
	}

	return &Provider{v: v}, nil
}

// Int returns the integer value for key, or fallback when unset.
func (p *Provider) Int(key string, fallback int) int {
	val := p.v.Get(key)
	if val == nil {
		return fallback
	}
	return cast.ToInt(val)
}

// Bool returns the boolean value for key, or fallback when unset.
func (p *Provider) Bool(key string, fallback bool) bool {
	val := p.v.Get(key)
	if val == nil {
		return fallback
	}
	return cast.ToBool(val)
}

// StringSet returns the string values for key, or fallback when unset.
// Scalar values are split on commas. Entries are NOT trimmed: padded
// entries must reach the domain layer intact so its whitespace
// validation can reject them.
func (p *Provider) StringSet(key string, fallback []string) []string {
	val := p.v.Get(key)
	if val == nil {
		return fallback
	}
	if s, ok := val.(string); ok {
		if s == "" {
			return fallback
		}
		return strings.Split(s, ",")
	}
	return cast.ToStringSlice(val)
}
