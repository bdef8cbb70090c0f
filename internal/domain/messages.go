package domain

import "strings"

// MessageResolver looks up a localized text by message key, falling back
// to the given default English text when no localization exists. The
// positional args are applied to whichever text wins.
//
// Implementations are configured once at startup; see
// internal/platform/messages for the catalog-backed one.
type MessageResolver interface {
	Resolve(key, fallback string, args ...any) string
}

// UnitComponentLabelKey returns the message key under which the display
// label for a unit's component is resolved, e.g.
// "powerconfiguration.unit.engine.label".
func UnitComponentLabelKey(component string) string {
	return FeatureNamespace + ".unit." + strings.ToLower(component) + ".label"
}

// MissingRequiredComponentMessage renders the downstream validation
// message for a unit that lacks a value for a required component.
// PowerConfiguration never raises this itself; it is provided for
// consumers that validate concrete unit values.
func MissingRequiredComponentMessage(r MessageResolver, unitName, component string) string {
	return r.Resolve(MsgMissingRequiredComponent, defaultTextMissingRequiredComponent, unitName, component)
}

// NonUniqueValueMessage renders the downstream validation message for a
// unique component whose value is duplicated across units.
func NonUniqueValueMessage(r MessageResolver, component, value string) string {
	return r.Resolve(MsgNonUniqueValue, defaultTextNonUniqueValue, component, value)
}
