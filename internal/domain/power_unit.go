package domain

import (
	"strconv"
	"strings"
)

// PowerUnit identifies one of the repeated structural slots described by
// a PowerConfiguration. It carries its zero-based index and a reference
// back to the owning configuration; the configuration does not own the
// unit values it hands out.
type PowerUnit struct {
	index  int
	config *PowerConfiguration
}

// Index returns the unit's zero-based position.
func (u PowerUnit) Index() int {
	return u.index
}

// Configuration returns the configuration this unit was derived from.
func (u PowerUnit) Configuration() *PowerConfiguration {
	return u.config
}

// Name returns the unit's display name: "A", "B", ... when the
// configuration uses alphabetic names, otherwise "1", "2", ....
func (u PowerUnit) Name() string {
	if u.config.useAlphabeticNames {
		return string(rune('A' + u.index))
	}
	return strconv.Itoa(u.index + 1)
}

// ComponentLabel resolves the display label for one of this unit's
// components, e.g. "Unit A ENGINE" in the default English rendering.
// The message key is derived from the component name via
// UnitComponentLabelKey.
func (u PowerUnit) ComponentLabel(r MessageResolver, component string) string {
	return r.Resolve(
		UnitComponentLabelKey(component),
		defaultTextUnitComponentLabel,
		u.Name(), strings.ToUpper(component),
	)
}
