package messages

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Resolver resolves message keys to localized texts through an x/text
// catalog. Keys with no localization for the configured language render
// their default English fallback text. Localizations are registered once
// at startup; Resolve is safe for concurrent use afterwards.
type Resolver struct {
	mu      sync.Mutex
	builder *catalog.Builder
	printer *message.Printer
	known   map[string]bool
}

// New creates a Resolver that renders messages for the given language,
// falling back to English.
func New(tag language.Tag) *Resolver {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	return &Resolver{
		builder: builder,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
		known:   make(map[string]bool),
	}
}

// Register installs a localized text for the given key and language.
// Call during startup, before Resolve traffic begins.
func (r *Resolver) Register(tag language.Tag, key, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.builder.SetString(tag, key, text); err != nil {
		return fmt.Errorf("failed to register message %q: %w", key, err)
	}
	if tag == language.English {
		// An explicit English text wins over the lazily-registered fallback.
		r.known[key] = true
	}
	return nil
}

// Resolve renders the message for key with the positional args applied.
// The fallback is the default English text; it is installed in the
// catalog the first time the key is seen, so languages without a
// localization render it.
func (r *Resolver) Resolve(key, fallback string, args ...any) string {
	r.mu.Lock()
	if !r.known[key] {
		if err := r.builder.SetString(language.English, key, fallback); err != nil {
			r.mu.Unlock()
			if len(args) == 0 {
				return fallback
			}
			return fmt.Sprintf(fallback, args...)
		}
		r.known[key] = true
	}
	r.mu.Unlock()

	return r.printer.Sprintf(key, args...)
}
