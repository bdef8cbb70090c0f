// Package messages implements the message-resolution system the domain
// layer emits its localizable texts through. It is backed by an x/text
// message catalog keyed by message ID, with per-key default English
// fallbacks supplied at the call site.
package messages
