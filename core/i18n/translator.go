package i18n

// Translator resolves a message to its raw, uninterpolated text.
// Implementations never fail: a message that cannot be resolved comes back as
// its source text.
type Translator interface {
	Translate(msg Message) string
}

// SourceTranslator returns source text for every message. It stands in for an
// Engine when the requested locale is the source language and no catalogs exist.
type SourceTranslator struct{}

// Translate picks the singular or plural source with the n != 1 rule.
func (SourceTranslator) Translate(msg Message) string {
	return msg.fallback()
}
