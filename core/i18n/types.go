package i18n

import "github.com/dmitrymomot/t7e/core/catalog"

// M is a convenience type for placeholder maps used in translations.
// It maps placeholder names to their values.
type M map[string]any

// Message describes one resolution request.
//
// Plural and Count select a plural variant only when both are set. Context nil
// means "no context", which is a different key from an empty context. Domain ""
// means the implicit domain of whoever resolves the message.
type Message struct {
	Singular string
	Plural   string
	Count    *int
	Context  *string
	Domain   string
}

// Int returns a pointer to n, for Message.Count.
func Int(n int) *int {
	return &n
}

// String returns a pointer to s, for Message.Context.
func String(s string) *string {
	return &s
}

// Key returns the catalog key the message is looked up by.
func (m Message) Key() catalog.MessageKey {
	if m.Context != nil {
		return catalog.ContextKey(*m.Context, m.Singular)
	}
	return catalog.Key(m.Singular)
}

func (m Message) plural() bool {
	return m.Plural != "" && m.Count != nil
}

// fallback applies the two-bucket source-language rule.
func (m Message) fallback() string {
	if m.plural() && *m.Count != 1 {
		return m.Plural
	}
	return m.Singular
}
