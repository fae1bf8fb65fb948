package catalog

import "cmp"

// contextSeparator joins a context and a msgid inside an MO original string.
const contextSeparator = "\x04"

// MessageKey identifies a message inside a catalog.
// A key without context never matches a key whose context is the empty string.
type MessageKey struct {
	Context    string
	HasContext bool
	ID         string
}

// Key returns a key without context.
func Key(id string) MessageKey {
	return MessageKey{ID: id}
}

// ContextKey returns a key with the given context, which may be empty.
func ContextKey(ctx, id string) MessageKey {
	return MessageKey{Context: ctx, HasContext: true, ID: id}
}

// String returns the key in gettext form: "context\x04msgid" or just "msgid".
func (k MessageKey) String() string {
	if k.HasContext {
		return k.Context + contextSeparator + k.ID
	}
	return k.ID
}

func compareKeys(a, b MessageKey) int {
	if a.HasContext != b.HasContext {
		if a.HasContext {
			return 1
		}
		return -1
	}
	if c := cmp.Compare(a.Context, b.Context); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
