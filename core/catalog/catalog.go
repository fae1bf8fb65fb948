package catalog

import (
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/t7e/core/plural"
)

// Entry holds the translated plural forms of one message.
type Entry struct {
	pluralID string
	forms    []string
}

// PluralID returns the plural source string, or "" for messages without one.
func (e Entry) PluralID() string {
	return e.pluralID
}

// Len returns the number of plural forms.
func (e Entry) Len() int {
	return len(e.forms)
}

// Form returns the plural form at index i, clamped into [0, Len()).
func (e Entry) Form(i int) string {
	if len(e.forms) == 0 {
		return ""
	}
	if i < 0 {
		i = 0
	}
	if i >= len(e.forms) {
		i = len(e.forms) - 1
	}
	return e.forms[i]
}

// Forms returns a copy of all plural forms.
func (e Entry) Forms() []string {
	return slices.Clone(e.forms)
}

// Catalog is a decoded MO file. It is immutable.
type Catalog struct {
	domain    string
	messages  map[MessageKey]Entry
	headers   map[string]string
	charset   string
	forms     plural.Forms
	pluralErr error
}

// Domain returns the domain name the catalog was decoded for.
func (c *Catalog) Domain() string {
	return c.domain
}

// Charset returns the charset declared in the Content-Type header, or "".
func (c *Catalog) Charset() string {
	return c.charset
}

// Header returns a metadata value by name. Names are case-insensitive.
func (c *Catalog) Header(name string) (string, bool) {
	v, ok := c.headers[strings.ToLower(name)]
	return v, ok
}

// Headers returns a copy of all metadata values keyed by lower-cased name.
func (c *Catalog) Headers() map[string]string {
	return maps.Clone(c.headers)
}

// NPlurals returns the number of plural forms the catalog's rule produces.
func (c *Catalog) NPlurals() int {
	return c.forms.NPlurals
}

// PluralForms returns the plural expression in effect.
func (c *Catalog) PluralForms() string {
	return c.forms.Expr
}

// PluralIndex evaluates the catalog's plural rule for n.
func (c *Catalog) PluralIndex(n int) int {
	return c.forms.Func(n)
}

// PluralFormsError reports why the declared Plural-Forms header was not used.
// It is nil when the header compiled or was absent.
func (c *Catalog) PluralFormsError() error {
	return c.pluralErr
}

// Lookup returns the entry for key.
func (c *Catalog) Lookup(key MessageKey) (Entry, bool) {
	e, ok := c.messages[key]
	return e, ok
}

// Len returns the number of messages, excluding the metadata entry.
func (c *Catalog) Len() int {
	return len(c.messages)
}

// Keys returns all message keys, sorted with context-free keys first.
func (c *Catalog) Keys() []MessageKey {
	keys := slices.Collect(maps.Keys(c.messages))
	slices.SortFunc(keys, compareKeys)
	return keys
}
