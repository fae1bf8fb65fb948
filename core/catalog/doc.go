// Package catalog decodes GNU gettext MO files into immutable in-memory catalogs.
//
// A Catalog maps a MessageKey (optional context plus msgid) to an Entry holding the
// translated plural forms, and carries the metadata found in the catalog header:
// the declared charset, the raw header lines and the compiled Plural-Forms rule.
//
//	cat, err := catalog.Decode(data, "messages")
//	if err != nil {
//		// errors.Is(err, catalog.ErrMalformedCatalog)
//		return err
//	}
//
//	if entry, ok := cat.Lookup(catalog.Key("Hello")); ok {
//		fmt.Println(entry.Form(0))
//	}
//
//	entry, ok := cat.Lookup(catalog.ContextKey("menu", "Open"))
//	idx := cat.PluralIndex(5) // index chosen by the catalog's Plural-Forms rule
//
// Both byte orders are accepted. The hash table section of the file is ignored; lookups
// use a Go map built during decoding.
//
// Decode is all-or-nothing. Structural problems (bad magic number, unsupported
// revision, tables or strings running past the end of the buffer) return an error
// wrapping ErrMalformedCatalog and no catalog. A Plural-Forms header that cannot be
// compiled is not fatal: the catalog falls back to the "n != 1" rule and reports the
// problem through PluralFormsError.
//
// Catalogs never change after Decode returns, so they can be shared between goroutines
// without locking.
package catalog
