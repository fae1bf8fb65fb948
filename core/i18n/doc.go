// Package i18n resolves messages from gettext MO catalogs with plural forms,
// message contexts and named domains.
//
// An Engine decodes one primary catalog plus any number of additional domains at
// construction and is immutable afterwards, so it is safe for concurrent use.
// Lookups never fail: a missing domain, a missing entry or an empty translation
// falls back to the source text, choosing between singular and plural with the
// English n != 1 rule.
//
// # Basic Usage
//
//	engine, err := i18n.New(messagesMO,
//		i18n.WithDomain("greetings", greetingsMO),
//		i18n.WithLogger(log),
//	)
//	if err != nil {
//		return err // wraps catalog.ErrMalformedCatalog
//	}
//
//	t := i18n.NewProxy(engine)
//
//	t.T("Hello")                                       // "Hallo"
//	t.T("Hello {user}", i18n.M{"user": "Ann"})         // "Hallo Ann"
//	t.Tn("%d file", "%d files", 3)                     // "3 bestanden"
//	t.Tc("menu", "Open")                               // "Openen"
//	t.ForDomain("greetings").T("Hello")                // "Yolo"
//
// # Domains
//
// Each domain is an independent catalog with its own plural rule. A proxy has an
// implicit domain: the engine default for the root proxy, or the name passed to
// ForDomain. Message.Domain overrides it for a single call. ForDomain memoizes
// children, so binding the same name twice returns the same *Proxy.
//
// # Interpolation
//
// Resolved text goes through Interpolate: "{name}" tokens are replaced from the
// placeholder maps in one pass, then "%d" and "%f" are replaced with the count
// (integer and two decimals). Without a count both tokens become empty.
//
// # Loading
//
// Load and LoadBundle read catalogs through a storage.Reader described by a YAML
// Manifest, concurrently, before any Engine is built:
//
//	m, err := i18n.ParseManifest(manifestYAML)
//	bundle, err := i18n.LoadBundle(ctx, storage.NewDir("locales"), m)
//
//	t := bundle.Match(r.Header.Get("Accept-Language"))
//	ctx = i18n.WithProxy(ctx, t)
//
// The base locale of a bundle serves source text when the manifest lists no
// catalogs for it.
package i18n
