package i18n

import (
	"cmp"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/t7e/core/catalog"
	"github.com/dmitrymomot/t7e/core/logger"
)

// DefaultDomainName is the primary domain name used when none is configured.
const DefaultDomainName = "messages"

// Engine resolves messages against a fixed set of decoded catalogs, one per domain.
// Catalogs are decoded once in New and never change afterwards, so an Engine is
// safe for concurrent use.
type Engine struct {
	catalogs      map[string]*catalog.Catalog
	defaultDomain string

	// Pre-computed list of domains: default first, the rest sorted
	domains []string

	log               *slog.Logger
	missingKeyHandler func(domain string, key catalog.MessageKey)

	// (domain, key) pairs already reported as missing
	reported sync.Map
}

type missingKey struct {
	domain string
	key    catalog.MessageKey
}

type options struct {
	domainName        string
	domains           map[string][]byte
	log               *slog.Logger
	missingKeyHandler func(domain string, key catalog.MessageKey)
	attrs             []slog.Attr
}

// Option configures the Engine during construction.
type Option func(*options) error

// WithDomainName sets the name of the primary domain. Defaults to "messages".
func WithDomainName(name string) Option {
	return func(o *options) error {
		if name == "" {
			return ErrEmptyDomainName
		}
		o.domainName = name
		return nil
	}
}

// WithDomain adds a catalog for an additional domain. A later call with the same
// name replaces the earlier one. The primary catalog always wins over an
// additional domain that shares its name.
func WithDomain(name string, data []byte) Option {
	return func(o *options) error {
		if name == "" {
			return ErrEmptyDomainName
		}
		if o.domains == nil {
			o.domains = make(map[string][]byte)
		}
		o.domains[name] = data
		return nil
	}
}

// WithLogger sets the logger. Missing translations are logged at debug level,
// unusable Plural-Forms headers at warn level.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) error {
		if log != nil {
			o.log = log
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler called every time a message falls back to
// source text. This is useful for collecting untranslated strings during development.
func WithMissingKeyHandler(handler func(domain string, key catalog.MessageKey)) Option {
	return func(o *options) error {
		o.missingKeyHandler = handler
		return nil
	}
}

// withLogAttrs adds attributes to every record the engine logs.
func withLogAttrs(attrs ...slog.Attr) Option {
	return func(o *options) error {
		o.attrs = append(o.attrs, attrs...)
		return nil
	}
}

// New decodes the primary catalog and every additional domain.
// Any undecodable catalog fails construction with an error wrapping
// catalog.ErrMalformedCatalog.
func New(primary []byte, opts ...Option) (*Engine, error) {
	o := &options{
		domainName: DefaultDomainName,
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	log := o.log.With(logger.Component("i18n"))
	for _, a := range o.attrs {
		log = log.With(a)
	}

	e := &Engine{
		catalogs:          make(map[string]*catalog.Catalog, len(o.domains)+1),
		defaultDomain:     o.domainName,
		log:               log,
		missingKeyHandler: o.missingKeyHandler,
	}

	c, err := catalog.Decode(primary, o.domainName)
	if err != nil {
		return nil, err
	}
	e.add(c)

	for _, name := range slices.Sorted(maps.Keys(o.domains)) {
		if name == o.domainName {
			log.Warn("additional domain shadowed by primary catalog", logger.Domain(name))
			continue
		}
		c, err := catalog.Decode(o.domains[name], name)
		if err != nil {
			return nil, err
		}
		e.add(c)
	}

	e.domains = make([]string, 0, len(e.catalogs))
	e.domains = append(e.domains, e.defaultDomain)
	for _, name := range slices.Sorted(maps.Keys(e.catalogs)) {
		if name != e.defaultDomain {
			e.domains = append(e.domains, name)
		}
	}

	log.Debug("catalogs decoded", logger.Count("domains", len(e.domains)))

	return e, nil
}

func (e *Engine) add(c *catalog.Catalog) {
	if err := c.PluralFormsError(); err != nil {
		e.log.Warn("plural forms ignored, using n != 1",
			logger.Domain(c.Domain()),
			logger.Error(err),
		)
	}
	e.catalogs[c.Domain()] = c
}

// Translate resolves msg. An empty msg.Domain means the default domain.
//
// A message without a plural source or count yields variant 0. With both, the
// domain's plural rule picks the variant, clamped to the number the entry has.
// When the domain or the entry is missing, or the selected variant is empty, the
// source text is returned: the singular when the count is 1 or absent, otherwise
// the plural.
func (e *Engine) Translate(msg Message) string {
	domain := cmp.Or(msg.Domain, e.defaultDomain)
	key := msg.Key()

	if c, ok := e.catalogs[domain]; ok {
		if entry, found := c.Lookup(key); found {
			idx := 0
			if msg.plural() {
				idx = c.PluralIndex(*msg.Count)
			}
			if s := entry.Form(idx); s != "" {
				return s
			}
		}
	}

	e.missing(domain, key)
	return msg.fallback()
}

func (e *Engine) missing(domain string, key catalog.MessageKey) {
	if e.missingKeyHandler != nil {
		e.missingKeyHandler(domain, key)
	}
	if _, seen := e.reported.LoadOrStore(missingKey{domain, key}, struct{}{}); !seen {
		e.log.Debug("translation missing",
			logger.Domain(domain),
			logger.MessageID(key.Context, key.HasContext, key.ID),
		)
	}
}

// DefaultDomain returns the primary domain name.
func (e *Engine) DefaultDomain() string {
	return e.defaultDomain
}

// Domains returns all domain names, the default first and the rest sorted.
func (e *Engine) Domains() []string {
	return slices.Clone(e.domains)
}

// Catalog returns the decoded catalog of a domain.
func (e *Engine) Catalog(domain string) (*catalog.Catalog, bool) {
	c, ok := e.catalogs[domain]
	return c, ok
}
