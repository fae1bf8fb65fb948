package i18n

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/t7e/core/logger"
	"github.com/dmitrymomot/t7e/core/storage"
)

// Load reads every catalog of one locale concurrently and builds an Engine.
// opts are applied after the manifest's own settings, so they can override them.
func Load(ctx context.Context, r storage.Reader, lm LocaleManifest, opts ...Option) (*Engine, error) {
	if lm.File == "" {
		return nil, fmt.Errorf("%w: no primary file", ErrInvalidManifest)
	}

	names := slices.Sorted(maps.Keys(lm.Domains))
	data := make([][]byte, len(names))

	g, gctx := errgroup.WithContext(ctx)

	var primary []byte
	g.Go(func() error {
		b, err := r.Read(gctx, lm.File)
		if err != nil {
			return fmt.Errorf("read catalog %q: %w", lm.File, err)
		}
		primary = b
		return nil
	})
	for i, name := range names {
		g.Go(func() error {
			file := lm.Domains[name]
			b, err := r.Read(gctx, file)
			if err != nil {
				return fmt.Errorf("read catalog %q for domain %q: %w", file, name, err)
			}
			data[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]Option, 0, len(names)+len(opts)+1)
	if lm.Domain != "" {
		all = append(all, WithDomainName(lm.Domain))
	}
	for i, name := range names {
		all = append(all, WithDomain(name, data[i]))
	}
	all = append(all, opts...)

	return New(primary, all...)
}

// LoadBundle loads every locale of the manifest concurrently and returns a Bundle.
func LoadBundle(ctx context.Context, r storage.Reader, m Manifest, opts ...Option) (*Bundle, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		engines = make(map[string]Translator, len(m.Locales))
	)

	g, gctx := errgroup.WithContext(ctx)
	for locale, lm := range m.Locales {
		g.Go(func() error {
			localeOpts := append(slices.Clone(opts), withLogAttrs(logger.Locale(locale)))
			e, err := Load(gctx, r, lm, localeOpts...)
			if err != nil {
				return fmt.Errorf("locale %q: %w", locale, err)
			}
			mu.Lock()
			engines[locale] = e
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewBundle(m.Base, engines)
}
