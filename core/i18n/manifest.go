package i18n

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"
)

// Manifest lists the catalog files of every locale.
//
//	base: en
//	locales:
//	  nl:
//	    file: nl/messages.mo
//	    domains:
//	      greetings: nl/greetings.mo
//	  pl:
//	    domain: app
//	    file: pl/app.mo
//
// Base is the source language. It needs no entry in Locales; without one it
// resolves to source text.
type Manifest struct {
	Base    string                    `yaml:"base"`
	Locales map[string]LocaleManifest `yaml:"locales"`
}

// LocaleManifest describes the catalogs of one locale.
type LocaleManifest struct {
	// Domain is the primary domain name, "messages" when empty.
	Domain string `yaml:"domain"`
	// File is the primary catalog.
	File string `yaml:"file"`
	// Domains maps additional domain names to catalog files.
	Domains map[string]string `yaml:"domains"`
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Validate checks locale tags and that every locale names its primary catalog.
func (m Manifest) Validate() error {
	if m.Base == "" {
		return fmt.Errorf("%w: base locale is required", ErrInvalidManifest)
	}
	if _, err := language.Parse(m.Base); err != nil {
		return fmt.Errorf("%w: base %q: %w", ErrInvalidManifest, m.Base, ErrInvalidLocaleTag)
	}
	for _, locale := range slices.Sorted(maps.Keys(m.Locales)) {
		if _, err := language.Parse(locale); err != nil {
			return fmt.Errorf("%w: locale %q: %w", ErrInvalidManifest, locale, ErrInvalidLocaleTag)
		}
		lm := m.Locales[locale]
		if lm.File == "" {
			return fmt.Errorf("%w: locale %q has no file", ErrInvalidManifest, locale)
		}
		for name, file := range lm.Domains {
			if name == "" || file == "" {
				return fmt.Errorf("%w: locale %q has an incomplete domain entry", ErrInvalidManifest, locale)
			}
		}
	}
	return nil
}
