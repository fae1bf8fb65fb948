package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the Accept-Language input parsed per preference.
const maxAcceptLanguageLength = 4096

// Bundle holds one root proxy per locale and picks the best one for a user's
// language preferences.
type Bundle struct {
	locales []string
	proxies []*Proxy
	matcher language.Matcher
}

// NewBundle builds a bundle from translators keyed by locale tag. The base locale
// is the fallback when nothing matches; it resolves to source text when it has no
// translator of its own.
func NewBundle(base string, translators map[string]Translator) (*Bundle, error) {
	baseTag, err := language.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocaleTag, base)
	}

	b := &Bundle{}
	tags := make([]language.Tag, 0, len(translators)+1)

	add := func(locale string, tag language.Tag, t Translator) {
		if t == nil {
			t = SourceTranslator{}
		}
		b.locales = append(b.locales, locale)
		b.proxies = append(b.proxies, NewProxy(t))
		tags = append(tags, tag)
	}

	// The matcher falls back to its first tag.
	add(base, baseTag, translators[base])

	for _, locale := range slices.Sorted(maps.Keys(translators)) {
		if locale == base {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLocaleTag, locale)
		}
		add(locale, tag, translators[locale])
	}

	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Match returns the proxy of the locale that best serves the preferences. Each
// preference is a language tag or a full Accept-Language header; earlier
// preferences rank higher. Unparseable input is skipped, and when nothing
// matches the base locale is used.
func (b *Bundle) Match(prefs ...string) *Proxy {
	_, p := b.match(prefs)
	return p
}

// MatchLocale is Match that also reports the chosen locale.
func (b *Bundle) MatchLocale(prefs ...string) (string, *Proxy) {
	return b.match(prefs)
}

func (b *Bundle) match(prefs []string) (string, *Proxy) {
	var want []language.Tag
	for _, pref := range prefs {
		if len(pref) > maxAcceptLanguageLength {
			pref = pref[:maxAcceptLanguageLength]
		}
		tags, _, err := language.ParseAcceptLanguage(strings.TrimSpace(pref))
		if err != nil {
			continue
		}
		want = append(want, tags...)
	}

	_, idx, _ := b.matcher.Match(want...)
	return b.locales[idx], b.proxies[idx]
}

// Proxy returns the root proxy of an exact locale.
func (b *Bundle) Proxy(locale string) (*Proxy, error) {
	if i := slices.Index(b.locales, locale); i >= 0 {
		return b.proxies[i], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
}

// Base returns the fallback locale.
func (b *Bundle) Base() string {
	return b.locales[0]
}

// Locales returns all locales, the base first and the rest sorted.
func (b *Bundle) Locales() []string {
	return slices.Clone(b.locales)
}
