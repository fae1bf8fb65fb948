package middleware

import (
	"net/http"

	"github.com/dmitrymomot/t7e/core/i18n"
)

// I18nConfig configures the i18n middleware.
type I18nConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Bundle holds the proxies of every locale (required)
	Bundle *i18n.Bundle
	// Domain binds the stored proxy to a domain. Empty keeps each locale's default.
	Domain string
	// LanguageExtractor returns the request's language preferences, best first.
	// Each value may be a tag or an Accept-Language header.
	// Default: the "lang" query parameter, then the Accept-Language header
	LanguageExtractor func(r *http.Request) []string
	// DisableContentLanguage stops the middleware from setting Content-Language
	DisableContentLanguage bool
}

// I18n creates an i18n middleware with default configuration.
func I18n(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return I18nWithConfig(I18nConfig{Bundle: bundle})
}

// I18nWithConfig creates an i18n middleware with custom configuration.
// It matches the request's preferences against the bundle and stores the
// resulting proxy in the request context.
func I18nWithConfig(cfg I18nConfig) func(http.Handler) http.Handler {
	if cfg.Bundle == nil {
		panic("i18n middleware: bundle is required")
	}

	if cfg.LanguageExtractor == nil {
		cfg.LanguageExtractor = func(r *http.Request) []string {
			var prefs []string
			if lang := r.URL.Query().Get("lang"); lang != "" {
				prefs = append(prefs, lang)
			}
			if accept := r.Header.Get("Accept-Language"); accept != "" {
				prefs = append(prefs, accept)
			}
			return prefs
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			locale, p := cfg.Bundle.MatchLocale(cfg.LanguageExtractor(r)...)
			if cfg.Domain != "" {
				p = p.ForDomain(cfg.Domain)
			}

			if !cfg.DisableContentLanguage {
				w.Header().Set("Content-Language", locale)
			}

			next.ServeHTTP(w, r.WithContext(i18n.WithProxy(r.Context(), p)))
		})
	}
}
