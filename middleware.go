package intl

import (
	"net/http"

	"golang.org/x/text/language"
)

const (
	localeQueryParam = "locale"
	localeCookieName = "locale"
)

// Middleware resolves each request's locale and injects the matching
// shape into the request context, where FromContext picks it up.
func (p *Provider) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			shape := p.IntlFor(p.RequestLocale(r))
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), shape)))
		})
	}
}

// RequestLocale resolves the locale for one request: ?locale= query
// parameter, then the locale cookie, then Accept-Language, then the
// provider's base locale. Each candidate is negotiated against the
// supported set, so an unsupported request still lands on a locale the
// provider can serve.
func (p *Provider) RequestLocale(r *http.Request) string {
	if locale := r.URL.Query().Get(localeQueryParam); locale != "" {
		return p.matchLocale(locale)
	}
	if cookie, err := r.Cookie(localeCookieName); err == nil && cookie.Value != "" {
		return p.matchLocale(cookie.Value)
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		return p.matchLocale(header)
	}
	return p.Intl().Locale
}

// matchLocale negotiates one candidate value against the supported set.
// The matcher is replaced whenever the gate rebuilds, so it is read
// under the provider lock together with the base locale it falls back
// to.
func (p *Provider) matchLocale(value string) string {
	p.mu.RLock()
	matcher := p.matcher
	names := p.localeNames
	base := p.shape.Locale
	p.mu.RUnlock()

	value = normalizeLocale(value)
	if value == "" {
		return base
	}
	_, index := language.MatchStrings(matcher, value)
	if index < 0 || index >= len(names) {
		return base
	}
	return names[index]
}
