package intl

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale canonicalizes a locale identifier: surrounding
// whitespace dropped, underscores replaced with hyphens.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// parseTag parses a normalized locale into a language tag. Make is
// best-effort: unparseable input yields language.Und rather than an error.
func parseTag(locale string) language.Tag {
	locale = normalizeLocale(locale)
	if locale == "" {
		return language.Und
	}
	return language.Make(locale)
}

// localeParentChain returns the fallback parents of a locale, closest
// first ("es-MX" -> ["es"]). Identifiers that do not parse fall back to
// hyphen truncation.
func localeParentChain(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}

	var chain []string
	seen := map[string]struct{}{locale: {}}

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			value := parent.String()
			if value == "" || value == "und" {
				break
			}
			if _, ok := seen[value]; ok {
				break
			}
			seen[value] = struct{}{}
			chain = append(chain, value)
		}
		return chain
	}

	for current := locale; ; {
		idx := strings.LastIndex(current, "-")
		if idx <= 0 {
			break
		}
		current = current[:idx]
		if _, ok := seen[current]; ok {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}
	return chain
}

// candidateLocales returns the lookup order for a locale: itself, then
// its parent chain.
func candidateLocales(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}
	return append([]string{locale}, localeParentChain(locale)...)
}
