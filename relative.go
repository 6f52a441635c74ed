package intl

import (
	"math"
	"strconv"
	"strings"
)

const (
	NumericAlways = "always"
	NumericAuto   = "auto"
)

// RelativeTimeOptions configures relative-time rendering. Numeric "auto"
// substitutes idiomatic phrases ("yesterday") for small integer offsets
// that have one; "always" (the default) always renders the number.
type RelativeTimeOptions struct {
	Numeric string
	Style   string
}

// RelativeTimeFormat renders signed offsets in a calendar unit.
// Instances are immutable and shared through the cache.
type RelativeTimeFormat struct {
	locale string
	opts   RelativeTimeOptions
	rules  RelativeRules
	plural *PluralRules
}

func newRelativeTimeFormat(locale string, opts RelativeTimeOptions, rules RelativeRules) *RelativeTimeFormat {
	return &RelativeTimeFormat{
		locale: locale,
		opts:   opts,
		rules:  rules,
		plural: newPluralRules(locale, PluralOptions{}),
	}
}

// Format renders value in unit ("day", "month", ...; plural spellings
// accepted). Negative values are past, positive future.
func (f *RelativeTimeFormat) Format(value float64, unit string) string {
	patterns, ok := f.patternsFor(strings.ToLower(strings.TrimSpace(unit)))
	rendered := strconv.FormatFloat(math.Abs(value), 'f', -1, 64)
	if !ok {
		return rendered + " " + unit
	}

	if f.opts.Numeric == NumericAuto && value == math.Trunc(value) {
		if phrase, found := patterns.Auto[int(value)]; found {
			return phrase
		}
	}

	table := patterns.Future
	if value < 0 {
		table = patterns.Past
	}
	pattern, found := table[f.plural.Select(math.Abs(value))]
	if !found {
		pattern = table[PluralOther]
	}
	if pattern == "" {
		return rendered + " " + unit
	}
	return strings.ReplaceAll(pattern, "{0}", rendered)
}

// patternsFor resolves the unit's pattern set at the requested style.
// Short falls back to Long per unit; plural unit spellings fall back to
// the singular.
func (f *RelativeTimeFormat) patternsFor(unit string) (RelativePatterns, bool) {
	lookup := func(name string) (RelativePatterns, bool) {
		if f.opts.Style == StyleShort && f.rules.Short != nil {
			if p, ok := f.rules.Short[name]; ok {
				return p, true
			}
		}
		p, ok := f.rules.Long[name]
		return p, ok
	}
	if p, ok := lookup(unit); ok {
		return p, true
	}
	if trimmed := strings.TrimSuffix(unit, "s"); trimmed != unit {
		return lookup(trimmed)
	}
	return RelativePatterns{}, false
}
