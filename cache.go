package intl

import (
	"strconv"
	"strings"
	"sync"
)

// FormatterCache memoizes constructed formatter instances by kind,
// locale, and canonical option key. Key-equal lookups on one cache
// return the same instance for the cache's lifetime; there is no
// eviction, growth is bounded by the distinct option sets actually used.
type FormatterCache struct {
	mu      sync.RWMutex
	rules   *rulesIndex
	entries map[string]any
}

// CacheOption adjusts cache construction.
type CacheOption func(*FormatterCache)

// WithFormattingRules overlays per-locale rules tables onto the built-in
// data, for locales the package does not ship.
func WithFormattingRules(overrides map[string]FormattingRules) CacheOption {
	return func(c *FormatterCache) {
		c.rules = newRulesIndex(overrides)
	}
}

// NewFormatterCache returns an empty cache over the built-in rules.
func NewFormatterCache(opts ...CacheOption) *FormatterCache {
	c := &FormatterCache{
		rules:   newRulesIndex(nil),
		entries: make(map[string]any),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// lookup is double-checked: the read lock covers the hot path and
// construction happens at most once under the write lock.
func (c *FormatterCache) lookup(key string, build func() any) any {
	c.mu.RLock()
	if entry, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return entry
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[key]; ok {
		return entry
	}
	entry := build()
	c.entries[key] = entry
	return entry
}

// NumberFormat returns the memoized number formatter for locale and
// options.
func (c *FormatterCache) NumberFormat(locale string, opts NumberOptions) *NumberFormat {
	entry := c.lookup(numberKey(locale, opts), func() any {
		rules, _ := c.rules.numberRules(locale)
		return newNumberFormat(locale, opts, rules)
	})
	return entry.(*NumberFormat)
}

// DateTimeFormat returns the memoized date/time formatter for locale and
// options.
func (c *FormatterCache) DateTimeFormat(locale string, opts DateTimeOptions) *DateTimeFormat {
	entry := c.lookup(dateTimeKey(locale, opts), func() any {
		rules, _ := c.rules.dateTimeRules(locale)
		return newDateTimeFormat(locale, opts, rules)
	})
	return entry.(*DateTimeFormat)
}

// RelativeTimeFormat returns the memoized relative-time formatter for
// locale and options.
func (c *FormatterCache) RelativeTimeFormat(locale string, opts RelativeTimeOptions) *RelativeTimeFormat {
	entry := c.lookup(relativeKey(locale, opts), func() any {
		return newRelativeTimeFormat(locale, opts, c.rules.relativeRules(locale))
	})
	return entry.(*RelativeTimeFormat)
}

// PluralRules returns the memoized plural selector for locale and
// options.
func (c *FormatterCache) PluralRules(locale string, opts PluralOptions) *PluralRules {
	entry := c.lookup(pluralKey(locale, opts), func() any {
		return newPluralRules(locale, opts)
	})
	return entry.(*PluralRules)
}

// ListFormat returns the memoized list formatter for locale and options.
func (c *FormatterCache) ListFormat(locale string, opts ListOptions) *ListFormat {
	entry := c.lookup(listKey(locale, opts), func() any {
		return newListFormat(locale, opts, c.rules.listRules(locale))
	})
	return entry.(*ListFormat)
}

// DisplayNames returns the memoized display-name translator for locale
// and options.
func (c *FormatterCache) DisplayNames(locale string, opts DisplayNamesOptions) *DisplayNames {
	entry := c.lookup(displayKey(locale, opts), func() any {
		return newDisplayNames(locale, opts)
	})
	return entry.(*DisplayNames)
}

func (c *FormatterCache) supportsNumber(locale string) bool {
	return c.rules.supportsNumber(locale)
}

func (c *FormatterCache) supportsDateTime(locale string) bool {
	return c.rules.supportsDateTime(locale)
}

// Formatters is the accessor bundle a shape exposes. Shapes built over
// one cache hand out identical formatter instances for key-equal
// options.
type Formatters struct {
	cache *FormatterCache
}

func (f *Formatters) NumberFormat(locale string, opts NumberOptions) *NumberFormat {
	return f.cache.NumberFormat(locale, opts)
}

func (f *Formatters) DateTimeFormat(locale string, opts DateTimeOptions) *DateTimeFormat {
	return f.cache.DateTimeFormat(locale, opts)
}

func (f *Formatters) RelativeTimeFormat(locale string, opts RelativeTimeOptions) *RelativeTimeFormat {
	return f.cache.RelativeTimeFormat(locale, opts)
}

func (f *Formatters) PluralRules(locale string, opts PluralOptions) *PluralRules {
	return f.cache.PluralRules(locale, opts)
}

func (f *Formatters) ListFormat(locale string, opts ListOptions) *ListFormat {
	return f.cache.ListFormat(locale, opts)
}

func (f *Formatters) DisplayNames(locale string, opts DisplayNamesOptions) *DisplayNames {
	return f.cache.DisplayNames(locale, opts)
}

// Canonical cache keys: kind, locale, then every option field in fixed
// order. Serialization is explicit so key equality tracks option
// equality exactly.

func numberKey(locale string, o NumberOptions) string {
	return strings.Join([]string{
		"number",
		normalizeLocale(locale),
		o.Style,
		o.Currency,
		o.CurrencyDisplay,
		strconv.Itoa(o.MinFractionDigits),
		strconv.Itoa(o.MaxFractionDigits),
		strconv.FormatBool(o.ExplicitFractions),
		strconv.FormatBool(o.NoGrouping),
	}, ":")
}

func dateTimeKey(locale string, o DateTimeOptions) string {
	return strings.Join([]string{
		"datetime",
		normalizeLocale(locale),
		o.DateStyle,
		o.TimeStyle,
		o.TimeZone,
		o.HourCycle,
	}, ":")
}

func relativeKey(locale string, o RelativeTimeOptions) string {
	return strings.Join([]string{
		"relativetime",
		normalizeLocale(locale),
		o.Numeric,
		o.Style,
	}, ":")
}

func pluralKey(locale string, o PluralOptions) string {
	return strings.Join([]string{
		"plural",
		normalizeLocale(locale),
		o.Type,
		strconv.Itoa(o.MinFractionDigits),
		strconv.Itoa(o.MaxFractionDigits),
		strconv.FormatBool(o.ExplicitFractions),
	}, ":")
}

func listKey(locale string, o ListOptions) string {
	return strings.Join([]string{"list", normalizeLocale(locale), o.Type}, ":")
}

func displayKey(locale string, o DisplayNamesOptions) string {
	return strings.Join([]string{
		"displaynames",
		normalizeLocale(locale),
		o.Type,
		o.Fallback,
	}, ":")
}
