package intl

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Intl is the formatting shape: the resolved configuration plus one bound
// method per formatting capability. Shapes are immutable after
// construction and safe for concurrent use; a configuration change
// produces a new shape rather than editing an existing one. Consumers
// hold read-only references and must not mutate the exported fields.
type Intl struct {
	Locale                       string
	TimeZone                     string
	Formats                      *Formats
	TextComponent                TagRenderer
	Messages                     map[string]string
	DefaultLocale                string
	DefaultFormats               *Formats
	OnError                      ErrorHandler
	WrapRichTextChunksInFragment bool
	DefaultRichTextElements      map[string]TagRenderer

	tag        language.Tag
	loc        *time.Location
	cache      *FormatterCache
	formatters *Formatters
	engine     MessageFormatter
}

// NewIntl builds a formatting shape from cfg. Formatter construction is
// memoized on cache; passing the same cache across shapes makes
// key-equal lookups return identical instances. A nil cache gets a fresh
// one. Construction never fails: problems surface as advisory
// diagnostics through cfg.OnError, or are dropped when no handler is
// set.
func NewIntl(cfg Config, cache *FormatterCache) *Intl {
	return buildIntl(cfg, cache, nil)
}

func buildIntl(cfg Config, cache *FormatterCache, engine MessageFormatter) *Intl {
	resolved := normalizeConfig(cfg)
	resolved.DefaultRichTextElements = copyRenderers(resolved.DefaultRichTextElements)
	if resolved.DefaultLocale == "" {
		resolved.DefaultLocale = defaultLocale
	}
	if cache == nil {
		cache = NewFormatterCache()
	}
	if engine == nil {
		engine = defaultEngine
	}

	// Locale diagnostics are ordered and mutually exclusive: a missing
	// locale supersedes data checks, and missing number data supersedes
	// missing date/time data. Data checks are advisory; the locale is
	// used as given.
	locale := resolved.Locale
	switch {
	case locale == "":
		locale = resolved.DefaultLocale
		dispatch(resolved.OnError, &Error{
			Code:    ErrCodeInvalidConfig,
			Message: fmt.Sprintf("locale was not configured, using %q as fallback", locale),
			Err:     ErrMissingLocale,
		})
	case !cache.supportsNumber(locale):
		dispatch(resolved.OnError, &Error{
			Code:    ErrCodeMissingData,
			Message: fmt.Sprintf("missing number formatting data for locale %q, using default formatting rules", locale),
			Err:     ErrMissingData,
		})
	case !cache.supportsDateTime(locale):
		dispatch(resolved.OnError, &Error{
			Code:    ErrCodeMissingData,
			Message: fmt.Sprintf("missing date/time formatting data for locale %q, using default formatting rules", locale),
			Err:     ErrMissingData,
		})
	}
	resolved.Locale = locale

	var loc *time.Location
	if resolved.TimeZone != "" {
		l, err := time.LoadLocation(resolved.TimeZone)
		if err != nil {
			dispatch(resolved.OnError, &Error{
				Code:    ErrCodeFormatError,
				Message: fmt.Sprintf("time zone %q is not loadable, using UTC", resolved.TimeZone),
				Err:     err,
			})
			l = time.UTC
			resolved.TimeZone = "UTC"
		}
		loc = l
	}

	return &Intl{
		Locale:                       resolved.Locale,
		TimeZone:                     resolved.TimeZone,
		Formats:                      resolved.Formats,
		TextComponent:                resolved.TextComponent,
		Messages:                     resolved.Messages,
		DefaultLocale:                resolved.DefaultLocale,
		DefaultFormats:               resolved.DefaultFormats,
		OnError:                      resolved.OnError,
		WrapRichTextChunksInFragment: resolved.WrapRichTextChunksInFragment,
		DefaultRichTextElements:      resolved.DefaultRichTextElements,
		tag:                          parseTag(resolved.Locale),
		loc:                          loc,
		cache:                        cache,
		formatters:                   &Formatters{cache: cache},
		engine:                       engine,
	}
}

// Formatters exposes the accessor bundle backed by the shape's cache.
func (in *Intl) Formatters() *Formatters { return in.formatters }

// Tag returns the parsed locale tag.
func (in *Intl) Tag() language.Tag { return in.tag }

func (in *Intl) report(err *Error) { dispatch(in.OnError, err) }

// FormatNumber renders value in the shape's locale.
func (in *Intl) FormatNumber(value float64, opts ...NumberOptions) string {
	return in.cache.NumberFormat(in.Locale, in.resolveNumberOptions(opts)).Format(value)
}

// FormatNumberToParts renders value as a typed token sequence.
func (in *Intl) FormatNumberToParts(value float64, opts ...NumberOptions) []FormattedPart {
	return in.cache.NumberFormat(in.Locale, in.resolveNumberOptions(opts)).FormatToParts(value)
}

// FormatDate renders the date portion of t. Without an explicit style
// the locale's medium date pattern applies.
func (in *Intl) FormatDate(t time.Time, opts ...DateTimeOptions) string {
	return in.cache.DateTimeFormat(in.Locale, in.resolveDateOptions(opts)).Format(t)
}

// FormatDateToParts renders the date portion of t as a typed token
// sequence.
func (in *Intl) FormatDateToParts(t time.Time, opts ...DateTimeOptions) []FormattedPart {
	return in.cache.DateTimeFormat(in.Locale, in.resolveDateOptions(opts)).FormatToParts(t)
}

// FormatTime renders the time portion of t. Without an explicit style
// the locale's medium time pattern applies.
func (in *Intl) FormatTime(t time.Time, opts ...DateTimeOptions) string {
	return in.cache.DateTimeFormat(in.Locale, in.resolveTimeOptions(opts)).Format(t)
}

// FormatTimeToParts renders the time portion of t as a typed token
// sequence.
func (in *Intl) FormatTimeToParts(t time.Time, opts ...DateTimeOptions) []FormattedPart {
	return in.cache.DateTimeFormat(in.Locale, in.resolveTimeOptions(opts)).FormatToParts(t)
}

// FormatRelativeTime renders a signed offset in a calendar unit, e.g.
// (-1, "day") or (3, "month").
func (in *Intl) FormatRelativeTime(value float64, unit string, opts ...RelativeTimeOptions) string {
	var o RelativeTimeOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return in.cache.RelativeTimeFormat(in.Locale, o).Format(value, unit)
}

// FormatPlural selects the plural category for value.
func (in *Intl) FormatPlural(value float64, opts ...PluralOptions) PluralCategory {
	var o PluralOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return in.cache.PluralRules(in.Locale, o).Select(value)
}

// FormatList joins items with the locale's list patterns.
func (in *Intl) FormatList(items []string, opts ...ListOptions) string {
	var o ListOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return in.cache.ListFormat(in.Locale, o).Format(items)
}

// FormatDisplayName names a language, region, script, or currency code
// in the shape's locale.
func (in *Intl) FormatDisplayName(code string, opts ...DisplayNamesOptions) string {
	var o DisplayNamesOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return in.cache.DisplayNames(in.Locale, o).Of(code)
}

// FormatMessage resolves and evaluates a message pattern, flattening the
// result to plain text.
func (in *Intl) FormatMessage(desc MessageDescriptor, values ...map[string]any) string {
	return flattenParts(in.formatParts(desc, firstValues(values)))
}

// FormatMessageParts resolves and evaluates a message pattern, returning
// the part sequence. Tag-rendered regions carry keys that are fresh per
// call, deterministic across calls, and distinct within a call. With
// WrapRichTextChunksInFragment set, a multi-part result is wrapped in a
// single keyed fragment; a lone part is returned as is.
func (in *Intl) FormatMessageParts(desc MessageDescriptor, values ...map[string]any) []Node {
	return in.formatParts(desc, firstValues(values))
}

func (in *Intl) formatParts(desc MessageDescriptor, values map[string]any) []Node {
	ka := &keyAssigner{}
	parts, err := in.engine.FormatParts(in, desc, in.messageValues(values, ka))
	if err != nil {
		in.report(&Error{
			Code:    ErrCodeFormatError,
			Message: fmt.Sprintf("message %q failed to format", desc.ID),
			Err:     err,
		})
	}
	if len(parts) == 0 {
		return nil
	}
	if in.TextComponent != nil && !partsAllText(parts) {
		for i, p := range parts {
			if t, ok := p.(Text); ok {
				parts[i] = ka.stamp(in.TextComponent([]Node{t}))
			}
		}
	}
	if in.WrapRichTextChunksInFragment && len(parts) > 1 {
		return []Node{&Fragment{Key: ka.assign(), Children: parts}}
	}
	return parts
}

// messageValues merges the shape's default rich-text renderers under the
// caller's values, wrapping every renderer so its expansions are key
// stamped by this pass's assigner. Neither input map is mutated.
func (in *Intl) messageValues(values map[string]any, ka *keyAssigner) map[string]any {
	if len(in.DefaultRichTextElements) == 0 {
		return richTextValues(values, ka)
	}
	merged := make(map[string]any, len(in.DefaultRichTextElements)+len(values))
	for name, r := range in.DefaultRichTextElements {
		merged[name] = r.withKeys(ka)
	}
	for name, v := range richTextValues(values, ka) {
		merged[name] = v
	}
	return merged
}

func (in *Intl) resolveNumberOptions(opts []NumberOptions) NumberOptions {
	var o NumberOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Format != "" {
		if preset, ok := in.numberPreset(o.Format); ok {
			o = mergeNumberOptions(preset, o)
		} else {
			in.report(&Error{
				Code:    ErrCodeUnsupportedFormat,
				Message: fmt.Sprintf("no number format named %q", o.Format),
				Err:     ErrUnsupportedFormat,
			})
		}
	}
	return o
}

func (in *Intl) resolveDateOptions(opts []DateTimeOptions) DateTimeOptions {
	var o DateTimeOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Format != "" {
		if preset, ok := in.datePreset(o.Format); ok {
			o = mergeDateTimeOptions(preset, o)
		} else {
			in.report(&Error{
				Code:    ErrCodeUnsupportedFormat,
				Message: fmt.Sprintf("no date format named %q", o.Format),
				Err:     ErrUnsupportedFormat,
			})
		}
	}
	if o.TimeZone == "" {
		o.TimeZone = in.TimeZone
	}
	return o
}

func (in *Intl) resolveTimeOptions(opts []DateTimeOptions) DateTimeOptions {
	var o DateTimeOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Format != "" {
		if preset, ok := in.timePreset(o.Format); ok {
			o = mergeDateTimeOptions(preset, o)
		} else {
			in.report(&Error{
				Code:    ErrCodeUnsupportedFormat,
				Message: fmt.Sprintf("no time format named %q", o.Format),
				Err:     ErrUnsupportedFormat,
			})
		}
	}
	if o.DateStyle == "" && o.TimeStyle == "" {
		o.TimeStyle = StyleMedium
	}
	if o.TimeZone == "" {
		o.TimeZone = in.TimeZone
	}
	return o
}

// Preset lookups check the shape's Formats first, then DefaultFormats.

func (in *Intl) numberPreset(name string) (NumberOptions, bool) {
	if o, ok := in.Formats.numberPreset(name); ok {
		return o, true
	}
	return in.DefaultFormats.numberPreset(name)
}

func (in *Intl) datePreset(name string) (DateTimeOptions, bool) {
	if o, ok := in.Formats.datePreset(name); ok {
		return o, true
	}
	return in.DefaultFormats.datePreset(name)
}

func (in *Intl) timePreset(name string) (DateTimeOptions, bool) {
	if o, ok := in.Formats.timePreset(name); ok {
		return o, true
	}
	return in.DefaultFormats.timePreset(name)
}

// mergeNumberOptions overlays explicitly set fields of over onto a
// preset base. Zero means unset for strings; fraction digits move as a
// unit under the ExplicitFractions convention.
func mergeNumberOptions(base, over NumberOptions) NumberOptions {
	out := base
	out.Format = over.Format
	if over.Style != "" {
		out.Style = over.Style
	}
	if over.Currency != "" {
		out.Currency = over.Currency
	}
	if over.CurrencyDisplay != "" {
		out.CurrencyDisplay = over.CurrencyDisplay
	}
	if over.ExplicitFractions || over.MinFractionDigits > 0 || over.MaxFractionDigits > 0 {
		out.MinFractionDigits = over.MinFractionDigits
		out.MaxFractionDigits = over.MaxFractionDigits
		out.ExplicitFractions = over.ExplicitFractions
	}
	if over.NoGrouping {
		out.NoGrouping = true
	}
	return out
}

func mergeDateTimeOptions(base, over DateTimeOptions) DateTimeOptions {
	out := base
	out.Format = over.Format
	if over.DateStyle != "" {
		out.DateStyle = over.DateStyle
	}
	if over.TimeStyle != "" {
		out.TimeStyle = over.TimeStyle
	}
	if over.TimeZone != "" {
		out.TimeZone = over.TimeZone
	}
	if over.HourCycle != "" {
		out.HourCycle = over.HourCycle
	}
	return out
}

func firstValues(values []map[string]any) map[string]any {
	if len(values) > 0 {
		return values[0]
	}
	return nil
}

func partsAllText(parts []Node) bool {
	for _, p := range parts {
		if _, ok := p.(Text); !ok {
			return false
		}
	}
	return true
}
