package intl

import "reflect"

// defaultLocale is the hard fallback when neither Locale nor
// DefaultLocale is set. Rules lookups also bottom out here.
const defaultLocale = "en"

// Config is the input record for building a formatting shape. Exactly
// these fields participate in change detection; anything carried outside
// (providers, loggers, stores) never triggers a rebuild.
type Config struct {
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
}

// Formats holds named option presets, looked up by name at format time.
type Formats struct {
	Number map[string]NumberOptions
	Date   map[string]DateTimeOptions
	Time   map[string]DateTimeOptions
}

func (f *Formats) numberPreset(name string) (NumberOptions, bool) {
	if f == nil || name == "" {
		return NumberOptions{}, false
	}
	opts, ok := f.Number[name]
	return opts, ok
}

func (f *Formats) datePreset(name string) (DateTimeOptions, bool) {
	if f == nil || name == "" {
		return DateTimeOptions{}, false
	}
	opts, ok := f.Date[name]
	return opts, ok
}

func (f *Formats) timePreset(name string) (DateTimeOptions, bool) {
	if f == nil || name == "" {
		return DateTimeOptions{}, false
	}
	opts, ok := f.Time[name]
	return opts, ok
}

// normalizeConfig reduces a config to the recognized field set. Values
// pass through as given, zero values included; defaults are applied at
// build time. normalizeConfig(normalizeConfig(x)) is equal to
// normalizeConfig(x) under configsEqual.
func normalizeConfig(cfg Config) Config {
	return Config{
		Locale:                       cfg.Locale,
		TimeZone:                     cfg.TimeZone,
		Formats:                      cfg.Formats,
		TextComponent:                cfg.TextComponent,
		Messages:                     cfg.Messages,
		DefaultLocale:                cfg.DefaultLocale,
		DefaultFormats:               cfg.DefaultFormats,
		OnError:                      cfg.OnError,
		WrapRichTextChunksInFragment: cfg.WrapRichTextChunksInFragment,
		DefaultRichTextElements:      cfg.DefaultRichTextElements,
	}
}

// configsEqual is the change-detection gate: shallow comparison over the
// recognized fields. Maps and functions compare by reference identity,
// not contents; callers are expected to hold stable values across calls
// when they want rebuilds suppressed. Two maps with equal contents but
// separate identity do trigger a rebuild.
func configsEqual(prev, next Config) bool {
	return prev.Locale == next.Locale &&
		prev.TimeZone == next.TimeZone &&
		prev.Formats == next.Formats &&
		refEqual(prev.TextComponent, next.TextComponent) &&
		refEqual(prev.Messages, next.Messages) &&
		prev.DefaultLocale == next.DefaultLocale &&
		prev.DefaultFormats == next.DefaultFormats &&
		refEqual(prev.OnError, next.OnError) &&
		prev.WrapRichTextChunksInFragment == next.WrapRichTextChunksInFragment &&
		refEqual(prev.DefaultRichTextElements, next.DefaultRichTextElements)
}

// refEqual compares reference kinds (maps, funcs) by identity. Both nil
// counts as equal. For funcs reflect exposes the code pointer, which
// matches reference identity as long as callers hold one value rather
// than re-making a closure per call.
func refEqual(a, b any) bool {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	aNil := !av.IsValid() || av.IsNil()
	bNil := !bv.IsValid() || bv.IsNil()
	if aNil || bNil {
		return aNil && bNil
	}
	return av.Pointer() == bv.Pointer()
}
