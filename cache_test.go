package intl

import "testing"

func TestCacheReturnsSameInstance(t *testing.T) {
	cache := NewFormatterCache()
	opts := NumberOptions{Style: StyleCurrency, Currency: "USD"}

	first := cache.NumberFormat("en", opts)
	second := cache.NumberFormat("en", opts)
	if first != second {
		t.Fatal("key-equal lookups returned distinct instances")
	}

	other := cache.NumberFormat("en", NumberOptions{Style: StyleCurrency, Currency: "EUR"})
	if other == first {
		t.Fatal("different options shared one instance")
	}
	if cache.NumberFormat("es", opts) == first {
		t.Fatal("different locales shared one instance")
	}
}

func TestCacheCoversEveryKind(t *testing.T) {
	cache := NewFormatterCache()

	if cache.DateTimeFormat("en", DateTimeOptions{DateStyle: StyleLong}) !=
		cache.DateTimeFormat("en", DateTimeOptions{DateStyle: StyleLong}) {
		t.Fatal("date/time lookups returned distinct instances")
	}
	if cache.RelativeTimeFormat("en", RelativeTimeOptions{Numeric: NumericAuto}) !=
		cache.RelativeTimeFormat("en", RelativeTimeOptions{Numeric: NumericAuto}) {
		t.Fatal("relative-time lookups returned distinct instances")
	}
	if cache.PluralRules("en", PluralOptions{Type: PluralOrdinal}) !=
		cache.PluralRules("en", PluralOptions{Type: PluralOrdinal}) {
		t.Fatal("plural lookups returned distinct instances")
	}
	if cache.ListFormat("en", ListOptions{Type: ListDisjunction}) !=
		cache.ListFormat("en", ListOptions{Type: ListDisjunction}) {
		t.Fatal("list lookups returned distinct instances")
	}
	if cache.DisplayNames("en", DisplayNamesOptions{Type: DisplayRegion}) !=
		cache.DisplayNames("en", DisplayNamesOptions{Type: DisplayRegion}) {
		t.Fatal("display-name lookups returned distinct instances")
	}
}

func TestCacheSharedAcrossShapes(t *testing.T) {
	cache := NewFormatterCache()
	first := NewIntl(Config{Locale: "en"}, cache)
	second := NewIntl(Config{Locale: "en"}, cache)

	opts := NumberOptions{Style: StylePercent}
	if first.Formatters().NumberFormat("en", opts) != second.Formatters().NumberFormat("en", opts) {
		t.Fatal("shapes over one cache handed out distinct instances")
	}

	// separate caches must not share
	apart := NewIntl(Config{Locale: "en"}, NewFormatterCache())
	if apart.Formatters().NumberFormat("en", opts) == first.Formatters().NumberFormat("en", opts) {
		t.Fatal("distinct caches shared an instance")
	}
}

func TestCacheKeyIgnoresPresetName(t *testing.T) {
	cache := NewFormatterCache()
	plain := cache.NumberFormat("en", NumberOptions{})
	named := cache.NumberFormat("en", NumberOptions{Format: "money"})
	if plain != named {
		t.Fatal("preset name split the cache key")
	}
}

func TestCacheLocaleKeyNormalization(t *testing.T) {
	cache := NewFormatterCache()
	if cache.NumberFormat("en_US", NumberOptions{}) != cache.NumberFormat("en-US", NumberOptions{}) {
		t.Fatal("underscore and hyphen spellings split the cache key")
	}
}

func TestWithFormattingRules(t *testing.T) {
	cache := NewFormatterCache(WithFormattingRules(map[string]FormattingRules{
		"xx": {Number: NumberRules{
			DecimalSep: ",",
			GroupSep:   ".",
			MinusSign:  "-",
			PercentSym: "%",
		}},
	}))

	if out := cache.NumberFormat("xx", NumberOptions{}).Format(1234.5); out != "1.234,5" {
		t.Fatalf("override rules not applied: %q", out)
	}

	var got []*Error
	in := NewIntl(Config{
		Locale:  "xx",
		OnError: func(err *Error) { got = append(got, err) },
	}, cache)
	if len(got) != 1 || got[0].Code != ErrCodeMissingData {
		t.Fatalf("diagnostics = %+v, want one MISSING_DATA for date/time", got)
	}
	if in.FormatNumber(1234.5) != "1.234,5" {
		t.Fatal("shape did not pick up the override rules")
	}

	// built-in locales still resolve
	if out := cache.NumberFormat("en", NumberOptions{}).Format(1234.5); out != "1,234.5" {
		t.Fatalf("built-in rules lost: %q", out)
	}
}

func TestFormattersAccessor(t *testing.T) {
	in := NewIntl(Config{Locale: "en"}, nil)
	if in.Formatters() == nil {
		t.Fatal("Formatters returned nil")
	}
	if in.Formatters().ListFormat("en", ListOptions{}).Format([]string{"a", "b"}) != "a and b" {
		t.Fatal("accessor formatter did not format")
	}
}
