package intl

import "testing"

func TestFormatRelativeTime(t *testing.T) {
	tests := []struct {
		locale string
		value  float64
		unit   string
		opts   RelativeTimeOptions
		want   string
	}{
		{"en", -1, "day", RelativeTimeOptions{}, "1 day ago"},
		{"en", 2, "day", RelativeTimeOptions{}, "in 2 days"},
		{"en", -3, "week", RelativeTimeOptions{}, "3 weeks ago"},
		{"en", 1, "month", RelativeTimeOptions{}, "in 1 month"},
		{"en", 2.5, "hour", RelativeTimeOptions{}, "in 2.5 hours"},
		{"en", 5, "minutes", RelativeTimeOptions{}, "in 5 minutes"},
		{"es", 1, "month", RelativeTimeOptions{}, "dentro de 1 mes"},
		{"es", -2, "day", RelativeTimeOptions{}, "hace 2 días"},
		{"fr", -3, "year", RelativeTimeOptions{}, "il y a 3 ans"},
	}

	for _, tt := range tests {
		in := NewIntl(Config{Locale: tt.locale}, nil)
		if got := in.FormatRelativeTime(tt.value, tt.unit, tt.opts); got != tt.want {
			t.Errorf("FormatRelativeTime(%s, %v, %s) = %q, want %q", tt.locale, tt.value, tt.unit, got, tt.want)
		}
	}
}

func TestFormatRelativeTimeAuto(t *testing.T) {
	tests := []struct {
		locale string
		value  float64
		unit   string
		want   string
	}{
		{"en", -1, "day", "yesterday"},
		{"en", 0, "day", "today"},
		{"en", 1, "day", "tomorrow"},
		{"en", 0, "second", "now"},
		{"en", -1, "week", "last week"},
		{"en", 1, "year", "next year"},
		// no idiomatic phrase for the offset, numeric fallback
		{"en", 2, "day", "in 2 days"},
		{"en", -1, "hour", "1 hour ago"},
		{"es", -1, "day", "ayer"},
		{"fr", 1, "day", "demain"},
	}

	for _, tt := range tests {
		in := NewIntl(Config{Locale: tt.locale}, nil)
		got := in.FormatRelativeTime(tt.value, tt.unit, RelativeTimeOptions{Numeric: NumericAuto})
		if got != tt.want {
			t.Errorf("FormatRelativeTime(%s, %v, %s) = %q, want %q", tt.locale, tt.value, tt.unit, got, tt.want)
		}
	}
}

func TestFormatRelativeTimeShort(t *testing.T) {
	in := NewIntl(Config{Locale: "en"}, nil)

	if got := in.FormatRelativeTime(3, "month", RelativeTimeOptions{Style: StyleShort}); got != "in 3 mo." {
		t.Fatalf("short month = %q", got)
	}
	if got := in.FormatRelativeTime(-2, "hour", RelativeTimeOptions{Style: StyleShort}); got != "2 hr. ago" {
		t.Fatalf("short hour = %q", got)
	}
	// units without a short table fall back to long per unit
	if got := in.FormatRelativeTime(2, "quarter", RelativeTimeOptions{Style: StyleShort}); got != "in 2 quarters" {
		t.Fatalf("short quarter = %q", got)
	}
}

func TestFormatRelativeTimeUnknownUnit(t *testing.T) {
	in := NewIntl(Config{Locale: "en"}, nil)
	if got := in.FormatRelativeTime(3, "fortnight"); got != "3 fortnight" {
		t.Fatalf("unknown unit = %q", got)
	}
}
