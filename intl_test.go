package intl

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewIntlMissingLocale(t *testing.T) {
	var got []*Error
	in := NewIntl(Config{OnError: func(err *Error) { got = append(got, err) }}, nil)

	if in.Locale != "en" {
		t.Fatalf("Locale = %q, want en", in.Locale)
	}
	if len(got) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(got))
	}
	if got[0].Code != ErrCodeInvalidConfig {
		t.Fatalf("Code = %q, want %q", got[0].Code, ErrCodeInvalidConfig)
	}
	if !errors.Is(got[0], ErrMissingLocale) {
		t.Fatalf("diagnostic does not wrap ErrMissingLocale: %v", got[0])
	}
}

func TestNewIntlMissingLocaleUsesDefault(t *testing.T) {
	var got []*Error
	in := NewIntl(Config{
		DefaultLocale: "fr",
		OnError:       func(err *Error) { got = append(got, err) },
	}, nil)

	if in.Locale != "fr" {
		t.Fatalf("Locale = %q, want fr", in.Locale)
	}
	if len(got) != 1 || got[0].Code != ErrCodeInvalidConfig {
		t.Fatalf("diagnostics = %+v, want one INVALID_CONFIG", got)
	}
}

func TestNewIntlMissingNumberData(t *testing.T) {
	var got []*Error
	in := NewIntl(Config{
		Locale:  "oc",
		OnError: func(err *Error) { got = append(got, err) },
	}, nil)

	if in.Locale != "oc" {
		t.Fatalf("Locale = %q, want oc", in.Locale)
	}
	if len(got) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(got))
	}
	if got[0].Code != ErrCodeMissingData || !errors.Is(got[0], ErrMissingData) {
		t.Fatalf("unexpected diagnostic %v", got[0])
	}
	if !strings.Contains(got[0].Message, "number") {
		t.Fatalf("Message = %q, want the number data check first", got[0].Message)
	}

	// formatting still works over the default rules
	if out := in.FormatNumber(1234.5); out != "1,234.5" {
		t.Fatalf("FormatNumber = %q", out)
	}
}

func TestNewIntlMissingDateTimeData(t *testing.T) {
	var got []*Error
	in := NewIntl(Config{
		Locale:  "pt",
		OnError: func(err *Error) { got = append(got, err) },
	}, nil)

	if len(got) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(got))
	}
	if got[0].Code != ErrCodeMissingData || !strings.Contains(got[0].Message, "date/time") {
		t.Fatalf("unexpected diagnostic %v", got[0])
	}

	// number data present, date falls back to the defaults
	if out := in.FormatNumber(1234.5); out != "1.234,5" {
		t.Fatalf("FormatNumber = %q", out)
	}
	date := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	if out := in.FormatDate(date); out != "Jan 15, 2026" {
		t.Fatalf("FormatDate = %q", out)
	}
}

func TestNewIntlBadTimeZone(t *testing.T) {
	var got []*Error
	in := NewIntl(Config{
		Locale:   "en",
		TimeZone: "Not/AZone",
		OnError:  func(err *Error) { got = append(got, err) },
	}, nil)

	if len(got) != 1 || got[0].Code != ErrCodeFormatError {
		t.Fatalf("diagnostics = %+v, want one FORMAT_ERROR", got)
	}
	if in.TimeZone != "UTC" {
		t.Fatalf("TimeZone = %q, want UTC", in.TimeZone)
	}
}

func TestNewIntlDiagnosticOrder(t *testing.T) {
	var codes []ErrorCode
	NewIntl(Config{
		TimeZone: "Not/AZone",
		OnError:  func(err *Error) { codes = append(codes, err.Code) },
	}, nil)

	if len(codes) != 2 || codes[0] != ErrCodeInvalidConfig || codes[1] != ErrCodeFormatError {
		t.Fatalf("codes = %v, want [INVALID_CONFIG FORMAT_ERROR]", codes)
	}
}

func TestNewIntlNilHandler(t *testing.T) {
	in := NewIntl(Config{TimeZone: "Not/AZone"}, nil)
	if in.Locale != "en" || in.TimeZone != "UTC" {
		t.Fatalf("shape = %q %q", in.Locale, in.TimeZone)
	}
	// diagnostics are dropped, never raised
	if out := in.FormatMessage(MessageDescriptor{ID: "missing.id"}); out != "missing.id" {
		t.Fatalf("FormatMessage = %q", out)
	}
}

func TestIntlNumberPresets(t *testing.T) {
	var got []*Error
	in := NewIntl(Config{
		Locale: "en",
		Formats: &Formats{
			Number: map[string]NumberOptions{"money": {Style: StyleCurrency, Currency: "EUR"}},
		},
		DefaultFormats: &Formats{
			Number: map[string]NumberOptions{
				"money": {Style: StyleCurrency, Currency: "JPY"},
				"plain": {NoGrouping: true},
			},
		},
		OnError: func(err *Error) { got = append(got, err) },
	}, nil)

	tests := []struct {
		name string
		opts NumberOptions
		in   float64
		want string
	}{
		{"named preset", NumberOptions{Format: "money"}, 42.5, "€42.50"},
		{"formats shadow default formats", NumberOptions{Format: "money"}, 1, "€1.00"},
		{"default formats fallback", NumberOptions{Format: "plain"}, 1234567, "1234567"},
		{"explicit field overlays preset", NumberOptions{Format: "money", Currency: "USD"}, 42.5, "$42.50"},
		{"fraction digits overlay as a unit", NumberOptions{Format: "money", MinFractionDigits: 1, MaxFractionDigits: 1}, 42.5, "€42.5"},
	}
	for _, tt := range tests {
		if out := in.FormatNumber(tt.in, tt.opts); out != tt.want {
			t.Errorf("%s: FormatNumber = %q, want %q", tt.name, out, tt.want)
		}
	}
	if len(got) != 0 {
		t.Fatalf("unexpected diagnostics %+v", got)
	}

	if out := in.FormatNumber(5, NumberOptions{Format: "missing"}); out != "5" {
		t.Fatalf("unknown preset output = %q, want 5", out)
	}
	if len(got) != 1 || got[0].Code != ErrCodeUnsupportedFormat {
		t.Fatalf("diagnostics = %+v, want one UNSUPPORTED_FORMATTER", got)
	}
	if !errors.Is(got[0], ErrUnsupportedFormat) {
		t.Fatalf("diagnostic does not unwrap: %v", got[0])
	}
}

func TestIntlDatePresets(t *testing.T) {
	var got []*Error
	in := NewIntl(Config{
		Locale: "en",
		Formats: &Formats{
			Date: map[string]DateTimeOptions{"receipt": {DateStyle: StyleLong}},
			Time: map[string]DateTimeOptions{"stamp": {TimeStyle: StyleShort, HourCycle: HourCycle23}},
		},
		OnError: func(err *Error) { got = append(got, err) },
	}, nil)
	date := time.Date(2026, time.January, 15, 14, 30, 5, 0, time.UTC)

	if out := in.FormatDate(date, DateTimeOptions{Format: "receipt"}); out != "January 15, 2026" {
		t.Fatalf("FormatDate(receipt) = %q", out)
	}
	if out := in.FormatTime(date, DateTimeOptions{Format: "stamp"}); out != "14:30" {
		t.Fatalf("FormatTime(stamp) = %q", out)
	}
	if len(got) != 0 {
		t.Fatalf("unexpected diagnostics %+v", got)
	}

	if out := in.FormatDate(date, DateTimeOptions{Format: "missing"}); out != "Jan 15, 2026" {
		t.Fatalf("unknown preset output = %q", out)
	}
	if len(got) != 1 || got[0].Code != ErrCodeUnsupportedFormat {
		t.Fatalf("diagnostics = %+v, want one UNSUPPORTED_FORMATTER", got)
	}
}

func TestIntlTimeZoneApplied(t *testing.T) {
	in := NewIntl(Config{Locale: "en", TimeZone: "UTC"}, nil)
	input := time.Date(2026, time.January, 15, 2, 0, 0, 0, time.FixedZone("X", 5*3600))

	if out := in.FormatDate(input); out != "Jan 14, 2026" {
		t.Fatalf("FormatDate = %q, want the UTC calendar day", out)
	}
	if out := in.FormatTime(input); out != "9:00:00 PM" {
		t.Fatalf("FormatTime = %q", out)
	}
}

func TestIntlDefaultTimeStyle(t *testing.T) {
	in := NewIntl(Config{Locale: "en"}, nil)
	stamp := time.Date(2026, time.January, 15, 14, 30, 5, 0, time.UTC)
	if out := in.FormatTime(stamp); out != "2:30:05 PM" {
		t.Fatalf("FormatTime = %q, want medium style default", out)
	}
}
