package intl

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	StyleDecimal  = "decimal"
	StylePercent  = "percent"
	StyleCurrency = "currency"

	DisplaySymbol = "symbol"
	DisplayCode   = "code"
)

// NumberOptions configures the number capability. Format names a preset
// from the shape's Formats; preset fields are overlaid by any explicitly
// set field here, and the cache constructor ignores Format itself.
// Fraction digit fields apply when nonzero, or when ExplicitFractions is
// set (which covers an authored zero, e.g. forcing integer output);
// otherwise the style defaults apply: 0..3 for decimal, 2..2 for
// currency, 0..0 for percent.
type NumberOptions struct {
	Format            string
	Style             string
	Currency          string
	CurrencyDisplay   string
	MinFractionDigits int
	MaxFractionDigits int
	ExplicitFractions bool
	NoGrouping        bool
}

func (o NumberOptions) fractionDigits() (minFrac, maxFrac int) {
	switch o.Style {
	case StyleCurrency:
		minFrac, maxFrac = 2, 2
	case StylePercent:
		minFrac, maxFrac = 0, 0
	default:
		minFrac, maxFrac = 0, 3
	}
	if o.ExplicitFractions || o.MinFractionDigits > 0 || o.MaxFractionDigits > 0 {
		minFrac, maxFrac = o.MinFractionDigits, o.MaxFractionDigits
	}
	if minFrac < 0 {
		minFrac = 0
	}
	if maxFrac < minFrac {
		maxFrac = minFrac
	}
	return minFrac, maxFrac
}

// FormattedPart is one token of part-wise formatted output.
type FormattedPart struct {
	Type  string
	Value string
}

// NumberFormat is a constructed number formatter bound to one locale and
// option set. Instances are immutable and shared through the cache.
type NumberFormat struct {
	locale   string
	tag      language.Tag
	opts     NumberOptions
	rules    NumberRules
	printer  *message.Printer
	minFrac  int
	maxFrac  int
	currency string
	symbol   string
}

func newNumberFormat(locale string, opts NumberOptions, rules NumberRules) *NumberFormat {
	tag := parseTag(locale)
	f := &NumberFormat{
		locale:  locale,
		tag:     tag,
		opts:    opts,
		rules:   rules,
		printer: message.NewPrinter(tag),
	}
	f.minFrac, f.maxFrac = opts.fractionDigits()
	if opts.Style == StyleCurrency {
		code := strings.TrimSpace(opts.Currency)
		if code == "" {
			code = defaultCurrency(locale)
		}
		f.currency = strings.ToUpper(code)
		if opts.CurrencyDisplay == DisplayCode {
			f.symbol = f.currency
		} else {
			f.symbol = currencySymbol(f.printer, f.currency)
		}
		if rules.CurrencyDecimals > 0 && !opts.ExplicitFractions &&
			opts.MinFractionDigits == 0 && opts.MaxFractionDigits == 0 {
			f.minFrac, f.maxFrac = rules.CurrencyDecimals, rules.CurrencyDecimals
		}
	}
	return f
}

// Format renders value per the bound options.
func (f *NumberFormat) Format(value float64) string {
	parts := f.FormatToParts(value)
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Value)
	}
	return b.String()
}

// FormatToParts renders value as a typed token sequence: minusSign,
// integer, group, decimal, fraction, percentSign, currency, literal.
func (f *NumberFormat) FormatToParts(value float64) []FormattedPart {
	neg := value < 0
	abs := math.Abs(value)
	if f.opts.Style == StylePercent {
		abs *= 100
	}

	digits := strconv.FormatFloat(abs, 'f', f.maxFrac, 64)
	intDigits, fracDigits, _ := strings.Cut(digits, ".")
	fracDigits = trimFraction(fracDigits, f.minFrac)

	var parts []FormattedPart
	if neg {
		parts = append(parts, FormattedPart{Type: "minusSign", Value: f.rules.MinusSign})
	}
	parts = f.appendIntegerParts(parts, intDigits)
	if fracDigits != "" {
		parts = append(parts,
			FormattedPart{Type: "decimal", Value: f.rules.DecimalSep},
			FormattedPart{Type: "fraction", Value: fracDigits},
		)
	}
	if f.opts.Style == StylePercent {
		parts = append(parts, FormattedPart{Type: "percentSign", Value: f.rules.PercentSym})
	}
	if f.opts.Style == StyleCurrency {
		parts = f.placeCurrency(parts)
	}
	return parts
}

func (f *NumberFormat) appendIntegerParts(parts []FormattedPart, digits string) []FormattedPart {
	if f.opts.NoGrouping || len(digits) <= 3 || f.rules.GroupSep == "" {
		return append(parts, FormattedPart{Type: "integer", Value: digits})
	}
	head := len(digits) % 3
	first := true
	if head > 0 {
		parts = append(parts, FormattedPart{Type: "integer", Value: digits[:head]})
		first = false
	}
	for i := head; i < len(digits); i += 3 {
		if !first {
			parts = append(parts, FormattedPart{Type: "group", Value: f.rules.GroupSep})
		}
		first = false
		parts = append(parts, FormattedPart{Type: "integer", Value: digits[i : i+3]})
	}
	return parts
}

// placeCurrency slots the resolved symbol around the numeric parts per
// the locale's {symbol}/{amount} pattern.
func (f *NumberFormat) placeCurrency(numeric []FormattedPart) []FormattedPart {
	pattern := f.rules.CurrencyPattern
	if pattern == "" {
		pattern = "{symbol}{amount}"
	}
	before, after, _ := strings.Cut(pattern, "{amount}")

	out := make([]FormattedPart, 0, len(numeric)+3)
	out = appendCurrencySegment(out, before, f.symbol)
	if len(out) > 0 && isCodeLike(f.symbol) && strings.HasSuffix(before, "{symbol}") {
		out = append(out, FormattedPart{Type: "literal", Value: " "})
	}
	out = append(out, numeric...)
	out = appendCurrencySegment(out, after, f.symbol)
	return out
}

func appendCurrencySegment(parts []FormattedPart, segment, symbol string) []FormattedPart {
	for segment != "" {
		idx := strings.Index(segment, "{symbol}")
		if idx < 0 {
			parts = append(parts, FormattedPart{Type: "literal", Value: segment})
			break
		}
		if idx > 0 {
			parts = append(parts, FormattedPart{Type: "literal", Value: segment[:idx]})
		}
		parts = append(parts, FormattedPart{Type: "currency", Value: symbol})
		segment = segment[idx+len("{symbol}"):]
	}
	return parts
}

// isCodeLike reports whether the symbol is alphanumeric (an ISO code
// rather than a sign), which needs a separating space before digits.
func isCodeLike(symbol string) bool {
	for _, r := range symbol {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return symbol != ""
}

func trimFraction(digits string, minFrac int) string {
	for len(digits) > minFrac && strings.HasSuffix(digits, "0") {
		digits = digits[:len(digits)-1]
	}
	return digits
}

// currencySymbol resolves the display symbol for an ISO code by printing
// a currency amount and subtracting the bare formatted number; when the
// locale printer yields nothing usable the English printer is tried, and
// the code itself is the last resort.
func currencySymbol(p *message.Printer, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() == "XXX" {
		return strings.ToUpper(code)
	}

	if symbol := extractSymbol(p, unit); symbol != "" && symbol != unit.String() {
		return symbol
	}
	if symbol := extractSymbol(message.NewPrinter(language.English), unit); symbol != "" {
		return symbol
	}
	return unit.String()
}

func extractSymbol(p *message.Printer, unit currency.Unit) string {
	const probe = 1.0
	full := p.Sprintf("%v", currency.Symbol(unit.Amount(probe)))
	plain := p.Sprintf("%v", number.Decimal(probe,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	return strings.TrimSpace(strings.ReplaceAll(full, plain, ""))
}
