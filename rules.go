package intl

// FormattingRules carries the locale-specific data consumed by the
// formatter kinds. Tables ship for a small locale set; lookups walk the
// locale parent chain and bottom out at the "en" defaults. A locale may
// carry a subset of capabilities (number data without date data), which
// is what the builder's missing-data checks observe.
type FormattingRules struct {
	Locale   string
	Number   NumberRules
	DateTime DateTimeRules
	List     ListRules
	Relative RelativeRules
}

// NumberRules describes digit assembly and currency placement.
type NumberRules struct {
	DecimalSep string
	GroupSep   string
	MinusSign  string
	PercentSym string
	// CurrencyPattern positions {symbol} and {amount}.
	CurrencyPattern  string
	CurrencyDecimals int
}

// PatternSet holds the four CLDR-width patterns for one field family.
type PatternSet struct {
	Full   string
	Long   string
	Medium string
	Short  string
}

func (p PatternSet) byStyle(style string) string {
	switch style {
	case StyleFull:
		return p.Full
	case StyleLong:
		return p.Long
	case StyleShort:
		return p.Short
	default:
		return p.Medium
	}
}

// DateTimeRules describes calendar field names and style patterns.
// Weekday arrays are Sunday-first, matching time.Weekday.
type DateTimeRules struct {
	Date           PatternSet
	Time           PatternSet
	Months         []string
	MonthsAbbrev   []string
	Weekdays       []string
	WeekdaysAbbrev []string
	DayPeriods     [2]string
	Use24Hour      bool
}

// ListPatterns holds the assembly templates for one list type.
type ListPatterns struct {
	Pair   string
	Start  string
	Middle string
	End    string
}

// ListRules carries conjunction ("and") and disjunction ("or") patterns.
type ListRules struct {
	Conjunction ListPatterns
	Disjunction ListPatterns
}

// RelativePatterns holds the templates for one unit at one width. Future
// and Past are keyed by plural category; Auto maps small offsets to
// idiomatic phrases ("yesterday") for numeric:"auto" formatting.
type RelativePatterns struct {
	Future map[PluralCategory]string
	Past   map[PluralCategory]string
	Auto   map[int]string
}

// RelativeRules maps unit names ("day", "month") to patterns per width.
// Short falls back to Long per unit when absent.
type RelativeRules struct {
	Long  map[string]RelativePatterns
	Short map[string]RelativePatterns
}

func (r FormattingRules) hasNumber() bool   { return r.Number.DecimalSep != "" }
func (r FormattingRules) hasDateTime() bool { return r.DateTime.Date.Medium != "" }

// rulesIndex resolves FormattingRules through the locale parent chain.
// Overrides shadow the built-in tables per locale.
type rulesIndex struct {
	rules map[string]FormattingRules
}

func newRulesIndex(overrides map[string]FormattingRules) *rulesIndex {
	merged := make(map[string]FormattingRules, len(formattingRules)+len(overrides))
	for locale, rules := range formattingRules {
		merged[locale] = rules
	}
	for locale, rules := range overrides {
		rules.Locale = normalizeLocale(locale)
		merged[rules.Locale] = rules
	}
	return &rulesIndex{rules: merged}
}

// numberRules returns the number data for the closest candidate locale.
// ok reports whether any candidate carried number data; when none does,
// the "en" defaults are returned and ok is false (the missing-data
// signal observed by the builder).
func (ix *rulesIndex) numberRules(locale string) (NumberRules, bool) {
	for _, candidate := range candidateLocales(locale) {
		if rules, found := ix.rules[candidate]; found && rules.hasNumber() {
			return rules.Number, true
		}
	}
	return formattingRules[defaultLocale].Number, false
}

func (ix *rulesIndex) dateTimeRules(locale string) (DateTimeRules, bool) {
	for _, candidate := range candidateLocales(locale) {
		if rules, found := ix.rules[candidate]; found && rules.hasDateTime() {
			return rules.DateTime, true
		}
	}
	return formattingRules[defaultLocale].DateTime, false
}

func (ix *rulesIndex) listRules(locale string) ListRules {
	for _, candidate := range candidateLocales(locale) {
		if rules, found := ix.rules[candidate]; found && rules.List.Conjunction.Pair != "" {
			return rules.List
		}
	}
	return formattingRules[defaultLocale].List
}

func (ix *rulesIndex) relativeRules(locale string) RelativeRules {
	for _, candidate := range candidateLocales(locale) {
		if rules, found := ix.rules[candidate]; found && rules.Relative.Long != nil {
			return rules.Relative
		}
	}
	return formattingRules[defaultLocale].Relative
}

// supportsNumber reports whether locale resolves to number data without
// falling through to the defaults.
func (ix *rulesIndex) supportsNumber(locale string) bool {
	_, ok := ix.numberRules(locale)
	return ok
}

func (ix *rulesIndex) supportsDateTime(locale string) bool {
	_, ok := ix.dateTimeRules(locale)
	return ok
}
