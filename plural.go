package intl

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

const (
	PluralCardinal = "cardinal"
	PluralOrdinal  = "ordinal"
)

// PluralOptions configures plural selection. Fraction digit fields follow
// the NumberOptions convention; the digits visible after formatting drive
// CLDR operand derivation ("1" selects one, "1.0" selects other in
// English).
type PluralOptions struct {
	Type              string
	MinFractionDigits int
	MaxFractionDigits int
	ExplicitFractions bool
}

func (o PluralOptions) fractionDigits() (minFrac, maxFrac int) {
	minFrac, maxFrac = 0, 3
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

// PluralRules selects CLDR plural categories for one locale and option
// set. Instances are immutable and shared through the cache.
type PluralRules struct {
	locale  string
	tag     language.Tag
	opts    PluralOptions
	rules   *plural.Rules
	minFrac int
	maxFrac int
}

func newPluralRules(locale string, opts PluralOptions) *PluralRules {
	rules := plural.Cardinal
	if opts.Type == PluralOrdinal {
		rules = plural.Ordinal
	}
	p := &PluralRules{
		locale: locale,
		tag:    parseTag(locale),
		opts:   opts,
		rules:  rules,
	}
	p.minFrac, p.maxFrac = opts.fractionDigits()
	return p
}

// Select returns the plural category for value.
func (p *PluralRules) Select(value float64) PluralCategory {
	i, v, w, f, t := pluralOperands(value, p.minFrac, p.maxFrac)
	return formCategory(p.rules.MatchPlural(p.tag, i, v, w, f, t))
}

// pluralOperands derives the CLDR operands from the rendered digits:
// i integer value, v visible fraction length, w same without trailing
// zeros, f visible fraction value, t same without trailing zeros.
func pluralOperands(value float64, minFrac, maxFrac int) (i, v, w, f, t int) {
	abs := math.Abs(value)
	rendered := strconv.FormatFloat(abs, 'f', maxFrac, 64)
	intDigits, fracDigits, _ := strings.Cut(rendered, ".")
	fracDigits = trimFraction(fracDigits, minFrac)

	i, _ = strconv.Atoi(intDigits)
	v = len(fracDigits)
	if fracDigits != "" {
		f, _ = strconv.Atoi(fracDigits)
	}
	bare := strings.TrimRight(fracDigits, "0")
	w = len(bare)
	if bare != "" {
		t, _ = strconv.Atoi(bare)
	}
	return i, v, w, f, t
}

func formCategory(form plural.Form) PluralCategory {
	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}
