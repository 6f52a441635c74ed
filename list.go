package intl

import "strings"

const (
	ListConjunction = "conjunction"
	ListDisjunction = "disjunction"
)

// ListOptions configures list assembly.
type ListOptions struct {
	Type string
}

// ListFormat joins item sequences with the locale's list patterns.
// Instances are immutable and shared through the cache.
type ListFormat struct {
	locale   string
	opts     ListOptions
	patterns ListPatterns
}

func newListFormat(locale string, opts ListOptions, rules ListRules) *ListFormat {
	patterns := rules.Conjunction
	if opts.Type == ListDisjunction {
		patterns = rules.Disjunction
	}
	return &ListFormat{locale: locale, opts: opts, patterns: patterns}
}

// Format joins items in input order. Two items use the pair pattern;
// longer sequences chain start, middle, and end patterns.
func (f *ListFormat) Format(items []string) string {
	pair := f.patterns.Pair
	end := f.patterns.End
	if end == "" {
		end = pair
	}

	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return applyListPattern(pair, items[0], items[1])
	default:
		if f.patterns.Start == "" || f.patterns.Middle == "" {
			head := strings.Join(items[:len(items)-1], ", ")
			return applyListPattern(end, head, items[len(items)-1])
		}
		result := applyListPattern(f.patterns.Start, items[0], items[1])
		for i := 2; i < len(items)-1; i++ {
			result = applyListPattern(f.patterns.Middle, result, items[i])
		}
		return applyListPattern(end, result, items[len(items)-1])
	}
}

func applyListPattern(pattern, head, tail string) string {
	result := strings.ReplaceAll(pattern, "{0}", head)
	return strings.ReplaceAll(result, "{1}", tail)
}
