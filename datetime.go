package intl

import (
	"strconv"
	"strings"
	"time"
)

const (
	StyleFull   = "full"
	StyleLong   = "long"
	StyleMedium = "medium"
	StyleShort  = "short"

	HourCycle12 = "h12"
	HourCycle23 = "h23"
)

// DateTimeOptions configures the date and time capabilities. Format
// names a preset from the shape's Formats, overlaid by any explicitly
// set field here and ignored by the cache constructor. DateStyle and
// TimeStyle pick the locale's pattern width; when both are set the date
// precedes the time. TimeZone overrides the shape's zone for this
// formatter; HourCycle forces 12 or 24 hour rendering regardless of the
// locale default.
type DateTimeOptions struct {
	Format    string
	DateStyle string
	TimeStyle string
	TimeZone  string
	HourCycle string
}

// DateTimeFormat is a constructed date/time formatter bound to one locale
// and option set. Instances are immutable and shared through the cache.
type DateTimeFormat struct {
	locale      string
	opts        DateTimeOptions
	rules       DateTimeRules
	loc         *time.Location
	datePattern string
	timePattern string
}

func newDateTimeFormat(locale string, opts DateTimeOptions, rules DateTimeRules) *DateTimeFormat {
	f := &DateTimeFormat{locale: locale, opts: opts, rules: rules}
	if opts.TimeZone != "" {
		if loc, err := time.LoadLocation(opts.TimeZone); err == nil {
			f.loc = loc
		}
	}
	if opts.DateStyle != "" {
		f.datePattern = rules.Date.byStyle(opts.DateStyle)
	}
	if opts.TimeStyle != "" {
		f.timePattern = applyHourCycle(rules.Time.byStyle(opts.TimeStyle), opts.HourCycle)
	}
	if f.datePattern == "" && f.timePattern == "" {
		f.datePattern = rules.Date.Medium
	}
	return f
}

// Format renders t per the bound styles.
func (f *DateTimeFormat) Format(t time.Time) string {
	parts := f.FormatToParts(t)
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Value)
	}
	return b.String()
}

// FormatToParts renders t as a typed token sequence: year, month, day,
// weekday, hour, minute, second, dayPeriod, timeZoneName, literal.
func (f *DateTimeFormat) FormatToParts(t time.Time) []FormattedPart {
	if f.loc != nil {
		t = t.In(f.loc)
	}
	var parts []FormattedPart
	if f.datePattern != "" {
		parts = f.render(parts, f.datePattern, t)
	}
	if f.timePattern != "" {
		if len(parts) > 0 {
			parts = append(parts, FormattedPart{Type: "literal", Value: ", "})
		}
		parts = f.render(parts, f.timePattern, t)
	}
	return parts
}

// render evaluates a CLDR-style pattern. Letter runs become fields,
// quoted sections and other runs become literals; '' inside quotes is an
// escaped quote.
func (f *DateTimeFormat) render(parts []FormattedPart, pattern string, t time.Time) []FormattedPart {
	i := 0
	for i < len(pattern) {
		c := pattern[i]
		switch {
		case c == '\'':
			var lit strings.Builder
			j := i + 1
			for j < len(pattern) {
				if pattern[j] == '\'' {
					if j+1 < len(pattern) && pattern[j+1] == '\'' {
						lit.WriteByte('\'')
						j += 2
						continue
					}
					break
				}
				lit.WriteByte(pattern[j])
				j++
			}
			parts = append(parts, FormattedPart{Type: "literal", Value: lit.String()})
			i = j + 1
		case isPatternLetter(c):
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			parts = append(parts, f.renderField(c, j-i, t))
			i = j
		default:
			j := i
			for j < len(pattern) && !isPatternLetter(pattern[j]) && pattern[j] != '\'' {
				j++
			}
			parts = append(parts, FormattedPart{Type: "literal", Value: pattern[i:j]})
			i = j
		}
	}
	return parts
}

func (f *DateTimeFormat) renderField(letter byte, count int, t time.Time) FormattedPart {
	switch letter {
	case 'y':
		year := t.Year()
		if count == 2 {
			return FormattedPart{Type: "year", Value: pad(year%100, 2)}
		}
		return FormattedPart{Type: "year", Value: strconv.Itoa(year)}
	case 'M':
		month := int(t.Month())
		switch {
		case count >= 4:
			return FormattedPart{Type: "month", Value: f.rules.Months[month-1]}
		case count == 3:
			return FormattedPart{Type: "month", Value: f.rules.MonthsAbbrev[month-1]}
		default:
			return FormattedPart{Type: "month", Value: pad(month, count)}
		}
	case 'd':
		return FormattedPart{Type: "day", Value: pad(t.Day(), count)}
	case 'E':
		weekday := int(t.Weekday())
		if count >= 4 {
			return FormattedPart{Type: "weekday", Value: f.rules.Weekdays[weekday]}
		}
		return FormattedPart{Type: "weekday", Value: f.rules.WeekdaysAbbrev[weekday]}
	case 'H':
		return FormattedPart{Type: "hour", Value: pad(t.Hour(), count)}
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return FormattedPart{Type: "hour", Value: pad(hour, count)}
	case 'm':
		return FormattedPart{Type: "minute", Value: pad(t.Minute(), count)}
	case 's':
		return FormattedPart{Type: "second", Value: pad(t.Second(), count)}
	case 'a':
		idx := 0
		if t.Hour() >= 12 {
			idx = 1
		}
		return FormattedPart{Type: "dayPeriod", Value: f.rules.DayPeriods[idx]}
	case 'z':
		return FormattedPart{Type: "timeZoneName", Value: t.Format("MST")}
	}
	return FormattedPart{Type: "literal", Value: strings.Repeat(string(letter), count)}
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// applyHourCycle rewrites a time pattern's hour tokens for a forced
// cycle. h12 also appends the day-period token when the pattern lacks
// one; h23 strips it.
func applyHourCycle(pattern, cycle string) string {
	switch cycle {
	case HourCycle12:
		pattern = replaceToken(pattern, "HH", "hh")
		pattern = replaceToken(pattern, "H", "h")
		if !strings.Contains(pattern, "a") {
			pattern += " a"
		}
	case HourCycle23:
		pattern = replaceToken(pattern, "hh", "HH")
		pattern = replaceToken(pattern, "h", "H")
		pattern = strings.TrimSuffix(strings.ReplaceAll(pattern, " a", ""), "a")
	}
	return pattern
}

// replaceToken swaps exact letter runs, leaving longer runs alone.
func replaceToken(pattern, from, to string) string {
	var b strings.Builder
	i := 0
	for i < len(pattern) {
		c := pattern[i]
		if !isPatternLetter(c) {
			b.WriteByte(c)
			i++
			continue
		}
		j := i
		for j < len(pattern) && pattern[j] == c {
			j++
		}
		run := pattern[i:j]
		if run == from {
			run = to
		}
		b.WriteString(run)
		i = j
	}
	return b.String()
}
