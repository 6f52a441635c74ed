package intl

import (
	"html/template"
	"time"
)

// TemplateHelpers exposes the shape's formatting surface as template
// helpers. Helper names follow the format_* convention; "t" formats a
// message by id, taking either a values map or alternating name/value
// pairs.
func TemplateHelpers(shape *Intl) template.FuncMap {
	return template.FuncMap{
		"format_number": func(value float64) string {
			return shape.FormatNumber(value)
		},
		"format_currency": func(value float64, code string) string {
			return shape.FormatNumber(value, NumberOptions{Style: StyleCurrency, Currency: code})
		},
		"format_percent": func(value float64) string {
			return shape.FormatNumber(value, NumberOptions{Style: StylePercent})
		},
		"format_date": func(t time.Time) string {
			return shape.FormatDate(t)
		},
		"format_time": func(t time.Time) string {
			return shape.FormatTime(t)
		},
		"format_datetime": func(t time.Time) string {
			return shape.FormatDate(t, DateTimeOptions{DateStyle: StyleMedium, TimeStyle: StyleMedium})
		},
		"format_relative": func(value float64, unit string) string {
			return shape.FormatRelativeTime(value, unit)
		},
		"format_plural": func(value float64) string {
			return string(shape.FormatPlural(value))
		},
		"format_list": func(items ...string) string {
			return shape.FormatList(items)
		},
		"format_display_name": func(code, kind string) string {
			return shape.FormatDisplayName(code, DisplayNamesOptions{Type: kind})
		},
		"t": func(id string, args ...any) string {
			return shape.FormatMessage(MessageDescriptor{ID: id}, helperValues(args))
		},
	}
}

// helperValues accepts either a ready map or alternating name/value
// pairs, which is the form template call sites produce.
func helperValues(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	if len(args) == 1 {
		if m, ok := args[0].(map[string]any); ok {
			return m
		}
	}
	values := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		name, ok := args[i].(string)
		if !ok || name == "" {
			continue
		}
		values[name] = args[i+1]
	}
	return values
}
