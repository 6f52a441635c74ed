package intl

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	DisplayLanguage = "language"
	DisplayRegion   = "region"
	DisplayScript   = "script"
	DisplayCurrency = "currency"

	FallbackCode = "code"
	FallbackNone = "none"
)

// DisplayNamesOptions configures display-name lookup. Type selects the
// code namespace; Fallback controls what an unknown code yields ("code"
// echoes it back, "none" yields the empty string).
type DisplayNamesOptions struct {
	Type     string
	Fallback string
}

// DisplayNames translates language, region, and script codes into the
// bound locale. Currency codes resolve to their ISO form. Instances are
// immutable and shared through the cache.
type DisplayNames struct {
	locale string
	tag    language.Tag
	opts   DisplayNamesOptions
	namer  display.Namer
}

func newDisplayNames(locale string, opts DisplayNamesOptions) *DisplayNames {
	tag := parseTag(locale)
	d := &DisplayNames{locale: locale, tag: tag, opts: opts}
	switch opts.Type {
	case DisplayRegion:
		d.namer = display.Regions(tag)
	case DisplayScript:
		d.namer = display.Scripts(tag)
	case DisplayCurrency:
		// no namer: x/text carries no currency names, codes echo back
	default:
		d.namer = display.Languages(tag)
	}
	return d
}

// Of returns the display name for code in the bound locale.
func (d *DisplayNames) Of(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return d.fallback(code)
	}

	switch d.opts.Type {
	case DisplayRegion:
		if region, err := language.ParseRegion(code); err == nil && d.namer != nil {
			if name := d.namer.Name(region); name != "" {
				return name
			}
		}
	case DisplayScript:
		if script, err := language.ParseScript(code); err == nil && d.namer != nil {
			if name := d.namer.Name(script); name != "" {
				return name
			}
		}
	case DisplayCurrency:
		if unit, err := currency.ParseISO(code); err == nil {
			return unit.String()
		}
	default:
		if tag, err := language.Parse(normalizeLocale(code)); err == nil {
			if d.namer != nil {
				if name := d.namer.Name(tag); name != "" {
					return name
				}
			}
			if info, ok := LookupLocaleInfo(code); ok {
				return info.Name
			}
		}
	}
	return d.fallback(code)
}

func (d *DisplayNames) fallback(code string) string {
	if d.opts.Fallback == FallbackNone {
		return ""
	}
	return code
}
