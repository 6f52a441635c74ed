// Command intl-gen emits FormattingRules overrides for locales the
// built-in tables do not cover. It reads CLDR core data and extracts
// the list patterns and relative-time fields consumed by the intl
// package; feed the generated map to WithFormattingRules.
//
//	intl-gen -cldr /path/to/cldr-core -locale de -locale it -out rules_cldr_gen.go
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type rulesPayload struct {
	Locale   string
	List     listRulesData
	Relative relativeRulesData
}

type listRulesData struct {
	Conjunction listPatternData
	Disjunction listPatternData
}

type listPatternData struct {
	Pair   string
	Start  string
	Middle string
	End    string
}

func (p listPatternData) empty() bool {
	return p.Pair == "" && p.Start == "" && p.Middle == "" && p.End == ""
}

type relativeRulesData struct {
	Long  map[string]relativeUnitData
	Short map[string]relativeUnitData
}

type relativeUnitData struct {
	Future []countPattern
	Past   []countPattern
	Auto   []offsetPattern
}

func (u relativeUnitData) empty() bool {
	return len(u.Future) == 0 && len(u.Past) == 0 && len(u.Auto) == 0
}

type countPattern struct {
	Count   string
	Pattern string
}

type offsetPattern struct {
	Offset  int
	Pattern string
}

// canonicalUnits fixes the emission order and filters out CLDR fields
// the relative-time formatter does not consume (weekday fields, eras).
var canonicalUnits = []string{"year", "quarter", "month", "week", "day", "hour", "minute", "second"}

// pluralConstNames maps CLDR count attributes to the package constants
// referenced by the generated literals.
var pluralConstNames = map[string]string{
	"zero":  "PluralZero",
	"one":   "PluralOne",
	"two":   "PluralTwo",
	"few":   "PluralFew",
	"many":  "PluralMany",
	"other": "PluralOther",
}

var countOrder = []string{"zero", "one", "two", "few", "many", "other"}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "intl-gen: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "intl", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "rules_cldr_gen.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/ and supplemental/)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}

	seen := map[string]bool{}
	for _, item := range localeList.items {
		locale := strings.ReplaceAll(strings.TrimSpace(item), "_", "-")
		if locale == "" {
			return generatorConfig{}, fmt.Errorf("invalid locale value %q", item)
		}
		if seen[locale] {
			continue
		}
		seen[locale] = true
		cfg.locales = append(cfg.locales, locale)
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	var payloads []rulesPayload
	for _, locale := range cfg.locales {
		payload, err := buildPayload(data, locale)
		if err != nil {
			return fmt.Errorf("build rules for %s: %w", locale, err)
		}
		payloads = append(payloads, payload)
	}

	sort.Slice(payloads, func(i, j int) bool {
		return payloads[i].Locale < payloads[j].Locale
	})

	source, err := renderSource(cfg.pkg, payloads)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main", "supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func buildPayload(data *cldr.CLDR, locale string) (rulesPayload, error) {
	payload := rulesPayload{Locale: locale}

	ldml := findLDML(data, locale)
	if ldml == nil {
		return payload, fmt.Errorf("missing LDML data")
	}

	payload.List = extractListRules(ldml)
	payload.Relative = extractRelativeRules(ldml)

	return payload, nil
}

func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	if data == nil {
		return nil
	}
	candidate := strings.ReplaceAll(locale, "-", "_")
	for {
		if candidate == "" {
			break
		}
		if ldml := data.RawLDML(candidate); ldml != nil {
			return ldml
		}
		if idx := strings.LastIndex(candidate, "_"); idx >= 0 {
			candidate = candidate[:idx]
			continue
		}
		break
	}
	return data.RawLDML("root")
}

func extractListRules(ldml *cldr.LDML) listRulesData {
	var rules listRulesData
	if ldml == nil || ldml.ListPatterns == nil {
		return rules
	}

	for _, pattern := range ldml.ListPatterns.ListPattern {
		if pattern == nil {
			continue
		}

		patternType := ""
		if common := pattern.GetCommon(); common != nil {
			patternType = common.Type
		}

		var target *listPatternData
		switch patternType {
		case "", "standard":
			target = &rules.Conjunction
		case "or":
			target = &rules.Disjunction
		default:
			continue
		}

		for _, part := range pattern.ListPatternPart {
			if part == nil {
				continue
			}
			switch strings.ToLower(part.Type) {
			case "2":
				target.Pair = part.Data()
			case "start":
				target.Start = part.Data()
			case "middle":
				target.Middle = part.Data()
			case "end":
				target.End = part.Data()
			}
		}
	}

	return rules
}

// extractRelativeRules walks the CLDR date fields. "day" widths feed
// the Long table, "day-short" the Short table; narrow variants and
// non-calendar fields are skipped.
func extractRelativeRules(ldml *cldr.LDML) relativeRulesData {
	rules := relativeRulesData{
		Long:  map[string]relativeUnitData{},
		Short: map[string]relativeUnitData{},
	}
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Fields == nil {
		return rules
	}

	for _, field := range ldml.Dates.Fields.Field {
		if field == nil {
			continue
		}

		fieldType := ""
		if common := field.GetCommon(); common != nil {
			fieldType = common.Type
		}

		unit, width, ok := splitFieldType(fieldType)
		if !ok {
			continue
		}

		var data relativeUnitData

		for _, rel := range field.Relative {
			if rel == nil {
				continue
			}
			offset, err := strconv.Atoi(strings.TrimSpace(rel.Type))
			if err != nil {
				continue
			}
			data.Auto = append(data.Auto, offsetPattern{Offset: offset, Pattern: rel.Data()})
		}

		for _, rt := range field.RelativeTime {
			if rt == nil {
				continue
			}
			direction := ""
			if common := rt.GetCommon(); common != nil {
				direction = common.Type
			}

			var patterns []countPattern
			for _, pattern := range rt.RelativeTimePattern {
				if pattern == nil {
					continue
				}
				count := strings.ToLower(strings.TrimSpace(pattern.Count))
				if _, known := pluralConstNames[count]; !known {
					continue
				}
				patterns = append(patterns, countPattern{Count: count, Pattern: pattern.Data()})
			}

			switch direction {
			case "future":
				data.Future = append(data.Future, patterns...)
			case "past":
				data.Past = append(data.Past, patterns...)
			}
		}

		if data.empty() {
			continue
		}

		sortCounts(data.Future)
		sortCounts(data.Past)
		sort.Slice(data.Auto, func(i, j int) bool {
			return data.Auto[i].Offset < data.Auto[j].Offset
		})

		switch width {
		case "long":
			rules.Long[unit] = data
		case "short":
			rules.Short[unit] = data
		}
	}

	return rules
}

// splitFieldType maps a CLDR field type to a canonical unit and width.
// "day" is long width, "day-short" short; anything else is ignored.
func splitFieldType(fieldType string) (unit, width string, ok bool) {
	width = "long"
	if strings.HasSuffix(fieldType, "-short") {
		width = "short"
		fieldType = strings.TrimSuffix(fieldType, "-short")
	}
	for _, candidate := range canonicalUnits {
		if fieldType == candidate {
			return candidate, width, true
		}
	}
	return "", "", false
}

func sortCounts(patterns []countPattern) {
	rank := func(count string) int {
		for i, candidate := range countOrder {
			if count == candidate {
				return i
			}
		}
		return len(countOrder)
	}
	sort.SliceStable(patterns, func(i, j int) bool {
		return rank(patterns[i].Count) < rank(patterns[j].Count)
	})
}

func renderSource(pkg string, payloads []rulesPayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by intl-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("var generatedFormattingRules = map[string]FormattingRules{\n")
	for _, payload := range payloads {
		fmt.Fprintf(&buf, "\t%q: {\n", payload.Locale)
		fmt.Fprintf(&buf, "\t\tLocale: %q,\n", payload.Locale)

		writeListRules(&buf, payload.List)
		writeRelativeRules(&buf, payload.Relative)

		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// GeneratedFormattingRules returns the CLDR-derived overrides. Pass\n")
	buf.WriteString("// the result to WithFormattingRules when building a formatter cache.\n")
	buf.WriteString("func GeneratedFormattingRules() map[string]FormattingRules {\n")
	buf.WriteString("\tout := make(map[string]FormattingRules, len(generatedFormattingRules))\n")
	buf.WriteString("\tfor locale, rules := range generatedFormattingRules {\n")
	buf.WriteString("\t\tout[locale] = rules\n")
	buf.WriteString("\t}\n")
	buf.WriteString("\treturn out\n")
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func writeListRules(buf *bytes.Buffer, rules listRulesData) {
	if rules.Conjunction.empty() && rules.Disjunction.empty() {
		return
	}

	buf.WriteString("\t\tList: ListRules{\n")
	writeListPatterns(buf, "Conjunction", rules.Conjunction)
	writeListPatterns(buf, "Disjunction", rules.Disjunction)
	buf.WriteString("\t\t},\n")
}

func writeListPatterns(buf *bytes.Buffer, name string, patterns listPatternData) {
	if patterns.empty() {
		return
	}
	fmt.Fprintf(buf, "\t\t\t%s: ListPatterns{\n", name)
	fmt.Fprintf(buf, "\t\t\t\tPair: %q,\n", patterns.Pair)
	fmt.Fprintf(buf, "\t\t\t\tStart: %q,\n", patterns.Start)
	fmt.Fprintf(buf, "\t\t\t\tMiddle: %q,\n", patterns.Middle)
	fmt.Fprintf(buf, "\t\t\t\tEnd: %q,\n", patterns.End)
	buf.WriteString("\t\t\t},\n")
}

func writeRelativeRules(buf *bytes.Buffer, rules relativeRulesData) {
	if len(rules.Long) == 0 && len(rules.Short) == 0 {
		return
	}

	buf.WriteString("\t\tRelative: RelativeRules{\n")
	writeRelativeWidth(buf, "Long", rules.Long)
	writeRelativeWidth(buf, "Short", rules.Short)
	buf.WriteString("\t\t},\n")
}

func writeRelativeWidth(buf *bytes.Buffer, name string, units map[string]relativeUnitData) {
	if len(units) == 0 {
		return
	}

	fmt.Fprintf(buf, "\t\t\t%s: map[string]RelativePatterns{\n", name)
	for _, unit := range canonicalUnits {
		data, found := units[unit]
		if !found || data.empty() {
			continue
		}

		fmt.Fprintf(buf, "\t\t\t\t%q: {\n", unit)
		writeCountPatterns(buf, "Future", data.Future)
		writeCountPatterns(buf, "Past", data.Past)
		writeOffsetPatterns(buf, data.Auto)
		buf.WriteString("\t\t\t\t},\n")
	}
	buf.WriteString("\t\t\t},\n")
}

func writeCountPatterns(buf *bytes.Buffer, name string, patterns []countPattern) {
	if len(patterns) == 0 {
		return
	}

	fmt.Fprintf(buf, "\t\t\t\t\t%s: map[PluralCategory]string{", name)
	for i, pattern := range patterns {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%s: %q", pluralConstNames[pattern.Count], pattern.Pattern)
	}
	buf.WriteString("},\n")
}

func writeOffsetPatterns(buf *bytes.Buffer, patterns []offsetPattern) {
	if len(patterns) == 0 {
		return
	}

	buf.WriteString("\t\t\t\t\tAuto: map[int]string{")
	for i, pattern := range patterns {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%d: %q", pattern.Offset, pattern.Pattern)
	}
	buf.WriteString("},\n")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
