// Command intl-lint compares translation catalogs against a reference
// locale. It flags message ids missing from a locale, ids the reference
// does not know, and placeholder drift between translations of the same
// message. With -strict, translations byte-identical to the reference
// are flagged as untranslated.
//
//	intl-lint -dir locales -reference en
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-intl"
)

type lintConfig struct {
	Dir       string
	Reference string
	Formats   []string
	Strict    bool
	Verbose   bool
}

// Validate checks the flag values before catalogs are read.
func (c lintConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.Reference, validation.Required, validation.By(func(value any) error {
			locale, _ := value.(string)
			if strings.ContainsAny(locale, "/\\ ") {
				return validation.NewError("intl.lint.reference_invalid",
					fmt.Sprintf("reference %q is not a locale identifier", locale))
			}
			return nil
		})),
	)
}

type formatFlag struct {
	items []string
}

func (f *formatFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *formatFlag) Set(value string) error {
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

	logger := newLogger(cfg.Verbose)

	findings, err := run(cfg, logger)
	if err != nil {
		reportError(err)
	}

	if findings > 0 {
		logger.Error("catalog lint failed", "findings", findings)
		os.Exit(1)
	}
	logger.Info("catalogs are consistent", "reference", cfg.Reference)
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "intl-lint: %v\n", err)
	os.Exit(1)
}

func parseFlags() (lintConfig, error) {
	var cfg lintConfig
	var formats formatFlag

	flag.StringVar(&cfg.Dir, "dir", "", "catalog directory to lint")
	flag.StringVar(&cfg.Reference, "reference", "en", "reference locale the other catalogs are compared against")
	flag.Var(&formats, "format", "catalog format to read (json, yaml, toml). Repeat flag to add more.")
	flag.BoolVar(&cfg.Strict, "strict", false, "flag translations identical to the reference")
	flag.BoolVar(&cfg.Verbose, "v", false, "log every compared locale")

	flag.Parse()

	cfg.Formats = formats.items
	// Match the loader's locale normalization so the reference lines up
	// with catalog keys.
	cfg.Reference = strings.ReplaceAll(strings.TrimSpace(cfg.Reference), "_", "-")

	if err := cfg.Validate(); err != nil {
		return lintConfig{}, err
	}
	return cfg, nil
}

func newLogger(verbose bool) glog.Logger {
	level := glog.Info
	if verbose {
		level = glog.Debug
	}
	root := glog.NewLogger(
		glog.WithLevel(level),
		glog.WithLoggerTypeConsole(),
	)
	return root.GetLogger("intl-lint")
}

func run(cfg lintConfig, logger glog.Logger) (int, error) {
	var opts []intl.LoaderOption
	if len(cfg.Formats) > 0 {
		opts = append(opts, intl.WithLoaderFormats(cfg.Formats...))
	}

	loader, err := intl.NewFileLoader(cfg.Dir, opts...)
	if err != nil {
		return 0, err
	}

	catalogs, err := loader.LoadDetailed()
	if err != nil {
		return 0, err
	}

	reference, ok := catalogs[cfg.Reference]
	if !ok {
		return 0, fmt.Errorf("reference locale %q has no catalog in %s", cfg.Reference, cfg.Dir)
	}
	if len(reference.Records) == 0 {
		return 0, errors.New("reference catalog is empty")
	}

	locales := make([]string, 0, len(catalogs))
	for locale := range catalogs {
		if locale == cfg.Reference {
			continue
		}
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	if len(locales) == 0 {
		logger.Warn("nothing to compare, only the reference catalog was found", "dir", cfg.Dir)
		return 0, nil
	}

	findings := 0
	for _, locale := range locales {
		catalog := catalogs[locale]
		logger.Debug("comparing catalog", "locale", locale, "source", catalog.Source, "messages", len(catalog.Records))
		findings += lintCatalog(cfg, logger, reference, catalog)
	}

	return findings, nil
}

// lintCatalog compares one locale against the reference and reports
// each finding through the logger.
func lintCatalog(cfg lintConfig, logger glog.Logger, reference, catalog *intl.Catalog) int {
	findings := 0

	for _, id := range sortedIDs(reference.Records) {
		want := reference.Records[id]

		got, ok := catalog.Records[id]
		if !ok {
			logger.Warn("missing message", "locale", catalog.Locale, "id", id)
			findings++
			continue
		}

		if !equalStrings(want.Placeholders, got.Placeholders) {
			logger.Warn("placeholder drift",
				"locale", catalog.Locale,
				"id", id,
				"want", strings.Join(want.Placeholders, ","),
				"got", strings.Join(got.Placeholders, ","))
			findings++
		}

		if cfg.Strict && got.Fingerprint == want.Fingerprint {
			logger.Warn("untranslated message", "locale", catalog.Locale, "id", id)
			findings++
		}
	}

	for _, id := range sortedIDs(catalog.Records) {
		if _, ok := reference.Records[id]; ok {
			continue
		}
		logger.Warn("unknown message id", "locale", catalog.Locale, "id", id)
		findings++
	}

	return findings
}

func sortedIDs(records map[string]intl.MessageRecord) []string {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
