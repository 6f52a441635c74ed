package intl

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
	"gopkg.in/yaml.v3"
)

const (
	loaderOptionsInvalidCode = "LOADER_OPTIONS_INVALID"
	catalogReadFailedCode    = "CATALOG_READ_FAILED"
	catalogParseFailedCode   = "CATALOG_PARSE_FAILED"
	catalogShapeInvalidCode  = "CATALOG_SHAPE_INVALID"
)

// MessageRecord is one loaded message plus the metadata the lint tooling
// consumes. Placeholders holds every {name} occurrence, sorted, so
// catalogs can be compared for substitution drift.
type MessageRecord struct {
	ID           string
	Pattern      string
	Fingerprint  string
	Placeholders []string
}

// Catalog is the loaded content of one locale file.
type Catalog struct {
	Locale  string
	Source  string
	Records map[string]MessageRecord
}

// Messages flattens the catalog to the id to pattern map stores consume.
func (c *Catalog) Messages() map[string]string {
	if c == nil || len(c.Records) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.Records))
	for id, record := range c.Records {
		out[id] = record.Pattern
	}
	return out
}

// LoaderOptions configure a FileLoader. Formats limits the recognized
// file extensions; empty means json, yaml, and toml.
type LoaderOptions struct {
	Path    string
	Formats []string
}

// Validate checks the options before a loader is built.
func (o LoaderOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Path, validation.Required),
		validation.Field(&o.Formats, validation.By(func(value any) error {
			formats, _ := value.([]string)
			for _, format := range formats {
				switch strings.ToLower(format) {
				case "json", "yaml", "yml", "toml":
				default:
					return validation.NewError("intl.loader.format_unsupported",
						fmt.Sprintf("unsupported catalog format %q", format))
				}
			}
			return nil
		})),
	)
}

// LoaderOption mutates a FileLoader during construction.
type LoaderOption func(*FileLoader) error

// WithLoaderFS reads catalogs from fsys instead of the host filesystem.
// The loader path is then interpreted inside fsys, which is how embedded
// catalogs are served.
func WithLoaderFS(fsys fs.FS) LoaderOption {
	return func(l *FileLoader) error {
		l.fsys = fsys
		return nil
	}
}

// WithLoaderFormats limits which catalog formats are read.
func WithLoaderFormats(formats ...string) LoaderOption {
	return func(l *FileLoader) error {
		l.opts.Formats = append(l.opts.Formats, formats...)
		return nil
	}
}

// FileLoader reads <locale>.<ext> catalog files from one directory.
// Nested tables flatten to dotted message ids.
type FileLoader struct {
	fsys fs.FS
	root string
	opts LoaderOptions
}

var _ CatalogLoader = &FileLoader{}

// NewFileLoader builds a loader over dir.
func NewFileLoader(dir string, opts ...LoaderOption) (*FileLoader, error) {
	l := &FileLoader{opts: LoaderOptions{Path: dir}}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	if err := l.opts.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid loader options").
			WithTextCode(loaderOptionsInvalidCode)
	}

	if l.fsys == nil {
		l.fsys = os.DirFS(l.opts.Path)
		l.root = "."
	} else {
		l.root = l.opts.Path
	}
	return l, nil
}

// LoadCatalogs implements CatalogLoader for store seeding.
func (l *FileLoader) LoadCatalogs() (map[string]map[string]string, error) {
	catalogs, err := l.LoadDetailed()
	if err != nil {
		return nil, err
	}
	out := make(map[string]map[string]string, len(catalogs))
	for locale, catalog := range catalogs {
		out[locale] = catalog.Messages()
	}
	return out, nil
}

// LoadDetailed loads every recognized catalog file, keeping per-message
// fingerprints and placeholder sets.
func (l *FileLoader) LoadDetailed() (map[string]*Catalog, error) {
	entries, err := fs.ReadDir(l.fsys, l.root)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation,
			fmt.Sprintf("catalog directory %q is not readable", l.opts.Path)).
			WithTextCode(catalogReadFailedCode)
	}

	allowed := l.allowedExtensions()
	catalogs := make(map[string]*Catalog)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if _, ok := allowed[ext]; !ok {
			continue
		}
		locale := normalizeLocale(strings.TrimSuffix(name, path.Ext(name)))
		if locale == "" {
			continue
		}

		full := name
		if l.root != "." {
			full = path.Join(l.root, name)
		}
		data, err := fs.ReadFile(l.fsys, full)
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryValidation,
				fmt.Sprintf("catalog %q is not readable", name)).
				WithTextCode(catalogReadFailedCode)
		}

		raw, err := decodeCatalog(ext, data)
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryValidation,
				fmt.Sprintf("catalog %q failed to parse", name)).
				WithTextCode(catalogParseFailedCode)
		}

		flat := make(map[string]string)
		if err := flattenCatalog("", raw, flat); err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryValidation,
				fmt.Sprintf("catalog %q has an invalid shape", name)).
				WithTextCode(catalogShapeInvalidCode)
		}

		catalog, ok := catalogs[locale]
		if !ok {
			catalog = &Catalog{
				Locale:  locale,
				Source:  name,
				Records: make(map[string]MessageRecord, len(flat)),
			}
			catalogs[locale] = catalog
		}
		for id, pattern := range flat {
			catalog.Records[id] = MessageRecord{
				ID:           id,
				Pattern:      pattern,
				Fingerprint:  fingerprint(pattern),
				Placeholders: extractPlaceholders(pattern),
			}
		}
	}

	return catalogs, nil
}

func (l *FileLoader) allowedExtensions() map[string]struct{} {
	formats := l.opts.Formats
	if len(formats) == 0 {
		formats = []string{"json", "yaml", "toml"}
	}
	allowed := make(map[string]struct{}, len(formats)+1)
	for _, format := range formats {
		switch strings.ToLower(format) {
		case "json":
			allowed[".json"] = struct{}{}
		case "yaml", "yml":
			allowed[".yaml"] = struct{}{}
			allowed[".yml"] = struct{}{}
		case "toml":
			allowed[".toml"] = struct{}{}
		}
	}
	return allowed
}

func decodeCatalog(ext string, data []byte) (map[string]any, error) {
	var raw map[string]any
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
	return raw, nil
}

// flattenCatalog rewrites nested tables as dotted ids, so
// {"cart": {"title": ...}} is addressed as "cart.title".
func flattenCatalog(prefix string, value any, out map[string]string) error {
	switch v := value.(type) {
	case string:
		if prefix == "" {
			return fmt.Errorf("top level value must be a table")
		}
		out[prefix] = v
	case map[string]any:
		for key, child := range v {
			if key == "" {
				return fmt.Errorf("empty key under %q", prefix)
			}
			id := key
			if prefix != "" {
				id = prefix + "." + key
			}
			if err := flattenCatalog(id, child, out); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("message %q must be a string, got %T", prefix, value)
	}
	return nil
}

// extractPlaceholders returns every {name} occurrence in a pattern,
// sorted. Duplicates are kept: a pattern using one value twice differs
// from a pattern using it once.
func extractPlaceholders(pattern string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(pattern, -1)
	if len(matches) == 0 {
		return nil
	}

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		if len(match) < 2 || match[1] == "" {
			continue
		}
		names = append(names, match[1])
	}
	if len(names) == 0 {
		return nil
	}

	sort.Strings(names)
	return names
}

func fingerprint(input string) string {
	sum := sha1.Sum([]byte(input))
	return hex.EncodeToString(sum[:])
}
