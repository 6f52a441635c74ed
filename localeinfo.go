package intl

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

//go:embed localedata/locales.json
var localeCatalogJSON []byte

// LocaleInfo is the embedded catalog metadata for one locale.
type LocaleInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	NativeName  string `json:"native_name"`
	Currency    string `json:"currency"`
	Measurement string `json:"measurement"`
}

var (
	localeCatalogOnce sync.Once
	localeCatalogIdx  map[string]LocaleInfo
	localeCatalogErr  error
)

func localeCatalog() (map[string]LocaleInfo, error) {
	localeCatalogOnce.Do(func() {
		var entries []LocaleInfo
		if err := json.Unmarshal(localeCatalogJSON, &entries); err != nil {
			localeCatalogErr = fmt.Errorf("intl: parse locale catalog: %w", err)
			return
		}
		idx := make(map[string]LocaleInfo, len(entries))
		for _, entry := range entries {
			code := normalizeLocale(entry.Code)
			if code == "" {
				continue
			}
			entry.Code = code
			idx[code] = entry
		}
		localeCatalogIdx = idx
	})
	return localeCatalogIdx, localeCatalogErr
}

// LookupLocaleInfo returns catalog metadata for a locale, walking the
// parent chain ("pt-BR" falls back to "pt").
func LookupLocaleInfo(locale string) (LocaleInfo, bool) {
	idx, err := localeCatalog()
	if err != nil {
		return LocaleInfo{}, false
	}
	for _, candidate := range candidateLocales(locale) {
		if info, ok := idx[candidate]; ok {
			return info, true
		}
	}
	return LocaleInfo{}, false
}

// KnownLocales lists the catalog locale codes, sorted.
func KnownLocales() []string {
	idx, err := localeCatalog()
	if err != nil {
		return nil
	}
	codes := make([]string, 0, len(idx))
	for code := range idx {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// defaultCurrency resolves the catalog currency for a locale. USD when
// the catalog has no entry.
func defaultCurrency(locale string) string {
	if info, ok := LookupLocaleInfo(locale); ok && info.Currency != "" {
		return info.Currency
	}
	return "USD"
}
