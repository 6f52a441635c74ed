package intl

import (
	"sort"
)

// MessageStore exposes read only access to per-locale message catalogs.
// Messages must return a stable map reference for a given locale: the
// change-detection gate compares catalogs by identity, so a fresh map on
// every call would force a rebuild each time.
type MessageStore interface {
	// Messages returns the catalog for locale, nil when unknown.
	Messages(locale string) map[string]string
	// Locales returns the sorted list of locales known to the store.
	Locales() []string
}

// CatalogLoader retrieves the catalogs used to seed a store.
type CatalogLoader interface {
	LoadCatalogs() (map[string]map[string]string, error)
}

// CatalogLoaderFunc adapters allow bare functions to implement
// CatalogLoader.
type CatalogLoaderFunc func() (map[string]map[string]string, error)

// LoadCatalogs implements CatalogLoader for CatalogLoaderFunc.
func (fn CatalogLoaderFunc) LoadCatalogs() (map[string]map[string]string, error) {
	return fn()
}

// StaticStore is an in memory store, read only after construction.
type StaticStore struct {
	catalogs map[string]map[string]string
	locales  []string
}

var _ MessageStore = &StaticStore{}

// NewStaticStore builds an immutable snapshot from the given catalogs.
// Locale keys are normalized and message maps copied, so later mutation
// by the caller cannot reach the store.
func NewStaticStore(catalogs map[string]map[string]string) *StaticStore {
	store := &StaticStore{
		catalogs: make(map[string]map[string]string, len(catalogs)),
	}

	for locale, messages := range catalogs {
		locale = normalizeLocale(locale)
		if locale == "" {
			continue
		}
		catalog, ok := store.catalogs[locale]
		if !ok {
			catalog = make(map[string]string, len(messages))
			store.catalogs[locale] = catalog
			store.locales = append(store.locales, locale)
		}
		for id, pattern := range messages {
			catalog[id] = pattern
		}
	}

	// make locales deterministic
	sort.Strings(store.locales)

	return store
}

// NewStaticStoreFromLoader hydrates a StaticStore using the provided
// loader.
func NewStaticStoreFromLoader(loader CatalogLoader) (*StaticStore, error) {
	if loader == nil {
		return NewStaticStore(nil), nil
	}

	catalogs, err := loader.LoadCatalogs()
	if err != nil {
		return nil, err
	}

	return NewStaticStore(catalogs), nil
}

// Messages returns the catalog for locale, walking the parent chain when
// the exact locale is absent. The same locale always yields the same map
// reference; callers must treat it as read only.
func (s *StaticStore) Messages(locale string) map[string]string {
	if s == nil {
		return nil
	}

	for _, candidate := range candidateLocales(locale) {
		if catalog, ok := s.catalogs[candidate]; ok {
			return catalog
		}
	}
	return nil
}

// Locales returns a sorted copy of all locale codes.
func (s *StaticStore) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}
