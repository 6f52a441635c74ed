package intl

import (
	"errors"
	"reflect"
	"testing"
)

func TestProviderGate(t *testing.T) {
	msgs := map[string]string{"title": "Hello"}
	p, err := NewProvider(Config{Locale: "en", Messages: msgs})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	first := p.Intl()
	if first == nil || first.Locale != "en" {
		t.Fatalf("initial shape = %+v", first)
	}

	same := p.Update(Config{Locale: "en", Messages: msgs})
	if same != first {
		t.Fatal("equal config produced a new shape")
	}
	if p.Rebuilds() != 0 {
		t.Fatalf("Rebuilds = %d, want 0", p.Rebuilds())
	}

	changed := p.Update(Config{Locale: "es", Messages: msgs})
	if changed == first || changed.Locale != "es" {
		t.Fatalf("changed config shape = %+v", changed)
	}
	if p.Rebuilds() != 1 {
		t.Fatalf("Rebuilds = %d, want 1", p.Rebuilds())
	}

	// an equal-content map with fresh identity still rebuilds
	fresh := p.Update(Config{Locale: "es", Messages: map[string]string{"title": "Hello"}})
	if fresh == changed {
		t.Fatal("fresh map identity did not rebuild")
	}
	if p.Rebuilds() != 2 {
		t.Fatalf("Rebuilds = %d, want 2", p.Rebuilds())
	}
}

func TestProviderFormatterIdentityAcrossRebuilds(t *testing.T) {
	p, err := NewProvider(Config{Locale: "en"})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	opts := NumberOptions{Style: StyleCurrency, Currency: "USD"}
	before := p.Intl().Formatters().NumberFormat("en", opts)

	p.Update(Config{Locale: "en", TimeZone: "UTC"})
	after := p.Intl().Formatters().NumberFormat("en", opts)
	if before != after {
		t.Fatal("rebuild lost formatter identity; the cache must survive the gate")
	}
}

func TestProviderIntlFor(t *testing.T) {
	store := NewStaticStore(map[string]map[string]string{
		"en": {"title": "Hello"},
		"es": {"title": "Hola"},
	})
	p, err := NewProvider(Config{Locale: "en"}, WithStore(store))
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	if got := p.Intl().FormatMessage(MessageDescriptor{ID: "title"}); got != "Hello" {
		t.Fatalf("base shape message = %q", got)
	}

	es := p.IntlFor("es")
	if es.Locale != "es" {
		t.Fatalf("IntlFor locale = %q", es.Locale)
	}
	if got := es.FormatMessage(MessageDescriptor{ID: "title"}); got != "Hola" {
		t.Fatalf("es message = %q", got)
	}
	if p.IntlFor("es") != es {
		t.Fatal("per-locale shape not memoized")
	}
	if p.IntlFor("en") != p.Intl() {
		t.Fatal("base locale did not yield the current shape")
	}
	if p.IntlFor("") != p.Intl() {
		t.Fatal("empty locale did not yield the current shape")
	}

	// the derived shape holds the store's catalog reference
	if reflect.ValueOf(es.Messages).Pointer() != reflect.ValueOf(store.Messages("es")).Pointer() {
		t.Fatal("derived shape carries a copied catalog")
	}

	// an update invalidates the memo
	p.Update(Config{Locale: "fr"})
	if p.IntlFor("es") == es {
		t.Fatal("memo survived an update")
	}
}

func TestProviderHooksObserveGate(t *testing.T) {
	var events []string
	hook := UpdateHookFuncs{
		Before: func(ctx *UpdateHookContext) {
			events = append(events, "before")
			ctx.SetMetadata("seen", true)
		},
		After: func(ctx *UpdateHookContext) {
			if ctx.Rebuilt {
				events = append(events, "after rebuild")
			} else {
				events = append(events, "after skip")
			}
			if _, ok := ctx.MetadataValue("seen"); !ok {
				events = append(events, "metadata lost")
			}
		},
	}

	p, err := NewProvider(Config{Locale: "en"}, WithUpdateHooks(hook))
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	p.Update(Config{Locale: "en"})
	p.Update(Config{Locale: "es"})

	want := []string{"before", "after skip", "before", "after rebuild"}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
}

func TestProviderHookMutatesNext(t *testing.T) {
	hook := UpdateHookFuncs{
		Before: func(ctx *UpdateHookContext) {
			if ctx.Next.Locale == "banned" {
				ctx.Next.Locale = "en"
			}
		},
	}
	p, err := NewProvider(Config{Locale: "en"}, WithUpdateHooks(hook))
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	// the hook rewrites the locale before the gate compares
	shape := p.Update(Config{Locale: "banned"})
	if shape.Locale != "en" {
		t.Fatalf("Locale = %q, want en", shape.Locale)
	}
	if p.Rebuilds() != 0 {
		t.Fatalf("Rebuilds = %d, want 0 after the hook evened the configs", p.Rebuilds())
	}
}

func TestProviderSharedCache(t *testing.T) {
	cache := NewFormatterCache()
	p1, err := NewProvider(Config{Locale: "en"}, WithCache(cache))
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	p2, err := NewProvider(Config{Locale: "en"}, WithCache(cache))
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	if p1.Cache() != cache || p2.Cache() != cache {
		t.Fatal("Cache accessor did not return the shared cache")
	}
	opts := NumberOptions{Style: StylePercent}
	if p1.Intl().Formatters().NumberFormat("en", opts) != p2.Intl().Formatters().NumberFormat("en", opts) {
		t.Fatal("sibling providers handed out distinct instances")
	}
}

func TestProviderLoaderError(t *testing.T) {
	boom := errors.New("boom")
	loader := CatalogLoaderFunc(func() (map[string]map[string]string, error) {
		return nil, boom
	})
	if _, err := NewProvider(Config{Locale: "en"}, WithLoader(loader)); !errors.Is(err, boom) {
		t.Fatalf("NewProvider error = %v, want the loader error", err)
	}
}

func TestProviderStoreAccessor(t *testing.T) {
	store := NewStaticStore(map[string]map[string]string{"en": {"a": "b"}})
	p, err := NewProvider(Config{Locale: "en"}, WithStore(store))
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Store() != MessageStore(store) {
		t.Fatal("Store accessor did not return the configured store")
	}
}
