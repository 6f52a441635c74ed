package intl

import (
	"sync"

	"golang.org/x/text/language"
)

// ProviderOption mutates a Provider during construction.
type ProviderOption func(*Provider) error

// Provider owns the formatting pipeline state: the formatter cache, the
// previous normalized config, and the current shape. Update is the
// change-detection gate; everything the provider carries outside the
// Config record (logger, store, engine, hooks) never influences it.
type Provider struct {
	mu       sync.RWMutex
	prev     Config
	shape    *Intl
	perLoc   map[string]*Intl
	rebuilds int

	cache     *FormatterCache
	logger    Logger
	store     MessageStore
	loader    CatalogLoader
	engine    MessageFormatter
	hooks     []UpdateHook
	supported []string

	matcher     language.Matcher
	localeNames []string
}

// WithLogger sets the logger used for provider lifecycle messages.
func WithLogger(log Logger) ProviderOption {
	return func(p *Provider) error {
		if log != nil {
			p.logger = log
		}
		return nil
	}
}

// WithStore supplies the message store consulted by IntlFor and the
// middleware.
func WithStore(store MessageStore) ProviderOption {
	return func(p *Provider) error {
		p.store = store
		return nil
	}
}

// WithLoader hydrates a static store from loader when no store is set.
func WithLoader(loader CatalogLoader) ProviderOption {
	return func(p *Provider) error {
		p.loader = loader
		return nil
	}
}

// WithSupportedLocales fixes the locale set offered to content
// negotiation. Without it the store's locales are used.
func WithSupportedLocales(locales ...string) ProviderOption {
	return func(p *Provider) error {
		p.supported = append(p.supported, locales...)
		return nil
	}
}

// WithMessageFormatter replaces the default message engine.
func WithMessageFormatter(engine MessageFormatter) ProviderOption {
	return func(p *Provider) error {
		if engine != nil {
			p.engine = engine
		}
		return nil
	}
}

// WithUpdateHooks registers gate observers.
func WithUpdateHooks(hooks ...UpdateHook) ProviderOption {
	return func(p *Provider) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			p.hooks = append(p.hooks, hook)
		}
		return nil
	}
}

// WithCache shares a formatter cache across providers, so sibling
// providers hand out identical formatter instances for key-equal
// options.
func WithCache(cache *FormatterCache) ProviderOption {
	return func(p *Provider) error {
		if cache != nil {
			p.cache = cache
		}
		return nil
	}
}

// NewProvider builds a provider around cfg and constructs the initial
// shape. When cfg carries no catalog and a store is configured, the
// store's catalog for the config locale is filled in, keeping the map
// reference stable for the gate.
func NewProvider(cfg Config, opts ...ProviderOption) (*Provider, error) {
	p := &Provider{
		perLoc: make(map[string]*Intl),
		logger: NoopLogger{},
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	if p.cache == nil {
		p.cache = NewFormatterCache()
	}

	if p.store == nil && p.loader != nil {
		store, err := NewStaticStoreFromLoader(p.loader)
		if err != nil {
			return nil, err
		}
		p.store = store
	}

	base := normalizeConfig(cfg)
	if base.Messages == nil && p.store != nil {
		locale := base.Locale
		if locale == "" {
			locale = base.DefaultLocale
		}
		base.Messages = p.store.Messages(locale)
	}

	p.prev = base
	p.shape = buildIntl(base, p.cache, p.engine)
	p.buildMatcher()

	p.logger.Debug("intl provider ready", "locale", p.shape.Locale)

	return p, nil
}

// Update is the change-detection gate. The config is normalized and
// shallow-compared with the previous one; when equal, the existing shape
// is returned untouched. When different, a new shape is built over the
// shared cache, the memo and the negotiation matcher are replaced, and
// per-locale shapes are invalidated.
func (p *Provider) Update(cfg Config) *Intl {
	next := normalizeConfig(cfg)

	p.mu.Lock()
	defer p.mu.Unlock()

	ctx := &UpdateHookContext{Previous: p.prev, Next: next}
	for _, hook := range p.hooks {
		hook.BeforeUpdate(ctx)
	}
	next = normalizeConfig(ctx.Next)

	if p.shape != nil && configsEqual(p.prev, next) {
		ctx.Rebuilt = false
		ctx.Shape = p.shape
		for _, hook := range p.hooks {
			hook.AfterUpdate(ctx)
		}
		return p.shape
	}

	shape := buildIntl(next, p.cache, p.engine)
	p.prev = next
	p.shape = shape
	p.perLoc = make(map[string]*Intl)
	p.rebuilds++
	p.buildMatcher()

	ctx.Rebuilt = true
	ctx.Shape = shape
	for _, hook := range p.hooks {
		hook.AfterUpdate(ctx)
	}

	p.logger.Debug("formatting shape rebuilt", "locale", shape.Locale, "rebuilds", p.rebuilds)

	return shape
}

// Intl returns the current shape.
func (p *Provider) Intl() *Intl {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.shape
}

// IntlFor returns a shape for locale, derived from the base config with
// the store's catalog for that locale. Shapes are memoized per locale
// until the next Update; the base locale yields the current shape
// itself.
func (p *Provider) IntlFor(locale string) *Intl {
	locale = normalizeLocale(locale)
	if locale == "" {
		return p.Intl()
	}

	p.mu.RLock()
	if shape, ok := p.perLoc[locale]; ok {
		p.mu.RUnlock()
		return shape
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	if shape, ok := p.perLoc[locale]; ok {
		return shape
	}
	if p.shape != nil && locale == p.shape.Locale {
		return p.shape
	}

	derived := p.prev
	derived.Locale = locale
	if p.store != nil {
		derived.Messages = p.store.Messages(locale)
	} else {
		derived.Messages = nil
	}

	shape := buildIntl(derived, p.cache, p.engine)
	p.perLoc[locale] = shape
	return shape
}

// Cache exposes the provider's formatter cache, for sharing with
// directly built shapes.
func (p *Provider) Cache() *FormatterCache { return p.cache }

// Store exposes the configured message store, nil when none.
func (p *Provider) Store() MessageStore { return p.store }

// Rebuilds reports how many times the gate decided to rebuild.
func (p *Provider) Rebuilds() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rebuilds
}

// buildMatcher prepares content negotiation over the supported locale
// set. The base locale leads, making it the matcher's fallback. Runs at
// construction and again on every rebuild, under the write lock once the
// provider is shared.
func (p *Provider) buildMatcher() {
	locales := p.supported
	if len(locales) == 0 && p.store != nil {
		locales = p.store.Locales()
	}

	names := make([]string, 0, len(locales)+1)
	tags := make([]language.Tag, 0, len(locales)+1)
	seen := make(map[string]struct{}, len(locales)+1)

	add := func(locale string) {
		locale = normalizeLocale(locale)
		if locale == "" {
			return
		}
		if _, ok := seen[locale]; ok {
			return
		}
		tag := parseTag(locale)
		if tag == language.Und {
			return
		}
		seen[locale] = struct{}{}
		names = append(names, locale)
		tags = append(tags, tag)
	}

	add(p.shape.Locale)
	for _, locale := range locales {
		add(locale)
	}
	if len(tags) == 0 {
		names = []string{defaultLocale}
		tags = []language.Tag{language.English}
	}

	p.localeNames = names
	p.matcher = language.NewMatcher(tags)
}
