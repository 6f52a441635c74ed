package intl

// UpdateHook observes (and may adjust) provider updates. BeforeUpdate
// runs with the incoming config before the gate decides; mutations to
// Next are re-normalized and take part in the decision. AfterUpdate runs
// once the decision is made, with Rebuilt and the resulting shape set.
type UpdateHook interface {
	BeforeUpdate(ctx *UpdateHookContext)
	AfterUpdate(ctx *UpdateHookContext)
}

// UpdateHookContext carries one gate decision through the hook chain.
type UpdateHookContext struct {
	Previous Config
	Next     Config
	Rebuilt  bool
	Shape    *Intl
	Metadata map[string]any
}

func (ctx *UpdateHookContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

// SetMetadata records a value for hooks later in the chain.
func (ctx *UpdateHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

// MetadataValue reads a value recorded by an earlier hook.
func (ctx *UpdateHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// UpdateHookFuncs adapts bare functions to UpdateHook.
type UpdateHookFuncs struct {
	Before func(ctx *UpdateHookContext)
	After  func(ctx *UpdateHookContext)
}

func (h UpdateHookFuncs) BeforeUpdate(ctx *UpdateHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h UpdateHookFuncs) AfterUpdate(ctx *UpdateHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}
