package intl

import "context"

type contextKey struct{}

// NewContext returns a context carrying shape.
func NewContext(ctx context.Context, shape *Intl) context.Context {
	return context.WithValue(ctx, contextKey{}, shape)
}

// FromContext returns the shape installed by NewContext or the provider
// middleware. Render paths are entitled to assume a shape is present, so
// a missing one is a wiring bug and panics rather than formatting with a
// silent default.
func FromContext(ctx context.Context) *Intl {
	shape, ok := LookupContext(ctx)
	if !ok {
		panic("intl: no formatting shape in context; wrap the handler with Provider.Middleware or seed the context with NewContext")
	}
	return shape
}

// LookupContext is the comma-ok form of FromContext, for callers outside
// the render path.
func LookupContext(ctx context.Context) (*Intl, bool) {
	if ctx == nil {
		return nil, false
	}
	shape, ok := ctx.Value(contextKey{}).(*Intl)
	if !ok || shape == nil {
		return nil, false
	}
	return shape, true
}
