package i18n

import "context"

// proxyContextKey is an unexported key type to avoid context key collisions.
type proxyContextKey struct{}

// WithProxy returns a new context carrying p.
// If ctx is nil, context.Background() is used. If p is nil, the original
// context is returned unchanged.
func WithProxy(ctx context.Context, p *Proxy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if p == nil {
		return ctx
	}
	return context.WithValue(ctx, proxyContextKey{}, p)
}

// FromContext extracts a proxy previously stored with WithProxy.
// The second return value indicates whether a proxy was present.
func FromContext(ctx context.Context) (*Proxy, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(proxyContextKey{}).(*Proxy)
	return p, ok
}
