package api

import "context"

// Caller is the verified identity of a request. A nil *Caller in context
// means the request is anonymous; a request with an unverifiable token never
// reaches a handler at all (the middleware rejects it), so handlers only ever
// see "anonymous" or "verified".
type Caller struct {
	Email string
}

type ctxKey string

const ctxKeyCaller ctxKey = "caller"

func WithCaller(ctx context.Context, c *Caller) context.Context {
	return context.WithValue(ctx, ctxKeyCaller, c)
}

func CallerFromContext(ctx context.Context) *Caller {
	v := ctx.Value(ctxKeyCaller)
	if v == nil {
		return nil
	}
	c, _ := v.(*Caller)
	return c
}
