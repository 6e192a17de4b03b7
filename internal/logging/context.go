package logging

import "context"

type ctxArgsKey struct{}

// ContextWith returns a copy of ctx carrying key/value pairs that SlogLogger
// appends to every record logged with it. Pairs accumulate across calls.
func ContextWith(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev := ContextArgs(ctx)
	merged := make([]any, 0, len(prev)+len(args))
	merged = append(merged, prev...)
	merged = append(merged, args...)
	return context.WithValue(ctx, ctxArgsKey{}, merged)
}

// ContextArgs returns the pairs attached by ContextWith, or nil.
func ContextArgs(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	args, _ := ctx.Value(ctxArgsKey{}).([]any)
	return args
}
