package kruto

import (
	"context"
	"fmt"

	"github.com/reoring/kruto/codec"
)

// ---- Convenience wrappers ----

// DecodeJSON parses data, prepares it with Transform and decodes it against n.
func DecodeJSON(ctx context.Context, n Node, data []byte, opts ...DecodeOption) (Result, error) {
	v, err := codec.Unmarshal(data)
	if err != nil {
		return Result{}, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return Decode(ctx, n, Transform(v), opts...)
}

// EncodeJSON encodes v against n and renders the wire bytes.
func EncodeJSON(n Node, v any) ([]byte, error) {
	w, err := Encode(n, v)
	if err != nil {
		return nil, err
	}
	b, err := codec.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("kruto: marshal %s: %w", Describe(n), err)
	}
	return b, nil
}

// SafeDecode decodes v into T, returning (zero, false) on any error or raw
// fallback.
func SafeDecode[T any](ctx context.Context, n Node, v any) (T, bool) {
	val, err := DecodeAs[T](ctx, n, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is reports whether v decodes strictly against n.
func Is(ctx context.Context, n Node, v any) bool {
	res, err := Decode(ctx, n, v, Strict())
	return err == nil && !res.Raw()
}

// ---- Decode-time context options ----

type contextKey int

const (
	_ctxKeyStrict contextKey = iota
)

// WithStrict returns a child context that makes every Decode under it behave
// as if Strict were passed.
func WithStrict(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyStrict, enabled)
}

// IsStrict reports whether the context requests strict decoding.
func IsStrict(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyStrict)
	b, _ := v.(bool)
	return b
}
