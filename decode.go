package kruto

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/reoring/kruto/i18n"
)

// Status tells whether a decode produced a typed value or degraded to the raw
// wire value.
type Status int

const (
	StatusDecoded Status = iota
	StatusRawFallback
)

func (s Status) String() string {
	if s == StatusRawFallback {
		return "raw_fallback"
	}
	return "decoded"
}

// Result is the outcome of Decode. Fallbacks counts every place, at any depth,
// where a value degraded to its raw wire form.
type Result struct {
	Value     any
	Status    Status
	Fallbacks int
}

// Raw reports whether the top-level value is the untransformed wire value.
func (r Result) Raw() bool { return r.Status == StatusRawFallback }

// DecodeOption configures a single Decode call.
type DecodeOption func(*decoder)

// WithRef attaches ref to every constructed value implementing RefHolder.
func WithRef(ref any) DecodeOption {
	return func(d *decoder) { d.ref = ref }
}

// Strict turns unresolvable unions and failed object construction into errors
// instead of raw fallbacks.
func Strict() DecodeOption {
	return func(d *decoder) { d.strict = true }
}

type decoder struct {
	ref       any
	strict    bool
	fallbacks int
}

// Decode coerces the wire value v into the domain value described by n.
//
// By default decoding never fails on data: a union whose value matches no
// variant, or an object that cannot be constructed because a required field
// is absent or mistyped, yields the original wire value and is reported
// through Result. Only Strict decoding returns Issues for these cases.
func Decode(ctx context.Context, n Node, v any, opts ...DecodeOption) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if n == nil {
		return Result{}, fmt.Errorf("kruto: decode with nil node")
	}
	d := &decoder{strict: IsStrict(ctx)}
	for _, opt := range opts {
		opt(d)
	}
	out, raw, err := d.decode(n, v, "/")
	if err != nil {
		return Result{}, err
	}
	res := Result{Value: out, Fallbacks: d.fallbacks}
	if raw {
		res.Status = StatusRawFallback
	}
	return res, nil
}

// DecodeAs decodes v and asserts the result to T. A raw fallback at the top
// level or a value of another type is reported as an error; an absent value
// yields the zero T.
func DecodeAs[T any](ctx context.Context, n Node, v any, opts ...DecodeOption) (T, error) {
	var zero T
	res, err := Decode(ctx, n, v, opts...)
	if err != nil {
		return zero, err
	}
	if res.Value == nil {
		return zero, nil
	}
	if res.Raw() {
		return zero, Issues{{Path: "/", Code: CodeConstruction, Message: i18n.T(CodeConstruction, nil), Hint: Describe(n)}}
	}
	t, ok := res.Value.(T)
	if !ok {
		return zero, Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: fmt.Sprintf("%T", res.Value)}}
	}
	return t, nil
}

// decode returns the decoded value and whether it is a raw fallback.
func (d *decoder) decode(n Node, v any, path string) (any, bool, error) {
	if v == nil || n.Kind() == KindNull {
		return nil, false, nil
	}
	switch t := n.(type) {
	case Primitive:
		return d.primitive(t.K, v, path)
	case *Optional:
		return d.decode(t.Elem, v, path)
	case *Literal:
		return v, false, nil
	case *List:
		items, ok := v.([]any)
		if !ok {
			return nil, false, nil
		}
		out := make([]any, len(items))
		for i, it := range items {
			dv, _, err := d.decode(t.Elem, it, join(path, strconv.Itoa(i)))
			if err != nil {
				return nil, false, err
			}
			out[i] = dv
		}
		return out, false, nil
	case *Union:
		return d.union(t, v, path)
	case *Object:
		return d.object(t, v, path)
	default:
		return v, false, nil
	}
}

func (d *decoder) primitive(k Kind, v any, path string) (any, bool, error) {
	switch k {
	case KindInt:
		if n, ok := toInt64(v); ok {
			return n, false, nil
		}
	case KindFloat:
		if f, ok := toFloat(v); ok {
			return f, false, nil
		}
	case KindDate:
		if _, ok := v.(time.Time); ok {
			return v, false, nil
		}
		tm, ok, err := DecodeDate(v)
		if err != nil {
			if d.strict {
				return nil, false, rebase(path, err)
			}
			return v, false, nil
		}
		if ok {
			return tm, false, nil
		}
	}
	return v, false, nil
}

func (d *decoder) union(u *Union, v any, path string) (any, bool, error) {
	if u.Passthrough() {
		return v, false, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return d.fallback(v, Issues{{Path: path, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object for " + u.Name}})
	}
	o, err := Resolve(u, m)
	if err != nil {
		return d.fallback(v, rebase(path, err))
	}
	return d.object(o, m, path)
}

func (d *decoder) object(o *Object, v any, path string) (any, bool, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return d.fallback(v, Issues{{Path: path, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object for " + o.Name}})
	}
	args := make(Args, len(o.Fields))
	for _, f := range o.Fields {
		if strings.HasPrefix(f.Name, "_") {
			continue
		}
		raw, present := m[f.Key]
		if !present || raw == nil {
			if f.Required() {
				return d.fallback(v, Issues{{Path: join(path, f.Key), Code: CodeRequired, Message: i18n.T(CodeRequired, map[string]string{"field": f.Key}), Hint: o.Name}})
			}
			args[f.Name] = nil
			continue
		}
		dv, _, err := d.decode(f.Node, raw, join(path, f.Key))
		if err != nil {
			return nil, false, err
		}
		args[f.Name] = dv
	}
	built, err := o.Build(args)
	if err != nil {
		return d.fallback(v, rebase(path, err))
	}
	if d.ref != nil {
		if rh, ok := built.(RefHolder); ok {
			rh.SetRef(d.ref)
		}
	}
	return built, false, nil
}

func (d *decoder) fallback(v any, iss Issues) (any, bool, error) {
	if d.strict {
		return nil, false, iss
	}
	d.fallbacks++
	return v, true, nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		return floatToInt64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return floatToInt64(f)
		}
	}
	return 0, false
}

// floatToInt64 converts integral values inside the int64 range. 2^63 itself
// is excluded because it is the first float64 past math.MaxInt64.
func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
