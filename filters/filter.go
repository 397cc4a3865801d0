package filters

import (
	"reflect"
	"strconv"
	"strings"
)

// Filter is a pure predicate over values of T. A nil Filter matches
// everything.
type Filter[T any] func(T) bool

// Match evaluates f against v.
func (f Filter[T]) Match(v T) bool {
	if f == nil {
		return true
	}
	return f(v)
}

// Not negates f.
func (f Filter[T]) Not() Filter[T] {
	return func(v T) bool { return !f.Match(v) }
}

// And combines the receiver with others using logical AND, stopping at the
// first filter that fails.
func (f Filter[T]) And(others ...Filter[T]) Filter[T] {
	return All(append([]Filter[T]{f}, others...)...)
}

// Or combines the receiver with others using logical OR, stopping at the
// first filter that matches.
func (f Filter[T]) Or(others ...Filter[T]) Filter[T] {
	return Any(append([]Filter[T]{f}, others...)...)
}

// All matches when every filter matches. All() matches everything.
func All[T any](fs ...Filter[T]) Filter[T] {
	return func(v T) bool {
		for _, f := range fs {
			if !f.Match(v) {
				return false
			}
		}
		return true
	}
}

// Any matches when at least one filter matches. Any() matches nothing.
func Any[T any](fs ...Filter[T]) Filter[T] {
	return func(v T) bool {
		for _, f := range fs {
			if f.Match(v) {
				return true
			}
		}
		return false
	}
}

// Is matches values whose dynamic type is V.
func Is[T, V any]() Filter[T] {
	return func(v T) bool {
		_, ok := any(v).(V)
		return ok
	}
}

// Op is a comparison used by Where.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// Where compares the value at path against want. The path names Go fields
// separated by "/" ("/Chat/Type", "From/IsBot"); promoted fields of embedded
// structs are found by name, pointers and interfaces are followed and
// integer segments index slices. A path that cannot be followed never
// matches. Ordering operators compare integers and floats only.
func Where[T any](path string, op Op, want any) Filter[T] {
	segs := splitPath(path)
	return func(v T) bool {
		cur, ok := valueAt(reflect.ValueOf(v), segs)
		if !ok {
			return false
		}
		return compare(cur, op, want)
	}
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func valueAt(cur reflect.Value, segs []string) (any, bool) {
	for _, seg := range segs {
		cur = deref(cur)
		if !cur.IsValid() {
			return nil, false
		}
		switch cur.Kind() {
		case reflect.Struct:
			f := cur.FieldByName(seg)
			if !f.IsValid() {
				return nil, false
			}
			cur = f
		case reflect.Map:
			mv := cur.MapIndex(reflect.ValueOf(seg))
			if !mv.IsValid() {
				return nil, false
			}
			cur = mv
		case reflect.Slice, reflect.Array:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= cur.Len() {
				return nil, false
			}
			cur = cur.Index(idx)
		default:
			return nil, false
		}
	}
	cur = deref(cur)
	if !cur.IsValid() || !cur.CanInterface() {
		return nil, false
	}
	return cur.Interface(), true
}

// deref follows pointers and interfaces; a nil one yields the zero Value.
func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func compare(cur any, op Op, want any) bool {
	switch op {
	case Eq:
		return equal(cur, want)
	case Ne:
		return !equal(cur, want)
	case Lt, Le, Gt, Ge:
		a, ok1 := number(reflect.ValueOf(cur))
		b, ok2 := number(reflect.ValueOf(want))
		if !ok1 || !ok2 {
			return false
		}
		switch op {
		case Lt:
			return a < b
		case Le:
			return a <= b
		case Gt:
			return a > b
		default:
			return a >= b
		}
	}
	return false
}

// equal compares numbers by value so that an int64 field equals an untyped
// constant.
func equal(cur, want any) bool {
	a, ok1 := number(reflect.ValueOf(cur))
	b, ok2 := number(reflect.ValueOf(want))
	if ok1 && ok2 {
		return a == b
	}
	return reflect.DeepEqual(cur, want)
}

func number(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}
