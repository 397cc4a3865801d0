package kruto

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/reoring/kruto/i18n"
)

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]*Object{}
)

// Register associates the Go type t with its object node so that EncodeValue
// can find the schema of a bare domain value. Package dsl calls it for every
// object it builds.
func Register(t reflect.Type, o *Object) {
	registryMu.Lock()
	registry[t] = o
	registryMu.Unlock()
}

// Lookup returns the object node registered for the dynamic type of v.
func Lookup(v any) (*Object, bool) {
	if v == nil {
		return nil, false
	}
	registryMu.RLock()
	o, ok := registry[reflect.TypeOf(v)]
	registryMu.RUnlock()
	return o, ok
}

// Encode renders v as a wire value according to n.
//
// Absent values (nil, nil pointers, nil slices and maps) are omitted from
// objects; fields whose name begins with "_" are never written. A map given
// where an object or union is expected is treated as a raw value left over
// from a lenient decode and is returned unchanged.
func Encode(n Node, v any) (any, error) {
	return encode(n, v, "/")
}

// EncodeValue encodes v using the object registered for its type. Values of
// unregistered types are walked loosely: times become date maps, maps and
// lists are recursed into, everything else is returned as-is.
func EncodeValue(v any) (any, error) {
	return encodeLoose(v, "/")
}

// EncodeArgs encodes the optional-arguments map of a remote call, dropping
// absent entries.
func EncodeArgs(args map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(args))
	for k, v := range args {
		if isNil(v) {
			continue
		}
		ev, err := encodeLoose(v, join("/", k))
		if err != nil {
			return nil, err
		}
		if ev == nil {
			continue
		}
		out[k] = ev
	}
	return out, nil
}

func encode(n Node, v any, path string) (any, error) {
	if isNil(v) {
		return nil, nil
	}
	switch t := n.(type) {
	case Primitive:
		switch t.K {
		case KindNull:
			return nil, nil
		case KindDate:
			if tm, ok := asTime(v); ok {
				return EncodeDate(tm), nil
			}
			return v, nil
		case KindAny:
			return encodeLoose(v, path)
		}
		return v, nil
	case *Literal:
		return v, nil
	case *Optional:
		return encode(t.Elem, v, path)
	case *List:
		items, ok := asList(v)
		if !ok {
			return nil, Issues{{Path: path, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: fmt.Sprintf("expected list, got %T", v)}}
		}
		out := make([]any, 0, len(items))
		for i, it := range items {
			ev, err := encode(t.Elem, it, join(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
		return out, nil
	case *Union:
		if t.Passthrough() {
			return encodeLoose(v, path)
		}
		if m, ok := v.(map[string]any); ok {
			return m, nil
		}
		for _, o := range t.Objects() {
			if o.Owns(v) {
				return encodeObject(o, v, path)
			}
		}
		return nil, Issues{{Path: path, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: fmt.Sprintf("%T is not a variant of %s", v, t.Name)}}
	case *Object:
		if m, ok := v.(map[string]any); ok {
			return m, nil
		}
		return encodeObject(t, v, path)
	default:
		return v, nil
	}
}

func encodeObject(o *Object, v any, path string) (any, error) {
	if o.Read == nil {
		return nil, fmt.Errorf("kruto: object %s has no reader", o.Name)
	}
	args, ok := o.Read(v)
	if !ok {
		return nil, Issues{{Path: path, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: fmt.Sprintf("%T is not %s", v, o.Name)}}
	}
	out := make(map[string]any, len(o.Fields))
	for _, f := range o.Fields {
		if strings.HasPrefix(f.Name, "_") {
			continue
		}
		fv := args[f.Name]
		if isNil(fv) {
			continue
		}
		ev, err := encode(f.Node, fv, join(path, f.Key))
		if err != nil {
			return nil, err
		}
		if ev == nil {
			continue
		}
		out[f.Key] = ev
	}
	return out, nil
}

func encodeLoose(v any, path string) (any, error) {
	if isNil(v) {
		return nil, nil
	}
	if tm, ok := asTime(v); ok {
		return EncodeDate(tm), nil
	}
	if o, ok := Lookup(v); ok {
		return encodeObject(o, v, path)
	}
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, sub := range t {
			ev, err := encodeLoose(sub, join(path, k))
			if err != nil {
				return nil, err
			}
			if ev != nil {
				out[k] = ev
			}
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, sub := range t {
			ev, err := encodeLoose(sub, join(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	}
	if items, ok := asList(v); ok {
		if _, isBytes := v.([]byte); !isBytes {
			return encodeLoose(items, path)
		}
	}
	return v, nil
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	}
	return time.Time{}, false
}

// asList views any slice as []any.
func asList(v any) ([]any, bool) {
	if l, ok := v.([]any); ok {
		return l, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// isNil reports whether v is absent: untyped nil or a nil pointer, slice, map,
// interface, func or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
