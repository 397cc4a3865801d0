package dsl

import (
	"fmt"
	"reflect"
	"strings"

	kruto "github.com/reoring/kruto"
	"github.com/reoring/kruto/i18n"
)

// Field binds one wire key of an object to a location inside T.
// Create fields with Prop, Opt or Slice.
type Field[T any] struct {
	name string
	key  string
	node kruto.Node
	set  func(*T, any) error
	get  func(*T) any
}

// Name returns the field's domain name.
func (f Field[T]) Name() string { return f.name }

// Key returns the field's wire key.
func (f Field[T]) Key() string { return f.key }

// Prop binds a field whose Go type F holds the decoded value directly: a
// scalar, a pointer to another object, or an interface implemented by union
// variants. Absent values leave the zero F.
func Prop[T, F any](name, key string, n kruto.Node, at func(*T) *F) Field[T] {
	return Field[T]{
		name: name,
		key:  key,
		node: n,
		set: func(t *T, v any) error {
			f, ok := assign[F](v)
			if !ok {
				return mismatch[F](key, v)
			}
			*at(t) = f
			return nil
		},
		get: func(t *T) any { return *at(t) },
	}
}

// Opt binds an optional scalar stored as *E; nil means absent. n is wrapped
// in Optional when it is not already.
func Opt[T, E any](name, key string, n kruto.Node, at func(*T) **E) Field[T] {
	if n.Kind() != kruto.KindOptional {
		n = Optional(n)
	}
	return Field[T]{
		name: name,
		key:  key,
		node: n,
		set: func(t *T, v any) error {
			e, ok := assign[E](v)
			if !ok {
				return mismatch[E](key, v)
			}
			*at(t) = &e
			return nil
		},
		get: func(t *T) any {
			p := *at(t)
			if p == nil {
				return nil
			}
			return *p
		},
	}
}

// Slice binds a list field stored as []E. n is the full node of the field,
// for example List(x) or Optional(List(x)).
func Slice[T, E any](name, key string, n kruto.Node, at func(*T) *[]E) Field[T] {
	return Field[T]{
		name: name,
		key:  key,
		node: n,
		set: func(t *T, v any) error {
			items, ok := v.([]any)
			if !ok {
				return mismatch[[]E](key, v)
			}
			out := make([]E, 0, len(items))
			for _, it := range items {
				e, ok := assign[E](it)
				if !ok {
					return mismatch[E](key, it)
				}
				out = append(out, e)
			}
			*at(t) = out
			return nil
		},
		get: func(t *T) any {
			s := *at(t)
			if s == nil {
				return nil
			}
			out := make([]any, len(s))
			for i, e := range s {
				out[i] = e
			}
			return out
		},
	}
}

// Embed lifts the fields of an embedded struct B into T.
func Embed[T, B any](at func(*T) *B, fields ...Field[B]) []Field[T] {
	out := make([]Field[T], 0, len(fields))
	for _, f := range fields {
		out = append(out, Field[T]{
			name: f.name,
			key:  f.key,
			node: f.node,
			set:  func(t *T, v any) error { return f.set(at(t), v) },
			get:  func(t *T) any { return f.get(at(t)) },
		})
	}
	return out
}

// ObjectBuilder collects the fields and discriminators of an object bound to T.
type ObjectBuilder[T any] struct {
	name   string
	fields []Field[T]
	discs  []string
}

// ObjectOf starts an object node whose domain values are *T.
func ObjectOf[T any](name string) *ObjectBuilder[T] {
	return &ObjectBuilder[T]{name: name}
}

// Field appends fields in declaration order.
func (b *ObjectBuilder[T]) Field(fs ...Field[T]) *ObjectBuilder[T] {
	b.fields = append(b.fields, fs...)
	return b
}

// Discriminate declares the wire keys that identify this object inside a union.
func (b *ObjectBuilder[T]) Discriminate(keys ...string) *ObjectBuilder[T] {
	b.discs = append(b.discs, keys...)
	return b
}

// Build validates the declaration, registers *T for EncodeValue and returns
// the object node.
func (b *ObjectBuilder[T]) Build() (*kruto.Object, error) {
	seen := map[string]bool{}
	var iss kruto.Issues
	for _, f := range b.fields {
		if seen[f.key] {
			iss = kruto.AppendIssues(iss, kruto.Issue{Path: "/" + b.name + "/" + f.key, Code: kruto.CodeInvalidType, Message: "duplicate wire key", Hint: f.name})
		}
		seen[f.key] = true
	}
	for _, d := range b.discs {
		if !seen[d] {
			iss = kruto.AppendIssues(iss, kruto.Issue{Path: "/" + b.name + "/" + d, Code: kruto.CodeDiscriminatorUnknown, Message: "discriminator is not a field", Hint: b.name})
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}

	fields := append([]Field[T](nil), b.fields...)
	o := &kruto.Object{
		Name:           b.name,
		Discriminators: append([]string(nil), b.discs...),
	}
	for _, f := range fields {
		o.Fields = append(o.Fields, kruto.Field{Name: f.name, Key: f.key, Node: f.node})
	}
	o.Build = func(args kruto.Args) (any, error) {
		t := new(T)
		for _, f := range fields {
			v := args[f.name]
			if v == nil {
				continue
			}
			if err := f.set(t, v); err != nil {
				return nil, err
			}
		}
		return t, nil
	}
	o.Read = func(v any) (kruto.Args, bool) {
		t, ok := v.(*T)
		if !ok || t == nil {
			return nil, false
		}
		args := make(kruto.Args, len(fields))
		for _, f := range fields {
			args[f.name] = f.get(t)
		}
		return args, true
	}
	kruto.Register(reflect.TypeFor[*T](), o)
	return o, nil
}

// MustBuild is Build that panics on an invalid declaration. Intended for
// package-level node variables.
func (b *ObjectBuilder[T]) MustBuild() *kruto.Object {
	o, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("dsl: object %s: %v", b.name, err))
	}
	return o
}

// assign converts a decoded value into F. Integers decode as int64 and are
// narrowed or widened for int, int32 and float64 targets.
func assign[F any](v any) (F, bool) {
	if f, ok := v.(F); ok {
		return f, true
	}
	var zero F
	n, isInt := v.(int64)
	switch p := any(&zero).(type) {
	case *int:
		if isInt {
			*p = int(n)
			return zero, true
		}
	case *int32:
		if isInt {
			*p = int32(n)
			return zero, true
		}
	case *float64:
		if isInt {
			*p = float64(n)
			return zero, true
		}
	}
	return zero, false
}

func mismatch[F any](key string, got any) error {
	want := reflect.TypeFor[F]().String()
	return kruto.Issues{{
		Path:    "/" + strings.ReplaceAll(key, "/", "~1"),
		Code:    kruto.CodeInvalidType,
		Message: i18n.T(kruto.CodeInvalidType, nil),
		Hint:    fmt.Sprintf("want %s, got %T", want, got),
	}}
}
