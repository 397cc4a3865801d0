package kruto

import "fmt"

// Kind enumerates the semantic shapes a Node can describe.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
	KindDate
	KindAny
	KindOptional
	KindList
	KindLiteral
	KindObject
	KindUnion
)

var kindNames = [...]string{
	KindNull:     "null",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindBool:     "bool",
	KindDate:     "date",
	KindAny:      "any",
	KindOptional: "optional",
	KindList:     "list",
	KindLiteral:  "literal",
	KindObject:   "object",
	KindUnion:    "union",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsScalar reports whether values of this kind are passed through the engine
// without structural recursion.
func (k Kind) IsScalar() bool {
	switch k {
	case KindInt, KindFloat, KindString, KindBool, KindDate, KindAny, KindLiteral, KindNull:
		return true
	}
	return false
}

// Node is one declared type of the schema model. Nodes are built once at
// package init (see package dsl) and never mutated afterwards.
type Node interface {
	Kind() Kind
}

// Primitive covers the leaf kinds: null, int, float, string, bool, date and any.
type Primitive struct{ K Kind }

func (p Primitive) Kind() Kind { return p.K }

// Optional marks a value that may be absent on the wire.
type Optional struct{ Elem Node }

func (*Optional) Kind() Kind { return KindOptional }

// List is an ordered sequence of Elem.
type List struct{ Elem Node }

func (*List) Kind() Kind { return KindList }

// Literal is a fixed constant, used for tag fields.
type Literal struct{ Value any }

func (*Literal) Kind() Kind { return KindLiteral }

// Args carries field values keyed by Field.Name, never by wire key.
type Args map[string]any

// Field binds a named field to its wire key and declared node.
type Field struct {
	Name string
	Key  string
	Node Node
}

// Required reports whether the field must be present on the wire. Optional
// and Any fields may be absent.
func (f Field) Required() bool {
	k := f.Node.Kind()
	return k != KindOptional && k != KindAny
}

// Object describes a composite domain type.
//
// Build constructs the domain value from decoded field values and fails when a
// required field is missing or mistyped. Read returns the current field values
// of a domain value and reports false when the value is not of this type.
type Object struct {
	Name           string
	Fields         []Field
	Discriminators []string

	Build func(args Args) (any, error)
	Read  func(v any) (Args, bool)
}

func (*Object) Kind() Kind { return KindObject }

// Field returns the field declared under the given wire key.
func (o *Object) Field(key string) (Field, bool) {
	for _, f := range o.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Owns reports whether v is a domain value described by o.
func (o *Object) Owns(v any) bool {
	if o.Read == nil || v == nil {
		return false
	}
	_, ok := o.Read(v)
	return ok
}

// Union is an ordered choice between variants. Order is significant: the
// first variant whose discriminators match wins.
type Union struct {
	Name     string
	Variants []Node
}

func (*Union) Kind() Kind { return KindUnion }

// Passthrough reports whether every variant is a scalar (primitive or literal),
// in which case values are never resolved against object variants.
func (u *Union) Passthrough() bool {
	for _, v := range u.Variants {
		if !v.Kind().IsScalar() {
			return false
		}
	}
	return true
}

// Objects returns the object variants in declared order.
func (u *Union) Objects() []*Object {
	out := make([]*Object, 0, len(u.Variants))
	for _, v := range u.Variants {
		if o, ok := v.(*Object); ok {
			out = append(out, o)
		}
	}
	return out
}

// Validate checks the structural invariants of a union: every object variant
// declares at least one discriminator, and each discriminator is one of the
// variant's own field keys.
func (u *Union) Validate() error {
	if u.Passthrough() {
		return nil
	}
	var iss Issues
	for i, v := range u.Variants {
		o, ok := v.(*Object)
		if !ok {
			continue
		}
		path := fmt.Sprintf("/%s/%d", u.Name, i)
		if len(o.Discriminators) == 0 {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeDiscriminatorMissing, Message: o.Name + " declares no discriminators"})
			continue
		}
		for _, d := range o.Discriminators {
			if _, ok := o.Field(d); !ok {
				iss = AppendIssues(iss, Issue{Path: path + "/" + d, Code: CodeDiscriminatorUnknown, Message: o.Name + " has no field with wire key " + d})
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// Unwrap strips Optional wrappers.
func Unwrap(n Node) Node {
	for {
		o, ok := n.(*Optional)
		if !ok {
			return n
		}
		n = o.Elem
	}
}

// Describe renders a short human readable name for a node.
func Describe(n Node) string {
	switch t := n.(type) {
	case nil:
		return "<nil>"
	case *Object:
		return t.Name
	case *Union:
		return t.Name
	case *Optional:
		return "optional<" + Describe(t.Elem) + ">"
	case *List:
		return "list<" + Describe(t.Elem) + ">"
	case *Literal:
		return fmt.Sprintf("literal<%v>", t.Value)
	default:
		return n.Kind().String()
	}
}

// RefHolder is implemented by domain values that keep a weak back-reference
// to the client that decoded them. The reference is only used for
// convenience calls made from the value.
type RefHolder interface {
	SetRef(ref any)
}
