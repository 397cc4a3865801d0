package kruto

import (
	"fmt"

	js "github.com/reoring/kruto/jsonschema"
)

// JSONSchema exports n as a JSON Schema document. Every named object and
// union is emitted once under $defs and referenced from its uses, so recursive
// types (a message replying to a message) terminate.
func JSONSchema(n Node) (*js.Schema, error) {
	ex := &exporter{defs: map[string]*js.Schema{}}
	root, err := ex.schema(n)
	if err != nil {
		return nil, err
	}
	if len(ex.defs) > 0 {
		root.Defs = ex.defs
	}
	return root, nil
}

type exporter struct {
	defs map[string]*js.Schema
}

func (ex *exporter) schema(n Node) (*js.Schema, error) {
	switch t := n.(type) {
	case Primitive:
		return primitiveSchema(t.K), nil
	case *Literal:
		return &js.Schema{Const: t.Value}, nil
	case *Optional:
		return ex.schema(t.Elem)
	case *List:
		items, err := ex.schema(t.Elem)
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "array", Items: items}, nil
	case *Object:
		return ex.named(t.Name, func() (*js.Schema, error) { return ex.object(t) })
	case *Union:
		return ex.named(t.Name, func() (*js.Schema, error) { return ex.union(t) })
	case nil:
		return nil, fmt.Errorf("kruto: json schema of nil node")
	default:
		return &js.Schema{}, nil
	}
}

// named emits the definition on first use and returns a reference. The
// placeholder stored before build breaks cycles.
func (ex *exporter) named(name string, build func() (*js.Schema, error)) (*js.Schema, error) {
	ref := &js.Schema{Ref: "#/$defs/" + name}
	if _, seen := ex.defs[name]; seen {
		return ref, nil
	}
	ex.defs[name] = &js.Schema{}
	s, err := build()
	if err != nil {
		return nil, err
	}
	s.Title = name
	ex.defs[name] = s
	return ref, nil
}

func (ex *exporter) object(o *Object) (*js.Schema, error) {
	out := &js.Schema{Type: "object", Properties: make(map[string]*js.Schema, len(o.Fields))}
	for _, f := range o.Fields {
		fs, err := ex.schema(f.Node)
		if err != nil {
			return nil, err
		}
		out.Properties[f.Key] = fs
		if f.Required() {
			out.Required = append(out.Required, f.Key)
		}
	}
	return out, nil
}

func (ex *exporter) union(u *Union) (*js.Schema, error) {
	out := &js.Schema{AnyOf: make([]*js.Schema, 0, len(u.Variants))}
	for _, v := range u.Variants {
		vs, err := ex.schema(v)
		if err != nil {
			return nil, err
		}
		out.AnyOf = append(out.AnyOf, vs)
	}
	return out, nil
}

func primitiveSchema(k Kind) *js.Schema {
	switch k {
	case KindNull:
		return &js.Schema{Type: "null"}
	case KindInt:
		return &js.Schema{Type: "integer"}
	case KindFloat:
		return &js.Schema{Type: "number"}
	case KindString:
		return &js.Schema{Type: "string"}
	case KindBool:
		return &js.Schema{Type: "boolean"}
	case KindDate:
		return &js.Schema{
			Type: "object",
			Properties: map[string]*js.Schema{
				tagKey:    {Const: dateTag},
				dateValue: {Type: "string", Format: "date-time"},
			},
			Required: []string{tagKey, dateValue},
		}
	}
	return &js.Schema{}
}
