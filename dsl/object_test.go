package dsl_test

import (
	"context"
	"testing"

	kruto "github.com/reoring/kruto"
	g "github.com/reoring/kruto/dsl"
)

type common struct {
	ID   int64
	Note *string
}

type pet struct {
	common
	Kind  string
	Tags  []string
	Age   int
	Ratio float64
}

func petNode(t *testing.T) *kruto.Object {
	t.Helper()
	o, err := g.ObjectOf[pet]("Pet").
		Field(g.Embed(func(p *pet) *common { return &p.common },
			g.Prop("ID", "id", g.Int(), func(c *common) *int64 { return &c.ID }),
			g.Opt("Note", "note", g.String(), func(c *common) **string { return &c.Note }),
		)...).
		Field(
			g.Prop("Kind", "kind", g.Literal("pet"), func(p *pet) *string { return &p.Kind }),
			g.Slice("Tags", "tags", g.Optional(g.List(g.String())), func(p *pet) *[]string { return &p.Tags }),
			g.Prop("Age", "age", g.Int(), func(p *pet) *int { return &p.Age }),
			g.Prop("Ratio", "ratio", g.Float(), func(p *pet) *float64 { return &p.Ratio }),
		).
		Discriminate("kind").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return o
}

func TestObjectOf_BuildAndRead(t *testing.T) {
	o := petNode(t)
	if len(o.Fields) != 6 || o.Fields[0].Key != "id" || o.Fields[2].Key != "kind" {
		t.Fatalf("unexpected field order: %+v", o.Fields)
	}
	v, err := o.Build(kruto.Args{"ID": int64(7), "Note": "hi", "Kind": "pet", "Tags": []any{"a", "b"}, "Age": int64(3), "Ratio": int64(2)})
	if err != nil {
		t.Fatalf("build value: %v", err)
	}
	p := v.(*pet)
	if p.ID != 7 || p.Note == nil || *p.Note != "hi" || p.Age != 3 || p.Ratio != 2 || len(p.Tags) != 2 {
		t.Fatalf("unexpected value %+v", p)
	}
	args, ok := o.Read(p)
	if !ok {
		t.Fatal("read failed")
	}
	if args["Note"] != "hi" || args["ID"] != int64(7) {
		t.Fatalf("unexpected args %#v", args)
	}
	if _, ok := o.Read(&common{}); ok {
		t.Fatal("read must reject other types")
	}
}

func TestObjectOf_MismatchFailsConstruction(t *testing.T) {
	o := petNode(t)
	_, err := o.Build(kruto.Args{"ID": "seven"})
	if !kruto.HasCode(err, kruto.CodeInvalidType) {
		t.Fatalf("expected invalid_type, got %v", err)
	}
}

func TestObjectOf_RejectsBadDeclarations(t *testing.T) {
	_, err := g.ObjectOf[common]("Dup").Field(
		g.Prop("ID", "id", g.Int(), func(c *common) *int64 { return &c.ID }),
		g.Prop("ID2", "id", g.Int(), func(c *common) *int64 { return &c.ID }),
	).Build()
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
	_, err = g.ObjectOf[common]("Disc").Field(
		g.Prop("ID", "id", g.Int(), func(c *common) *int64 { return &c.ID }),
	).Discriminate("type").Build()
	if !kruto.HasCode(err, kruto.CodeDiscriminatorUnknown) {
		t.Fatalf("expected discriminator_unknown, got %v", err)
	}
}

func TestObjectOf_RegistersForEncodeValue(t *testing.T) {
	o := petNode(t)
	note := "x"
	w, err := kruto.EncodeValue(&pet{common: common{ID: 1, Note: &note}, Kind: "pet", Age: 2})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	m := w.(map[string]any)
	if m["note"] != "x" || m["kind"] != "pet" {
		t.Fatalf("unexpected %#v", m)
	}
	if _, ok := m["tags"]; ok {
		t.Fatalf("nil slice must be omitted: %#v", m)
	}
	if got, ok := kruto.Lookup(&pet{}); !ok || got != o {
		t.Fatal("lookup did not return the last built node")
	}
}

func TestUnion_PanicsWithoutDiscriminators(t *testing.T) {
	plain := g.ObjectOf[common]("Plain").Field(
		g.Prop("ID", "id", g.Int(), func(c *common) *int64 { return &c.ID }),
	).MustBuild()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	g.Union("Bad", plain)
}

func TestUnion_PrimitiveOnlyPassesThrough(t *testing.T) {
	u := g.Union("ID", g.Int(), g.String(), g.Literal("me"))
	res, err := kruto.Decode(context.Background(), u, "me")
	if err != nil || res.Value != "me" {
		t.Fatalf("got %v %v", res.Value, err)
	}
}

func TestForward_AllowsRecursion(t *testing.T) {
	type node struct {
		Name string
		Next any
	}
	u := g.Forward("Node")
	o := g.ObjectOf[node]("NodeItem").Field(
		g.Prop("Name", "name", g.String(), func(n *node) *string { return &n.Name }),
		g.Prop("Next", "next", g.Optional(u), func(n *node) *any { return &n.Next }),
	).Discriminate("name").MustBuild()
	g.Define(u, o)

	res, err := kruto.Decode(context.Background(), u, map[string]any{"name": "a", "next": map[string]any{"name": "b"}})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	n := res.Value.(*node)
	if n.Name != "a" || n.Next.(*node).Name != "b" {
		t.Fatalf("unexpected %+v", n)
	}
}
