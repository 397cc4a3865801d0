package codec_test

import (
	"strings"
	"testing"

	"github.com/reoring/kruto/codec"
)

func TestUnmarshal_KeepsNumbersExact(t *testing.T) {
	v, err := codec.Unmarshal([]byte(`{"id": 9007199254740993, "f": 1.5}`))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	m := v.(map[string]any)
	n, ok := m["id"].(codec.Number)
	if !ok {
		t.Fatalf("expected Number, got %T", m["id"])
	}
	if n.String() != "9007199254740993" {
		t.Fatalf("precision lost: %s", n)
	}
	if f, _ := m["f"].(codec.Number).Float64(); f != 1.5 {
		t.Fatalf("float: %v", f)
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	if _, err := codec.Unmarshal([]byte(`{"a":`)); err == nil {
		t.Fatal("expected error")
	}
	if codec.Valid([]byte(`[1,`)) {
		t.Fatal("expected invalid")
	}
}

func TestMarshal_NoHTMLEscape(t *testing.T) {
	b, err := codec.Marshal([]any{"<b>hi</b> & bye", map[string]any{"k": 1}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "<b>hi</b> & bye") {
		t.Fatalf("html escaped: %s", s)
	}
	if strings.HasSuffix(s, "\n") {
		t.Fatalf("trailing newline: %q", s)
	}
}

func TestDecode_Reader(t *testing.T) {
	v, err := codec.Decode(strings.NewReader(`[true, null, "x"]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	l := v.([]any)
	if len(l) != 3 || l[0] != true || l[1] != nil || l[2] != "x" {
		t.Fatalf("unexpected %#v", l)
	}
}
