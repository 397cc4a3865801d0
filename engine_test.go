package kruto_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	kruto "github.com/reoring/kruto"
	"github.com/reoring/kruto/codec"
	g "github.com/reoring/kruto/dsl"
)

func sampleText() *textMessage {
	un := "ada"
	edited := time.Date(2024, 5, 8, 9, 40, 0, 0, time.UTC)
	return &textMessage{
		base: base{
			ID:     42,
			Date:   time.Date(2024, 5, 8, 9, 39, 10, 307_000_000, time.UTC),
			Chat:   &privateChat{Type: "private", ID: 7, FirstName: "Ada"},
			From:   &user{ID: 7, FirstName: "Ada", Username: &un},
			Edited: &edited,
			ReplyTo: &textMessage{
				base:     base{ID: 41, Date: time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC), Chat: &privateChat{Type: "private", ID: 7, FirstName: "Ada"}},
				Text:     "first",
				Entities: []any{},
			},
		},
		Text:     "hello",
		Entities: []any{map[string]any{"type": "bold", "offset": int64(0), "length": int64(5)}},
	}
}

func TestRoundTrip_EncodeDecodeEncode(t *testing.T) {
	ctx := context.Background()
	in := sampleText()

	first, err := kruto.EncodeJSON(messageNode, in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	res, err := kruto.DecodeJSON(ctx, messageNode, first)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Raw() || res.Fallbacks != 0 {
		t.Fatalf("unexpected fallback: %+v", res)
	}
	out, ok := res.Value.(*textMessage)
	if !ok {
		t.Fatalf("expected *textMessage, got %T", res.Value)
	}
	if out.ID != 42 || out.Text != "hello" || !out.Date.Equal(in.Date) || !out.Edited.Equal(*in.Edited) {
		t.Fatalf("fields not preserved: %+v", out)
	}
	if out.From == nil || *out.From.Username != "ada" {
		t.Fatalf("nested user lost: %+v", out.From)
	}
	if r, ok := out.ReplyTo.(*textMessage); !ok || r.Text != "first" {
		t.Fatalf("reply not decoded: %#v", out.ReplyTo)
	}
	second, err := kruto.EncodeJSON(messageNode, out)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("round trip differs:\n%s\n%s", first, second)
	}
}

func TestDecode_DiscriminatorPriority(t *testing.T) {
	ctx := context.Background()
	wire := map[string]any{
		"id":             json.Number("1"),
		"date":           wireDate("2024-05-08T09:39:10.307+00:00"),
		"chat":           map[string]any{"type": "group", "id": json.Number("-5"), "title": "t"},
		"groupCreated":   true,
		"newChatMembers": []any{map[string]any{"id": json.Number("3"), "firstName": "x"}},
	}
	res, err := kruto.Decode(ctx, messageNode, kruto.Transform(wire))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m, ok := res.Value.(*newChatMembers)
	if !ok {
		t.Fatalf("declared order must win, got %T", res.Value)
	}
	if len(m.Members) != 1 || m.Members[0].ID != 3 {
		t.Fatalf("members not decoded: %+v", m.Members)
	}
	if c, ok := m.Chat.(*groupChat); !ok || c.ID != -5 {
		t.Fatalf("chat not resolved: %#v", m.Chat)
	}
}

func TestResolve_LiteralMismatchAndNumbers(t *testing.T) {
	type tagged struct{ Code int64 }
	one := g.ObjectOf[tagged]("One").Field(
		g.Prop("Code", "code", g.Literal(1), func(x *tagged) *int64 { return &x.Code }),
	).Discriminate("code").MustBuild()
	u := g.Union("Coded", one)

	if o, err := kruto.Resolve(u, map[string]any{"code": json.Number("1")}); err != nil || o != one {
		t.Fatalf("json.Number literal should match: %v", err)
	}
	if o, err := kruto.Resolve(u, map[string]any{"code": 1.0}); err != nil || o != one {
		t.Fatalf("float literal should match: %v", err)
	}
	_, err := kruto.Resolve(u, map[string]any{"code": int64(2)})
	if !kruto.HasCode(err, kruto.CodeDiscriminatorUnknown) {
		t.Fatalf("expected discriminator_unknown, got %v", err)
	}
	if !kruto.Satisfies(one, map[string]any{"code": int64(1), "extra": true}) {
		t.Fatal("extra keys must not prevent a match")
	}
}

func TestEncode_OmitsAbsentFields(t *testing.T) {
	m := &textMessage{base: base{ID: 1, Date: time.Unix(0, 0).UTC(), Chat: &groupChat{Type: "group", ID: 2, Title: "g"}, Secret: "hidden"}, Text: "hi"}
	w, err := kruto.Encode(messageNode, m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	obj := w.(map[string]any)
	for _, k := range []string{"from", "editDate", "replyToMessage", "entities", "secret"} {
		if _, ok := obj[k]; ok {
			t.Fatalf("key %q should be omitted: %#v", k, obj)
		}
	}
	if obj["date"].(map[string]any)["value"] != "1970-01-01T00:00:00.000+00:00" {
		t.Fatalf("date not encoded: %#v", obj["date"])
	}
}

func TestDate_Idempotence(t *testing.T) {
	tm := time.Date(2024, 5, 8, 9, 39, 10, 307_000_000, time.FixedZone("", 2*3600))
	w := kruto.EncodeDate(tm)
	if w["value"] != "2024-05-08T09:39:10.307+02:00" {
		t.Fatalf("unexpected layout %q", w["value"])
	}
	back, ok, err := kruto.DecodeDate(w)
	if err != nil || !ok || !back.Equal(tm) {
		t.Fatalf("date did not survive: %v %v %v", back, ok, err)
	}

	doc := map[string]any{"d": kruto.EncodeDate(tm)}
	once := kruto.Transform(doc).(map[string]any)
	twice := kruto.Transform(once).(map[string]any)
	if !twice["d"].(time.Time).Equal(tm) {
		t.Fatalf("transform not idempotent: %#v", twice)
	}
}

func TestTransform_MalformedDatesAndNulls(t *testing.T) {
	doc := map[string]any{
		"wrongTag": map[string]any{"_": "dat", "value": "2024-05-08T09:39:10.307+00:00"},
		"badValue": map[string]any{"_": "date", "value": 5},
		"gone":     nil,
		"list": []any{
			map[string]any{"x": nil, "d": wireDate("2024-05-08T09:39:10.307+00:00")},
		},
	}
	out := kruto.Transform(doc).(map[string]any)
	if _, ok := out["wrongTag"].(map[string]any); !ok {
		t.Fatal("wrong tag must stay a map")
	}
	if _, ok := out["badValue"].(map[string]any); !ok {
		t.Fatal("non-string value must stay a map")
	}
	if _, ok := out["gone"]; ok {
		t.Fatal("null key must be removed")
	}
	item := out["list"].([]any)[0].(map[string]any)
	if _, ok := item["x"]; ok {
		t.Fatal("null inside list item must be removed")
	}
	if _, ok := item["d"].(time.Time); !ok {
		t.Fatalf("date inside list not converted: %#v", item["d"])
	}
}

func TestDecode_UnparsableDate(t *testing.T) {
	ctx := context.Background()
	bad := wireDate("yesterday")
	res, err := kruto.Decode(ctx, g.Date(), bad)
	if err != nil || res.Value == nil {
		t.Fatalf("lenient decode should keep the map: %v %v", res.Value, err)
	}
	_, err = kruto.Decode(ctx, g.Date(), bad, kruto.Strict())
	if !kruto.HasCode(err, kruto.CodeInvalidFormat) {
		t.Fatalf("expected invalid_format, got %v", err)
	}
}

func TestDecode_UnresolvableUnionFallsBack(t *testing.T) {
	ctx := context.Background()
	wire := map[string]any{"somethingNew": map[string]any{"a": 1}}

	res, err := kruto.Decode(ctx, messageNode, wire)
	if err != nil {
		t.Fatalf("lenient decode must not fail: %v", err)
	}
	if !res.Raw() || res.Fallbacks != 1 {
		t.Fatalf("expected raw fallback, got %+v", res)
	}
	if got := res.Value.(map[string]any); got["somethingNew"] == nil {
		t.Fatalf("raw value must be the original: %#v", got)
	}

	_, err = kruto.Decode(ctx, messageNode, wire, kruto.Strict())
	if !kruto.HasCode(err, kruto.CodeDiscriminatorUnknown) {
		t.Fatalf("expected discriminator_unknown, got %v", err)
	}
	_, err = kruto.Decode(kruto.WithStrict(ctx, true), messageNode, wire)
	if err == nil {
		t.Fatal("context strict flag ignored")
	}
}

func TestDecode_NestedFallbackCounts(t *testing.T) {
	wire := map[string]any{
		"id":   int64(1),
		"date": wireDate("2024-05-08T09:39:10.307+00:00"),
		"chat": map[string]any{"type": "secret", "id": int64(2)},
		"text": "x", "entities": []any{},
	}
	res, err := kruto.Decode(context.Background(), messageNode, wire)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// the chat cannot be placed, which makes the message itself unconstructible
	if !res.Raw() || res.Fallbacks != 2 {
		t.Fatalf("expected two fallbacks, got %+v", res)
	}
}

func TestDecode_ConstructionFailureFallsBack(t *testing.T) {
	wire := map[string]any{"id": "not-a-number", "firstName": "x"}
	res, err := kruto.Decode(context.Background(), userNode, wire)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Raw() {
		t.Fatalf("expected raw fallback, got %T", res.Value)
	}
	_, err = kruto.Decode(context.Background(), userNode, wire, kruto.Strict())
	if !kruto.HasCode(err, kruto.CodeInvalidType) {
		t.Fatalf("expected invalid_type, got %v", err)
	}
	iss, _ := kruto.AsIssues(err)
	if iss[0].Path != "/id" {
		t.Fatalf("unexpected path %q", iss[0].Path)
	}
}

func TestDecode_RequiredFields(t *testing.T) {
	ctx := context.Background()
	wire := map[string]any{"firstName": "x"}
	res, err := kruto.Decode(ctx, userNode, wire)
	if err != nil {
		t.Fatalf("lenient decode must not fail: %v", err)
	}
	if !res.Raw() || res.Fallbacks != 1 {
		t.Fatalf("missing id should keep the wire value, got %#v", res)
	}
	if got, ok := res.Value.(map[string]any); !ok || got["firstName"] != "x" {
		t.Fatalf("raw value must be the original: %#v", res.Value)
	}

	// optional fields may be absent
	res, err = kruto.Decode(ctx, userNode, map[string]any{"id": int64(1), "firstName": "x"})
	if err != nil || res.Raw() {
		t.Fatalf("user without username: %#v %v", res, err)
	}

	_, err = kruto.DecodeAs[*user](ctx, userNode, wire, kruto.Strict())
	if !kruto.HasCode(err, kruto.CodeRequired) {
		t.Fatalf("expected required, got %v", err)
	}
	iss, _ := kruto.AsIssues(err)
	if iss[0].Path != "/id" {
		t.Fatalf("unexpected path %q", iss[0].Path)
	}
}

func TestDecode_MissingRequiredNestedFieldFallsBack(t *testing.T) {
	wire := kruto.Transform(map[string]any{
		"id": int64(1), "date": wireDate("2024-05-08T09:39:10.307+00:00"),
		"chat": map[string]any{"type": "private", "id": int64(1), "firstName": "a"},
		"from": map[string]any{"firstName": "no id"},
		"text": "x", "entities": []any{},
	})
	res, err := kruto.Decode(context.Background(), messageNode, wire)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// the sender cannot be built, so neither can the message
	if !res.Raw() || res.Fallbacks != 2 {
		t.Fatalf("expected two fallbacks, got %#v", res)
	}
}

func TestDecode_IntOutOfRangeStaysUnchanged(t *testing.T) {
	ctx := context.Background()
	for _, v := range []any{1e19, -1e19, 9223372036854775808.0, json.Number("1e300")} {
		res, err := kruto.Decode(ctx, g.Int(), v)
		if err != nil {
			t.Fatalf("%v: %v", v, err)
		}
		if _, ok := res.Value.(int64); ok {
			t.Fatalf("%v converted to %#v", v, res.Value)
		}
	}
	res, _ := kruto.Decode(ctx, g.Int(), -9223372036854775808.0)
	if res.Value != int64(math.MinInt64) {
		t.Fatalf("min int64: %#v", res.Value)
	}
}

func TestDecode_AttachesRef(t *testing.T) {
	ref := &struct{ name string }{"client"}
	wire := kruto.Transform(map[string]any{
		"id": int64(1), "date": wireDate("2024-05-08T09:39:10.307+00:00"),
		"chat": map[string]any{"type": "private", "id": int64(1), "firstName": "a"},
		"text": "x", "entities": []any{},
		"replyToMessage": map[string]any{
			"id": int64(0), "date": wireDate("2024-05-08T09:39:10.307+00:00"),
			"chat": map[string]any{"type": "private", "id": int64(1), "firstName": "a"},
			"text": "y", "entities": []any{},
		},
	})
	m, err := kruto.DecodeAs[*textMessage](context.Background(), messageNode, wire, kruto.WithRef(ref))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.ref != ref || m.ReplyTo.msg().ref != ref {
		t.Fatal("ref must be attached at every depth")
	}
}

func TestDecode_ListsAndScalars(t *testing.T) {
	ctx := context.Background()
	res, _ := kruto.Decode(ctx, g.List(g.Int()), "nope")
	if res.Value != nil {
		t.Fatalf("non-list for list node should be absent, got %#v", res.Value)
	}
	res, _ = kruto.Decode(ctx, g.List(g.Int()), []any{json.Number("1"), 2.0, int64(3)})
	got := res.Value.([]any)
	for i, want := range []int64{1, 2, 3} {
		if got[i] != want {
			t.Fatalf("item %d: %#v", i, got[i])
		}
	}
	res, _ = kruto.Decode(ctx, g.Float(), json.Number("1.25"))
	if res.Value != 1.25 {
		t.Fatalf("float: %#v", res.Value)
	}
	res, _ = kruto.Decode(ctx, g.Optional(g.String()), nil)
	if res.Value != nil {
		t.Fatal("nil must stay absent")
	}
	if _, err := kruto.Decode(ctx, nil, 1); err == nil {
		t.Fatal("nil node must error")
	}
}

func TestDecode_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := kruto.Decode(ctx, g.Int(), 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEncode_UnionRejectsForeignValue(t *testing.T) {
	_, err := kruto.Encode(messageNode, &user{ID: 1})
	if !kruto.HasCode(err, kruto.CodeInvalidType) {
		t.Fatalf("expected invalid_type, got %v", err)
	}
	raw := map[string]any{"unknown": true}
	w, err := kruto.Encode(messageNode, raw)
	if err != nil || w.(map[string]any)["unknown"] != true {
		t.Fatalf("raw values must pass through: %v", err)
	}
}

func TestEncodeArgs(t *testing.T) {
	var missing *user
	tm := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	args, err := kruto.EncodeArgs(map[string]any{
		"replyTo":   &user{ID: 9, FirstName: "z"},
		"untilDate": tm,
		"silent":    nil,
		"nobody":    missing,
		"text":      "t",
	})
	if err != nil {
		t.Fatalf("encode args: %v", err)
	}
	if len(args) != 3 {
		t.Fatalf("nil entries must be dropped: %#v", args)
	}
	if args["replyTo"].(map[string]any)["firstName"] != "z" {
		t.Fatalf("domain object not encoded: %#v", args["replyTo"])
	}
	if args["untilDate"].(map[string]any)["value"] != "2024-01-02T03:04:05.000+00:00" {
		t.Fatalf("date not encoded: %#v", args["untilDate"])
	}
}

func TestDecodeJSON_ParseError(t *testing.T) {
	_, err := kruto.DecodeJSON(context.Background(), userNode, []byte(`{"id":`))
	if !kruto.HasCode(err, kruto.CodeParseError) {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestIsAndSafeDecode(t *testing.T) {
	ctx := context.Background()
	ok := map[string]any{"id": int64(1), "firstName": "a"}
	if !kruto.Is(ctx, userNode, ok) {
		t.Fatal("valid user rejected")
	}
	if kruto.Is(ctx, userNode, map[string]any{"id": int64(1)}) {
		t.Fatal("missing firstName accepted")
	}
	if _, good := kruto.SafeDecode[*user](ctx, userNode, "x"); good {
		t.Fatal("string decoded as user")
	}
}

func TestJSONSchema_RecursiveUnion(t *testing.T) {
	s, err := kruto.JSONSchema(messageNode)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if s.Ref != "#/$defs/Message" {
		t.Fatalf("root should reference its definition, got %q", s.Ref)
	}
	msg := s.Defs["Message"]
	if msg == nil || len(msg.AnyOf) != 3 {
		t.Fatalf("message definition: %+v", msg)
	}
	text := s.Defs["MessageText"]
	if text.Properties["replyToMessage"].Ref != "#/$defs/Message" {
		t.Fatal("recursive reference missing")
	}
	b, err := codec.Marshal(s)
	if err != nil || !strings.Contains(string(b), `"date-time"`) {
		t.Fatalf("marshal: %v %s", err, b)
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := kruto.Issues{
		{Path: "/a", Code: kruto.CodeInvalidType},
		{Path: "/b", Code: kruto.CodeRequired, Hint: "User"},
		{Path: "/c", Code: kruto.CodeInvalidFormat},
		{Path: "/d", Code: kruto.CodeParseError},
	}
	s := iss.Error()
	if !strings.Contains(s, "required at /b (User)") || !strings.Contains(s, "total 4") {
		t.Fatalf("unexpected summary %q", s)
	}
	cause := errors.New("boom")
	wrapped := kruto.Issues{{Path: "/", Code: kruto.CodeConstruction, Cause: cause}}
	if !errors.Is(wrapped, cause) {
		t.Fatal("cause must be reachable")
	}
}
