package kruto_test

import (
	"context"
	"testing"
	"time"

	kruto "github.com/reoring/kruto"
)

func TestDecodeJSON_TransformsBeforeDecoding(t *testing.T) {
	data := []byte(`{"id": 5, "date": {"_": "date", "value": "2024-01-02T03:04:05.000+00:00"}, "chat": {"type": "group", "id": -1, "title": "g"}, "from": null, "text": "t", "entities": []}`)
	res, err := kruto.DecodeJSON(context.Background(), messageNode, data)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := res.Value.(*textMessage)
	if !ok {
		t.Fatalf("got %T", res.Value)
	}
	if !m.Date.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Fatalf("date = %v", m.Date)
	}
	if m.From != nil {
		t.Fatalf("null from decoded as %+v", m.From)
	}
	if c, ok := m.Chat.(*groupChat); !ok || c.Title != "g" {
		t.Fatalf("chat = %#v", m.Chat)
	}
}

func TestDecodeAs_RejectsRawAndForeignValues(t *testing.T) {
	ctx := context.Background()
	_, err := kruto.DecodeAs[*textMessage](ctx, messageNode, map[string]any{"unknown": true})
	if !kruto.HasCode(err, kruto.CodeConstruction) {
		t.Fatalf("raw fallback: got %v", err)
	}
	text := kruto.Transform(map[string]any{
		"id": int64(1), "date": wireDate("2024-05-08T09:39:10.307+00:00"),
		"chat": map[string]any{"type": "private", "id": int64(1), "firstName": "a"},
		"text": "x", "entities": []any{},
	})
	_, err = kruto.DecodeAs[*newChatMembers](ctx, messageNode, text)
	if !kruto.HasCode(err, kruto.CodeInvalidType) {
		t.Fatalf("wrong variant: got %v", err)
	}
	v, err := kruto.DecodeAs[*user](ctx, userNode, nil)
	if err != nil || v != nil {
		t.Fatalf("absent value: got %v, %v", v, err)
	}
}

func TestWithStrict_Context(t *testing.T) {
	ctx := context.Background()
	if kruto.IsStrict(ctx) {
		t.Fatal("background context is strict")
	}
	if !kruto.IsStrict(kruto.WithStrict(ctx, true)) {
		t.Fatal("WithStrict(true) not visible")
	}
	if kruto.IsStrict(kruto.WithStrict(kruto.WithStrict(ctx, true), false)) {
		t.Fatal("inner WithStrict(false) ignored")
	}
}
