package types_test

import (
	"context"
	"testing"

	kruto "github.com/reoring/kruto"
	"github.com/reoring/kruto/codec"
	"github.com/reoring/kruto/types"
)

func BenchmarkDecodeUpdate(b *testing.B) {
	data := []byte(textUpdate)
	ctx := context.Background()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := kruto.DecodeJSON(ctx, types.UpdateNode, data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeUpdate(b *testing.B) {
	res, err := kruto.DecodeJSON(context.Background(), types.UpdateNode, []byte(textUpdate))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		w, err := kruto.Encode(types.UpdateNode, res.Value)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := codec.Marshal(w); err != nil {
			b.Fatal(err)
		}
	}
}
