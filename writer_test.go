package sx

import (
	"testing"

	"github.com/sx-format/sx/encode"
	"github.com/sx-format/sx/ir"
)

func TestWriter(t *testing.T) {
	ctx := ir.NewContext()
	w := NewWriter(ctx).
		PutInt("x", 1).
		PutReal("y", 2.5).
		PutStr("name", "lava").
		PutBool("deep", true).
		PutInts("tiles", 1, 2, 3)
	o := w.Object()
	want := `((x 1) (y 2.5) (name "lava") (deep #t) (tiles 1 2 3))`
	if got := encode.MustString(o); got != want {
		t.Fatalf("writer produced %s, want %s", got, want)
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	ctx := ir.NewContext()
	o := NewWriter(ctx).
		PutSymbol("kind", "water").
		PutReals("speed", 0.5, -1.5).
		PutList("geom", ctx.List(ctx.Int(0), ctx.Int(4))).
		Object()
	r := NewReader(o)
	if v, ok := r.Symbol("kind"); !ok || v != "water" {
		t.Fatalf("kind = %q, %v", v, ok)
	}
	vs, ok := r.Reals("speed")
	if !ok || len(vs) != 2 || vs[0] != 0.5 || vs[1] != -1.5 {
		t.Fatalf("speed = %v, %v", vs, ok)
	}
	geom, ok := r.List("geom")
	if !ok || geom.Len() != 2 || geom.Nth(1).Int() != 4 {
		t.Fatalf("geom = %v, %v", geom, ok)
	}
}

func TestWriterEmpty(t *testing.T) {
	ctx := ir.NewContext()
	if o := NewWriter(ctx).Object(); o != nil {
		t.Fatalf("empty writer produced %s", encode.MustString(o))
	}
}
