package sx

import (
	"errors"
	"testing"

	"github.com/sx-format/sx/ir"
	"github.com/sx-format/sx/parse"
)

func compile(t *testing.T, ctx *ir.Context, text string) (*Pattern, error) {
	t.Helper()
	skel, err := parse.String(ctx, text)
	if err != nil {
		t.Fatalf("%q: %v", text, err)
	}
	return Compile(ctx, skel)
}

func TestCompileCaptureOrder(t *testing.T) {
	ctx := ir.NewContext()
	p, err := compile(t, ctx, `(#?(symbol) (nested #?(integer)) #?(or (real)))`)
	if err != nil {
		t.Fatal(err)
	}
	if p.NumCaptures() != 3 {
		t.Fatalf("captures %d", p.NumCaptures())
	}
	doc, err := parse.String(ctx, `(name (nested 7) 1.5)`)
	if err != nil {
		t.Fatal(err)
	}
	caps, ok := p.Match(doc)
	if !ok {
		t.Fatal("no match")
	}
	if caps[0].Symbol() != "name" {
		t.Fatalf("capture 0 %v", caps[0])
	}
	if caps[1].Int() != 7 {
		t.Fatalf("capture 1 %v", caps[1])
	}
	if caps[2].Real() != 1.5 {
		t.Fatalf("capture 2 %v", caps[2])
	}
}

func TestCompileErrs(t *testing.T) {
	for _, ct := range []struct {
		in string
		e  error
	}{
		{in: `#?(frobnicate)`, e: ErrPattern},
		{in: `#?(42)`, e: ErrPatternForm},
		{in: `#?("any")`, e: ErrPatternForm},
		{in: `#?(integer extra)`, e: ErrPatternForm},
		{in: `#?(or)`, e: ErrPatternForm},
		{in: `#?(or . x)`, e: ErrPatternForm},
		{in: `(a #?(nope))`, e: ErrPattern},
		{in: `#?(or #?(frobnicate))`, e: ErrPattern},
	} {
		ctx := ir.NewContext()
		_, err := compile(t, ctx, ct.in)
		if err == nil {
			t.Errorf("%q: compiled", ct.in)
			continue
		}
		if !errors.Is(err, ct.e) {
			t.Errorf("%q: error %v, want %v", ct.in, err, ct.e)
		}
	}
}

func TestCompileLeavesSkeleton(t *testing.T) {
	ctx := ir.NewContext()
	skel, err := parse.String(ctx, `(a #?(integer) c)`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Compile(ctx, skel); err != nil {
		t.Fatal(err)
	}
	// the skeleton still holds the uncompiled form
	if skel.Nth(1).Type() != ir.PatConsType {
		t.Fatalf("skeleton mutated: %s", skel.Nth(1).Type())
	}
}

func TestPatternString(t *testing.T) {
	ctx := ir.NewContext()
	p, err := compile(t, ctx, `(x #?(integer))`)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != `(x #?(integer))` {
		t.Fatalf("pattern prints as %q", got)
	}
}
