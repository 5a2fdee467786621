package encode

import (
	"math"
	"strings"
	"testing"

	"github.com/sx-format/sx/ir"
	"github.com/sx-format/sx/parse"
)

type encTest struct {
	in  string
	out string
}

func TestEncode(t *testing.T) {
	ets := []encTest{
		{in: `a`, out: `a`},
		{in: `"hello"`, out: `"hello"`},
		{in: `42`, out: `42`},
		{in: `-42`, out: `-42`},
		{in: `1.5`, out: `1.5`},
		{in: `.5`, out: `0.5`},
		{in: `2.0`, out: `2.0`},
		{in: `#t`, out: `#t`},
		{in: `#f`, out: `#f`},
		{in: `()`, out: `()`},
		{in: `(a b c)`, out: `(a b c)`},
		{in: `( a  ( b )  c )`, out: `(a (b) c)`},
		{in: `(a . b)`, out: `(a . b)`},
		{in: `(a b . c)`, out: `(a b . c)`},
		{in: `#?(integer)`, out: `#?(integer)`},
		{in: `(x #?(a (b)))`, out: `(x #?(a (b)))`},
		{in: `(a . #?(b))`, out: `(a . #?(b))`},
		{in: `#?(a . (b))`, out: `#?(a . (b))`},
		{in: "; note\n(a 1) ; trailing", out: `(a 1)`},
		{in: `"say \"hi\""`, out: `"say \"hi\""`},
		{in: `"tab\there"`, out: `"tab\there"`},
		{in: `"a\nb"`, out: `"a\nb"`},
		{in: `"back\\slash"`, out: `"back\\slash"`},
	}
	ctx := ir.NewContext()
	for _, et := range ets {
		o, err := parse.String(ctx, et.in)
		if err != nil {
			t.Errorf("%q: %v", et.in, err)
			continue
		}
		if got := MustString(o); got != et.out {
			t.Errorf("%q: encoded %q, want %q", et.in, got, et.out)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	ins := []string{
		`a`,
		`"hello world"`,
		`-17`,
		`3.25`,
		`#t`,
		`()`,
		`(a (b (c (d))) "e" 1 2.5 #f)`,
		`(a . b)`,
		`(1 2 . 3)`,
		`#?(a b (c . d))`,
		`(a . #?(b))`,
		`#?(a . (b))`,
		`(a #?(b . (c)) . #?(d))`,
		`"quotes \" and \\ and \n and \t"`,
	}
	ctx := ir.NewContext()
	for _, in := range ins {
		o, err := parse.String(ctx, in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		text := MustString(o)
		o2, err := parse.String(ctx, text)
		if err != nil {
			t.Errorf("%q: reparse of %q: %v", in, text, err)
			continue
		}
		if !ir.Equal(o, o2) {
			t.Errorf("%q: round trip via %q not equal", in, text)
		}
		if text2 := MustString(o2); text2 != text {
			t.Errorf("%q: second encode %q != %q", in, text2, text)
		}
	}
}

func TestFormatReal(t *testing.T) {
	for _, ft := range []struct {
		v   float32
		out string
	}{
		{v: 1.5, out: "1.5"},
		{v: -1.5, out: "-1.5"},
		{v: 2, out: "2.0"},
		{v: 0, out: "0.0"},
		{v: 0.5, out: "0.5"},
		{v: float32(math.NaN()), out: "NaN"},
		{v: float32(math.Inf(1)), out: "+Inf"},
		{v: float32(math.Inf(-1)), out: "-Inf"},
	} {
		if got := FormatReal(ft.v); got != ft.out {
			t.Errorf("FormatReal(%v) = %q, want %q", ft.v, got, ft.out)
		}
	}
}

func TestColors(t *testing.T) {
	c := NewColors()
	for _, typ := range ir.Types() {
		for _, attr := range []ColorAttr{ValueColor, SepColor} {
			got := c.Color(typ, attr, "text")
			if !strings.Contains(got, "text") {
				t.Fatalf("%s/%d: colorized %q lost the text", typ, attr, got)
			}
		}
	}
}
