package token

import (
	"errors"
	"io"
	"strings"
	"testing"
)

type scanTest struct {
	in   string
	toks []Token
	e    error
}

func runScan(t *testing.T, st *scanTest) {
	t.Helper()
	sc := NewScanner(strings.NewReader(st.in))
	for i, want := range st.toks {
		got, err := sc.Next()
		if err != nil {
			if st.e == nil {
				t.Fatalf("%q: token %d: unexpected error %v", st.in, i, err)
			}
			if !errors.Is(err, st.e) {
				t.Fatalf("%q: token %d: error %v, want %v", st.in, i, err, st.e)
			}
			return
		}
		if got.Type != want.Type || got.Text != want.Text {
			t.Fatalf("%q: token %d: got %s %q, want %s %q",
				st.in, i, got.Type, got.Text, want.Type, want.Text)
		}
	}
	if st.e != nil {
		got, err := sc.Next()
		if err == nil {
			t.Fatalf("%q: got %s, want error %v", st.in, got.Type, st.e)
		}
		if !errors.Is(err, st.e) {
			t.Fatalf("%q: error %v, want %v", st.in, err, st.e)
		}
	}
}

func TestScanOK(t *testing.T) {
	sts := []scanTest{
		{
			in:   "",
			toks: []Token{{Type: TEOF}},
		},
		{
			in:   "()",
			toks: []Token{{Type: TLParen}, {Type: TRParen}, {Type: TEOF}},
		},
		{
			in: "(a 1)",
			toks: []Token{
				{Type: TLParen},
				{Type: TSymbol, Text: "a"},
				{Type: TInt, Text: "1"},
				{Type: TRParen},
				{Type: TEOF},
			},
		},
		{
			in:   "foo-bar",
			toks: []Token{{Type: TSymbol, Text: "foo-bar"}},
		},
		{
			in:   "-12",
			toks: []Token{{Type: TInt, Text: "-12"}},
		},
		{
			in:   "1.5",
			toks: []Token{{Type: TReal, Text: "1.5"}},
		},
		{
			in:   "-1.5",
			toks: []Token{{Type: TReal, Text: "-1.5"}},
		},
		{
			in:   ".5",
			toks: []Token{{Type: TReal, Text: ".5"}},
		},
		{
			in:   "1.2.3",
			toks: []Token{{Type: TSymbol, Text: "1.2.3"}},
		},
		{
			in:   "-",
			toks: []Token{{Type: TSymbol, Text: "-"}},
		},
		{
			in:   "1-2",
			toks: []Token{{Type: TSymbol, Text: "1-2"}},
		},
		{
			in:   "...",
			toks: []Token{{Type: TSymbol, Text: "..."}},
		},
		{
			in: "(a . b)",
			toks: []Token{
				{Type: TLParen},
				{Type: TSymbol, Text: "a"},
				{Type: TDot},
				{Type: TSymbol, Text: "b"},
				{Type: TRParen},
			},
		},
		{
			in:   `"hello"`,
			toks: []Token{{Type: TString, Text: "hello"}},
		},
		{
			in:   `"a\nb\tc"`,
			toks: []Token{{Type: TString, Text: "a\nb\tc"}},
		},
		{
			in:   `"say \"hi\""`,
			toks: []Token{{Type: TString, Text: `say "hi"`}},
		},
		{
			in:   `"back\\slash"`,
			toks: []Token{{Type: TString, Text: `back\slash`}},
		},
		{
			in:   `"weird\q"`,
			toks: []Token{{Type: TString, Text: "weirdq"}},
		},
		{
			in:   "#t #f",
			toks: []Token{{Type: TTrue}, {Type: TFalse}, {Type: TEOF}},
		},
		{
			in: "#?(any)",
			toks: []Token{
				{Type: TPatLParen},
				{Type: TSymbol, Text: "any"},
				{Type: TRParen},
			},
		},
		{
			in:   "; hello\n(a 1)",
			toks: []Token{{Type: TLParen}, {Type: TSymbol, Text: "a"}},
		},
		{
			in:   "; only a comment",
			toks: []Token{{Type: TEOF}},
		},
		{
			in:   "a;comment\nb",
			toks: []Token{{Type: TSymbol, Text: "a"}, {Type: TSymbol, Text: "b"}},
		},
		{
			in:   "x(y",
			toks: []Token{{Type: TSymbol, Text: "x"}, {Type: TLParen}, {Type: TSymbol, Text: "y"}},
		},
	}
	for i := range sts {
		runScan(t, &sts[i])
	}
}

func TestScanErrs(t *testing.T) {
	sts := []scanTest{
		{
			in: `"unterminated`,
			e:  ErrUnterminated,
		},
		{
			in: `"esc ends\`,
			e:  ErrUnterminated,
		},
		{
			in: "#x",
			e:  ErrBadHash,
		},
		{
			in: "#",
			e:  ErrBadHash,
		},
		{
			in: "#?x",
			e:  ErrBadHash,
		},
		{
			in:   "ok #z",
			toks: []Token{{Type: TSymbol, Text: "ok"}},
			e:    ErrBadHash,
		},
	}
	for i := range sts {
		runScan(t, &sts[i])
	}
}

func TestScanTruncation(t *testing.T) {
	long := strings.Repeat("a", MaxTokenLen+40)
	sc := NewScanner(strings.NewReader(long))
	tok, err := sc.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Type != TSymbol {
		t.Fatalf("got %s, want symbol", tok.Type)
	}
	if len(tok.Text) != MaxTokenLen {
		t.Fatalf("token length %d, want %d", len(tok.Text), MaxTokenLen)
	}
}

func TestScanPos(t *testing.T) {
	sc := NewScanner(strings.NewReader("a\n  (b"))
	tok, _ := sc.Next()
	if tok.Pos.Line != 0 || tok.Pos.Col != 0 {
		t.Fatalf("a at %s", tok.Pos)
	}
	tok, _ = sc.Next()
	if tok.Pos.Line != 1 || tok.Pos.Col != 2 {
		t.Fatalf("( at %s", tok.Pos)
	}
	tok, _ = sc.Next()
	if tok.Pos.Line != 1 || tok.Pos.Col != 3 {
		t.Fatalf("b at %s", tok.Pos)
	}
}

func TestFuncSource(t *testing.T) {
	data := []byte("(x 2)")
	i := 0
	src := &FuncSource{
		Next: func() (byte, error) {
			if i == len(data) {
				return 0, io.EOF
			}
			c := data[i]
			i++
			return c, nil
		},
		Unget: func(byte) error {
			i--
			return nil
		},
	}
	sc := NewScanner(src)
	want := []Type{TLParen, TSymbol, TInt, TRParen, TEOF}
	for _, w := range want {
		tok, err := sc.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Type != w {
			t.Fatalf("got %s, want %s", tok.Type, w)
		}
	}
}
