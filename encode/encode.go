// Package encode renders object graphs back to concrete s-expression
// syntax. The output of Encode re-reads to a structurally equal graph.
package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sx-format/sx/ir"
)

type EncState struct {
	Color func(ir.Type, ColorAttr, string) string
}

func Encode(o *ir.Object, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(o, w, es)
}

func encode(o *ir.Object, w io.Writer, es *EncState) error {
	t := o.Type()
	switch t {
	case ir.NilType:
		return write(w, es, t, SepColor, "()")
	case ir.SymbolType:
		return write(w, es, t, ValueColor, o.Symbol())
	case ir.StringType:
		return write(w, es, t, ValueColor, Quote(o.Str()))
	case ir.IntType:
		return write(w, es, t, ValueColor, strconv.FormatInt(int64(o.Int()), 10))
	case ir.RealType:
		return write(w, es, t, ValueColor, FormatReal(o.Real()))
	case ir.BoolType:
		if o.Bool() {
			return write(w, es, t, ValueColor, "#t")
		}
		return write(w, es, t, ValueColor, "#f")
	case ir.ConsType, ir.PatConsType:
		return encodeList(o, w, es)
	case ir.VarType:
		return encodeVar(o, w, es)
	}
	return write(w, es, t, ValueColor, "()")
}

func encodeList(o *ir.Object, w io.Writer, es *EncState) error {
	t := o.Type()
	open := "("
	if t == ir.PatConsType {
		open = "#?("
	}
	if err := write(w, es, t, SepColor, open); err != nil {
		return err
	}
	for {
		if err := encode(o.Car(), w, es); err != nil {
			return err
		}
		tail := o.Cdr()
		if tail == nil {
			break
		}
		// a tail cell with the other tag starts its own list, so it
		// keeps its own opener behind a dot
		if tail.Type() != t {
			if err := write(w, es, t, SepColor, " . "); err != nil {
				return err
			}
			if err := encode(tail, w, es); err != nil {
				return err
			}
			break
		}
		if err := write(w, es, t, SepColor, " "); err != nil {
			return err
		}
		o = tail
	}
	return write(w, es, t, SepColor, ")")
}

// encodeVar renders a compiled pattern variable back as its keyword
// form, so compiled patterns remain printable.
func encodeVar(o *ir.Object, w io.Writer, es *EncState) error {
	kind, _, alts := o.Var()
	if err := write(w, es, ir.VarType, SepColor, "#?("); err != nil {
		return err
	}
	if err := write(w, es, ir.VarType, ValueColor, kind.String()); err != nil {
		return err
	}
	for a := alts; a != nil; a = a.Cdr() {
		if err := write(w, es, ir.VarType, SepColor, " "); err != nil {
			return err
		}
		if err := encode(a.Car(), w, es); err != nil {
			return err
		}
	}
	return write(w, es, ir.VarType, SepColor, ")")
}

func write(w io.Writer, es *EncState, t ir.Type, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	_, err := io.WriteString(w, s)
	return err
}

// Quote renders string content with surrounding quotes, escaping '"',
// '\', newline and tab. Any escaped character the reader does not
// recognize is copied literally on re-read, so '\"' and '\\' round-trip.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// FormatReal renders a finite real so it re-reads as a real: the
// shortest fixed-point form, with ".0" appended when that form has no
// dot. NaN and the infinities have no reader syntax; they render as
// NaN, +Inf and -Inf, which re-read as symbols.
func FormatReal(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return s
	}
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
