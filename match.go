package sx

import (
	"fmt"

	"github.com/sx-format/sx/debug"
	"github.com/sx-format/sx/encode"
	"github.com/sx-format/sx/ir"
	"github.com/sx-format/sx/parse"
)

// Match matches doc and returns the filled capture slots on success.
func (p *Pattern) Match(doc *ir.Object) ([]*ir.Object, bool) {
	caps := make([]*ir.Object, p.ncaps)
	if !p.MatchInto(doc, caps) {
		return nil, false
	}
	return caps, true
}

// MatchInto matches doc, writing captures into caps, which must hold at
// least NumCaptures slots. On failure the contents of caps are
// unspecified.
func (p *Pattern) MatchInto(doc *ir.Object, caps []*ir.Object) bool {
	if len(caps) < p.ncaps {
		panic(fmt.Sprintf("sx: %d capture slots, need %d", len(caps), p.ncaps))
	}
	ok := match(p.root, doc, caps)
	if debug.Match() {
		debug.Logf("match: %s against %s: %v\n", p, encode.MustString(doc), ok)
	}
	return ok
}

// MatchText parses patternText, compiles it, and matches doc in one
// call.
func MatchText(ctx *ir.Context, patternText string, doc *ir.Object) ([]*ir.Object, bool, error) {
	skel, err := parse.String(ctx, patternText)
	if err != nil {
		return nil, false, err
	}
	p, err := Compile(ctx, skel)
	if err != nil {
		return nil, false, err
	}
	caps, ok := p.Match(doc)
	return caps, ok, nil
}

func match(pat, doc *ir.Object, caps []*ir.Object) bool {
	if pat == nil {
		return doc == nil
	}
	switch pat.Type() {
	case ir.VarType:
		return matchVar(pat, doc, caps)
	case ir.ConsType, ir.PatConsType:
		if !doc.Type().IsCons() {
			return false
		}
		return match(pat.Car(), doc.Car(), caps) &&
			match(pat.Cdr(), doc.Cdr(), caps)
	case ir.SymbolType:
		return doc.Type() == ir.SymbolType && doc.Symbol() == pat.Symbol()
	case ir.StringType:
		return doc.Type() == ir.StringType && doc.Str() == pat.Str()
	case ir.IntType:
		return doc.Type() == ir.IntType && doc.Int() == pat.Int()
	case ir.RealType:
		return doc.Type() == ir.RealType && doc.Real() == pat.Real()
	case ir.BoolType:
		return doc.Type() == ir.BoolType && doc.Bool() == pat.Bool()
	}
	return false
}

func matchVar(pat, doc *ir.Object, caps []*ir.Object) bool {
	kind, index, alts := pat.Var()
	ok := false
	switch kind {
	case ir.AnyVar:
		ok = true
	case ir.SymbolVar:
		ok = doc.Type() == ir.SymbolType
	case ir.StringVar:
		ok = doc.Type() == ir.StringType
	case ir.IntVar:
		ok = doc.Type() == ir.IntType
	case ir.RealVar:
		ok = doc.Type() == ir.RealType
	case ir.BoolVar:
		ok = doc.Type() == ir.BoolType
	case ir.ListVar:
		ok = doc.Type().IsCons()
	case ir.OrVar:
		for a := alts; a != nil; a = a.Cdr() {
			if match(a.Car(), doc, caps) {
				ok = true
				break
			}
		}
	}
	if ok && index >= 0 {
		caps[index] = doc
	}
	return ok
}
