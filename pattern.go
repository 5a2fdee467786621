package sx

import (
	"fmt"

	"github.com/sx-format/sx/debug"
	"github.com/sx-format/sx/encode"
	"github.com/sx-format/sx/ir"
)

// keywords maps pattern-form head symbols to capture kinds.
var keywords = map[string]ir.VarKind{
	"any":     ir.AnyVar,
	"symbol":  ir.SymbolVar,
	"string":  ir.StringVar,
	"integer": ir.IntVar,
	"real":    ir.RealVar,
	"boolean": ir.BoolVar,
	"list":    ir.ListVar,
	"or":      ir.OrVar,
}

// Pattern is a compiled matcher. It is built once from a skeleton and
// matched any number of times.
type Pattern struct {
	root  *ir.Object
	ncaps int
}

// NumCaptures reports how many capture slots the pattern fills; slot
// indices run 0..NumCaptures()-1 in compilation order.
func (p *Pattern) NumCaptures() int {
	return p.ncaps
}

// Root returns the compiled graph, mainly for printing.
func (p *Pattern) Root() *ir.Object {
	return p.root
}

func (p *Pattern) String() string {
	return encode.MustString(p.root)
}

// Compile turns a pattern skeleton into a Pattern. Every #?( list in
// the skeleton must be a recognized form: (any), (symbol), (string),
// (integer), (real), (boolean), (list), or (or alt...). Compilation
// rebuilds the graph; the skeleton is not modified, and on error no
// partial matcher is produced.
func Compile(ctx *ir.Context, skeleton *ir.Object) (*Pattern, error) {
	c := &compiler{ctx: ctx}
	root, err := c.compile(skeleton, true)
	if err != nil {
		return nil, err
	}
	p := &Pattern{root: root, ncaps: c.n}
	if debug.Compile() {
		debug.Logf("compile: %d captures in %s\n", p.ncaps, p)
	}
	return p, nil
}

type compiler struct {
	ctx *ir.Context
	n   int
}

// compile rebuilds o with pattern forms replaced by variable nodes.
// capturing is false inside or-alternatives: there the or's own slot
// records the match, and alternatives allocate no slots.
func (c *compiler) compile(o *ir.Object, capturing bool) (*ir.Object, error) {
	switch o.Type() {
	case ir.PatConsType:
		return c.form(o, capturing)
	case ir.ConsType:
		car, err := c.compile(o.Car(), capturing)
		if err != nil {
			return nil, err
		}
		cdr, err := c.compile(o.Cdr(), capturing)
		if err != nil {
			return nil, err
		}
		if car == o.Car() && cdr == o.Cdr() {
			return o, nil
		}
		return c.ctx.Cons(car, cdr), nil
	}
	return o, nil
}

// form compiles one keyword list into a variable node. o is the first
// cell of the list; the cell tagging (plain or pattern) does not matter
// here, so or-alternatives can use plain list syntax.
func (c *compiler) form(o *ir.Object, capturing bool) (*ir.Object, error) {
	head := o.Car()
	if head.Type() != ir.SymbolType {
		return nil, fmt.Errorf("%w: head is %s", ErrPatternForm, head.Type())
	}
	kind, ok := keywords[head.Symbol()]
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized keyword %q", ErrPattern, head.Symbol())
	}
	index := -1
	if capturing {
		index = c.n
		c.n++
	}
	rest := o.Cdr()
	if kind != ir.OrVar {
		if rest != nil {
			return nil, fmt.Errorf("%w: %s takes no arguments", ErrPatternForm, kind)
		}
		return c.ctx.Var(kind, index, nil), nil
	}
	if rest == nil {
		return nil, fmt.Errorf("%w: or needs alternatives", ErrPatternForm)
	}
	ab := ir.NewListBuilder(c.ctx)
	for cell := rest; cell != nil; cell = cell.Cdr() {
		if !cell.Type().IsCons() {
			return nil, fmt.Errorf("%w: dotted or form", ErrPatternForm)
		}
		alt, err := c.alt(cell.Car())
		if err != nil {
			return nil, err
		}
		ab.Append(alt)
	}
	return c.ctx.Var(ir.OrVar, index, ab.List()), nil
}

// alt compiles one or-alternative: a keyword list like (integer) is a
// non-capturing variable form, anything else matches literally.
func (c *compiler) alt(o *ir.Object) (*ir.Object, error) {
	if o.Type().IsCons() {
		if h := o.Car(); h.Type() == ir.SymbolType {
			if _, ok := keywords[h.Symbol()]; ok {
				return c.form(o, false)
			}
		}
	}
	return c.compile(o, false)
}
