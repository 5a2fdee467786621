package ir

import "github.com/sx-format/sx/intern"

// Context bundles the arena and the intern table for one parsing
// session. It is a plain caller-owned value: independent Contexts are
// fully isolated, and a Context must not be shared across goroutines
// without external synchronization.
type Context struct {
	arena *Arena
	strs  *intern.Table
}

func NewContext() *Context {
	return &Context{
		arena: NewArena(),
		strs:  intern.New(),
	}
}

// Reset releases every node built through this Context. Interned
// strings survive: they belong to the Context, not the arena.
func (c *Context) Reset() {
	c.arena.Reset()
}

// NodeCount reports the number of nodes allocated since the last Reset.
func (c *Context) NodeCount() int {
	return c.arena.Len()
}

func (c *Context) Intern(s string) string {
	return c.strs.Intern(s)
}

func (c *Context) InternBytes(b []byte) string {
	return c.strs.InternBytes(b)
}

func (c *Context) Symbol(s string) *Object {
	o := c.arena.New()
	o.typ = SymbolType
	o.sym = c.strs.Intern(s)
	return o
}

func (c *Context) String(s string) *Object {
	o := c.arena.New()
	o.typ = StringType
	o.sym = c.strs.Intern(s)
	return o
}

func (c *Context) Int(v int32) *Object {
	o := c.arena.New()
	o.typ = IntType
	o.i = v
	return o
}

func (c *Context) Real(v float32) *Object {
	o := c.arena.New()
	o.typ = RealType
	o.r = v
	return o
}

func (c *Context) Bool(v bool) *Object {
	o := c.arena.New()
	o.typ = BoolType
	o.b = v
	return o
}

func (c *Context) Cons(car, cdr *Object) *Object {
	o := c.arena.New()
	o.typ = ConsType
	o.car = car
	o.cdr = cdr
	return o
}

// PatCons is a cons cell tagged as coming from #?( pattern syntax.
func (c *Context) PatCons(car, cdr *Object) *Object {
	o := c.arena.New()
	o.typ = PatConsType
	o.car = car
	o.cdr = cdr
	return o
}

// Var builds a pattern-variable node. index is the capture slot, or -1
// for a non-capturing variable; alts is the alternation list for OrVar.
func (c *Context) Var(kind VarKind, index int, alts *Object) *Object {
	o := c.arena.New()
	o.typ = VarType
	o.kind = kind
	o.index = index
	o.alts = alts
	return o
}

// List builds a proper list of the given elements.
func (c *Context) List(elts ...*Object) *Object {
	b := NewListBuilder(c)
	for _, e := range elts {
		b.Append(e)
	}
	return b.List()
}
