package ir

// ListBuilder assembles a list front to back without exposing the cell
// under construction: the graph a caller sees is always finished.
type ListBuilder struct {
	ctx  *Context
	pat  bool
	head *Object
	tail *Object
}

func NewListBuilder(ctx *Context) *ListBuilder {
	return &ListBuilder{ctx: ctx}
}

// NewPatListBuilder builds with pattern-tagged cons cells, as produced
// by #?( syntax. The tagging applies to this list's cells only, not to
// nested lists.
func NewPatListBuilder(ctx *Context) *ListBuilder {
	return &ListBuilder{ctx: ctx, pat: true}
}

func (b *ListBuilder) cons(car *Object) *Object {
	if b.pat {
		return b.ctx.PatCons(car, nil)
	}
	return b.ctx.Cons(car, nil)
}

// Append adds one element at the end.
func (b *ListBuilder) Append(o *Object) {
	cell := b.cons(o)
	if b.tail == nil {
		b.head = cell
	} else {
		b.tail.cdr = cell
	}
	b.tail = cell
}

// Dot sets the final tail, making a dotted pair of the last cell. It
// panics when no element has been appended.
func (b *ListBuilder) Dot(o *Object) {
	if b.tail == nil {
		panic("ir: dotted tail on empty list")
	}
	b.tail.cdr = o
}

// List returns the finished list, nil when nothing was appended.
func (b *ListBuilder) List() *Object {
	return b.head
}
