package sx

import "github.com/sx-format/sx/ir"

// Writer accumulates named values in call order and folds them into one
// association list suitable for Encode and for reading back through a
// Reader.
type Writer struct {
	ctx   *ir.Context
	cells []*ir.Object
}

func NewWriter(ctx *ir.Context) *Writer {
	return &Writer{ctx: ctx}
}

// Put records (name values...) as the next cell.
func (w *Writer) Put(name string, values ...*ir.Object) *Writer {
	b := ir.NewListBuilder(w.ctx)
	b.Append(w.ctx.Symbol(name))
	for _, v := range values {
		b.Append(v)
	}
	w.cells = append(w.cells, b.List())
	return w
}

func (w *Writer) PutInt(name string, v int32) *Writer {
	return w.Put(name, w.ctx.Int(v))
}

func (w *Writer) PutReal(name string, v float32) *Writer {
	return w.Put(name, w.ctx.Real(v))
}

func (w *Writer) PutBool(name string, v bool) *Writer {
	return w.Put(name, w.ctx.Bool(v))
}

func (w *Writer) PutStr(name string, v string) *Writer {
	return w.Put(name, w.ctx.String(v))
}

func (w *Writer) PutSymbol(name string, v string) *Writer {
	return w.Put(name, w.ctx.Symbol(v))
}

func (w *Writer) PutInts(name string, vs ...int32) *Writer {
	values := make([]*ir.Object, len(vs))
	for i, v := range vs {
		values[i] = w.ctx.Int(v)
	}
	return w.Put(name, values...)
}

func (w *Writer) PutReals(name string, vs ...float32) *Writer {
	values := make([]*ir.Object, len(vs))
	for i, v := range vs {
		values[i] = w.ctx.Real(v)
	}
	return w.Put(name, values...)
}

// PutList records name with an already-built value list.
func (w *Writer) PutList(name string, list *ir.Object) *Writer {
	b := ir.NewListBuilder(w.ctx)
	b.Append(w.ctx.Symbol(name))
	b.Dot(list)
	w.cells = append(w.cells, b.List())
	return w
}

// Object folds the recorded cells into a single list.
func (w *Writer) Object() *ir.Object {
	b := ir.NewListBuilder(w.ctx)
	for _, c := range w.cells {
		b.Append(c)
	}
	return b.List()
}
