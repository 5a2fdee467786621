package ir

import "fmt"

// Object is one node of the graph. The zero Object is unusable; nodes
// come from a Context, and the nil *Object stands for the empty list.
// Once a constructor or the parser has returned a node, it is treated
// as immutable.
type Object struct {
	typ Type

	sym string // SymbolType, StringType: canonical interned text
	i   int32
	r   float32
	b   bool

	car *Object // ConsType, PatConsType
	cdr *Object

	kind  VarKind // VarType
	index int     // capture slot, -1 for non-capturing
	alts  *Object // OrVar: list of alternative patterns
}

// Type is nil-safe: the nil *Object reports NilType.
func (o *Object) Type() Type {
	if o == nil {
		return NilType
	}
	return o.typ
}

func (o *Object) need(op string, ok bool) {
	if !ok {
		panic(fmt.Sprintf("ir: %s of %s", op, o.Type()))
	}
}

// Car returns the head of a cons cell.
func (o *Object) Car() *Object {
	o.need("car", o.Type().IsCons())
	return o.car
}

// Cdr returns the tail of a cons cell.
func (o *Object) Cdr() *Object {
	o.need("cdr", o.Type().IsCons())
	return o.cdr
}

func (o *Object) Int() int32 {
	o.need("int", o.Type() == IntType)
	return o.i
}

// Real returns the real value; an integer widens.
func (o *Object) Real() float32 {
	switch o.Type() {
	case RealType:
		return o.r
	case IntType:
		return float32(o.i)
	}
	o.need("real", false)
	return 0
}

func (o *Object) Symbol() string {
	o.need("symbol", o.Type() == SymbolType)
	return o.sym
}

func (o *Object) Str() string {
	o.need("string", o.Type() == StringType)
	return o.sym
}

func (o *Object) Bool() bool {
	o.need("bool", o.Type() == BoolType)
	return o.b
}

// Var returns the capture kind, slot index, and alternation list of a
// pattern variable.
func (o *Object) Var() (VarKind, int, *Object) {
	o.need("var", o.Type() == VarType)
	return o.kind, o.index, o.alts
}

// Len returns the length of a proper list. It panics on a dotted pair.
func (o *Object) Len() int {
	n := 0
	for o != nil {
		o.need("length", o.Type().IsCons())
		n++
		o = o.cdr
	}
	return n
}

// NthCdr walks n cons cells and returns the remaining tail.
func (o *Object) NthCdr(n int) *Object {
	for ; n > 0; n-- {
		o.need("nth-cdr", o.Type().IsCons())
		o = o.cdr
	}
	return o
}

// Nth returns the n-th element of a list, zero-based.
func (o *Object) Nth(n int) *Object {
	return o.NthCdr(n).Car()
}

// Cxr applies a sequence of car ('a') and cdr ('d') steps encoded as a
// string, evaluated right to left: Cxr("ad") is car(cdr(o)).
func (o *Object) Cxr(path string) *Object {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case 'a':
			o = o.Car()
		case 'd':
			o = o.Cdr()
		default:
			panic(fmt.Sprintf("ir: cxr step %q", path[i]))
		}
	}
	return o
}
