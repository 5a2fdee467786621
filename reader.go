package sx

import "github.com/sx-format/sx/ir"

// Reader gives keyed, typed access to an association list of
// (name value...) cells. Construction indexes the list once; queries
// are then a map lookup plus a type check, and report absence or a
// type mismatch as ok=false, never a panic. Cells that are not lists
// with a symbol head are skipped.
type Reader struct {
	vals map[string]*ir.Object
}

func NewReader(assoc *ir.Object) *Reader {
	r := &Reader{vals: map[string]*ir.Object{}}
	for cell := assoc; cell.Type().IsCons(); cell = cell.Cdr() {
		e := cell.Car()
		if !e.Type().IsCons() {
			continue
		}
		h := e.Car()
		if h.Type() != ir.SymbolType {
			continue
		}
		r.vals[h.Symbol()] = e.Cdr()
	}
	return r
}

// List returns the raw value list associated with name.
func (r *Reader) List(name string) (*ir.Object, bool) {
	v, ok := r.vals[name]
	return v, ok
}

func (r *Reader) first(name string) (*ir.Object, bool) {
	v, ok := r.vals[name]
	if !ok || !v.Type().IsCons() {
		return nil, false
	}
	return v.Car(), true
}

func (r *Reader) Int(name string) (int32, bool) {
	v, ok := r.first(name)
	if !ok || v.Type() != ir.IntType {
		return 0, false
	}
	return v.Int(), true
}

// Real accepts an integer value, widening it.
func (r *Reader) Real(name string) (float32, bool) {
	v, ok := r.first(name)
	if !ok || (v.Type() != ir.RealType && v.Type() != ir.IntType) {
		return 0, false
	}
	return v.Real(), true
}

func (r *Reader) Bool(name string) (bool, bool) {
	v, ok := r.first(name)
	if !ok || v.Type() != ir.BoolType {
		return false, false
	}
	return v.Bool(), true
}

func (r *Reader) Str(name string) (string, bool) {
	v, ok := r.first(name)
	if !ok || v.Type() != ir.StringType {
		return "", false
	}
	return v.Str(), true
}

func (r *Reader) Symbol(name string) (string, bool) {
	v, ok := r.first(name)
	if !ok || v.Type() != ir.SymbolType {
		return "", false
	}
	return v.Symbol(), true
}

// Ints returns all values under name, which must all be integers.
func (r *Reader) Ints(name string) ([]int32, bool) {
	v, ok := r.vals[name]
	if !ok {
		return nil, false
	}
	var res []int32
	for ; v != nil; v = v.Cdr() {
		if !v.Type().IsCons() || v.Car().Type() != ir.IntType {
			return nil, false
		}
		res = append(res, v.Car().Int())
	}
	return res, true
}

// Reals returns all values under name; integers widen.
func (r *Reader) Reals(name string) ([]float32, bool) {
	v, ok := r.vals[name]
	if !ok {
		return nil, false
	}
	var res []float32
	for ; v != nil; v = v.Cdr() {
		if !v.Type().IsCons() {
			return nil, false
		}
		t := v.Car().Type()
		if t != ir.RealType && t != ir.IntType {
			return nil, false
		}
		res = append(res, v.Car().Real())
	}
	return res, true
}

// Strs returns all values under name, which must all be strings.
func (r *Reader) Strs(name string) ([]string, bool) {
	v, ok := r.vals[name]
	if !ok {
		return nil, false
	}
	var res []string
	for ; v != nil; v = v.Cdr() {
		if !v.Type().IsCons() || v.Car().Type() != ir.StringType {
			return nil, false
		}
		res = append(res, v.Car().Str())
	}
	return res, true
}
