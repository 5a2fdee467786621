package ir

// Equal reports structural equality of two graphs. Atom text compares
// by canonical string, which is an identity check for atoms interned
// through one Context; numbers compare by value, so Equal is meaningful
// across Contexts too.
func Equal(a, b *Object) bool {
	for {
		if a == b {
			return true
		}
		if a == nil || b == nil {
			return false
		}
		if a.typ != b.typ {
			return false
		}
		switch a.typ {
		case SymbolType, StringType:
			return a.sym == b.sym
		case IntType:
			return a.i == b.i
		case RealType:
			return a.r == b.r
		case BoolType:
			return a.b == b.b
		case VarType:
			if a.kind != b.kind || a.index != b.index {
				return false
			}
			return Equal(a.alts, b.alts)
		case ConsType, PatConsType:
			if !Equal(a.car, b.car) {
				return false
			}
			a, b = a.cdr, b.cdr
			continue
		}
		return false
	}
}
