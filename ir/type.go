package ir

import "fmt"

type Type int

const (
	NilType Type = iota
	SymbolType
	StringType
	IntType
	RealType
	BoolType
	ConsType
	PatConsType
	VarType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NilType:     "Nil",
		SymbolType:  "Symbol",
		StringType:  "String",
		IntType:     "Int",
		RealType:    "Real",
		BoolType:    "Bool",
		ConsType:    "Cons",
		PatConsType: "PatCons",
		VarType:     "Var",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Nil":     NilType,
		"Symbol":  SymbolType,
		"String":  StringType,
		"Int":     IntType,
		"Real":    RealType,
		"Bool":    BoolType,
		"Cons":    ConsType,
		"PatCons": PatConsType,
		"Var":     VarType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NilType,
		SymbolType,
		StringType,
		IntType,
		RealType,
		BoolType,
		ConsType,
		PatConsType,
		VarType,
	}
}

// IsAtom reports whether t is a leaf type.
func (t Type) IsAtom() bool {
	switch t {
	case ConsType, PatConsType, VarType:
		return false
	default:
		return true
	}
}

// IsCons reports whether t is a pair type, pattern-tagged or not.
func (t Type) IsCons() bool {
	return t == ConsType || t == PatConsType
}

// VarKind distinguishes pattern-variable capture slots.
type VarKind int

const (
	AnyVar VarKind = iota
	SymbolVar
	StringVar
	IntVar
	RealVar
	BoolVar
	ListVar
	OrVar
)

func (k VarKind) String() string {
	s, ok := map[VarKind]string{
		AnyVar:    "any",
		SymbolVar: "symbol",
		StringVar: "string",
		IntVar:    "integer",
		RealVar:   "real",
		BoolVar:   "boolean",
		ListVar:   "list",
		OrVar:     "or",
	}[k]
	if ok {
		return s
	}
	return "<unknown var kind>"
}

func VarKinds() []VarKind {
	return []VarKind{
		AnyVar,
		SymbolVar,
		StringVar,
		IntVar,
		RealVar,
		BoolVar,
		ListVar,
		OrVar,
	}
}
