package sx

import (
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/sx-format/sx/ir"
)

// ToAny converts a graph to plain Go values for YAML/JSON consumers.
// The conversion is lossy: symbols and strings both become
// Go strings, an association list whose cells all have distinct symbol
// heads becomes a map, any other list becomes a slice, and a dotted
// tail becomes a final slice element.
func ToAny(o *ir.Object) any {
	switch o.Type() {
	case ir.NilType:
		return nil
	case ir.SymbolType:
		return o.Symbol()
	case ir.StringType:
		return o.Str()
	case ir.IntType:
		return int64(o.Int())
	case ir.RealType:
		return float64(o.Real())
	case ir.BoolType:
		return o.Bool()
	case ir.VarType:
		kind, _, _ := o.Var()
		return "#?(" + kind.String() + ")"
	}
	if m, ok := assocToMap(o); ok {
		return m
	}
	var res []any
	for o != nil {
		if !o.Type().IsCons() {
			res = append(res, ToAny(o))
			break
		}
		res = append(res, ToAny(o.Car()))
		o = o.Cdr()
	}
	return res
}

func assocToMap(o *ir.Object) (map[string]any, bool) {
	m := map[string]any{}
	for ; o != nil; o = o.Cdr() {
		if !o.Type().IsCons() {
			return nil, false
		}
		e := o.Car()
		if !e.Type().IsCons() || e.Car().Type() != ir.SymbolType {
			return nil, false
		}
		name := e.Car().Symbol()
		if _, dup := m[name]; dup {
			return nil, false
		}
		vals := e.Cdr()
		if vals.Type().IsCons() && vals.Cdr() == nil {
			m[name] = ToAny(vals.Car())
		} else {
			m[name] = ToAny(vals)
		}
	}
	if len(m) == 0 {
		return nil, false
	}
	return m, true
}

// ToYAML renders the graph as YAML via the bridge conversion.
func ToYAML(o *ir.Object) ([]byte, error) {
	return yaml.Marshal(ToAny(o))
}

// ToJSON renders the graph as JSON via the bridge conversion.
func ToJSON(o *ir.Object) ([]byte, error) {
	return json.Marshal(ToAny(o))
}
