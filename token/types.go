package token

import "fmt"

type Type int

const (
	TEOF Type = iota
	TLParen
	TRParen
	TPatLParen
	TDot
	TSymbol
	TString
	TInt
	TReal
	TTrue
	TFalse
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TEOF:       "EOF",
		TLParen:    "LParen",
		TRParen:    "RParen",
		TPatLParen: "PatLParen",
		TDot:       "Dot",
		TSymbol:    "Symbol",
		TString:    "String",
		TInt:       "Int",
		TReal:      "Real",
		TTrue:      "True",
		TFalse:     "False",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// Token is one lexical unit. Text is set for TSymbol, TString, TInt and
// TReal; it is the raw lexeme for numbers and the unescaped content for
// strings.
type Token struct {
	Type Type
	Text string
	Pos  Pos
}

func (t *Token) String() string {
	switch t.Type {
	case TSymbol, TInt, TReal:
		return t.Text
	case TString:
		return fmt.Sprintf("%q", t.Text)
	case TLParen:
		return "("
	case TRParen:
		return ")"
	case TPatLParen:
		return "#?("
	case TDot:
		return "."
	case TTrue:
		return "#t"
	case TFalse:
		return "#f"
	}
	return "<" + t.Type.String() + ">"
}
