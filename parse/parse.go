// Package parse provides s-expression parsing support.
package parse

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sx-format/sx/debug"
	"github.com/sx-format/sx/ir"
	"github.com/sx-format/sx/token"
)

// Parse reads one expression from src, allocating through ctx. A clean
// end of input before any expression is io.EOF; malformed text wraps
// ErrParse. An error anywhere aborts the whole read: there is no
// partial result.
func Parse(ctx *ir.Context, src io.ByteScanner, opts ...ParseOption) (*ir.Object, error) {
	return NewParser(ctx, src, opts...).Next()
}

// String parses the first expression in s.
func String(ctx *ir.Context, s string, opts ...ParseOption) (*ir.Object, error) {
	return Parse(ctx, strings.NewReader(s), opts...)
}

// Bytes parses the first expression in d.
func Bytes(ctx *ir.Context, d []byte, opts ...ParseOption) (*ir.Object, error) {
	return Parse(ctx, bytes.NewReader(d), opts...)
}

// File parses the first expression in the named file.
func File(ctx *ir.Context, path string, opts ...ParseOption) (*ir.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(ctx, bufio.NewReader(f), opts...)
}

// Parser streams successive top-level expressions from one source.
type Parser struct {
	ctx  *ir.Context
	sc   *token.Scanner
	opts *parseOpts
}

func NewParser(ctx *ir.Context, src io.ByteScanner, opts ...ParseOption) *Parser {
	return &Parser{
		ctx:  ctx,
		sc:   token.NewScanner(src),
		opts: newParseOpts(opts),
	}
}

// Next returns the next top-level expression, or io.EOF at clean end of
// input. A bare atom is a complete result; nil with a nil error is the
// empty list ().
func (p *Parser) Next() (*ir.Object, error) {
	tok, err := p.sc.Next()
	if err != nil {
		return nil, scanErr(err)
	}
	if tok.Type == token.TEOF {
		return nil, io.EOF
	}
	o, err := p.expr(&tok, 0)
	if debug.Parse() {
		if err != nil {
			debug.Logf("parse: error %v\n", err)
		} else {
			debug.Logf("parse: expr of type %s\n", o.Type())
		}
	}
	return o, err
}

func (p *Parser) expr(tok *token.Token, depth int) (*ir.Object, error) {
	if depth > p.opts.maxDepth {
		return nil, atPos(ErrDepth, tok.Pos)
	}
	switch tok.Type {
	case token.TSymbol:
		return p.ctx.Symbol(tok.Text), nil
	case token.TString:
		return p.ctx.String(tok.Text), nil
	case token.TInt:
		v, err := strconv.ParseInt(tok.Text, 10, 32)
		if err != nil {
			return nil, atPos(ErrIntRange, tok.Pos)
		}
		return p.ctx.Int(int32(v)), nil
	case token.TReal:
		v, err := strconv.ParseFloat(tok.Text, 32)
		if err != nil {
			return nil, atPos(ErrRealRange, tok.Pos)
		}
		return p.ctx.Real(float32(v)), nil
	case token.TTrue:
		return p.ctx.Bool(true), nil
	case token.TFalse:
		return p.ctx.Bool(false), nil
	case token.TLParen:
		return p.list(ir.NewListBuilder(p.ctx), depth)
	case token.TPatLParen:
		return p.list(ir.NewPatListBuilder(p.ctx), depth)
	case token.TEOF:
		return nil, atPos(ErrEarlyEOF, tok.Pos)
	}
	// TRParen, TDot outside a list
	return nil, unexpectedErr(tok)
}

func (p *Parser) list(b *ir.ListBuilder, depth int) (*ir.Object, error) {
	for {
		tok, err := p.sc.Next()
		if err != nil {
			return nil, scanErr(err)
		}
		switch tok.Type {
		case token.TRParen:
			return b.List(), nil
		case token.TEOF:
			return nil, atPos(ErrEarlyEOF, tok.Pos)
		case token.TDot:
			if b.List() == nil {
				return nil, atPos(ErrDot, tok.Pos)
			}
			return p.dotted(b, depth)
		}
		o, err := p.expr(&tok, depth+1)
		if err != nil {
			return nil, err
		}
		b.Append(o)
	}
}

// dotted parses exactly one tail expression after the dot marker and
// requires the closing paren.
func (p *Parser) dotted(b *ir.ListBuilder, depth int) (*ir.Object, error) {
	tok, err := p.sc.Next()
	if err != nil {
		return nil, scanErr(err)
	}
	switch tok.Type {
	case token.TRParen, token.TDot:
		return nil, atPos(ErrDot, tok.Pos)
	case token.TEOF:
		return nil, atPos(ErrEarlyEOF, tok.Pos)
	}
	tail, err := p.expr(&tok, depth+1)
	if err != nil {
		return nil, err
	}
	tok, err = p.sc.Next()
	if err != nil {
		return nil, scanErr(err)
	}
	if tok.Type != token.TRParen {
		return nil, atPos(ErrDot, tok.Pos)
	}
	b.Dot(tail)
	return b.List(), nil
}
