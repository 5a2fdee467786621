package parse

import (
	"errors"
	"fmt"

	"github.com/sx-format/sx/token"
)

var (
	ErrParse     = errors.New("parse error")
	ErrIntRange  = fmt.Errorf("%w: integer out of range", ErrParse)
	ErrRealRange = fmt.Errorf("%w: real out of range", ErrParse)
	ErrDot       = fmt.Errorf("%w: malformed dotted pair", ErrParse)
	ErrDepth     = fmt.Errorf("%w: nesting too deep", ErrParse)
	ErrEarlyEOF  = fmt.Errorf("%w: unexpected end of input", ErrParse)
)

func unexpectedErr(tok *token.Token) error {
	return fmt.Errorf("%w: unexpected %q at %s", ErrParse, tok.String(), tok.Pos)
}

func atPos(err error, pos token.Pos) error {
	return fmt.Errorf("%w at %s", err, pos)
}

func scanErr(err error) error {
	return fmt.Errorf("%w: %w", ErrParse, err)
}
