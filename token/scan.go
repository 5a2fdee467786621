package token

import (
	"io"

	"github.com/sx-format/sx/debug"
)

// MaxTokenLen caps the text of a single token. Characters beyond the cap
// are dropped, not rejected.
const MaxTokenLen = 256

// Scanner turns a character source into a token stream. End of input is
// reported as a TEOF token, not an error; errors are reserved for
// malformed input and failing reads.
type Scanner struct {
	src  io.ByteScanner
	pos  Pos
	prev Pos
	buf  []byte
}

func NewScanner(src io.ByteScanner) *Scanner {
	return &Scanner{
		src: src,
		buf: make([]byte, 0, MaxTokenLen),
	}
}

// Pos reports the position of the next unread character.
func (s *Scanner) Pos() Pos {
	return s.pos
}

func (s *Scanner) read() (byte, bool, error) {
	c, err := s.src.ReadByte()
	if err == io.EOF {
		return 0, true, nil
	}
	if err != nil {
		return 0, false, NewScanErr(err, s.pos)
	}
	s.prev = s.pos
	if c == '\n' {
		s.pos.Line++
		s.pos.Col = 0
	} else {
		s.pos.Col++
	}
	return c, false, nil
}

func (s *Scanner) unread() {
	if err := s.src.UnreadByte(); err != nil {
		panic("token: unread failed: " + err.Error())
	}
	s.pos = s.prev
}

// Next returns the next token. After a TEOF token or an error, further
// calls repeat the same outcome.
func (s *Scanner) Next() (Token, error) {
	tok, err := s.next()
	if debug.Token() {
		if err != nil {
			debug.Logf("token: error %v\n", err)
		} else {
			debug.Logf("token: %s %s at %s\n", tok.Type, tok.String(), tok.Pos)
		}
	}
	return tok, err
}

func (s *Scanner) next() (Token, error) {
	c, eof, err := s.skipSpace()
	if err != nil {
		return Token{}, err
	}
	if eof {
		return Token{Type: TEOF, Pos: s.pos}, nil
	}
	pos := s.prev
	switch c {
	case '(':
		return Token{Type: TLParen, Pos: pos}, nil
	case ')':
		return Token{Type: TRParen, Pos: pos}, nil
	case '"':
		return s.scanString(pos)
	case '#':
		return s.scanHash(pos)
	}
	return s.scanWord(c, pos)
}

// skipSpace consumes whitespace and ';' comments, returning the first
// significant character.
func (s *Scanner) skipSpace() (byte, bool, error) {
	for {
		c, eof, err := s.read()
		if eof || err != nil {
			return 0, eof, err
		}
		if isWhite(c) {
			continue
		}
		if c == ';' {
			for {
				c, eof, err = s.read()
				if eof || err != nil {
					return 0, eof, err
				}
				if c == '\n' {
					break
				}
			}
			continue
		}
		return c, false, nil
	}
}

func (s *Scanner) scanString(pos Pos) (Token, error) {
	s.buf = s.buf[:0]
	for {
		c, eof, err := s.read()
		if err != nil {
			return Token{}, err
		}
		if eof {
			return Token{}, NewScanErr(ErrUnterminated, pos)
		}
		switch c {
		case '"':
			return Token{Type: TString, Text: string(s.buf), Pos: pos}, nil
		case '\\':
			c, eof, err = s.read()
			if err != nil {
				return Token{}, err
			}
			if eof {
				return Token{}, NewScanErr(ErrUnterminated, pos)
			}
			switch c {
			case 'n':
				c = '\n'
			case 't':
				c = '\t'
			}
		}
		s.app(c)
	}
}

func (s *Scanner) scanHash(pos Pos) (Token, error) {
	c, eof, err := s.read()
	if err != nil {
		return Token{}, err
	}
	if eof {
		return Token{}, NewScanErr(ErrBadHash, pos)
	}
	switch c {
	case 't':
		return Token{Type: TTrue, Pos: pos}, nil
	case 'f':
		return Token{Type: TFalse, Pos: pos}, nil
	case '?':
		c, eof, err = s.read()
		if err != nil {
			return Token{}, err
		}
		if !eof && c == '(' {
			return Token{Type: TPatLParen, Pos: pos}, nil
		}
	}
	return Token{}, NewScanErr(ErrBadHash, pos)
}

func (s *Scanner) scanWord(first byte, pos Pos) (Token, error) {
	s.buf = s.buf[:0]
	s.app(first)
	for {
		c, eof, err := s.read()
		if err != nil {
			return Token{}, err
		}
		if eof {
			break
		}
		if isBreak(c) {
			s.unread()
			break
		}
		s.app(c)
	}
	return Token{Type: classify(s.buf), Text: string(s.buf), Pos: pos}, nil
}

func (s *Scanner) app(c byte) {
	if len(s.buf) < MaxTokenLen {
		s.buf = append(s.buf, c)
	}
}

// classify decides whether a word is the dot marker, an integer, a real
// or a symbol. Anything with a character outside [0-9.-], a non-leading
// '-', several dots or no digits at all is a symbol.
func classify(w []byte) Type {
	if len(w) == 1 && w[0] == '.' {
		return TDot
	}
	digits, dots := 0, 0
	for i, c := range w {
		switch {
		case isDigit(c):
			digits++
		case c == '.':
			dots++
		case c == '-':
			if i != 0 {
				return TSymbol
			}
		default:
			return TSymbol
		}
	}
	if digits == 0 {
		return TSymbol
	}
	switch dots {
	case 0:
		return TInt
	case 1:
		return TReal
	}
	return TSymbol
}
