package token

const (
	clWhite = 1 << iota
	clDelim
	clDigit
)

// classTab tags every byte as whitespace, delimiter and/or digit so the
// scanner can classify with one table lookup.
var classTab [256]uint8

func init() {
	for _, c := range []byte{' ', '\t', '\r', '\n', '\v', '\f'} {
		classTab[c] |= clWhite
	}
	for _, c := range []byte{'(', ')', ';', '"'} {
		classTab[c] |= clDelim
	}
	for c := byte('0'); c <= '9'; c++ {
		classTab[c] |= clDigit
	}
}

func isWhite(c byte) bool {
	return classTab[c]&clWhite != 0
}

func isDelim(c byte) bool {
	return classTab[c]&clDelim != 0
}

func isDigit(c byte) bool {
	return classTab[c]&clDigit != 0
}

// isBreak reports whether c ends a word.
func isBreak(c byte) bool {
	return classTab[c]&(clWhite|clDelim) != 0
}
