package token

import "strconv"

// Pos is a line/column position in the input, both zero-based.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return strconv.Itoa(p.Line+1) + ":" + strconv.Itoa(p.Col+1)
}
