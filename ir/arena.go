package ir

// blockCap is the node capacity of one arena block. Blocks are never
// grown in place, so node addresses stay stable for the arena's life.
const blockCap = 1024

// Arena hands out Object nodes from fixed-capacity blocks by bumping a
// cursor. There is no per-node free: Reset drops every block at once,
// and no node obtained before a Reset may be used after it.
type Arena struct {
	blocks [][]Object
}

func NewArena() *Arena {
	return &Arena{}
}

// New returns a zeroed node, opening a fresh block when the current one
// is full.
func (a *Arena) New() *Object {
	n := len(a.blocks)
	if n == 0 || len(a.blocks[n-1]) == blockCap {
		a.blocks = append(a.blocks, make([]Object, 0, blockCap))
		n++
	}
	b := &a.blocks[n-1]
	*b = append(*b, Object{})
	return &(*b)[len(*b)-1]
}

// Reset releases all blocks. Every node the arena has produced becomes
// invalid simultaneously.
func (a *Arena) Reset() {
	a.blocks = nil
}

// Len reports the number of live nodes.
func (a *Arena) Len() int {
	n := 0
	for i := range a.blocks {
		n += len(a.blocks[i])
	}
	return n
}
