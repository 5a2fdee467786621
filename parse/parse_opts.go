package parse

// DefaultMaxDepth bounds list nesting. Recursive descent burns a stack
// frame per level, so depth past the bound is a parse error rather than
// unbounded stack growth.
const DefaultMaxDepth = 512

type ParseOption func(*parseOpts)

type parseOpts struct {
	maxDepth int
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, o := range opts {
		o(pOpts)
	}
	return pOpts
}

// MaxDepth overrides the nesting bound.
func MaxDepth(n int) ParseOption {
	return func(po *parseOpts) { po.maxDepth = n }
}
