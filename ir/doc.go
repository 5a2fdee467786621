// Package ir defines the in-memory object graph for s-expression data.
//
// Objects are tagged nodes allocated from an Arena and built through a
// Context, which also owns the string intern table. The nil *Object is
// the empty list: it has no node, and every proper list is a chain of
// cons cells ending in it. Atom text is interned, so two parsed atoms
// with equal text share one canonical string.
//
// Accessors are type-checked contracts. Calling Car on an integer is a
// caller bug and panics; bad input never reaches an accessor panic
// because the parser reports malformed text as errors.
package ir
