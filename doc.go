// Package sx reads, writes and matches a small s-expression data
// format: atoms (symbols, strings, 32-bit integers and reals, #t/#f),
// proper and dotted lists, ';' comments, and #?( pattern lists.
//
// The layering is
//
//	token  -> parse -> ir (arena + interned atoms)
//	ir     -> encode (concrete syntax out)
//	sx     -> pattern compile/match, keyed Reader/Writer facades,
//	          YAML/JSON bridge
//
// All allocation goes through an ir.Context, a caller-owned value whose
// Reset invalidates every node it produced at once.
package sx
