// Package token provides tokenization of s-expression text.
//
// A Scanner consumes characters one at a time from any io.ByteScanner and
// yields tokens: parens, the #?( pattern-list opener, the dotted-pair
// marker, symbols, strings, integers, reals and the #t/#f booleans.
// Comments run from ';' to end of line and are skipped wherever whitespace
// is allowed.
package token
