package token

import "io"

// The scanner reads from any io.ByteScanner: ReadByte is the next-char
// primitive and UnreadByte the one-byte unget. bufio.Reader covers files,
// bytes.Reader and strings.Reader cover in-memory buffers, and FuncSource
// adapts a caller-supplied callback pair. The scanner never ungets more
// than one byte without an intervening read.

// FuncSource adapts a pair of caller-supplied functions to io.ByteScanner
// for backing stores the standard readers cannot express.
type FuncSource struct {
	Next  func() (byte, error)
	Unget func(byte) error

	last    byte
	haveLst bool
}

var _ io.ByteScanner = (*FuncSource)(nil)

func (f *FuncSource) ReadByte() (byte, error) {
	c, err := f.Next()
	if err != nil {
		f.haveLst = false
		return 0, err
	}
	f.last = c
	f.haveLst = true
	return c, nil
}

func (f *FuncSource) UnreadByte() error {
	if !f.haveLst {
		return ErrUnget
	}
	f.haveLst = false
	return f.Unget(f.last)
}
