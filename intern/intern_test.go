package intern

import (
	"strings"
	"testing"
	"unsafe"
)

func TestIntern(t *testing.T) {
	tb := New()
	a := tb.Intern("foo")
	b := tb.Intern(strings.Repeat("fo", 1) + "o")
	if a != b {
		t.Fatal("intern returned different content")
	}
	if unsafe.StringData(a) != unsafe.StringData(b) {
		t.Fatal("intern returned distinct storage")
	}
	if tb.Len() != 1 {
		t.Fatalf("table size %d", tb.Len())
	}
}

func TestInternBytes(t *testing.T) {
	tb := New()
	a := tb.Intern("bar")
	b := tb.InternBytes([]byte("bar"))
	if unsafe.StringData(a) != unsafe.StringData(b) {
		t.Fatal("InternBytes returned distinct storage")
	}
	c := tb.InternBytes([]byte("baz"))
	if c != "baz" || tb.Len() != 2 {
		t.Fatalf("got %q, size %d", c, tb.Len())
	}
}
