// Package intern provides a deduplicating string table.
//
// Symbols and strings in an s-expression document repeat heavily, and the
// reader funnels every atom's text through one table so that equal text has
// one canonical storage. Equality between parsed atoms then reduces to
// comparing canonical strings, which short-circuits on identity.
package intern

// Table maps string content to one canonical owned copy.
type Table struct {
	pool map[string]string
}

func New() *Table {
	return &Table{pool: make(map[string]string, 128)}
}

// Intern returns the canonical copy of s, storing s if it is new.
func (t *Table) Intern(s string) string {
	if c, ok := t.pool[s]; ok {
		return c
	}
	t.pool[s] = s
	return s
}

// InternBytes interns the content of b without allocating when the
// content has been seen before.
func (t *Table) InternBytes(b []byte) string {
	if c, ok := t.pool[string(b)]; ok {
		return c
	}
	s := string(b)
	t.pool[s] = s
	return s
}

// Len reports the number of distinct strings in the table.
func (t *Table) Len() int {
	return len(t.pool)
}
