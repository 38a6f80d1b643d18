// Package registry holds the ID-indexed lookup tables that generated
// registry packages are backed by.
package registry

import "fmt"

// LookupError is the panic value of Table.Get when an ID is not registered.
type LookupError struct {
	Kind string
	ID   int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s ID %d not found", e.Kind, e.ID)
}

// Table is an immutable lookup of records by numeric ID and, optionally, by
// name. It is built once by NewTable and safe for concurrent reads.
type Table[K ~int, R any] struct {
	kind   string
	byID   map[K]R
	byName map[string]R
	all    []R
}

// NewTable indexes records by id. A later record with an ID already seen
// replaces the earlier one. name may be nil, in which case ByName never
// matches.
func NewTable[K ~int, R any](kind string, records []R, id func(R) K, name func(R) string) *Table[K, R] {
	t := &Table[K, R]{
		kind: kind,
		byID: make(map[K]R, len(records)),
		all:  make([]R, len(records)),
	}
	copy(t.all, records)

	for _, r := range records {
		t.byID[id(r)] = r
	}

	if name != nil {
		t.byName = IndexBy(records, name)
	}

	return t
}

// Kind returns the record kind the table was built for, e.g. "Block".
func (t *Table[K, R]) Kind() string {
	return t.kind
}

func (t *Table[K, R]) Lookup(id K) (R, bool) {
	r, ok := t.byID[id]
	return r, ok
}

// Get returns the record registered under id and panics with a
// *LookupError if there is none.
func (t *Table[K, R]) Get(id K) R {
	r, ok := t.byID[id]
	if !ok {
		panic(&LookupError{Kind: t.kind, ID: int(id)})
	}
	return r
}

func (t *Table[K, R]) ByName(name string) (R, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// All returns the records in the order they were given to NewTable.
func (t *Table[K, R]) All() []R {
	out := make([]R, len(t.all))
	copy(out, t.all)
	return out
}

func (t *Table[K, R]) Len() int {
	return len(t.byID)
}
