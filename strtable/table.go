// Package strtable implements an open-addressed hash table keyed by
// interned strings, with linear probing and tombstone deletion. Grounded
// on original_source/nlib/include/netuno/table.h and
// original_source/ntr/source/table.c.
package strtable

import "netuno/strintern"

const maxLoad = 0.75

type entry struct {
	key   *strintern.String // nil means empty or tombstone
	value any
	// tombstone distinguishes a deleted slot (true) from a never-used one
	// (false); both have key == nil.
	tombstone bool
}

// Table is an open-addressed map from interned strings to arbitrary
// values. The zero value is ready to use.
type Table struct {
	count   int // live entries plus tombstones, used for the load-factor check
	entries []entry
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Len returns the number of live key/value pairs.
func (t *Table) Len() int {
	n := 0
	for _, e := range t.entries {
		if e.key != nil {
			n++
		}
	}
	return n
}

func probeStart(hash uint32, size int) int {
	return int(hash) % size
}

func (t *Table) findEntry(entries []entry, key *strintern.String) *entry {
	size := len(entries)
	index := probeStart(key.Hash(), size)
	var tombstone *entry
	for {
		e := &entries[index]
		if e.key == nil {
			if !e.tombstone {
				if tombstone != nil {
					return tombstone
				}
				return e
			}
			if tombstone == nil {
				tombstone = e
			}
		} else if e.key == key {
			return e
		}
		index = (index + 1) % size
	}
}

func (t *Table) adjustSize(size int) {
	entries := make([]entry, size)
	t.count = 0
	for _, e := range t.entries {
		if e.key == nil {
			continue
		}
		dest := t.findEntry(entries, e.key)
		dest.key = e.key
		dest.value = e.value
		t.count++
	}
	t.entries = entries
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Set inserts or overwrites the value for key, growing the table first if
// the load factor would exceed 0.75. Returns true if key was not already
// present.
func (t *Table) Set(key *strintern.String, value any) bool {
	if len(t.entries) == 0 || float64(t.count+1) > float64(len(t.entries))*maxLoad {
		newSize := maxInt(len(t.entries)*3/2, 4)
		t.adjustSize(newSize)
	}

	e := t.findEntry(t.entries, key)
	isNewKey := e.key == nil
	if isNewKey && !e.tombstone {
		t.count++
	}
	e.key = key
	e.value = value
	e.tombstone = false
	return isNewKey
}

// Get reports whether key is present, returning its value.
func (t *Table) Get(key *strintern.String) (value any, ok bool) {
	if t.count == 0 {
		return nil, false
	}
	e := t.findEntry(t.entries, key)
	if e.key == nil {
		return nil, false
	}
	return e.value, true
}

// Delete removes key, leaving a tombstone so later probes still find keys
// that hashed past it. Returns the removed value and whether key was
// present.
func (t *Table) Delete(key *strintern.String) (value any, ok bool) {
	if t.count == 0 {
		return nil, false
	}
	e := t.findEntry(t.entries, key)
	if e.key == nil {
		return nil, false
	}
	value = e.value
	e.key = nil
	e.value = nil
	e.tombstone = true
	return value, true
}

// AddAll copies every entry of from into t, overwriting existing keys.
func (t *Table) AddAll(from *Table) {
	for _, e := range from.entries {
		if e.key != nil {
			t.Set(e.key, e.value)
		}
	}
}

// ForAll invokes fn for every live entry. Iteration order is the table's
// internal slot order, not insertion order.
func (t *Table) ForAll(fn func(key *strintern.String, value any)) {
	for _, e := range t.entries {
		if e.key != nil {
			fn(e.key, e.value)
		}
	}
}

// FindString looks up a key by raw content instead of by interned
// identity, the way the intern table itself must (it cannot intern a
// string before knowing whether one already exists). Grounded on
// ntTableFindString.
func (t *Table) FindString(chars string, hash uint32) *strintern.String {
	if t.count == 0 {
		return nil
	}
	size := len(t.entries)
	index := int(hash) % size
	for {
		e := &t.entries[index]
		if e.key == nil {
			if !e.tombstone {
				return nil
			}
		} else if e.key.Len() == len(chars) && e.key.Hash() == hash && e.key.Chars() == chars {
			return e.key
		}
		index = (index + 1) % size
	}
}
