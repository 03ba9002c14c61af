// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binarypack

import (
	"bytes"
)

// Value is one decoded or constructed BinaryPack value. The variant
// set is closed: only the types in this file implement the interface,
// so a type switch over all of them is exhaustive. A Value is
// immutable after construction.
type Value interface {
	// isValue restricts implementations to this package's fixed
	// variant set.
	isValue()
}

// Unsigned integer variants. Each carries its declared wire width:
// Uint16(5) and Uint8(5) are distinct values and encode differently.
type (
	// Uint8 is an unsigned 8-bit integer. Values below 0x80 encode
	// as a single positive-fixint byte.
	Uint8 uint8
	// Uint16 is an unsigned 16-bit integer.
	Uint16 uint16
	// Uint32 is an unsigned 32-bit integer.
	Uint32 uint32
	// Uint64 is an unsigned 64-bit integer.
	Uint64 uint64
)

// Signed integer variants at the same four widths.
type (
	// Int8 is a signed 8-bit integer. Values in [-32, -1] encode as
	// a single negative-fixint byte.
	Int8 int8
	// Int16 is a signed 16-bit integer.
	Int16 int16
	// Int32 is a signed 32-bit integer.
	Int32 int32
	// Int64 is a signed 64-bit integer.
	Int64 int64
)

// Float is an IEEE-754 binary32 floating point value.
type Float float32

// Double is an IEEE-754 binary64 floating point value.
type Double float64

// Bool is a boolean value.
type Bool bool

// String is a UTF-8 text string. The decoder rejects payloads that
// are not valid UTF-8.
type String string

// Raw is an uninterpreted byte payload. No text validation applies.
type Raw []byte

// Null is the null value.
type Null struct{}

// Undefined is the placeholder the decoder produces for tag bytes
// outside the defined table. It exists so forward-incompatible input
// decodes leniently instead of failing.
type Undefined struct{}

// Array is an ordered sequence of Values.
type Array []Value

// MapEntry is one key/value pair of a Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is a mapping from Value to Value. Keys are unique under
// structural equality and may be any Value, containers included.
// Entry order is the insertion (or decode) order; it is preserved by
// [Map.Entries] and by encoding, but is irrelevant to [Equal] and
// [Digest]. Construct with [NewMap]; a Map is read-only afterward.
type Map struct {
	entries []MapEntry
	// index maps the canonical encoding of each key to its position
	// in entries, giving O(1) lookup under structural equality.
	index map[string]int
}

func (Uint8) isValue()     {}
func (Uint16) isValue()    {}
func (Uint32) isValue()    {}
func (Uint64) isValue()    {}
func (Int8) isValue()      {}
func (Int16) isValue()     {}
func (Int32) isValue()     {}
func (Int64) isValue()     {}
func (Float) isValue()     {}
func (Double) isValue()    {}
func (Bool) isValue()      {}
func (String) isValue()    {}
func (Raw) isValue()       {}
func (Null) isValue()      {}
func (Undefined) isValue() {}
func (Array) isValue()     {}
func (Map) isValue()       {}

// NewMap builds a Map from the given entries. When two entries have
// structurally equal keys, the later entry wins — the same behavior
// as repeated assignment to a JavaScript object, which is what the
// original wire producers do.
func NewMap(entries ...MapEntry) Map {
	m := Map{
		entries: make([]MapEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		key := string(appendCanonical(nil, entry.Key))
		if at, ok := m.index[key]; ok {
			m.entries[at] = entry
			continue
		}
		m.index[key] = len(m.entries)
		m.entries = append(m.entries, entry)
	}
	return m
}

// Len returns the number of entries.
func (m Map) Len() int {
	return len(m.entries)
}

// Get returns the value stored under a key structurally equal to key,
// and whether such an entry exists.
func (m Map) Get(key Value) (Value, bool) {
	at, ok := m.index[string(appendCanonical(nil, key))]
	if !ok {
		return nil, false
	}
	return m.entries[at].Value, true
}

// Entries returns the entries in insertion order. The returned slice
// is a copy; mutating it does not affect the Map.
func (m Map) Entries() []MapEntry {
	out := make([]MapEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Equal reports whether two Values are structurally equal: same
// variant, and for containers, same size with pairwise-equal elements
// (arrays) or every key present in both maps with equal values (maps,
// entry order irrelevant). Uint8(5) and Uint16(5) are not equal —
// the variant is part of the identity.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Uint8:
		b, ok := b.(Uint8)
		return ok && a == b
	case Uint16:
		b, ok := b.(Uint16)
		return ok && a == b
	case Uint32:
		b, ok := b.(Uint32)
		return ok && a == b
	case Uint64:
		b, ok := b.(Uint64)
		return ok && a == b
	case Int8:
		b, ok := b.(Int8)
		return ok && a == b
	case Int16:
		b, ok := b.(Int16)
		return ok && a == b
	case Int32:
		b, ok := b.(Int32)
		return ok && a == b
	case Int64:
		b, ok := b.(Int64)
		return ok && a == b
	case Float:
		b, ok := b.(Float)
		return ok && a == b
	case Double:
		b, ok := b.(Double)
		return ok && a == b
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Raw:
		b, ok := b.(Raw)
		return ok && bytes.Equal(a, b)
	case Null:
		_, ok := b.(Null)
		return ok
	case Undefined:
		_, ok := b.(Undefined)
		return ok
	case Array:
		b, ok := b.(Array)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case Map:
		b, ok := b.(Map)
		if !ok || len(a.entries) != len(b.entries) {
			return false
		}
		for key, at := range a.index {
			bAt, ok := b.index[key]
			if !ok || !Equal(a.entries[at].Value, b.entries[bAt].Value) {
				return false
			}
		}
		return true
	}
	return false
}
