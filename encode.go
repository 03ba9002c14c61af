// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binarypack

import (
	"fmt"
	"math"
	"sort"
)

// Wire-format tag bytes. Fixed-size forms pack a size of 0–15 into
// the low nibble of the base tag; everything else is a one-byte tag
// from the explicit table.
const (
	fixMapBase    = 0x80
	fixArrayBase  = 0x90
	fixRawBase    = 0xA0
	fixStringBase = 0xB0

	tagNull      = 0xC0
	tagUndefined = 0xC1
	tagFalse     = 0xC2
	tagTrue      = 0xC3
	tagFloat32   = 0xCA
	tagFloat64   = 0xCB
	tagUint8     = 0xCC
	tagUint16    = 0xCD
	tagUint32    = 0xCE
	tagUint64    = 0xCF
	tagInt8      = 0xD0
	tagInt16     = 0xD1
	tagInt32     = 0xD2
	tagInt64     = 0xD3
	tagString16  = 0xD8
	tagString32  = 0xD9
	tagRaw16     = 0xDA
	tagRaw32     = 0xDB
	tagArray16   = 0xDC
	tagArray32   = 0xDD
	tagMap16     = 0xDE
	tagMap32     = 0xDF
)

// Encode returns the canonical minimal-tag encoding of v. Encoding is
// total: every Value constructible from this package has a defined
// encoding, so there is no error path.
func Encode(v Value) []byte {
	return Append(nil, v)
}

// Append appends the encoding of v to dst and returns the extended
// slice, following the append convention so callers assembling larger
// buffers avoid intermediate allocations.
//
// Each non-container variant selects the smallest tag that represents
// it without changing its width: Uint8 below 0x80 is a bare
// positive-fixint byte, Int8 in [-32, -1] a negative-fixint byte, and
// wider integers always emit their full declared width. Containers
// and byte payloads pick the fixed-size tag for lengths up to 15, the
// 16-bit length prefix up to 65535, and the 32-bit prefix beyond.
// Map entries emit in insertion order.
//
// Append panics if v is nil: a nil Value is not part of the grammar
// (the null value is the Null variant).
func Append(dst []byte, v Value) []byte {
	switch v := v.(type) {
	case Uint8:
		if v < 0x80 {
			return append(dst, byte(v))
		}
		return append(dst, tagUint8, byte(v))
	case Uint16:
		return appendUint(append(dst, tagUint16), uint64(v), 2)
	case Uint32:
		return appendUint(append(dst, tagUint32), uint64(v), 4)
	case Uint64:
		return appendUint(append(dst, tagUint64), uint64(v), 8)
	case Int8:
		if v >= -32 && v <= -1 {
			return append(dst, byte(v+32)^0xE0)
		}
		return append(dst, tagInt8, byte(v))
	case Int16:
		return appendUint(append(dst, tagInt16), uint64(uint16(v)), 2)
	case Int32:
		return appendUint(append(dst, tagInt32), uint64(uint32(v)), 4)
	case Int64:
		return appendUint(append(dst, tagInt64), uint64(v), 8)
	case Float:
		return appendUint(append(dst, tagFloat32), uint64(math.Float32bits(float32(v))), 4)
	case Double:
		return appendUint(append(dst, tagFloat64), math.Float64bits(float64(v)), 8)
	case Bool:
		if v {
			return append(dst, tagTrue)
		}
		return append(dst, tagFalse)
	case Null:
		return append(dst, tagNull)
	case Undefined:
		// The format defines no tag for undefined; 0xC1 is outside
		// the defined table, is never emitted for any other variant,
		// and decodes back to Undefined through the lenient fallback,
		// so the round-trip property holds.
		return append(dst, tagUndefined)
	case String:
		dst = appendLength(dst, len(v), fixStringBase, tagString16, tagString32)
		return append(dst, v...)
	case Raw:
		dst = appendLength(dst, len(v), fixRawBase, tagRaw16, tagRaw32)
		return append(dst, v...)
	case Array:
		dst = appendLength(dst, len(v), fixArrayBase, tagArray16, tagArray32)
		for _, element := range v {
			dst = Append(dst, element)
		}
		return dst
	case Map:
		dst = appendLength(dst, len(v.entries), fixMapBase, tagMap16, tagMap32)
		for _, entry := range v.entries {
			dst = Append(dst, entry.Key)
			dst = Append(dst, entry.Value)
		}
		return dst
	}
	panic(fmt.Sprintf("binarypack: cannot encode %T (nil or foreign Value)", v))
}

// appendLength appends the length header for a payload of n elements
// or bytes: the fixed-size tag when n fits the low nibble, otherwise
// the 16- or 32-bit length-prefixed tag followed by the big-endian
// length at that width.
func appendLength(dst []byte, n int, fixBase byte, tag16, tag32 byte) []byte {
	switch {
	case n <= 0x0F:
		return append(dst, fixBase|byte(n))
	case n <= 0xFFFF:
		return appendUint(append(dst, tag16), uint64(n), 2)
	default:
		return appendUint(append(dst, tag32), uint64(n), 4)
	}
}

// appendUint appends the low `width` bytes of v most significant
// first.
func appendUint(dst []byte, v uint64, width int) []byte {
	for shift := (width - 1) * 8; shift >= 0; shift -= 8 {
		dst = append(dst, byte(v>>shift))
	}
	return dst
}

// appendCanonical appends the canonical-identity encoding of v. It is
// identical to Append except that map entries are sorted by their
// canonically encoded key bytes, making the output independent of
// insertion order. Structurally equal values always produce identical
// canonical bytes, which is what Map lookup, Equal-consistent
// hashing, and Digest rely on. The wire encoding keeps insertion
// order; only identity uses this form.
func appendCanonical(dst []byte, v Value) []byte {
	switch v := v.(type) {
	case Array:
		dst = appendLength(dst, len(v), fixArrayBase, tagArray16, tagArray32)
		for _, element := range v {
			dst = appendCanonical(dst, element)
		}
		return dst
	case Map:
		type pair struct {
			key   string
			value Value
		}
		pairs := make([]pair, 0, len(v.entries))
		for _, entry := range v.entries {
			pairs = append(pairs, pair{
				key:   string(appendCanonical(nil, entry.Key)),
				value: entry.Value,
			})
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
		dst = appendLength(dst, len(pairs), fixMapBase, tagMap16, tagMap32)
		for _, p := range pairs {
			dst = append(dst, p.key...)
			dst = appendCanonical(dst, p.value)
		}
		return dst
	default:
		return Append(dst, v)
	}
}
