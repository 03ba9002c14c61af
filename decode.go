// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binarypack

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Decode reads one value from the start of data. Trailing bytes after
// a complete value are not an error; use [DecodeAll] to consume a
// buffer holding several values back to back.
//
// Truncation anywhere — a missing tag, a short integer, a container
// whose declared size exceeds the remaining bytes — fails with an
// error wrapping [ErrEndOfData]. A string payload that is not valid
// UTF-8 fails with an error wrapping [ErrInvalidText]. On failure no
// partial value is returned. Tag bytes outside the defined table
// decode to [Undefined].
//
// Decode never mutates data and holds no state between calls.
// Recursion depth tracks container nesting; inputs from untrusted
// peers that could nest pathologically deep should be bounded by the
// caller before decoding.
func Decode(data []byte) (Value, error) {
	d := decoder{data: data}
	return d.value()
}

// DecodeAll decodes consecutive values until the buffer is exhausted.
// An empty buffer yields an empty slice. Any failure mid-buffer
// aborts with that error and no values.
func DecodeAll(data []byte) ([]Value, error) {
	d := decoder{data: data}
	var values []Value
	for d.pos < len(d.data) {
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// decoder is the read cursor over one buffer. It only ever advances
// pos; the underlying bytes are never written.
type decoder struct {
	data []byte
	pos  int
}

// value decodes one complete value at the cursor.
func (d *decoder) value() (Value, error) {
	tag, err := d.readUint(1)
	if err != nil {
		return nil, err
	}
	b := byte(tag)

	// Fixed forms: the tag byte itself carries the value or size.
	switch {
	case b < 0x80:
		return Uint8(b), nil
	case b^0xE0 < 0x20:
		return Int8(int8(b^0xE0) - 0x20), nil
	case b^fixMapBase <= 0x0F:
		return d.mapValue(uint64(b & 0x0F))
	case b^fixArrayBase <= 0x0F:
		return d.arrayValue(uint64(b & 0x0F))
	case b^fixRawBase <= 0x0F:
		return d.rawValue(uint64(b & 0x0F))
	case b^fixStringBase <= 0x0F:
		return d.stringValue(uint64(b & 0x0F))
	}

	switch b {
	case tagNull:
		return Null{}, nil
	case tagFalse:
		return Bool(false), nil
	case tagTrue:
		return Bool(true), nil
	case tagFloat32:
		bits, err := d.readUint(4)
		if err != nil {
			return nil, err
		}
		return Float(math.Float32frombits(uint32(bits))), nil
	case tagFloat64:
		bits, err := d.readUint(8)
		if err != nil {
			return nil, err
		}
		return Double(math.Float64frombits(bits)), nil
	case tagUint8:
		v, err := d.readUint(1)
		if err != nil {
			return nil, err
		}
		return Uint8(v), nil
	case tagUint16:
		v, err := d.readUint(2)
		if err != nil {
			return nil, err
		}
		return Uint16(v), nil
	case tagUint32:
		v, err := d.readUint(4)
		if err != nil {
			return nil, err
		}
		return Uint32(v), nil
	case tagUint64:
		v, err := d.readUint(8)
		if err != nil {
			return nil, err
		}
		return Uint64(v), nil
	case tagInt8:
		v, err := d.readUint(1)
		if err != nil {
			return nil, err
		}
		return Int8(v), nil
	case tagInt16:
		v, err := d.readUint(2)
		if err != nil {
			return nil, err
		}
		return Int16(v), nil
	case tagInt32:
		v, err := d.readUint(4)
		if err != nil {
			return nil, err
		}
		return Int32(v), nil
	case tagInt64:
		v, err := d.readUint(8)
		if err != nil {
			return nil, err
		}
		return Int64(v), nil
	case tagString16, tagString32:
		size, err := d.readLength(b == tagString32)
		if err != nil {
			return nil, err
		}
		return d.stringValue(size)
	case tagRaw16, tagRaw32:
		size, err := d.readLength(b == tagRaw32)
		if err != nil {
			return nil, err
		}
		return d.rawValue(size)
	case tagArray16, tagArray32:
		size, err := d.readLength(b == tagArray32)
		if err != nil {
			return nil, err
		}
		return d.arrayValue(size)
	case tagMap16, tagMap32:
		size, err := d.readLength(b == tagMap32)
		if err != nil {
			return nil, err
		}
		return d.mapValue(size)
	}

	// Tags outside the table (0xC1, 0xC4–0xC9, 0xD4–0xD7) are
	// reserved; a conforming encoder never emits them (except 0xC1
	// for Undefined), but forward-incompatible input may. Lenient
	// fallback instead of an error.
	return Undefined{}, nil
}

// readUint reads a big-endian unsigned integer of the given byte
// width. One loop covers every width the format uses (1, 2, 4, 8).
func (d *decoder) readUint(width int) (uint64, error) {
	if len(d.data)-d.pos < width {
		return 0, fmt.Errorf("reading %d-byte integer at offset %d: %w", width, d.pos, ErrEndOfData)
	}
	var v uint64
	for _, b := range d.data[d.pos : d.pos+width] {
		v = v<<8 | uint64(b)
	}
	d.pos += width
	return v, nil
}

// readLength reads a 16- or 32-bit big-endian length prefix.
func (d *decoder) readLength(wide bool) (uint64, error) {
	if wide {
		return d.readUint(4)
	}
	return d.readUint(2)
}

// readBytes consumes size bytes of payload. The declared size is
// checked against the remaining input before anything else, so a
// hostile 32-bit length cannot trigger a large allocation.
func (d *decoder) readBytes(size uint64) ([]byte, error) {
	if size > uint64(len(d.data)-d.pos) {
		return nil, fmt.Errorf("payload of %d bytes at offset %d exceeds remaining input: %w", size, d.pos, ErrEndOfData)
	}
	payload := d.data[d.pos : d.pos+int(size)]
	d.pos += int(size)
	return payload, nil
}

func (d *decoder) rawValue(size uint64) (Value, error) {
	payload, err := d.readBytes(size)
	if err != nil {
		return nil, err
	}
	// Copy so the Value does not alias the caller's buffer.
	return Raw(append([]byte(nil), payload...)), nil
}

func (d *decoder) stringValue(size uint64) (Value, error) {
	start := d.pos
	payload, err := d.readBytes(size)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(payload) {
		return nil, fmt.Errorf("string of %d bytes at offset %d: %w", size, start, ErrInvalidText)
	}
	return String(payload), nil
}

func (d *decoder) arrayValue(size uint64) (Value, error) {
	// Every element occupies at least one byte, so a declared count
	// beyond the remaining input can never complete.
	if size > uint64(len(d.data)-d.pos) {
		return nil, fmt.Errorf("array of %d elements at offset %d exceeds remaining input: %w", size, d.pos, ErrEndOfData)
	}
	elements := make(Array, 0, size)
	for i := uint64(0); i < size; i++ {
		element, err := d.value()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
	return elements, nil
}

func (d *decoder) mapValue(size uint64) (Value, error) {
	// Every entry occupies at least two bytes (key tag + value tag).
	if size > uint64(len(d.data)-d.pos)/2 {
		return nil, fmt.Errorf("map of %d entries at offset %d exceeds remaining input: %w", size, d.pos, ErrEndOfData)
	}
	entries := make([]MapEntry, 0, size)
	for i := uint64(0); i < size; i++ {
		key, err := d.value()
		if err != nil {
			return nil, err
		}
		value, err := d.value()
		if err != nil {
			return nil, err
		}
		entries = append(entries, MapEntry{Key: key, Value: value})
	}
	return NewMap(entries...), nil
}
