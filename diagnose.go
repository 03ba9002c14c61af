// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binarypack

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Diagnose decodes a buffer and returns its diagnostic notation, a
// human-readable one-line rendering in the spirit of RFC 8949 §8:
// quoted strings, h'..' byte strings, bracketed containers, bare
// null/undefined/true/false. For debugging and log output only — the
// notation is not a parseable interchange format.
func Diagnose(data []byte) (string, error) {
	v, err := Decode(data)
	if err != nil {
		return "", err
	}
	return Format(v), nil
}

// Format returns the diagnostic notation of an in-memory Value. Map
// entries render in insertion order.
func Format(v Value) string {
	var b strings.Builder
	formatValue(&b, v)
	return b.String()
}

func formatValue(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case Uint8:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case Uint16:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case Uint32:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case Uint64:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case Int8:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case Int16:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case Int32:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case Int64:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case Float:
		b.WriteString(formatFloat(float64(v), 32))
	case Double:
		b.WriteString(formatFloat(float64(v), 64))
	case Bool:
		b.WriteString(strconv.FormatBool(bool(v)))
	case String:
		b.WriteString(strconv.Quote(string(v)))
	case Raw:
		b.WriteString("h'")
		b.WriteString(hex.EncodeToString(v))
		b.WriteString("'")
	case Null:
		b.WriteString("null")
	case Undefined:
		b.WriteString("undefined")
	case Array:
		b.WriteString("[")
		for i, element := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			formatValue(b, element)
		}
		b.WriteString("]")
	case Map:
		b.WriteString("{")
		for i, entry := range v.entries {
			if i > 0 {
				b.WriteString(", ")
			}
			formatValue(b, entry.Key)
			b.WriteString(": ")
			formatValue(b, entry.Value)
		}
		b.WriteString("}")
	}
}

// formatFloat renders a float so that integral values still read as
// floating point (2 renders as 2.0, matching diagnostic notation).
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
