// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binarypack

import (
	"fmt"
	"math"
	"sort"
)

// FromGo converts a plain Go value into the Value model. Supported
// inputs: nil, bool, string, []byte, all Go integer types, float32,
// float64, []any, map[string]any, map[any]any, and anything that is
// already a Value (returned unchanged). Anything else errors.
//
// Integers take the narrowest variant that represents them, unsigned
// preferred for non-negative values: 200 becomes Uint8, 258 Uint16,
// -5 Int8, -200 Int16, and so on. Map entries are ordered by key
// (sorted string keys, or sorted canonical key bytes for map[any]any)
// so the same Go map always converts to the same Value.
func FromGo(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case []byte:
		return Raw(append([]byte(nil), v...)), nil
	case float32:
		return Float(v), nil
	case float64:
		return Double(v), nil
	case int:
		return integerValue(int64(v)), nil
	case int8:
		return integerValue(int64(v)), nil
	case int16:
		return integerValue(int64(v)), nil
	case int32:
		return integerValue(int64(v)), nil
	case int64:
		return integerValue(v), nil
	case uint8:
		return Uint8(v), nil
	case uint16:
		return integerValue(int64(v)), nil
	case uint32:
		return integerValue(int64(v)), nil
	case uint:
		return unsignedValue(uint64(v)), nil
	case uint64:
		return unsignedValue(v), nil
	case []any:
		elements := make(Array, 0, len(v))
		for i, item := range v {
			element, err := FromGo(item)
			if err != nil {
				return nil, fmt.Errorf("array element %d: %w", i, err)
			}
			elements = append(elements, element)
		}
		return elements, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		entries := make([]MapEntry, 0, len(v))
		for _, key := range keys {
			value, err := FromGo(v[key])
			if err != nil {
				return nil, fmt.Errorf("map entry %q: %w", key, err)
			}
			entries = append(entries, MapEntry{Key: String(key), Value: value})
		}
		return NewMap(entries...), nil
	case map[any]any:
		entries := make([]MapEntry, 0, len(v))
		for goKey, goValue := range v {
			key, err := FromGo(goKey)
			if err != nil {
				return nil, fmt.Errorf("map key %v: %w", goKey, err)
			}
			value, err := FromGo(goValue)
			if err != nil {
				return nil, fmt.Errorf("map entry %v: %w", goKey, err)
			}
			entries = append(entries, MapEntry{Key: key, Value: value})
		}
		sort.Slice(entries, func(i, j int) bool {
			return string(appendCanonical(nil, entries[i].Key)) < string(appendCanonical(nil, entries[j].Key))
		})
		return NewMap(entries...), nil
	}
	return nil, fmt.Errorf("binarypack: cannot convert %T to a value", v)
}

// integerValue picks the narrowest integer variant for n, preferring
// unsigned for non-negative values. This is the range ladder wire
// producers use when packing native numbers.
func integerValue(n int64) Value {
	if n >= 0 {
		switch {
		case n <= math.MaxUint8:
			return Uint8(n)
		case n <= math.MaxUint16:
			return Uint16(n)
		case n <= math.MaxUint32:
			return Uint32(n)
		default:
			return Int64(n)
		}
	}
	switch {
	case n >= math.MinInt8:
		return Int8(n)
	case n >= math.MinInt16:
		return Int16(n)
	case n >= math.MinInt32:
		return Int32(n)
	default:
		return Int64(n)
	}
}

// unsignedValue is integerValue for inputs that may exceed the int64
// range.
func unsignedValue(n uint64) Value {
	if n > math.MaxInt64 {
		return Uint64(n)
	}
	return integerValue(int64(n))
}

// ToGo projects a Value onto plain Go values: variants map to their
// natural Go types, Null and Undefined both to nil, Array to []any,
// and Map to map[string]any when every key is a text string or
// map[any]any when keys are other scalars. A map with a container
// key (array or map) has no Go-map projection and errors.
func ToGo(v Value) (any, error) {
	switch v := v.(type) {
	case Uint8:
		return uint8(v), nil
	case Uint16:
		return uint16(v), nil
	case Uint32:
		return uint32(v), nil
	case Uint64:
		return uint64(v), nil
	case Int8:
		return int8(v), nil
	case Int16:
		return int16(v), nil
	case Int32:
		return int32(v), nil
	case Int64:
		return int64(v), nil
	case Float:
		return float32(v), nil
	case Double:
		return float64(v), nil
	case Bool:
		return bool(v), nil
	case String:
		return string(v), nil
	case Raw:
		return append([]byte(nil), v...), nil
	case Null:
		return nil, nil
	case Undefined:
		return nil, nil
	case Array:
		elements := make([]any, 0, len(v))
		for i, element := range v {
			item, err := ToGo(element)
			if err != nil {
				return nil, fmt.Errorf("array element %d: %w", i, err)
			}
			elements = append(elements, item)
		}
		return elements, nil
	case Map:
		return mapToGo(v)
	}
	return nil, fmt.Errorf("binarypack: cannot project %T", v)
}

func mapToGo(m Map) (any, error) {
	allText := true
	for _, entry := range m.entries {
		switch entry.Key.(type) {
		case String:
		case Array, Map, Raw:
			return nil, fmt.Errorf("binarypack: map key %s has no Go map projection", variantName(entry.Key))
		default:
			allText = false
		}
	}
	if allText {
		out := make(map[string]any, len(m.entries))
		for _, entry := range m.entries {
			value, err := ToGo(entry.Value)
			if err != nil {
				return nil, fmt.Errorf("map entry %q: %w", string(entry.Key.(String)), err)
			}
			out[string(entry.Key.(String))] = value
		}
		return out, nil
	}
	out := make(map[any]any, len(m.entries))
	for _, entry := range m.entries {
		key, err := ToGo(entry.Key)
		if err != nil {
			return nil, err
		}
		value, err := ToGo(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("map entry %v: %w", key, err)
		}
		out[key] = value
	}
	return out, nil
}

// variantName names a variant for error messages.
func variantName(v Value) string {
	switch v.(type) {
	case Uint8, Uint16, Uint32, Uint64:
		return "unsigned integer"
	case Int8, Int16, Int32, Int64:
		return "signed integer"
	case Float:
		return "float"
	case Double:
		return "double"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Raw:
		return "raw bytes"
	case Null:
		return "null"
	case Undefined:
		return "undefined"
	case Array:
		return "array"
	case Map:
		return "map"
	}
	return fmt.Sprintf("%T", v)
}
