// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binarypack

import (
	"testing"
)

func TestDigestDeterministic(t *testing.T) {
	v := Array{Uint8(1), String("x"), NewMap(MapEntry{Key: String("k"), Value: Null{}})}
	if Digest(v) != Digest(v) {
		t.Error("Digest produced different results for the same value")
	}
}

func TestDigestConsistentWithEqual(t *testing.T) {
	// Equal values must digest identically even when built in a
	// different insertion order.
	forward := NewMap(
		MapEntry{Key: String("a"), Value: Uint8(1)},
		MapEntry{Key: String("b"), Value: Array{Uint8(2), Uint8(3)}},
	)
	reversed := NewMap(
		MapEntry{Key: String("b"), Value: Array{Uint8(2), Uint8(3)}},
		MapEntry{Key: String("a"), Value: Uint8(1)},
	)
	if !Equal(forward, reversed) {
		t.Fatal("test precondition failed: maps are not Equal")
	}
	if Digest(forward) != Digest(reversed) {
		t.Error("Equal maps produced different digests")
	}

	// Nested maps reorder too.
	outerForward := NewMap(MapEntry{Key: String("inner"), Value: forward})
	outerReversed := NewMap(MapEntry{Key: String("inner"), Value: reversed})
	if Digest(outerForward) != Digest(outerReversed) {
		t.Error("Equal nested maps produced different digests")
	}
}

func TestDigestSeparatesVariants(t *testing.T) {
	// Same numeric value, different variant: different identity,
	// different digest.
	pairs := []struct {
		name string
		a, b Value
	}{
		{"width", Uint8(5), Uint16(5)},
		{"signedness", Uint8(5), Int8(5)},
		{"text vs raw", String("ab"), Raw("ab")},
		{"null vs undefined", Null{}, Undefined{}},
		{"value", Uint8(5), Uint8(6)},
	}
	for _, pair := range pairs {
		if Digest(pair.a) == Digest(pair.b) {
			t.Errorf("%s: %#v and %#v digest identically", pair.name, pair.a, pair.b)
		}
	}
}

func TestFormatDigest(t *testing.T) {
	formatted := FormatDigest(Digest(Null{}))
	if len(formatted) != 64 {
		t.Errorf("FormatDigest length = %d, want 64 hex characters", len(formatted))
	}
	for _, c := range formatted {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			t.Fatalf("FormatDigest produced non-hex character %q", c)
		}
	}
}
