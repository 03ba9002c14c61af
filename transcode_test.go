// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binarypack

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func TestTranscodeToCBOR(t *testing.T) {
	// {"name": "peer", "count": 3} in BinaryPack.
	input := Encode(NewMap(
		MapEntry{Key: String("name"), Value: String("peer")},
		MapEntry{Key: String("count"), Value: Uint8(3)},
	))

	out, err := TranscodeToCBOR(input)
	if err != nil {
		t.Fatalf("TranscodeToCBOR: %v", err)
	}

	var decoded map[string]any
	if err := cbor.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal transcoded CBOR: %v", err)
	}
	if decoded["name"] != "peer" {
		t.Errorf(`name = %#v, want "peer"`, decoded["name"])
	}
	if count, ok := decoded["count"].(uint64); !ok || count != 3 {
		t.Errorf("count = %#v, want 3", decoded["count"])
	}
}

func TestTranscodeToCBORDeterministic(t *testing.T) {
	// Core Deterministic Encoding sorts map keys, so two BinaryPack
	// buffers that differ only in map order transcode identically.
	forward := Encode(NewMap(
		MapEntry{Key: String("a"), Value: Uint8(1)},
		MapEntry{Key: String("b"), Value: Uint8(2)},
	))
	reversed := Encode(NewMap(
		MapEntry{Key: String("b"), Value: Uint8(2)},
		MapEntry{Key: String("a"), Value: Uint8(1)},
	))

	first, err := TranscodeToCBOR(forward)
	if err != nil {
		t.Fatalf("TranscodeToCBOR(forward): %v", err)
	}
	second, err := TranscodeToCBOR(reversed)
	if err != nil {
		t.Fatalf("TranscodeToCBOR(reversed): %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("order-differing maps transcoded differently:\n% X\n% X", first, second)
	}
}

func TestTranscodeToCBORErrors(t *testing.T) {
	if _, err := TranscodeToCBOR(nil); !errors.Is(err, ErrEndOfData) {
		t.Errorf("TranscodeToCBOR(empty) = %v, want ErrEndOfData", err)
	}

	// A map keyed by an array has no CBOR-side Go projection.
	containerKeyed := Encode(NewMap(MapEntry{Key: Array{Uint8(1)}, Value: Null{}}))
	if _, err := TranscodeToCBOR(containerKeyed); err == nil {
		t.Error("TranscodeToCBOR(container-keyed map) did not error")
	}
}

func TestTranscodeFromCBOR(t *testing.T) {
	cborBytes, err := cbor.Marshal(map[string]any{
		"greeting": "hello",
		"value":    42,
		"flags":    []any{true, false},
	})
	if err != nil {
		t.Fatalf("Marshal fixture: %v", err)
	}

	out, err := TranscodeFromCBOR(cborBytes)
	if err != nil {
		t.Fatalf("TranscodeFromCBOR: %v", err)
	}

	v, err := Decode(out)
	if err != nil {
		t.Fatalf("Decode transcoded binarypack: %v", err)
	}
	m, ok := v.(Map)
	if !ok {
		t.Fatalf("transcoded value is %T, want Map", v)
	}
	if greeting, ok := m.Get(String("greeting")); !ok || !Equal(greeting, String("hello")) {
		t.Errorf("greeting = %#v, %v", greeting, ok)
	}
	if value, ok := m.Get(String("value")); !ok || !Equal(value, Uint8(42)) {
		t.Errorf("value = %#v, want Uint8(42)", value)
	}
	if flags, ok := m.Get(String("flags")); !ok || !Equal(flags, Array{Bool(true), Bool(false)}) {
		t.Errorf("flags = %#v", flags)
	}
}

func TestTranscodeRoundTripThroughCBOR(t *testing.T) {
	original := map[string]any{
		"text":  "round trip",
		"bytes": []byte{1, 2, 3},
		"nested": map[string]any{
			"ok": true,
		},
	}
	v, err := FromGo(original)
	if err != nil {
		t.Fatalf("FromGo: %v", err)
	}

	cborBytes, err := TranscodeToCBOR(Encode(v))
	if err != nil {
		t.Fatalf("TranscodeToCBOR: %v", err)
	}
	packed, err := TranscodeFromCBOR(cborBytes)
	if err != nil {
		t.Fatalf("TranscodeFromCBOR: %v", err)
	}
	back, err := Decode(packed)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	native, err := ToGo(back)
	if err != nil {
		t.Fatalf("ToGo: %v", err)
	}
	// Integer widths may narrow through CBOR's preferred encoding,
	// so compare the Go projections, not the Values.
	if !reflect.DeepEqual(native, original) {
		t.Errorf("round trip through CBOR = %#v, want %#v", native, original)
	}
}
