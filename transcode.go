// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binarypack

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical data always
// produces identical CBOR bytes.
var cborEncMode cbor.EncMode

// cborDecMode accepts standard CBOR and decodes any-typed targets
// with map[string]any as the default map type, matching what the
// CBOR-side consumers expect.
var cborDecMode cbor.DecMode

func init() {
	var err error

	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("binarypack: CBOR encoder initialization failed: " + err.Error())
	}

	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("binarypack: CBOR decoder initialization failed: " + err.Error())
	}
}

// TranscodeToCBOR decodes a BinaryPack buffer and re-encodes it as
// deterministic CBOR. This is the ingestion path for values arriving
// from browser peers: decode once at the edge, hand CBOR to
// everything downstream.
//
// The projection is the [ToGo] projection, so it shares its limits:
// a map keyed by a container value cannot be transcoded, and
// Undefined flattens to CBOR null.
func TranscodeToCBOR(data []byte) ([]byte, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding binarypack: %w", err)
	}
	native, err := ToGo(v)
	if err != nil {
		return nil, fmt.Errorf("projecting to CBOR data model: %w", err)
	}
	out, err := cborEncMode.Marshal(native)
	if err != nil {
		return nil, fmt.Errorf("encoding CBOR: %w", err)
	}
	return out, nil
}

// TranscodeFromCBOR decodes a CBOR buffer and re-encodes it as
// BinaryPack, the reply path back toward a browser peer. Integers
// take the narrowest BinaryPack variant via [FromGo]; CBOR constructs
// with no BinaryPack counterpart (tags, bignums) error.
func TranscodeFromCBOR(data []byte) ([]byte, error) {
	var native any
	if err := cborDecMode.Unmarshal(data, &native); err != nil {
		return nil, fmt.Errorf("decoding CBOR: %w", err)
	}
	v, err := FromGo(native)
	if err != nil {
		return nil, fmt.Errorf("projecting to binarypack data model: %w", err)
	}
	return Encode(v), nil
}
