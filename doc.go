// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binarypack implements the BinaryPack binary serialization
// format: the self-describing, msgpack-derived encoding that PeerJS
// and other browser-side datachannel libraries use on the wire. Every
// encoded value carries its own type tag, so a buffer can be decoded
// without any externally shared schema.
//
// The package is organized around the [Value] sum type. A Value is
// produced either by [Decode], which rebuilds a value tree from a
// complete byte buffer, or by direct construction from the variant
// types ([Uint8], [String], [Array], [NewMap], and so on). [Encode]
// is the inverse of Decode: it walks a Value and emits the canonical
// minimal-tag byte encoding. Encoding is total — every constructible
// Value has a defined encoding — so Encode has no error path.
//
// Values are immutable after construction and safe for concurrent
// use. Decode and Encode are pure functions over in-memory data with
// no shared state, so independent calls need no synchronization.
//
// Structural identity is first-class: [Equal] compares two Values
// structurally (map entry order is irrelevant), [Digest] computes a
// keyed BLAKE3 hash of a value's canonical encoding (equal values
// always digest identically), and [Map] looks up keys by structural
// equality, so arbitrary Values — including containers — can serve
// as map keys.
//
// Interop helpers round out the package: [FromGo] and [ToGo] convert
// between plain Go values and the Value model, [TranscodeToCBOR] and
// [TranscodeFromCBOR] bridge BinaryPack buffers into the CBOR-based
// pipeline, and [Diagnose] renders a buffer in a human-readable
// diagnostic notation for debugging and log output.
//
// The decoder is strict about truncation (any short read fails with
// [ErrEndOfData]) and about text (string payloads must be valid
// UTF-8, else [ErrInvalidText]), but deliberately lenient about
// unknown tags: reserved or future tag bytes decode to [Undefined]
// rather than erroring, so a decoder built against this package keeps
// working when a newer peer emits tags it does not know.
package binarypack
