// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binarypack

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// valueDomainKey is the BLAKE3 keyed-hashing domain key for value
// digests. A fixed constant — changing it invalidates every digest
// ever computed. The bytes are the ASCII domain name zero-padded to
// 32 bytes, readable in hex dumps without weakening the hash (keyed
// mode treats the key as opaque).
var valueDomainKey = [32]byte{
	'b', 'u', 'r', 'e', 'a', 'u', '.', 'b', 'i', 'n', 'a', 'r', 'y', 'p', 'a', 'c',
	'k', '.', 'v', 'a', 'l', 'u', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Digest computes the keyed BLAKE3 hash of a value's canonical
// encoding. Because the canonical form sorts map entries, digests are
// consistent with [Equal]: structurally equal values always produce
// identical digests regardless of map insertion order. Use a Digest
// wherever a Value must key ordinary Go maps, deduplicate, or be
// compared across processes.
func Digest(v Value) [32]byte {
	hasher, err := blake3.NewKeyed(valueDomainKey[:])
	if err != nil {
		// NewKeyed only fails on a wrong key length, which the
		// fixed-size array rules out.
		panic("binarypack: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(appendCanonical(nil, v))
	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// FormatDigest returns the hex-encoded string form of a value
// digest, the canonical representation for log output and tooling.
func FormatDigest(digest [32]byte) string {
	return hex.EncodeToString(digest[:])
}
