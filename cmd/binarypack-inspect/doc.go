// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Binarypack-inspect decodes a BinaryPack buffer and prints it in
// diagnostic notation. It is the debugging companion to the
// binarypack package: point it at a captured datachannel payload (a
// file, or stdin with "-") and read the structure directly instead
// of hand-parsing a hex dump.
//
// Modes:
//
//	binarypack-inspect payload.bin           diagnostic notation (default)
//	binarypack-inspect --digest payload.bin  canonical BLAKE3 digest, hex
//	binarypack-inspect --cbor payload.bin    CBOR transcoding to stdout
//	binarypack-inspect --all payload.bin     every value in a concatenated buffer
//
// Exit codes:
//
//	0  decoded successfully
//	1  decode or transcode failure (reason on stderr)
//	2  bad arguments
package main
