// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binarypack

import "errors"

// Decode-time error kinds. Decode failures wrap one of these
// sentinels with offset context; callers classify with errors.Is:
//
//	if errors.Is(err, binarypack.ErrEndOfData) { ... }
//
// Encoding has no error kind — it is total over the Value grammar.
var (
	// ErrEndOfData means the buffer ran out before a required
	// fixed-width or declared-length read completed. Truncated and
	// length-overclaiming inputs both surface as this kind.
	ErrEndOfData = errors.New("binarypack: unexpected end of data")

	// ErrInvalidText means a declared string payload is not valid
	// UTF-8. Raw byte payloads are never validated.
	ErrInvalidText = errors.New("binarypack: string payload is not valid UTF-8")
)
