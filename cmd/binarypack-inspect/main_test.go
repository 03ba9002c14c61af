// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/binarypack"
)

func TestInspectDiagnostic(t *testing.T) {
	// {"a": 1}
	input := []byte{0x81, 0xB1, 'a', 0x01}
	var out bytes.Buffer
	if err := inspect(&out, input, false, false, false); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if got := out.String(); got != "{\"a\": 1}\n" {
		t.Errorf("output = %q", got)
	}
}

func TestInspectAll(t *testing.T) {
	input := []byte{0x05, 0xC3}
	var out bytes.Buffer
	if err := inspect(&out, input, false, false, true); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if got := out.String(); got != "5\ntrue\n" {
		t.Errorf("output = %q", got)
	}
}

func TestInspectDigest(t *testing.T) {
	var out bytes.Buffer
	if err := inspect(&out, []byte{0xC0}, true, false, false); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	line := strings.TrimSpace(out.String())
	if len(line) != 64 {
		t.Errorf("digest line = %q, want 64 hex characters", line)
	}
}

func TestInspectTruncated(t *testing.T) {
	err := inspect(&bytes.Buffer{}, []byte{0xCD, 0x01}, false, false, false)
	if !errors.Is(err, binarypack.ErrEndOfData) {
		t.Errorf("inspect truncated = %v, want ErrEndOfData", err)
	}
}
