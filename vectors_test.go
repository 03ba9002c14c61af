// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binarypack

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// vectorFile mirrors testdata/vectors.yaml.
type vectorFile struct {
	Vectors []struct {
		Name       string `yaml:"name"`
		Encoded    string `yaml:"encoded"`
		Diagnostic string `yaml:"diagnostic"`
		// Canonical marks vectors whose bytes the encoder must
		// reproduce exactly. Non-minimal and reserved-tag inputs
		// decode fine but re-encode to the canonical form.
		Canonical bool `yaml:"canonical"`
	} `yaml:"vectors"`
}

func loadVectors(t *testing.T) vectorFile {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "vectors.yaml"))
	if err != nil {
		t.Fatalf("reading vectors: %v", err)
	}
	var file vectorFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		t.Fatalf("parsing vectors: %v", err)
	}
	if len(file.Vectors) == 0 {
		t.Fatal("vector file is empty")
	}
	return file
}

func TestConformanceVectors(t *testing.T) {
	for _, vector := range loadVectors(t).Vectors {
		t.Run(vector.Name, func(t *testing.T) {
			encoded, err := hex.DecodeString(vector.Encoded)
			if err != nil {
				t.Fatalf("bad vector hex %q: %v", vector.Encoded, err)
			}

			decoded, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}

			if got := Format(decoded); got != vector.Diagnostic {
				t.Errorf("diagnostic = %q, want %q", got, vector.Diagnostic)
			}

			if vector.Canonical {
				if reencoded := Encode(decoded); !bytes.Equal(reencoded, encoded) {
					t.Errorf("re-encode = % X, want % X", reencoded, encoded)
				}
			}

			// Whatever the input form, the decoded value must
			// round-trip through the canonical encoding.
			again, err := Decode(Encode(decoded))
			if err != nil {
				t.Fatalf("re-Decode: %v", err)
			}
			if !Equal(decoded, again) {
				t.Errorf("canonical round trip produced %#v, want %#v", again, decoded)
			}
		})
	}
}
