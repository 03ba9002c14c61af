// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/binarypack"
)

func main() {
	os.Exit(run())
}

func run() int {
	var digest bool
	var toCBOR bool
	var all bool

	flagSet := pflag.NewFlagSet("binarypack-inspect", pflag.ContinueOnError)
	flagSet.BoolVar(&digest, "digest", false, "print the canonical BLAKE3 digest instead of diagnostic notation")
	flagSet.BoolVar(&toCBOR, "cbor", false, "write the CBOR transcoding to stdout instead of diagnostic notation")
	flagSet.BoolVar(&all, "all", false, "decode every value in a concatenated buffer, one line each")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: binarypack-inspect [--digest | --cbor] [--all] <file | ->\n\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return 2
	}
	if digest && toCBOR {
		fmt.Fprintf(os.Stderr, "error: --digest and --cbor are mutually exclusive\n")
		return 2
	}

	data, err := readInput(flagSet.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if err := inspect(os.Stdout, data, digest, toCBOR, all); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// readInput reads the whole buffer from path, or from stdin when
// path is "-". BinaryPack is not a streaming format — the decoder
// needs the complete buffer.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func inspect(out io.Writer, data []byte, digest, toCBOR, all bool) error {
	values, err := decode(data, all)
	if err != nil {
		return err
	}

	for _, value := range values {
		switch {
		case digest:
			fmt.Fprintln(out, binarypack.FormatDigest(binarypack.Digest(value)))
		case toCBOR:
			transcoded, err := binarypack.TranscodeToCBOR(binarypack.Encode(value))
			if err != nil {
				return err
			}
			if _, err := out.Write(transcoded); err != nil {
				return err
			}
		default:
			fmt.Fprintln(out, binarypack.Format(value))
		}
	}
	return nil
}

func decode(data []byte, all bool) ([]binarypack.Value, error) {
	if all {
		return binarypack.DecodeAll(data)
	}
	value, err := binarypack.Decode(data)
	if err != nil {
		return nil, err
	}
	return []binarypack.Value{value}, nil
}
