// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import (
	"encoding/hex"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	var vectors = []struct {
		desc   string // Description of the test
		input  string // Test input string in hex
		output string // Expected output string in hex
		result Result // Expected classified result
	}{{
		desc:   "empty input has no window-size bit to read",
		input:  "",
		output: "",
		result: ResultPrematureEOF,
	}, {
		desc:   "empty last meta-block, zero padding",
		input:  "06",
		output: "",
		result: Ok,
	}, {
		desc:   "empty last meta-block, non-zero padding is rejected",
		input:  "16",
		output: "",
		result: ResultInvalid,
	}, {
		desc:   "single uncompressed meta-block",
		input:  "62002048656c6f",
		output: hex.EncodeToString([]byte("Helo")),
		result: Ok,
	}}

	for i, v := range vectors {
		input, err := hex.DecodeString(v.input)
		if err != nil {
			t.Fatalf("test %d (%q): bad input hex: %v", i, v.desc, err)
		}
		output, consumed, err := Decode(input)
		if got := Classify(err); got != v.result {
			t.Errorf("test %d (%q): result = %v, want %v (err: %v)", i, v.desc, got, v.result, err)
		}
		wantOutput, _ := hex.DecodeString(v.output)
		if v.result == Ok {
			if diff := cmp.Diff(wantOutput, output); diff != "" {
				t.Errorf("test %d (%q): output mismatch (-want +got):\n%s", i, v.desc, diff)
			}
			if consumed != len(input) {
				t.Errorf("test %d (%q): consumed = %d, want %d (no trailing input)", i, v.desc, consumed, len(input))
			}
		}
	}
}

func TestDecodeReportsConsumedOnTrailingInput(t *testing.T) {
	input, _ := hex.DecodeString("0600") // empty last meta-block, plus a trailing byte
	output, consumed, err := Decode(input)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(output) != 0 {
		t.Fatalf("output = %q, want empty", output)
	}
	if consumed != 1 {
		t.Errorf("consumed = %d, want 1 (trailing byte unused)", consumed)
	}
}

func TestCheckAllocRejectsOversizedLength(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("checkAlloc did not panic for an oversized length")
		}
		if _, ok := r.(OutOfMemoryError); !ok {
			t.Fatalf("checkAlloc panicked with %T, want OutOfMemoryError", r)
		}
	}()
	checkAlloc(maxAlloc + 1)
}

func TestDecodeCompare(t *testing.T) {
	input, _ := hex.DecodeString("62002048656c6f")

	if res, consumed, err := DecodeCompare(input, []byte("Helo")); res != Ok || err != nil || consumed != len(input) {
		t.Errorf("matching compare: result = %v, consumed = %d, err = %v, want Ok, %d, nil", res, consumed, err, len(input))
	}
	if res, _, err := DecodeCompare(input, []byte("Hola")); res != ResultCompareMismatch || err == nil {
		t.Errorf("mismatching compare: result = %v, err = %v, want ResultCompareMismatch, non-nil", res, err)
	}
}
