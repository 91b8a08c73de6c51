// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "testing"

func TestPrefixDecoderCanonical(t *testing.T) {
	var pd prefixDecoder
	// Symbol lengths: sym0:2, sym1:1, sym2:3, sym3:3 (a complete code).
	pd.Init([]uint{2, 1, 3, 3})

	var br bitReader
	br.Init([]byte{0x3a}) // bits (read order): 0,1,0,1,1,1,0,0

	var got []uint16
	for i := 0; i < 3; i++ {
		got = append(got, pd.Decode(&br))
	}
	want := []uint16{1, 0, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("symbol %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPrefixDecoderSingleSymbol(t *testing.T) {
	// A zero-bit single-symbol code, built the way readSimpleCode builds it.
	pd := prefixDecoder{symbol: []uint16{1}}
	pd.count[0] = 1

	var br bitReader
	br.Init(nil) // Decode must not need to read any bits.
	if got := pd.Decode(&br); got != 1 {
		t.Errorf("symbol = %d, want 1", got)
	}
}

func TestPrefixDecoderIncompleteRejected(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Init did not panic on an incomplete code")
		}
	}()
	var pd prefixDecoder
	pd.Init([]uint{1, 0, 0, 0}) // Kraft sum 1/2, not complete.
}

func TestReadSimpleCode(t *testing.T) {
	// hskip=1 (simple code), nsym=1 (2-bit raw value 0), symbol 5 in an
	// 8-symbol alphabet (3 bits), read in that order, LSB-first per byte.
	var br bitReader
	br.Init([]byte{0x51})
	pd := readPrefixCode(&br, 8)
	got := pd.Decode(&bitReader{})
	if got != 5 {
		t.Errorf("symbol = %d, want 5", got)
	}
}
