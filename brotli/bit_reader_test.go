// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "testing"

func TestBitReaderReadBits(t *testing.T) {
	var br bitReader
	br.Init([]byte{0x3a}) // 0b00111010
	var got []uint
	for i := 0; i < 6; i++ {
		got = append(got, br.ReadBits(1))
	}
	want := []uint{0, 1, 0, 1, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bit %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestBitReaderReadBitsMultiWidth(t *testing.T) {
	var br bitReader
	br.Init([]byte{0x3a}) // 0b00111010
	if got := br.ReadBits(3); got != 2 {
		t.Errorf("ReadBits(3) = %d, want 2", got)
	}
	if got := br.ReadBits(5); got != 7 {
		t.Errorf("ReadBits(5) = %d, want 7", got)
	}
}

func TestBitReaderExhaustionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("ReadBits did not panic past the end of input")
		}
	}()
	var br bitReader
	br.Init([]byte{0x00})
	br.ReadBits(9)
}

func TestBitReaderReadPadsRejectsNonZero(t *testing.T) {
	var br bitReader
	br.Init([]byte{0x16})
	br.ReadBits(3)
	defer func() {
		if recover() == nil {
			t.Errorf("ReadPads did not panic on non-zero padding")
		}
	}()
	br.ReadPads()
}

func TestBitReaderReadRawBytes(t *testing.T) {
	var br bitReader
	br.Init([]byte{0x00, 0x48, 0x65, 0x6c, 0x6f})
	br.ReadBits(8) // consume the leading byte, landing on a byte boundary
	dst := make([]byte, 4)
	br.ReadRawBytes(dst)
	if string(dst) != "Helo" {
		t.Errorf("ReadRawBytes = %q, want %q", dst, "Helo")
	}
}
