// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "testing"

func TestLiteralContextIDSimpleModes(t *testing.T) {
	if got := literalContextID(contextLSB6, 0xc5, 0x00); got != 0x05 {
		t.Errorf("LSB6: got %#x, want 0x05", got)
	}
	if got := literalContextID(contextMSB6, 0xc5, 0x00); got != 0x31 {
		t.Errorf("MSB6: got %#x, want 0x31", got)
	}
}

func TestLiteralContextIDUTF8SpansFullRange(t *testing.T) {
	// p1 = 0xff falls in byteClass16's top class (15), p2 = 0xff falls in
	// byteClass4's top class (3): 15<<2 | 3 = 63, the top of the 6-bit
	// range spec section 4.6 requires. An earlier version of
	// contextP1LUT only carried 6 classes, capping this at 23.
	if got := literalContextID(contextUTF8, 0xff, 0xff); got != 63 {
		t.Errorf("UTF8 context id = %d, want 63", got)
	}
	if got := literalContextID(contextUTF8, 0x00, 0x00); got != 3 {
		t.Errorf("UTF8 context id = %d, want 3", got)
	}
}

func TestLiteralContextIDPanicsOnUnknownMode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("literalContextID did not panic on an unknown mode")
		}
	}()
	literalContextID(4, 0, 0)
}

func TestDistanceContextID(t *testing.T) {
	var vectors = []struct {
		copyLen int
		want    int
	}{
		{2, 0}, {3, 1}, {4, 2}, {5, 3}, {100, 3},
	}
	for _, v := range vectors {
		if got := distanceContextID(v.copyLen); got != v.want {
			t.Errorf("distanceContextID(%d) = %d, want %d", v.copyLen, got, v.want)
		}
	}
}

func TestInverseMoveToFront(t *testing.T) {
	vals := []byte{1, 1, 0, 2}
	inverseMoveToFront(vals, 4)
	want := []byte{1, 0, 0, 2}
	for i := range want {
		if vals[i] != want[i] {
			t.Errorf("vals[%d] = %d, want %d", i, vals[i], want[i])
		}
	}
}
