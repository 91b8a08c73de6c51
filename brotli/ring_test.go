// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "testing"

func TestDistRingInit(t *testing.T) {
	var r distRing
	r.Init()
	want := [4]uint32{16, 15, 11, 4}
	if r.vals != want {
		t.Errorf("vals = %v, want %v", r.vals, want)
	}
	if r.slot(0) != 4 {
		t.Errorf("slot(0) = %d, want 4 (the initial most-recent entry)", r.slot(0))
	}
}

func TestDistRingPushAndSlot(t *testing.T) {
	var r distRing
	r.Init()
	r.push(100)
	if got := r.slot(0); got != 100 {
		t.Errorf("slot(0) after push = %d, want 100", got)
	}
	if got := r.slot(1); got != 4 {
		t.Errorf("slot(1) after one push = %d, want 4 (previous most-recent)", got)
	}
}

func TestDecodeDistanceShortCodes(t *testing.T) {
	var r distRing
	r.Init() // vals = {16, 15, 11, 4}, slot(0) == 4

	var br bitReader
	br.Init(nil)
	p := distParams{}

	// sym 0: back=0, delta=0 -> same as the most recent distance.
	if got := decodeDistance(&br, &r, p, 0); got != 4 {
		t.Errorf("sym 0: dist = %d, want 4", got)
	}
	// sym 5: back=0, delta=1 -> most recent distance, plus one.
	if got := decodeDistance(&br, &r, p, 5); got != 5 {
		t.Errorf("sym 5: dist = %d, want 5", got)
	}
	// sym 1: back=1, delta=0 -> second-most-recent distance (11).
	if got := decodeDistance(&br, &r, p, 1); got != 11 {
		t.Errorf("sym 1: dist = %d, want 11", got)
	}
}

func TestDecodeDistanceDirect(t *testing.T) {
	var r distRing
	r.Init()
	var br bitReader
	br.Init(nil)
	p := distParams{direct: 4}

	// sym 16 is the first direct-distance symbol: distance 1.
	if got := decodeDistance(&br, &r, p, 15+1); got != 1 {
		t.Errorf("sym 16: dist = %d, want 1", got)
	}
}
