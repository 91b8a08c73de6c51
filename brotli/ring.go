// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// distRingBack and distRingDelta resolve the 16 "short" distance symbols
// (sym < 16) to a ring-buffer slot and a signed offset, per spec 4.7.
var (
	distRingBack  = [16]uint{0, 1, 2, 3, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1}
	distRingDelta = [16]int{0, 0, 0, 0, -1, 1, -2, 2, -3, 3, -1, 1, -2, 2, -3, 3}
)

// distRing is the last-four-distances ring buffer (spec section 3).
// It is initialized once at the start of a stream, not per meta-block.
type distRing struct {
	vals [4]uint32
	ptr  uint // 0..3, naming the most-recently-used slot
}

func (r *distRing) Init() {
	r.vals = [4]uint32{16, 15, 11, 4}
	r.ptr = 3
}

// slot returns the ring entry named by a small backward offset from the
// current pointer (back in 0..3).
func (r *distRing) slot(back uint) uint32 {
	return r.vals[(r.ptr-back)&3]
}

// push records a newly used distance as the most recent ring entry.
func (r *distRing) push(dist uint32) {
	r.ptr = (r.ptr + 1) & 3
	r.vals[r.ptr] = dist
}

// distParams holds the per-meta-block distance-alphabet parameters (spec
// section 3): postfix in 0..3 and direct in 0..(15<<postfix).
type distParams struct {
	postfix uint
	direct  uint
}

// alphabetSize returns the total distance alphabet size, 16+direct+(48<<postfix).
func (p distParams) alphabetSize() int {
	return 16 + int(p.direct) + (48 << p.postfix)
}

// decodeDistance computes the distance named by sym, per spec section 4.7.
// It does not touch the ring buffer; the caller applies the update rule
// (ring updated iff sym != 0 and the resulting distance is <= max).
func decodeDistance(br *bitReader, ring *distRing, p distParams, sym int) uint32 {
	switch {
	case sym < 16:
		back := distRingBack[sym]
		delta := distRingDelta[sym]
		return uint32(int64(ring.slot(back)) + int64(delta))
	case sym < 16+int(p.direct):
		return uint32(sym - 15)
	default:
		n := uint(sym) - p.direct - 16
		x := 1 + (n >> (p.postfix + 1))
		off := (uint32(2+((n>>p.postfix)&1)) << x) - 4
		e := uint32(br.ReadBits(x))
		return ((off+e)<<p.postfix)&0xffffffff + uint32(n&((1<<p.postfix)-1)) + uint32(p.direct) + 1
	}
}
