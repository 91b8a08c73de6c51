// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// readNumBlockTypes reads an NBLTYPES field (one per category: literal,
// insert-and-copy, distance), per spec section 4.4.
func readNumBlockTypes(br *bitReader) int {
	if br.ReadBits(1) == 0 {
		return 1
	}
	k := br.ReadBits(3)
	return 1 + (1 << k) + int(br.ReadBits(k))
}

// blockSwitchState tracks one category's (literal, insert-and-copy, or
// distance) current block type and the number of symbols remaining in it,
// per spec section 4.4. With a single block type, the category never
// switches and no type/length codes are present in the stream.
type blockSwitchState struct {
	numTypes  int
	typeCode  *prefixDecoder
	lenCode   *prefixDecoder
	current   int
	previous  int
	remaining int
}

// newBlockSwitchState reads the type-code and length-code prefix codes (if
// numTypes > 1) and the initial block length, establishing block type 0 as
// current per spec section 4.4.
func newBlockSwitchState(br *bitReader, numTypes int) *blockSwitchState {
	s := &blockSwitchState{numTypes: numTypes}
	if numTypes <= 1 {
		s.remaining = 268435456
		return s
	}
	s.typeCode = readPrefixCode(br, numTypes+2)
	s.lenCode = readPrefixCode(br, numBlkCntSyms)
	s.remaining = readRangeCode(br, s.lenCode, blkLenRanges)
	s.current = 0
	s.previous = 1
	return s
}

// advance reads a new block-switch command if the current block has been
// fully consumed. The type symbol n resolves to a block type as:
// n > 1 names it directly (n-2), n == 1 names the next type in round-robin
// order, and n == 0 repeats the type used two blocks ago.
func (s *blockSwitchState) advance(br *bitReader) {
	if s.remaining > 0 {
		return
	}
	if s.numTypes <= 1 {
		panic(errInvalid("block category exhausted with a single block type"))
	}
	n := int(s.typeCode.Decode(br))
	var t int
	switch {
	case n > 1:
		t = n - 2
	case n == 1:
		t = (s.current + 1) % s.numTypes
	default:
		t = s.previous
	}
	if t < 0 || t >= s.numTypes {
		panic(errInvalid("block type symbol out of range"))
	}
	s.previous = s.current
	s.current = t
	s.remaining = readRangeCode(br, s.lenCode, blkLenRanges)
}

// consume returns the block type for the next symbol in this category,
// switching blocks first if the current one has run out.
func (s *blockSwitchState) consume(br *bitReader) int {
	s.advance(br)
	s.remaining--
	return s.current
}
