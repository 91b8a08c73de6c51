// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// minDictLen and maxDictLen bound the length of a static-dictionary word,
// per spec section 4.8.
const (
	minDictLen = 4
	maxDictLen = 24
)

// dictBitSizes holds ndbits[L] for L in minDictLen..maxDictLen: the
// dictionary holds exactly 1<<dictBitSizes[L] words of length L, per the
// fixed table in spec section 4.8.
var dictBitSizes = [maxDictLen - minDictLen + 1]uint{
	10, 10, 11, 11, 10, 10, 10, 10, 10, 9, 9, 8, 7, 7, 8, 7, 7, 6, 6, 5, 5,
}

// dictSizes[L] and dictOffsets[L] are derived from dictBitSizes: the
// number of words of length L, and the byte offset of the first one
// within the flat dictionary table.
var (
	dictSizes   [maxDictLen - minDictLen + 1]int
	dictOffsets [maxDictLen - minDictLen + 1]int
)

// dictTotalSize is the total size of the static dictionary, 122,784 bytes
// per spec section 4.8.
var dictTotalSize int

func initDictLUTs() {
	var off int
	for i, nb := range dictBitSizes {
		l := i + minDictLen
		n := 1 << nb
		dictSizes[i] = n
		dictOffsets[i] = off
		off += n * l
	}
	dictTotalSize = off
	initDictData()
}

// dictWord returns the raw (untransformed) dictionary word of length l at
// the given index (0 <= index < 1<<ndbits[l]).
func dictWord(l, index int) []byte {
	i := l - minDictLen
	if i < 0 || i >= len(dictBitSizes) {
		panic(errInvalid("dictionary word length out of range"))
	}
	if index < 0 || index >= dictSizes[i] {
		panic(errInvalid("dictionary word index out of range"))
	}
	off := dictOffsets[i] + index*l
	return dictionary[off : off+l]
}

// lookupDictWord resolves a static-dictionary reference: id encodes both
// the word index and the transform index, per spec section 4.8. It
// returns the transformed bytes ready to append to the output.
func lookupDictWord(buf []byte, copyLen, id int) []byte {
	if copyLen < minDictLen || copyLen > maxDictLen {
		panic(errInvalid("dictionary copy length out of range"))
	}
	nb := dictBitSizes[copyLen-minDictLen]
	mask := (1 << nb) - 1
	index := id & mask
	xform := id >> nb
	if xform >= len(transformLUT) {
		panic(errInvalid("dictionary transform index out of range"))
	}
	word := dictWord(copyLen, index)
	n := transformWord(buf, word, xform)
	return buf[:n]
}
