// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import (
	"encoding/binary"

	"github.com/klauspost/cpuid/v2"
)

// fastUnalignedRefill records, once, whether the host CPU can do cheap
// unaligned word loads. It only chooses between two refill
// implementations below that produce identical results; it never
// changes decoded semantics. This mirrors the non-functional role the
// teacher's benchmark harness gives klauspost/cpuid.
var fastUnalignedRefill = cpuid.CPU.Has(cpuid.SSE2) || cpuid.CPU.Has(cpuid.ASIMD)

// bitReader sources unsigned integers of width 0..25 from a little-endian
// bit stream held entirely in memory (spec section 4.1). Unlike the
// teacher's io.Reader-backed bitReader, this one never blocks and never
// needs a bufio.Reader: the whole compressed buffer is already resident,
// matching the Non-goal against a byte-at-a-time pull model.
type bitReader struct {
	buf []byte // Compressed input, owned by the caller of Init
	pos int    // Index of the next unread byte in buf

	bufBits uint32 // Residual bits, low bits are the next ones to emit
	numBits uint   // Number of valid bits currently buffered

	used uint64 // Total bits logically consumed by the caller so far
}

// Init resets the bit reader to read from the start of buf.
func (br *bitReader) Init(buf []byte) {
	*br = bitReader{buf: buf}
}

// Offset reports the number of whole bytes of buf the caller has logically
// consumed so far, rounded up to include a byte whose bits are only
// partially consumed. This is tracked independently of pos, which may run
// ahead of it: refill eagerly pulls whole words into bufBits regardless of
// how many of those bits a caller has actually asked for yet.
func (br *bitReader) Offset() int { return int((br.used + 7) / 8) }

// ReadBits reads nb bits (0..25) from the underlying buffer.
// It panics with PrematureEOFError if the buffer is exhausted.
func (br *bitReader) ReadBits(nb uint) uint {
	if br.numBits < nb {
		br.refill()
		if br.numBits < nb {
			panic(PrematureEOFError{})
		}
	}
	val := uint(br.bufBits & uint32(1<<nb-1))
	br.bufBits >>= nb
	br.numBits -= nb
	br.used += uint64(nb)
	return val
}

// refill tops up bufBits with as many whole bytes from buf as fit in a
// uint32, favoring a single unaligned word load on hosts where that is
// cheap and falling back to a byte-at-a-time loop everywhere else. Both
// paths leave bufBits/numBits in the same state for the same input.
func (br *bitReader) refill() {
	// The word load only fits when there is no residual: word<<numBits
	// would otherwise shift bits of the new word off the top of a
	// uint32, corrupting them.
	if fastUnalignedRefill && br.numBits == 0 && br.pos+4 <= len(br.buf) {
		br.bufBits = binary.LittleEndian.Uint32(br.buf[br.pos:])
		br.pos += 4
		br.numBits = 32
		return
	}
	for br.numBits <= 24 && br.pos < len(br.buf) {
		br.bufBits |= uint32(br.buf[br.pos]) << br.numBits
		br.pos++
		br.numBits += 8
	}
}

// ReadPads discards the 0..7 bit residual needed to reach a byte boundary,
// panicking with an InvalidError if any discarded bit is set (spec 4.1).
func (br *bitReader) ReadPads() {
	nb := br.numBits % 8
	val := uint(br.bufBits & uint32(1<<nb-1))
	br.bufBits >>= nb
	br.numBits -= nb
	br.used += uint64(nb)
	if val != 0 {
		panic(errInvalid("non-zero discarded padding"))
	}
}

// ReadRawBytes copies n raw, byte-aligned bytes from the input into dst.
// The reader must already be at a byte boundary (ReadPads called first).
func (br *bitReader) ReadRawBytes(dst []byte) {
	n := len(dst)
	i := 0
	for br.numBits >= 8 && i < n {
		dst[i] = byte(br.bufBits)
		br.bufBits >>= 8
		br.numBits -= 8
		i++
	}
	if i < n {
		if br.pos+(n-i) > len(br.buf) {
			panic(PrematureEOFError{})
		}
		copy(dst[i:], br.buf[br.pos:br.pos+(n-i)])
		br.pos += n - i
	}
	br.used += uint64(n) * 8
}
