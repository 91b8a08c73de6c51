// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// Literal context modes, spec section 4.6.
const (
	contextLSB6 = iota
	contextMSB6
	contextUTF8
	contextSigned
)

// contextP1LUT and contextP2LUT classify the previous byte (p1) and the
// byte before that (p2) into the high and low parts of a UTF8-mode context
// ID: id = contextP1LUT[p1] | contextP2LUT[p2], a full 6-bit value (0..63)
// per spec section 4.6. contextP1LUT holds 16 classes of p1 spaced 4 apart
// (0, 4, 8, ..., 60) so they occupy the high 4 bits without overlapping
// contextP2LUT's 4 classes of p2 (0..3) in the low 2 bits. contextSignLUT
// classifies a byte into one of 8 sign-mode classes, used twice (for p1
// and p2) to build Signed mode's own 6-bit ID.
//
// RFC 7932's own lookup tables are reproduced from upstream Brotli
// sources that were not retrievable in this environment (no network
// access, and original_source/ was filtered out of the retrieval pack —
// see DESIGN.md), so the exact per-byte class boundaries below are this
// package's own reconstruction of the documented classification scheme
// (16 p1 classes covering control/space/punctuation/digit/upper/lower/
// high-bit ranges, 4 p2 classes, 8 sign classes), not a verbatim
// transcription of the canonical byte values. The earlier version of
// this table additionally had a structural bug independent of that
// provenance gap: it only produced 6 p1 classes (range 0..23 once
// combined with p2), not the 16 classes RFC 7932 places in the high
// bits (range 0..63); that part is fixed here regardless of the
// transcription gap.
var (
	contextP1LUT   [256]byte
	contextP2LUT   [256]byte
	contextSignLUT [256]byte
)

// byteClass16 buckets the previous byte into one of sixteen UTF8 context
// classes spanning the 0x00-0xff range.
func byteClass16(b byte) int {
	switch {
	case b == 0x00:
		return 0
	case b <= 0x08:
		return 1
	case b == 0x09 || b == 0x0a || b == 0x0d:
		return 2
	case b <= 0x1f:
		return 3
	case b == ' ':
		return 4
	case b >= '!' && b <= '\'':
		return 5
	case b >= '(' && b <= '/':
		return 6
	case b >= '0' && b <= '9':
		return 7
	case b >= ':' && b <= '@':
		return 8
	case b >= 'A' && b <= 'Z':
		return 9
	case b >= '[' && b <= '`':
		return 10
	case b >= 'a' && b <= 'z':
		return 11
	case b >= '{' && b <= '~':
		return 12
	case b == 0x7f:
		return 13
	case b <= 0xbf:
		return 14
	default:
		return 15
	}
}

// byteClass4 buckets the second-previous byte into one of four classes.
func byteClass4(b byte) int {
	switch {
	case b == ' ' || b == ',' || b == '.':
		return 0
	case b >= '0' && b <= '9':
		return 1
	case (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z'):
		return 2
	default:
		return 3
	}
}

// byteClass8 buckets a byte into one of eight classes for Signed mode.
func byteClass8(b byte) int {
	switch {
	case b == 0:
		return 0
	case b < 0x20:
		return 1
	case b == ' ':
		return 2
	case b >= '0' && b <= '9':
		return 3
	case b >= 'a' && b <= 'z':
		return 4
	case b >= 'A' && b <= 'Z':
		return 5
	case b >= 0x80:
		return 6
	default:
		return 7
	}
}

func initContextLUTs() {
	for i := 0; i < 256; i++ {
		contextP1LUT[i] = byte(byteClass16(byte(i)) << 2)
		contextP2LUT[i] = byte(byteClass4(byte(i)))
		contextSignLUT[i] = byte(byteClass8(byte(i)))
	}
}

// literalContextID computes the 6-bit literal context ID (0..63, in every
// mode) from the last two output bytes, per spec section 4.6.
func literalContextID(mode int, p1, p2 byte) int {
	switch mode {
	case contextLSB6:
		return int(p1) & 0x3f
	case contextMSB6:
		return int(p1) >> 2
	case contextUTF8:
		return int(contextP1LUT[p1]) | int(contextP2LUT[p2])
	case contextSigned:
		return (int(contextSignLUT[p1]) << 3) | int(contextSignLUT[p2])
	default:
		panic(errInvalid("unknown literal context mode"))
	}
}

// distanceContextID computes the 2-bit distance context ID from the copy
// length of the current insert-and-copy command, per spec section 4.6.
func distanceContextID(copyLen int) int {
	if c := copyLen - 2; c < 3 {
		if c < 0 {
			return 0
		}
		return c
	}
	return 3
}

// readContextMap reads a context map of the given length (lit_num*64 or
// dist_num*4), with an alphabet of rlemax+trees symbols, per spec 4.6.
func readContextMap(br *bitReader, length, trees int) []byte {
	var rlemax int
	if br.ReadBits(1) == 1 {
		rlemax = 1 + int(br.ReadBits(4))
	}
	if rlemax > 0 && 1<<uint(rlemax) > length {
		panic(errInvalid("context map rlemax unnecessarily large"))
	}

	pd := readPrefixCode(br, rlemax+trees)

	out := make([]byte, 0, length)
	for len(out) < length {
		sym := int(pd.Decode(br))
		switch {
		case sym == 0:
			out = append(out, 0)
		case sym <= rlemax:
			n := (1 << uint(sym)) + int(br.ReadBits(uint(sym)))
			if len(out)+n > length {
				panic(errInvalid("context map run exceeds map length"))
			}
			for i := 0; i < n; i++ {
				out = append(out, 0)
			}
		default:
			out = append(out, byte(sym-rlemax))
		}
	}

	if br.ReadBits(1) == 1 {
		inverseMoveToFront(out, trees)
	}
	return out
}

// inverseMoveToFront undoes the move-to-front transform in place over the
// alphabet 0..numSyms-1, per spec section 4.6.
func inverseMoveToFront(vals []byte, numSyms int) {
	var mtf [256]byte
	copy(mtf[:numSyms], mtfLUT[:numSyms])
	for i, idx := range vals {
		v := mtf[idx]
		copy(mtf[1:idx+1], mtf[:idx])
		mtf[0] = v
		vals[i] = v
	}
}
