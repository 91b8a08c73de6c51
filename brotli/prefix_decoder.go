// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "sort"

// prefixDecoder is a canonical prefix-code decode table (spec section 3).
// count[n] holds the number of codewords of length n (n in 0..15); symbol
// holds the decoded symbol values in canonical order — ascending by length,
// then ascending by symbol value within a length. A single-symbol code has
// count[0] == 1 and is decoded without consuming any bits.
//
// This replaces the teacher's two-level chunk/link lookup table (never
// wired to a Decode method in the retrieved snapshot) with the simpler
// bit-at-a-time walk spec.md prescribes, reusing the teacher's own
// canonical code-length bookkeeping (histogram of lengths, running code
// base per length) to build it.
type prefixDecoder struct {
	count  [maxPrefixBits + 1]int
	symbol []uint16
}

// Init builds pd from a dense array of per-symbol code lengths; lens[i] is
// the bit length assigned to symbol i, or 0 if symbol i is unused.
//
// It panics with an *InvalidError if the lengths do not form a complete
// prefix code (the Kraft sum over the 15-bit domain must equal 2^15
// exactly), so a single non-zero length is rejected. The zero-bit
// single-symbol code is built directly by readSimpleCode and
// readComplexCode, not by Init.
func (pd *prefixDecoder) Init(lens []uint) {
	type pair struct {
		sym uint16
		len uint
	}
	var pairs []pair
	for sym, l := range lens {
		if l > 0 {
			pairs = append(pairs, pair{uint16(sym), l})
		}
	}

	*pd = prefixDecoder{}
	if len(pairs) == 0 {
		panic(errInvalid("empty prefix code"))
	}

	// Symbols of equal length are sorted ascending to canonicalize,
	// per spec section 4.2.
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].len != pairs[j].len {
			return pairs[i].len < pairs[j].len
		}
		return pairs[i].sym < pairs[j].sym
	})

	pd.symbol = make([]uint16, len(pairs))
	var kraft uint32
	for i, p := range pairs {
		if p.len == 0 || p.len > maxPrefixBits {
			panic(errInvalid("prefix code length out of range"))
		}
		pd.count[p.len]++
		pd.symbol[i] = p.sym
		kraft += uint32(1) << uint(maxPrefixBits-p.len)
	}
	if kraft != 1<<maxPrefixBits {
		panic(errInvalid("prefix code is not complete"))
	}
}

// Decode reads one symbol from br using the canonical walk of spec 4.2:
// each bit narrows (first, index) for the current code length until the
// accumulated code falls within the range of codes of that length.
func (pd *prefixDecoder) Decode(br *bitReader) uint16 {
	if pd.count[0] == 1 {
		return pd.symbol[0]
	}
	var first, index, code int
	for length := 1; length <= maxPrefixBits; length++ {
		code = code<<1 | int(br.ReadBits(1))
		count := pd.count[length]
		if code < first+count {
			return pd.symbol[index+code-first]
		}
		index += count
		first += count
		first <<= 1
	}
	panic(errInvalid("prefix code symbol overruns table"))
}

// decCLens is the fixed instruction code (lengths {2,4,3,2,2,4} over
// symbols 0..5) used to read each code-length-code length in a complex
// prefix-code descriptor, per spec section 4.2.
var decCLens prefixDecoder

func initComplexCodeLUT() {
	lens := make([]uint, len(complexLensLens))
	for sym, l := range complexLensLens {
		lens[sym] = l
	}
	decCLens.Init(lens)
}

// readSimpleCode reads a simple prefix-code descriptor (1..4 symbols) over
// the given alphabet size, per spec section 4.2.
func readSimpleCode(br *bitReader, alphabetSize int) *prefixDecoder {
	symBits := 0
	for n := alphabetSize - 1; n > 0; n >>= 1 {
		symBits++
	}

	nsym := int(br.ReadBits(2)) + 1
	syms := make([]uint16, nsym)
	seen := make(map[uint16]bool, nsym)
	for i := range syms {
		s := uint16(br.ReadBits(uint(symBits)))
		if int(s) >= alphabetSize {
			panic(errInvalid("simple code symbol out of range"))
		}
		if seen[s] {
			panic(errInvalid("simple code symbol repeated"))
		}
		seen[s] = true
		syms[i] = s
	}

	pd := new(prefixDecoder)
	if nsym == 1 {
		pd.count[0] = 1
		pd.symbol = []uint16{syms[0]}
		return pd
	}

	var lens []uint
	switch nsym {
	case 2:
		lens = simpleLens2[:]
	case 3:
		lens = simpleLens3[:]
	case 4:
		if br.ReadBits(1) == 1 {
			lens = simpleLens4b[:]
		} else {
			lens = simpleLens4a[:]
		}
	}

	dense := make([]uint, alphabetSize)
	for i, s := range syms {
		dense[s] = lens[i]
	}
	pd.Init(dense)
	return pd
}

// readComplexCode reads a complex prefix-code descriptor (code lengths
// encoded through a small code-length code) over the given alphabet size,
// per spec section 4.2.
func readComplexCode(br *bitReader, hskip int, alphabetSize int) *prefixDecoder {
	var clcLens [18]uint
	var kraft uint // Kraft sum over the 5-bit domain (32 == complete)
positions:
	for _, pos := range complexLens[hskip:] {
		v := uint(decCLens.Decode(br))
		clcLens[pos] = v
		if v != 0 {
			kraft += 32 >> v
			switch {
			case kraft > 32:
				panic(errInvalid("code-length code oversubscribed"))
			case kraft == 32:
				break positions
			}
		}
	}

	clc := new(prefixDecoder)
	nonZero, onlySym := 0, uint16(0)
	for sym, l := range clcLens {
		if l > 0 {
			nonZero++
			onlySym = uint16(sym)
		}
	}
	switch {
	case nonZero == 0:
		panic(errInvalid("code-length code is empty"))
	case nonZero == 1:
		// Accepted as a zero-bit code for the single symbol (spec 4.2).
		clc.count[0] = 1
		clc.symbol = []uint16{onlySym}
	default:
		clc.Init(clcLens[:])
	}

	lens := make([]uint, alphabetSize)
	var n int
	var last uint = 8
	var prevRep, prevZeros int // 0 means "no run in progress"
	for n < alphabetSize {
		instr := int(clc.Decode(br))
		switch {
		case instr < 16:
			lens[n] = uint(instr)
			n++
			if instr != 0 {
				last = uint(instr)
			}
			prevRep, prevZeros = 0, 0
		case instr == 16:
			var count int
			if prevRep != 0 {
				count = (prevRep-2)<<2 + 3 + int(br.ReadBits(2))
			} else {
				count = 3 + int(br.ReadBits(2))
			}
			prevRep, prevZeros = count, 0
			if n+count > alphabetSize {
				panic(errInvalid("too many symbols in complex code"))
			}
			for i := 0; i < count; i++ {
				lens[n] = last
				n++
			}
		case instr == 17:
			var count int
			if prevZeros != 0 {
				count = (prevZeros-2)<<3 + 3 + int(br.ReadBits(3))
			} else {
				count = 3 + int(br.ReadBits(3))
			}
			prevZeros, prevRep = count, 0
			if n+count > alphabetSize {
				panic(errInvalid("too many symbols in complex code"))
			}
			n += count // lens[n..n+count) stay zero
		default:
			panic(errInvalid("invalid code-length instruction"))
		}
	}

	pd := new(prefixDecoder)
	pd.Init(lens)
	return pd
}

// readPrefixCode reads a complete prefix-code descriptor over alphabetSize
// symbols, dispatching between the simple and complex encodings per spec
// section 4.2.
func readPrefixCode(br *bitReader, alphabetSize int) *prefixDecoder {
	hskip := int(br.ReadBits(2))
	if hskip == 1 {
		return readSimpleCode(br, alphabetSize)
	}
	return readComplexCode(br, hskip, alphabetSize)
}
