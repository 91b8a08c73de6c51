// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "bytes"

// Decoder holds the state needed to decode one Brotli stream from start to
// finish. Unlike a streaming reader, it consumes the entire compressed
// input up front and produces the entire uncompressed output in one call;
// there is no partial-read API.
type Decoder struct {
	br   bitReader
	ring distRing
	win  windowState

	wbits uint

	out []byte

	scratch [maxWordSize]byte
}

// Decode decompresses a complete Brotli stream. consumed reports how many
// leading bytes of input the stream actually used, so a caller can detect
// trailing garbage.
func Decode(input []byte) (output []byte, consumed int, err error) {
	d := new(Decoder)
	return d.decode(input, nil)
}

// DecodeCompare decompresses a complete Brotli stream and reports how it
// compares against an expected plaintext, without returning the
// (potentially large) decompressed output itself.
func DecodeCompare(input, expected []byte) (result Result, consumed int, err error) {
	d := new(Decoder)
	_, consumed, err = d.decode(input, expected)
	return Classify(err), consumed, err
}

func (d *Decoder) decode(input, expected []byte) (output []byte, consumed int, err error) {
	defer errRecover(&err)
	defer func() { consumed = d.br.Offset() }()

	d.br.Init(input)
	d.ring.Init()
	d.out = make([]byte, 0, len(input)*3+64)

	d.readStreamHeader()
	for {
		last := d.readMetaBlockHeader()
		if last {
			break
		}
	}

	if expected != nil && !bytes.Equal(d.out, expected) {
		n := 0
		for n < len(d.out) && n < len(expected) && d.out[n] == expected[n] {
			n++
		}
		panic(&CompareMismatchError{Got: n})
	}
	return d.out, d.br.Offset(), nil
}

// readStreamHeader reads WBITS, per spec section 4.1.
func (d *Decoder) readStreamHeader() {
	var wbits uint
	if val := d.br.ReadBits(1); val != 1 { // Code is "0"
		wbits = 16
		goto done
	}
	if val := d.br.ReadBits(3); val != 0 { // Code is "1xxx"
		wbits = 18 + uint(val-1)
		goto done
	}
	if val := d.br.ReadBits(3); val != 1 { // Code is "1000xxx"
		if val == 0 {
			val = 9
		}
		wbits = 10 + uint(val-2)
		goto done
	}
	panic(errInvalid("window-size code is reserved"))

done:
	d.wbits = wbits
	d.win.Init(wbits)
}

// readMetaBlockHeader reads one meta-block, including metadata and
// uncompressed blocks, and reports whether it was the final one.
func (d *Decoder) readMetaBlockHeader() (last bool) {
	last = d.br.ReadBits(1) == 1
	if last {
		if d.br.ReadBits(1) == 1 { // ISLASTEMPTY
			d.br.ReadPads()
			return true
		}
	}

	var blkLen int
	if nibbles := d.br.ReadBits(2) + 4; nibbles == 7 {
		if d.br.ReadBits(1) == 1 { // reserved bit
			panic(errInvalid("meta-block reserved bit is set"))
		}

		var skipLen int
		if skipBytes := d.br.ReadBits(2); skipBytes > 0 {
			skipLen = int(d.br.ReadBits(skipBytes * 8))
			if skipBytes > 1 && skipLen>>((skipBytes-1)*8) == 0 {
				panic(errInvalid("meta-data skip length uses non-shortest representation"))
			}
			skipLen++
		}

		checkAlloc(skipLen)
		d.br.ReadPads()
		skip := make([]byte, skipLen)
		d.br.ReadRawBytes(skip)
		return last
	}

	blkLen = int(d.br.ReadBits(nibbles * 4))
	if nibbles > 4 && blkLen>>((nibbles-1)*4) == 0 {
		panic(errInvalid("meta-block length uses non-shortest representation"))
	}
	blkLen++

	if blkLen == 0 && !last {
		panic(errInvalid("empty meta-block must be marked as the last one"))
	}

	checkAlloc(blkLen)
	if d.br.ReadBits(1) == 1 { // ISUNCOMPRESSED
		d.br.ReadPads()
		raw := make([]byte, blkLen)
		d.br.ReadRawBytes(raw)
		d.out = append(d.out, raw...)
		return last
	}

	d.readCompressedBlock(blkLen)
	return last
}

// blockCodes bundles the per-meta-block literal, insert-and-copy, and
// distance prefix-code banks together with the context-mapping state needed to pick
// among them, per spec section 4.4-4.6.
type blockCodes struct {
	switchL *blockSwitchState
	switchI *blockSwitchState
	switchD *blockSwitchState

	cmodes []byte // per literal block type, spec 4.6
	cmapL  []byte // len 64*numTypesL, indexes into treesL
	cmapD  []byte // len 4*numTypesD, indexes into treesD

	treesL []*prefixDecoder // len numTreesL, alphabet numLitSyms
	treesI []*prefixDecoder // len numTypesI, alphabet numInsSyms
	treesD []*prefixDecoder // len numTreesD, alphabet dist.alphabetSize()

	dist distParams
}

// readCompressedBlock reads the prefix-code bank and then the
// insert-and-copy command stream for one compressed meta-block, stopping
// once exactly blkLen uncompressed bytes have been produced.
func (d *Decoder) readCompressedBlock(blkLen int) {
	var c blockCodes

	numTypesL := readNumBlockTypes(&d.br)
	numTypesI := readNumBlockTypes(&d.br)
	numTypesD := readNumBlockTypes(&d.br)
	c.switchL = newBlockSwitchState(&d.br, numTypesL)
	c.switchI = newBlockSwitchState(&d.br, numTypesI)
	c.switchD = newBlockSwitchState(&d.br, numTypesD)

	c.dist.postfix = uint(d.br.ReadBits(2))
	ndirectShort := d.br.ReadBits(4)
	c.dist.direct = uint(ndirectShort) << c.dist.postfix

	c.cmodes = make([]byte, numTypesL)
	for i := range c.cmodes {
		c.cmodes[i] = byte(d.br.ReadBits(2))
	}

	numTreesL := readNumBlockTypes(&d.br)
	if numTreesL >= 2 {
		c.cmapL = readContextMap(&d.br, 64*numTypesL, numTreesL)
	} else {
		c.cmapL = make([]byte, 64*numTypesL)
	}

	numTreesD := readNumBlockTypes(&d.br)
	if numTreesD >= 2 {
		c.cmapD = readContextMap(&d.br, 4*numTypesD, numTreesD)
	} else {
		c.cmapD = make([]byte, 4*numTypesD)
	}

	c.treesL = make([]*prefixDecoder, numTreesL)
	for i := range c.treesL {
		c.treesL[i] = readPrefixCode(&d.br, numLitSyms)
	}
	c.treesI = make([]*prefixDecoder, numTypesI)
	for i := range c.treesI {
		c.treesI[i] = readPrefixCode(&d.br, numInsSyms)
	}
	c.treesD = make([]*prefixDecoder, numTreesD)
	for i := range c.treesD {
		c.treesD[i] = readPrefixCode(&d.br, c.dist.alphabetSize())
	}

	d.runCommands(&c, blkLen)
}

// insertRangeMap and copyRangeMap decompose a 704-symbol insert-and-copy
// command into an insert-length code (0..23) and a copy-length code
// (0..23), per spec section 4.5.
var (
	insertRangeMap = [11]int{0, 0, 0, 0, 8, 8, 0, 16, 8, 16, 16}
	copyRangeMap   = [11]int{0, 8, 0, 8, 0, 8, 16, 0, 16, 8, 16}
)

// decodeCommandSym splits an insert-and-copy symbol into its constituent
// insert code and copy code, and reports whether this command implies
// reuse of the most recent distance rather than reading a new one.
func decodeCommandSym(sym int) (insertCode, copyCode int, distImplicit bool) {
	rangeIdx := sym >> 6
	sub := sym & 0x3f
	insertCode = insertRangeMap[rangeIdx] + (sub >> 3)
	copyCode = copyRangeMap[rangeIdx] + (sub & 7)
	return insertCode, copyCode, sym < 128
}

func lengthFromCode(br *bitReader, rc rangeCodes, code int) int {
	r := rc[code]
	return int(r.base) + int(br.ReadBits(uint(r.bits)))
}

// runCommands executes the insert-and-copy command loop for one
// meta-block's body, per spec section 4.
func (d *Decoder) runCommands(c *blockCodes, blkLen int) {
	produced := 0
	for produced < blkLen {
		btypeI := c.switchI.consume(&d.br)
		cmdSym := int(c.treesI[btypeI].Decode(&d.br))
		insertCode, copyCode, distImplicit := decodeCommandSym(cmdSym)
		insertLen := lengthFromCode(&d.br, insLenRanges, insertCode)
		copyLen := lengthFromCode(&d.br, cpyLenRanges, copyCode)

		for i := 0; i < insertLen; i++ {
			if produced == blkLen {
				panic(errInvalid("insert length overruns meta-block"))
			}
			btypeL := c.switchL.consume(&d.br)
			mode := int(c.cmodes[btypeL])
			p1, p2 := d.lastBytes()
			cid := literalContextID(mode, p1, p2)
			treeIdx := c.cmapL[64*btypeL+cid]
			sym := c.treesL[treeIdx].Decode(&d.br)
			d.out = append(d.out, byte(sym))
			produced++
		}
		if produced == blkLen {
			break
		}

		var dist uint32
		if distImplicit {
			dist = d.ring.slot(0)
		} else {
			btypeD := c.switchD.consume(&d.br)
			cid := distanceContextID(copyLen)
			treeIdx := c.cmapD[4*btypeD+cid]
			distSym := int(c.treesD[treeIdx].Decode(&d.br))
			dist = decodeDistance(&d.br, &d.ring, c.dist, distSym)

			max := d.win.maxBackward(len(d.out))
			if distSym != 0 && int(dist) <= max {
				d.ring.push(dist)
			}
		}

		before := len(d.out)
		d.copyOrDictionary(dist, copyLen)
		produced += len(d.out) - before
		if produced > blkLen {
			panic(errInvalid("copy length overruns meta-block"))
		}
	}
}

// lastBytes returns the two most recently produced output bytes (zero
// before the stream has produced enough data), used for literal context
// modeling.
func (d *Decoder) lastBytes() (p1, p2 byte) {
	n := len(d.out)
	if n >= 1 {
		p1 = d.out[n-1]
	}
	if n >= 2 {
		p2 = d.out[n-2]
	}
	return p1, p2
}

// copyOrDictionary appends copyLen bytes to the output, either as a
// backward copy within the already-produced output or, when dist reaches
// beyond the sliding window, as a transformed static-dictionary word, per
// spec sections 4.7-4.8.
func (d *Decoder) copyOrDictionary(dist uint32, copyLen int) {
	got := len(d.out)
	max := d.win.maxBackward(got)
	if int(dist) <= max && dist > 0 {
		start := got - int(dist)
		for i := 0; i < copyLen; i++ {
			d.out = append(d.out, d.out[start+i])
		}
		return
	}

	id := int(dist) - max - 1
	if id < 0 {
		panic(errInvalid("distance refers before the start of the output"))
	}
	word := lookupDictWord(d.scratch[:], copyLen, id)
	d.out = append(d.out, word...)
}
