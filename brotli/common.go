// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package brotli implements a decoder for the Brotli compressed data
// format, described in RFC 7932. It favors correctness and clarity over
// raw throughput: the whole compressed buffer is decoded to a complete
// in-memory output in one call, with no incremental or streaming API.
package brotli

// mtfLUT is the identity permutation, used to seed the context map's
// inverse move-to-front transform (spec section 4.6).
var mtfLUT [256]uint8

func initLUTs() {
	initCommonLUTs()
	initPrefixLUTs()
	initContextLUTs()
	initDictLUTs()
}

func initCommonLUTs() {
	for i := range mtfLUT {
		mtfLUT[i] = uint8(i)
	}
}

func init() { initLUTs() }
