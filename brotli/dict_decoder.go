// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// windowState tracks the sliding-window size named by a stream's WBITS
// field and bounds how far back a copy command may legally reach into the
// output produced so far, per spec section 4.7.
type windowState struct {
	size int // Sliding window size
}

// maxAlloc bounds any single allocation this package makes on the strength
// of a length field read from the stream, to avoid denial-of-service
// attacks via large memory allocation.
const maxAlloc = 1 << 28 // 256 MiB

func (ws *windowState) Init(wbits uint) {
	// Regardless of what size claims, the window never needs to exceed the
	// amount of output produced so far; maxBackward clamps against that.
	ws.size = int(1<<wbits) - 16
}

// checkAlloc panics with OutOfMemoryError if n exceeds maxAlloc.
func checkAlloc(n int) {
	if n > maxAlloc {
		panic(OutOfMemoryError{})
	}
}

// maxBackward returns the largest distance that names a position within
// the already-produced output rather than the static dictionary.
func (ws *windowState) maxBackward(produced int) int {
	if ws.size < produced {
		return ws.size
	}
	return produced
}
