// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "testing"

func TestReadNumBlockTypesSingle(t *testing.T) {
	var br bitReader
	br.Init([]byte{0x00})
	if got := readNumBlockTypes(&br); got != 1 {
		t.Errorf("readNumBlockTypes = %d, want 1", got)
	}
}

func TestReadNumBlockTypesMultiple(t *testing.T) {
	var br bitReader
	br.Init([]byte{0x03})
	if got := readNumBlockTypes(&br); got != 3 {
		t.Errorf("readNumBlockTypes = %d, want 3", got)
	}
}

func TestBlockSwitchStateSingleType(t *testing.T) {
	var br bitReader
	br.Init(nil)
	s := newBlockSwitchState(&br, 1)
	for i := 0; i < 5; i++ {
		if got := s.consume(&br); got != 0 {
			t.Errorf("consume() = %d, want 0", got)
		}
	}
}
