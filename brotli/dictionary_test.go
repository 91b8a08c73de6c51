// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "testing"

func TestDictTotalSize(t *testing.T) {
	if dictTotalSize != 122784 {
		t.Errorf("dictTotalSize = %d, want 122784", dictTotalSize)
	}
	if len(dictionary) != dictTotalSize {
		t.Errorf("len(dictionary) = %d, want %d", len(dictionary), dictTotalSize)
	}
}

func TestDictWordBounds(t *testing.T) {
	if _, err := panicToErr(func() { dictWord(minDictLen-1, 0) }); err == nil {
		t.Errorf("dictWord did not reject a too-short length")
	}
	if _, err := panicToErr(func() { dictWord(minDictLen, dictSizes[0]) }); err == nil {
		t.Errorf("dictWord did not reject an out-of-range index")
	}
	if w := dictWord(minDictLen, 0); len(w) != minDictLen {
		t.Errorf("len(dictWord(minDictLen, 0)) = %d, want %d", len(w), minDictLen)
	}
}

func TestLookupDictWordTransformsIdentity(t *testing.T) {
	var buf [maxWordSize]byte
	word := dictWord(minDictLen, 0)
	got := lookupDictWord(buf[:], minDictLen, 0) // transform 0 is identity, no affixes
	if string(got) != string(word) {
		t.Errorf("lookupDictWord = %q, want %q", got, word)
	}
}

func TestTransformWordAppliesNamedOp(t *testing.T) {
	var buf [maxWordSize]byte

	// transformLUT[1] = {"", transformIdentity, " "}: an id that is not
	// itself transformIdentity's constant value, to catch branching on
	// id instead of transformLUT[id].transform.
	if got := transformWord(buf[:], []byte("cat"), 1); string(buf[:got]) != "cat " {
		t.Errorf("transform 1 (identity, suffix \" \") = %q, want %q", buf[:got], "cat ")
	}

	// transformLUT[9] = {"", transformUppercaseFirst, ""}.
	if got := transformWord(buf[:], []byte("cat"), 9); string(buf[:got]) != "Cat" {
		t.Errorf("transform 9 (UppercaseFirst) = %q, want %q", buf[:got], "Cat")
	}

	// transformLUT[44] = {"", transformUppercaseAll, ""}.
	if got := transformWord(buf[:], []byte("cat"), 44); string(buf[:got]) != "CAT" {
		t.Errorf("transform 44 (UppercaseAll) = %q, want %q", buf[:got], "CAT")
	}

	// transformLUT[23] = {"", transformOmitLast3, ""}: past the last
	// simple-identity id, where the old id-keyed switch matched no case.
	if got := transformWord(buf[:], []byte("hamburger"), 23); string(buf[:got]) != "hambur" {
		t.Errorf("transform 23 (OmitLast3) = %q, want %q", buf[:got], "hambur")
	}

	// transformLUT[26] = {"", transformOmitFirst3, ""}.
	if got := transformWord(buf[:], []byte("hamburger"), 26); string(buf[:got]) != "burger" {
		t.Errorf("transform 26 (OmitFirst3) = %q, want %q", buf[:got], "burger")
	}
}

// panicToErr runs f and converts any panic into an error, for tests that
// only care whether a boundary check fired.
func panicToErr(f func()) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, isErr := r.(error); isErr {
				err = e
			} else {
				err = Error("panic")
			}
		}
	}()
	f()
	return true, nil
}
