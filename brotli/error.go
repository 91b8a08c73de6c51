// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "runtime"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return string(e) }

var (
	// ErrCorrupt is a generic error value for a malformed stream. Decode
	// and DecodeCompare do not return it: every malformed stream they
	// detect is reported as one of the typed errors below.
	ErrCorrupt = Error("brotli: stream is corrupted")
)

// OutOfMemoryError reports that a length read from the stream (a
// meta-block's length or a metadata block's skip length) exceeds maxAlloc,
// the most this decoder is willing to allocate on the caller's behalf.
type OutOfMemoryError struct{}

func (OutOfMemoryError) Error() string { return "brotli: out of memory" }

// PrematureEOFError reports that the bit reader needed another byte to make
// progress but the compressed buffer was exhausted.
type PrematureEOFError struct{}

func (PrematureEOFError) Error() string { return "brotli: unexpected end of stream" }

// InvalidError reports a structurally invalid stream, with Detail carrying
// the specific violated constraint (see spec section 7).
type InvalidError struct {
	Detail string
}

func (e *InvalidError) Error() string { return "brotli: invalid stream: " + e.Detail }

// CompareMismatchError reports that compare-mode decoding diverged from the
// caller-supplied expected buffer.
type CompareMismatchError struct {
	// Got is the number of bytes produced (and matched) before divergence.
	Got int
}

func (e *CompareMismatchError) Error() string { return "brotli: output does not match expected data" }

func errInvalid(detail string) error { return &InvalidError{Detail: detail} }

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// Result classifies the outcome of Decode/DecodeCompare the way an external
// CLI driver (out of scope for this package, see spec section 1) would need
// to in order to choose a process exit code.
type Result int

const (
	Ok Result = iota
	ResultOutOfMemory
	ResultPrematureEOF
	ResultInvalid
	ResultCompareMismatch
)

func (r Result) String() string {
	switch r {
	case Ok:
		return "ok"
	case ResultOutOfMemory:
		return "out of memory"
	case ResultPrematureEOF:
		return "premature eof"
	case ResultInvalid:
		return "invalid"
	case ResultCompareMismatch:
		return "compare mismatch"
	default:
		return "unknown"
	}
}

// Classify maps an error returned by Decode/DecodeCompare to its Result
// kind. A nil error classifies as Ok.
func Classify(err error) Result {
	switch err.(type) {
	case nil:
		return Ok
	case OutOfMemoryError:
		return ResultOutOfMemory
	case PrematureEOFError:
		return ResultPrematureEOF
	case *InvalidError:
		return ResultInvalid
	case *CompareMismatchError:
		return ResultCompareMismatch
	default:
		return ResultInvalid
	}
}
