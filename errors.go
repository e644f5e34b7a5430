package twoscomp

import (
	"fmt"

	"github.com/mewbit/twoscomp/u128"
)

// An InvalidWidthError reports a bit width that is not a power of two in the
// inclusive range [4,128].
type InvalidWidthError struct {
	// Bits is the rejected width.
	Bits uint64
}

func (e *InvalidWidthError) Error() string {
	if e.Bits != 0 && e.Bits&(e.Bits-1) == 0 {
		return fmt.Sprintf("twoscomp.NewWidth: number of bits out of range (4-128): %d", e.Bits)
	}
	return fmt.Sprintf("twoscomp.NewWidth: number of bits not a power of two: %d", e.Bits)
}

// A MalformedLiteralError reports a literal that does not parse as an integer
// in its detected radix.
type MalformedLiteralError struct {
	// Literal is the offending token, verbatim.
	Literal string
	// Err is the underlying parse failure.
	Err error
}

func (e *MalformedLiteralError) Error() string {
	return fmt.Sprintf("twoscomp.ParseLiteral: failed to parse number %q: %v", e.Literal, e.Err)
}

// Unwrap returns the underlying parse failure.
func (e *MalformedLiteralError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying parse failure.
func (e *MalformedLiteralError) Cause() error {
	return e.Err
}

// An OutOfRangeError reports a magnitude that cannot be reconciled with the
// requested width under either a signed or an unsigned interpretation.
type OutOfRangeError struct {
	// Magnitude is the rejected full-precision value.
	Magnitude u128.Uint
	// Width is the requested bit width.
	Width Width
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("twoscomp.Normalize: value %s out of range for width %d bits", e.Magnitude, uint(e.Width))
}
