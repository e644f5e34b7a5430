package twoscomp

import "github.com/mewbit/twoscomp/u128"

// Complement returns the two's-complement negation of the normalized bit
// pattern p at width n: every bit inverted, plus one with wraparound, then
// sign-extended back to n bits since the addition runs in full 128-bit
// precision.
//
// The most negative value of a width, bit pattern 1000...0, is its own
// complement: its positive counterpart is not representable in n bits, so the
// modular negation wraps back onto the same pattern. This is correct
// arithmetic modulo 2^n, not an error case.
//
// Examples at width 4, inputs on the left and complements on the right:
//
//	0b0011 -> 0b1101 ( 3 -> -3)
//	0b0001 -> 0b1111 ( 1 -> -1)
//	0b0000 -> 0b0000 ( 0 ->  0)
//	0b1111 -> 0b0001 (-1 ->  1)
//	0b1000 -> 0b1000 (-8 -> -8)
func Complement(p u128.Uint, n Width) u128.Uint {
	return SignExtend(p.Not().Add(u128.One), n)
}
