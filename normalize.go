package twoscomp

import "github.com/mewbit/twoscomp/u128"

// SignExtend interprets the low n bits of x as an n-bit two's-complement
// value and replicates its sign bit, bit n-1, into every higher bit position.
// If the sign bit is clear the high bits are cleared instead, masking x to
// exactly n bits. SignExtend is idempotent for a given width.
func SignExtend(x u128.Uint, n Width) u128.Uint {
	mask := u128.Max.Shr(128 - uint(n))
	if x.Bit(uint(n)-1) == 1 {
		return x.Or(mask.Not())
	}
	return x.And(mask)
}

// Normalize interprets mag as a signed value of exactly n bits, returning the
// canonical sign-extended bit pattern. A magnitude is out of range only when
// it disagrees with its sign-extended form and has bits set at position n or
// above: a literal that exactly equals the bit pattern of a negative value,
// such as 0x80 at width 8, is accepted as that value. This permits entering a
// bit pattern directly, at the price of admitting unsigned magnitudes up to
// 2^n-1 rather than only the signed range.
func Normalize(mag u128.Uint, n Width) (u128.Uint, error) {
	ext := SignExtend(mag, n)
	if mag != ext && !mag.Shr(uint(n)).IsZero() {
		return u128.Zero, &OutOfRangeError{Magnitude: mag, Width: n}
	}
	return ext, nil
}
