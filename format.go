package twoscomp

import "github.com/mewbit/twoscomp/u128"

const hexDigits = "0123456789abcdef"

// HexString renders the low n bits of p as n/4 zero-padded hexadecimal
// digits. Bits at position n and above are ignored.
func HexString(p u128.Uint, n Width) string {
	buf := make([]byte, uint(n)/4)
	for i := range buf {
		shift := uint(n) - 4*uint(i+1)
		buf[i] = hexDigits[p.Shr(shift).Lo()&0xf]
	}
	return string(buf)
}

// BinString renders the low n bits of p as n zero-padded binary digits,
// most significant bit first.
func BinString(p u128.Uint, n Width) string {
	buf := make([]byte, uint(n))
	for i := range buf {
		buf[i] = byte('0' + p.Bit(uint(n)-1-uint(i)))
	}
	return string(buf)
}

// DecString renders p as a signed decimal number, reading the full 128-bit
// pattern as two's complement. A pattern normalized to any width is already
// sign-extended, so its 128-bit signed reading equals its n-bit signed value.
func DecString(p u128.Uint) string {
	if p.Bit(127) == 1 {
		return "-" + p.Not().Add(u128.One).String()
	}
	return p.String()
}
