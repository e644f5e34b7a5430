package twoscomp

import (
	"github.com/icza/bitio"

	"github.com/mewbit/twoscomp/u128"
)

// DecodePattern reads an n-bit pattern from br, most significant bit first,
// and returns it in the canonical sign-extended form produced by Normalize.
func DecodePattern(br bitio.Reader, n Width) (u128.Uint, error) {
	if n > 64 {
		hi, err := br.ReadBits(uint8(uint(n) - 64))
		if err != nil {
			return u128.Zero, err
		}
		lo, err := br.ReadBits(64)
		if err != nil {
			return u128.Zero, err
		}
		return SignExtend(u128.New(hi, lo), n), nil
	}
	lo, err := br.ReadBits(uint8(n))
	if err != nil {
		return u128.Zero, err
	}
	return SignExtend(u128.From64(lo), n), nil
}
