package twoscomp

import (
	"github.com/icza/bitio"

	"github.com/mewbit/twoscomp/u128"
)

// EncodePattern writes the low n bits of p to bw, most significant bit first.
// Patterns pack back to back with no padding between them; the caller closes
// bw to flush and zero-pad the final byte. Bits of p at position n and above
// are ignored, so sign-extended patterns need no masking first.
func EncodePattern(bw bitio.Writer, p u128.Uint, n Width) error {
	if n > 64 {
		high := uint8(uint(n) - 64)
		if err := bw.WriteBits(p.Hi()&(^uint64(0)>>(64-uint(high))), high); err != nil {
			return err
		}
		return bw.WriteBits(p.Lo(), 64)
	}
	lo := p.Lo()
	if n < 64 {
		lo &= 1<<uint(n) - 1
	}
	return bw.WriteBits(lo, uint8(n))
}
