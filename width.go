package twoscomp

// A Width is a validated bit width: a power of two in the inclusive range
// [4,128]. It sets the modulus 2^n for all arithmetic performed with it.
// Functions taking a Width assume it came from NewWidth.
type Width uint

// NewWidth validates bits as a Width. It fails with *InvalidWidthError if
// bits is not a power of two, or lies outside [4,128].
func NewWidth(bits uint64) (Width, error) {
	if bits == 0 || bits&(bits-1) != 0 {
		return 0, &InvalidWidthError{Bits: bits}
	}
	if bits < 4 || bits > 128 {
		return 0, &InvalidWidthError{Bits: bits}
	}
	return Width(bits), nil
}
