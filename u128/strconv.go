package u128

import "github.com/pkg/errors"

// Parse interprets s as an unsigned integer in the given base and returns its
// value. Valid bases are 2, 8, 10 and 16; s carries no base prefix and no
// sign. Parse fails if s is empty, contains a digit invalid for the base, or
// denotes a value past 128 bits.
func Parse(s string, base int) (Uint, error) {
	switch base {
	case 2, 8, 10, 16:
	default:
		return Uint{}, errors.Errorf("u128.Parse: invalid base %d", base)
	}
	if len(s) == 0 {
		return Uint{}, errors.New("u128.Parse: empty digit string")
	}
	var u Uint
	for _, c := range []byte(s) {
		d, ok := digitVal(c)
		if !ok || int(d) >= base {
			return Uint{}, errors.Errorf("u128.Parse: invalid digit %q in base-%d literal %q", c, base, s)
		}
		u, ok = u.mulAdd64(uint64(base), uint64(d))
		if !ok {
			return Uint{}, errors.Errorf("u128.Parse: base-%d literal %q exceeds 128 bits", base, s)
		}
	}
	return u, nil
}

// digitVal returns the numeric value of the digit character c.
func digitVal(c byte) (d byte, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// String returns the unsigned decimal representation of u.
func (u Uint) String() string {
	if u.IsZero() {
		return "0"
	}
	// 39 digits fit every 128-bit value.
	var buf [39]byte
	i := len(buf)
	for !u.IsZero() {
		var r uint64
		u, r = u.divMod64(10)
		i--
		buf[i] = byte('0' + r)
	}
	return string(buf[i:])
}
