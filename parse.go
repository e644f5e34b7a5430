package twoscomp

import (
	"strings"

	"github.com/mewbit/twoscomp/u128"
)

// ParseLiteral converts the text of an integer literal into its 128-bit
// magnitude. A leading - negates the parsed magnitude modulo 2^128, so the
// sign ends up encoded in the bit pattern itself and "-0" parses identically
// to "0". The radix is selected by prefix on the sign-stripped remainder; see
// splitRadix for the exact precedence.
//
// ParseLiteral fails with *MalformedLiteralError if the digit string is empty,
// contains a digit invalid for the selected radix, or denotes a magnitude past
// 128 bits.
func ParseLiteral(s string) (u128.Uint, error) {
	lit := s
	neg := strings.HasPrefix(lit, "-")
	if neg {
		lit = lit[1:]
	}
	base, digits := splitRadix(lit)
	mag, err := u128.Parse(digits, base)
	if err != nil {
		return u128.Zero, &MalformedLiteralError{Literal: s, Err: err}
	}
	if neg {
		mag = u128.Zero.Sub(mag)
	}
	return mag, nil
}

// splitRadix selects the numeral base of a sign-stripped literal and returns
// the digit string to parse in that base. The checks run in order:
//
//	"0"        decimal zero
//	0x, 0X     hexadecimal, prefix stripped
//	0t, 0T     decimal, prefix stripped (an explicit "not octal" escape)
//	0b, 0B     binary, prefix stripped
//	0...       octal, prefix kept (a leading zero is a valid octal digit)
//	otherwise  decimal
//
// The bare "0" case must short-circuit ahead of the generic octal rule.
func splitRadix(s string) (base int, digits string) {
	switch {
	case s == "0":
		return 10, s
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return 16, s[2:]
	case strings.HasPrefix(s, "0t"), strings.HasPrefix(s, "0T"):
		return 10, s[2:]
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		return 2, s[2:]
	case strings.HasPrefix(s, "0"):
		return 8, s
	}
	return 10, s
}
