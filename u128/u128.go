// Package u128 implements a fixed-precision 128-bit unsigned integer type.
//
// Uint is an immutable value type; operations return a new value rather than
// mutating the receiver. Arithmetic wraps modulo 2^128. The precision is a
// deliberate fixed ceiling, wide enough to hold a bit pattern of any supported
// width, and is not a stepping stone towards arbitrary precision.
package u128

import "math/bits"

// A Uint is a 128-bit unsigned integer, stored as two 64-bit words.
type Uint struct {
	hi, lo uint64
}

var (
	// Zero is the Uint with no bits set.
	Zero = Uint{}
	// One is the Uint 1.
	One = Uint{lo: 1}
	// Max is the Uint with all 128 bits set.
	Max = Uint{hi: ^uint64(0), lo: ^uint64(0)}
)

// New returns the Uint with the given high and low 64-bit words.
func New(hi, lo uint64) Uint {
	return Uint{hi: hi, lo: lo}
}

// From64 returns the Uint whose low word is v.
func From64(v uint64) Uint {
	return Uint{lo: v}
}

// Hi returns the high 64-bit word of u.
func (u Uint) Hi() uint64 {
	return u.hi
}

// Lo returns the low 64-bit word of u.
func (u Uint) Lo() uint64 {
	return u.lo
}

// IsZero reports whether no bit of u is set.
func (u Uint) IsZero() bool {
	return u.hi == 0 && u.lo == 0
}

// And computes u & v.
func (u Uint) And(v Uint) Uint {
	return Uint{hi: u.hi & v.hi, lo: u.lo & v.lo}
}

// Or computes u | v.
func (u Uint) Or(v Uint) Uint {
	return Uint{hi: u.hi | v.hi, lo: u.lo | v.lo}
}

// Xor computes u ^ v.
func (u Uint) Xor(v Uint) Uint {
	return Uint{hi: u.hi ^ v.hi, lo: u.lo ^ v.lo}
}

// Not computes ^u, the one's complement of u.
func (u Uint) Not() Uint {
	return Uint{hi: ^u.hi, lo: ^u.lo}
}

// Add computes u + v, wrapping modulo 2^128.
func (u Uint) Add(v Uint) Uint {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return Uint{hi: hi, lo: lo}
}

// Sub computes u - v, wrapping modulo 2^128.
func (u Uint) Sub(v Uint) Uint {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return Uint{hi: hi, lo: lo}
}

// Shl computes u << n. Shift counts of 128 or more yield zero.
func (u Uint) Shl(n uint) Uint {
	switch {
	case n >= 128:
		return Uint{}
	case n >= 64:
		return Uint{hi: u.lo << (n - 64)}
	case n == 0:
		return u
	}
	return Uint{
		hi: u.hi<<n | u.lo>>(64-n),
		lo: u.lo << n,
	}
}

// Shr computes u >> n. Shift counts of 128 or more yield zero.
func (u Uint) Shr(n uint) Uint {
	switch {
	case n >= 128:
		return Uint{}
	case n >= 64:
		return Uint{lo: u.hi >> (n - 64)}
	case n == 0:
		return u
	}
	return Uint{
		hi: u.hi >> n,
		lo: u.lo>>n | u.hi<<(64-n),
	}
}

// Bit returns the value of bit i of u, either 0 or 1. Bit positions of 128 or
// more are read as 0.
func (u Uint) Bit(i uint) uint {
	switch {
	case i >= 128:
		return 0
	case i >= 64:
		return uint(u.hi>>(i-64)) & 1
	}
	return uint(u.lo>>i) & 1
}

// mulAdd64 computes u*m + a, reporting overflow past 128 bits.
func (u Uint) mulAdd64(m, a uint64) (v Uint, ok bool) {
	carry, lo := bits.Mul64(u.lo, m)
	over, hi := bits.Mul64(u.hi, m)
	hi, c := bits.Add64(hi, carry, 0)
	over += c
	lo, c = bits.Add64(lo, a, 0)
	hi, c = bits.Add64(hi, 0, c)
	over += c
	return Uint{hi: hi, lo: lo}, over == 0
}

// divMod64 computes u/d and u%d for a 64-bit divisor.
func (u Uint) divMod64(d uint64) (q Uint, r uint64) {
	q.hi = u.hi / d
	q.lo, r = bits.Div64(u.hi%d, u.lo, d)
	return q, r
}
