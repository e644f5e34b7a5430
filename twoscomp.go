// Package twoscomp converts integer literals into fixed-width two's-complement
// bit patterns and computes their negations.
//
// Two's complement is the representation in which the negation of an n-bit
// value k is its complement modulo 2^n: -k is the number such that
// (k + -k) mod 2^n == 0. Two desirable properties fall out of this definition:
//
//  1. Zero has a single representation; the complement of 0 is 2^n, which
//     wraps back to 0.
//  2. The same adder logic serves signed and unsigned arithmetic alike.
//
// One odd case remains: the most negative value of a width has no positive
// counterpart, and is its own complement.
//
// Values are held in fixed 128-bit precision (package u128) and canonicalized
// to a working Width by sign extension. The usual pipeline is ParseLiteral,
// Normalize, Complement, with HexString, BinString and DecString rendering
// the results.
package twoscomp
