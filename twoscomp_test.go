package twoscomp_test

import (
	"errors"
	"testing"

	"github.com/mewbit/twoscomp"
	"github.com/mewbit/twoscomp/u128"
)

// mustWidth returns bits as a validated Width.
func mustWidth(t *testing.T, bits uint64) twoscomp.Width {
	t.Helper()
	n, err := twoscomp.NewWidth(bits)
	if err != nil {
		t.Fatalf("NewWidth(%d): %v", bits, err)
	}
	return n
}

// mustNormalize parses lit and normalizes it to width n.
func mustNormalize(t *testing.T, lit string, n twoscomp.Width) u128.Uint {
	t.Helper()
	mag, err := twoscomp.ParseLiteral(lit)
	if err != nil {
		t.Fatalf("ParseLiteral(%q): %v", lit, err)
	}
	p, err := twoscomp.Normalize(mag, n)
	if err != nil {
		t.Fatalf("Normalize(%q, %d): %v", lit, uint(n), err)
	}
	return p
}

func TestScenarios(t *testing.T) {
	golden := []struct {
		bits    uint64
		lit     string
		hex     string
		bin     string
		dec     string
		compHex string
		compBin string
		compDec string
	}{
		{bits: 8, lit: "5", hex: "05", bin: "00000101", dec: "5", compHex: "fb", compBin: "11111011", compDec: "-5"},
		{bits: 8, lit: "-5", hex: "fb", bin: "11111011", dec: "-5", compHex: "05", compBin: "00000101", compDec: "5"},
		// A literal equal to a negative bit pattern enters that value directly.
		{bits: 8, lit: "0x80", hex: "80", bin: "10000000", dec: "-128", compHex: "80", compBin: "10000000", compDec: "-128"},
		{bits: 8, lit: "255", hex: "ff", bin: "11111111", dec: "-1", compHex: "01", compBin: "00000001", compDec: "1"},
		{bits: 4, lit: "-8", hex: "8", bin: "1000", dec: "-8", compHex: "8", compBin: "1000", compDec: "-8"},
		{bits: 4, lit: "7", hex: "7", bin: "0111", dec: "7", compHex: "9", compBin: "1001", compDec: "-7"},
		{bits: 16, lit: "-1", hex: "ffff", bin: "1111111111111111", dec: "-1", compHex: "0001", compBin: "0000000000000001", compDec: "1"},
		{bits: 16, lit: "0t256", hex: "0100", bin: "0000000100000000", dec: "256", compHex: "ff00", compBin: "1111111100000000", compDec: "-256"},
		{bits: 32, lit: "0b1010", hex: "0000000a", bin: "00000000000000000000000000001010", dec: "10", compHex: "fffffff6", compBin: "11111111111111111111111111110110", compDec: "-10"},
		{bits: 64, lit: "010", hex: "0000000000000008", bin: "0000000000000000000000000000000000000000000000000000000000001000", dec: "8", compHex: "fffffffffffffff8", compBin: "1111111111111111111111111111111111111111111111111111111111111000", compDec: "-8"},
	}
	for _, g := range golden {
		n := mustWidth(t, g.bits)
		num := mustNormalize(t, g.lit, n)
		if got := twoscomp.HexString(num, n); g.hex != got {
			t.Errorf("HexString(%q, %d): expected %s, got %s", g.lit, g.bits, g.hex, got)
		}
		if got := twoscomp.BinString(num, n); g.bin != got {
			t.Errorf("BinString(%q, %d): expected %s, got %s", g.lit, g.bits, g.bin, got)
		}
		if got := twoscomp.DecString(num); g.dec != got {
			t.Errorf("DecString(%q, %d): expected %s, got %s", g.lit, g.bits, g.dec, got)
		}
		n2c := twoscomp.Complement(num, n)
		if got := twoscomp.HexString(n2c, n); g.compHex != got {
			t.Errorf("complement HexString(%q, %d): expected %s, got %s", g.lit, g.bits, g.compHex, got)
		}
		if got := twoscomp.BinString(n2c, n); g.compBin != got {
			t.Errorf("complement BinString(%q, %d): expected %s, got %s", g.lit, g.bits, g.compBin, got)
		}
		if got := twoscomp.DecString(n2c); g.compDec != got {
			t.Errorf("complement DecString(%q, %d): expected %s, got %s", g.lit, g.bits, g.compDec, got)
		}
	}
}

func TestParseLiteralRadixEquivalence(t *testing.T) {
	want := u128.From64(16)
	for _, lit := range []string{"0x10", "0t16", "0b10000", "020", "16"} {
		got, err := twoscomp.ParseLiteral(lit)
		if err != nil {
			t.Errorf("ParseLiteral(%q): unexpected error: %v", lit, err)
			continue
		}
		if want != got {
			t.Errorf("ParseLiteral(%q): expected %v, got %v", lit, want, got)
		}
	}
}

func TestParseLiteralNegativeZero(t *testing.T) {
	pos, err := twoscomp.ParseLiteral("0")
	if err != nil {
		t.Fatalf("ParseLiteral(%q): %v", "0", err)
	}
	neg, err := twoscomp.ParseLiteral("-0")
	if err != nil {
		t.Fatalf("ParseLiteral(%q): %v", "-0", err)
	}
	if pos != neg {
		t.Errorf("-0 and 0 parse differently: %v vs %v", neg, pos)
	}
	if !pos.IsZero() {
		t.Errorf("0 does not parse to zero: %v", pos)
	}
}

func TestParseLiteralMalformed(t *testing.T) {
	lits := []string{
		"",
		"-",
		"0x",
		"0b",
		"0t",
		"09",   // 9 is not an octal digit.
		"0b12", // 2 is not a binary digit.
		"0xg",
		"12a",
		"--1",
		"5-",
		// One past 128 bits.
		"340282366920938463463374607431768211456",
		"0x100000000000000000000000000000000",
		"-340282366920938463463374607431768211456",
	}
	for _, lit := range lits {
		_, err := twoscomp.ParseLiteral(lit)
		if err == nil {
			t.Errorf("ParseLiteral(%q): expected error, got none", lit)
			continue
		}
		var merr *twoscomp.MalformedLiteralError
		if !errors.As(err, &merr) {
			t.Errorf("ParseLiteral(%q): expected *MalformedLiteralError, got %T", lit, err)
			continue
		}
		if merr.Literal != lit {
			t.Errorf("ParseLiteral(%q): error carries literal %q", lit, merr.Literal)
		}
	}
}

func TestNormalizeOutOfRange(t *testing.T) {
	golden := []struct {
		bits uint64
		lit  string
	}{
		{bits: 8, lit: "256"},
		{bits: 8, lit: "-129"},
		{bits: 4, lit: "16"},
		{bits: 4, lit: "-9"},
		{bits: 64, lit: "0x10000000000000000"},
	}
	for _, g := range golden {
		n := mustWidth(t, g.bits)
		mag, err := twoscomp.ParseLiteral(g.lit)
		if err != nil {
			t.Fatalf("ParseLiteral(%q): %v", g.lit, err)
		}
		_, err = twoscomp.Normalize(mag, n)
		if err == nil {
			t.Errorf("Normalize(%q, %d): expected error, got none", g.lit, g.bits)
			continue
		}
		var rerr *twoscomp.OutOfRangeError
		if !errors.As(err, &rerr) {
			t.Errorf("Normalize(%q, %d): expected *OutOfRangeError, got %T", g.lit, g.bits, err)
			continue
		}
		if rerr.Width != n {
			t.Errorf("Normalize(%q, %d): error carries width %d", g.lit, g.bits, uint(rerr.Width))
		}
	}
}

var widths = []uint64{4, 8, 16, 32, 64, 128}

func TestSignExtendIdempotent(t *testing.T) {
	lits := []string{"0", "1", "-1", "2", "-3", "5", "-5", "7", "-8"}
	for _, bits := range widths {
		n := mustWidth(t, bits)
		for _, lit := range lits {
			p := mustNormalize(t, lit, n)
			if got := twoscomp.SignExtend(p, n); p != got {
				t.Errorf("SignExtend(%q, %d) not idempotent: %v became %v", lit, bits, p, got)
			}
			// Re-normalizing a canonical pattern is a no-op.
			again, err := twoscomp.Normalize(p, n)
			if err != nil {
				t.Errorf("Normalize(%q, %d) rejects its own output: %v", lit, bits, err)
				continue
			}
			if p != again {
				t.Errorf("Normalize(%q, %d) not idempotent: %v became %v", lit, bits, p, again)
			}
		}
	}
}

func TestDoubleComplement(t *testing.T) {
	lits := []string{"0", "1", "-1", "2", "-3", "5", "-5", "7"}
	for _, bits := range widths {
		n := mustWidth(t, bits)
		for _, lit := range lits {
			p := mustNormalize(t, lit, n)
			if got := twoscomp.Complement(twoscomp.Complement(p, n), n); p != got {
				t.Errorf("double complement of %q at width %d: expected %v, got %v", lit, bits, p, got)
			}
		}
	}
}

func TestMostNegativeFixedPoint(t *testing.T) {
	for _, bits := range widths {
		n := mustWidth(t, bits)
		mn := twoscomp.SignExtend(u128.One.Shl(uint(bits)-1), n)
		if got := twoscomp.Complement(mn, n); mn != got {
			t.Errorf("width %d: complement of most negative value: expected %v, got %v", bits, mn, got)
		}
	}
}

func TestNewWidth(t *testing.T) {
	for _, bits := range widths {
		if _, err := twoscomp.NewWidth(bits); err != nil {
			t.Errorf("NewWidth(%d): unexpected error: %v", bits, err)
		}
	}
	for _, bits := range []uint64{0, 1, 2, 3, 6, 12, 100, 256, 1024} {
		_, err := twoscomp.NewWidth(bits)
		if err == nil {
			t.Errorf("NewWidth(%d): expected error, got none", bits)
			continue
		}
		var werr *twoscomp.InvalidWidthError
		if !errors.As(err, &werr) {
			t.Errorf("NewWidth(%d): expected *InvalidWidthError, got %T", bits, err)
		}
	}
}
