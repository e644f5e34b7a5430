// twoscomp prints the fixed-width two's-complement bit pattern of integer
// literals, alongside each pattern's negation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/icza/bitio"
	"github.com/mewbit/twoscomp"
	"github.com/mewkiz/pkg/osutil"
	"github.com/pkg/errors"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: twoscomp [OPTION]... BITS NUM...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "BITS is a power of two between 4 and 128. Each NUM is an integer literal,")
	fmt.Fprintln(os.Stderr, "optionally signed, in decimal, hexadecimal (0x), binary (0b), octal (leading")
	fmt.Fprintln(os.Stderr, "zero) or explicit decimal (0t) notation.")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func main() {
	// Parse command line arguments.
	var (
		// force overwrite of the dump file if already present.
		force bool
		// dumpPath is the path of the file to append bit-packed patterns to.
		dumpPath string
	)
	flag.BoolVar(&force, "f", false, "force overwrite of dump file")
	flag.StringVar(&dumpPath, "o", "", "dump bit-packed patterns to file")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}
	bits, err := strconv.ParseUint(flag.Arg(0), 10, 64)
	if err != nil {
		log.Fatalf("twoscomp: failed to parse number of bits %q: %v", flag.Arg(0), err)
	}
	width, err := twoscomp.NewWidth(bits)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if err := run(width, flag.Args()[1:], dumpPath, force); err != nil {
		log.Fatalf("%+v", err)
	}
}

// run reports each literal at the given width, dumping bit-packed patterns to
// dumpPath when set.
func run(n twoscomp.Width, literals []string, dumpPath string, force bool) error {
	var bw bitio.Writer
	if len(dumpPath) > 0 {
		if !force && osutil.Exists(dumpPath) {
			return errors.Errorf("the file %q exists already; use -f flag to force overwrite", dumpPath)
		}
		f, err := os.Create(dumpPath)
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()
		bw = bitio.NewWriter(f)
	}
	for _, lit := range literals {
		if err := report(n, lit, bw); err != nil {
			return err
		}
	}
	if bw != nil {
		// Flush pending bits, zero-padding the final byte.
		if err := bw.Close(); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// report parses, normalizes and complements one literal, printing both
// patterns and appending them to bw when dumping is enabled.
func report(n twoscomp.Width, lit string, bw bitio.Writer) error {
	mag, err := twoscomp.ParseLiteral(lit)
	if err != nil {
		return err
	}
	num, err := twoscomp.Normalize(mag, n)
	if err != nil {
		return errors.Wrapf(err, "number %q", lit)
	}
	n2c := twoscomp.Complement(num, n)
	fmt.Printf("number:  0x%s (%s)  [%s from %s]\n", twoscomp.HexString(num, n), twoscomp.BinString(num, n), twoscomp.DecString(num), lit)
	fmt.Printf("2s cmpl: 0x%s (%s)  [%s]\n", twoscomp.HexString(n2c, n), twoscomp.BinString(n2c, n), twoscomp.DecString(n2c))
	if bw != nil {
		if err := twoscomp.EncodePattern(bw, num, n); err != nil {
			return errors.WithStack(err)
		}
		if err := twoscomp.EncodePattern(bw, n2c, n); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
