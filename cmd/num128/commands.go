package main

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	num "github.com/shabbyrobe/go-num128"
	"github.com/shabbyrobe/go-num128/bitscan"
	"github.com/urfave/cli"
)

var calcCommand = cli.Command{
	Name:      "calc",
	Usage:     "apply a binary operator to two values",
	ArgsUsage: "<a> <op> <b>",
	Description: "op is one of: + - * / % & | ^ &^ << >> cmp\n" +
		"   Arithmetic wraps modulo 2^128, as Go's unsigned integers do.",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "base", Value: 10, Usage: "output base, 2 to 36"},
	},
	Action: runCalc,
}

func runCalc(c *cli.Context) error {
	if c.NArg() != 3 {
		return fmt.Errorf("calc: expected <a> <op> <b>, found %d args", c.NArg())
	}
	base := c.Int("base")
	if err := checkBase(base); err != nil {
		return err
	}

	a, err := num.ParseU128(c.Args().Get(0), 0)
	if err != nil {
		return err
	}
	op := c.Args().Get(1)
	b, err := num.ParseU128(c.Args().Get(2), 0)
	if err != nil {
		return err
	}

	if op == "cmp" {
		fmt.Fprintln(c.App.Writer, a.Cmp(b))
		return nil
	}

	result, err := calc(a, op, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, result.Text(base))
	return nil
}

func calc(a num.U128, op string, b num.U128) (num.U128, error) {
	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/", "%":
		if b.IsZero() {
			return num.Zero, fmt.Errorf("calc: division by zero")
		}
		q, r := a.QuoRem(b)
		if op == "/" {
			return q, nil
		}
		return r, nil
	case "&":
		return a.And(b), nil
	case "|":
		return a.Or(b), nil
	case "^":
		return a.Xor(b), nil
	case "&^":
		return a.AndNot(b), nil
	case "<<", ">>":
		if !b.IsUint64() || b.AsUint64() >= 128 {
			return num.Zero, fmt.Errorf("calc: shift amount %s out of range [0, 127]", b)
		}
		if op == "<<" {
			return a.Lsh(uint(b.AsUint64())), nil
		}
		return a.Rsh(uint(b.AsUint64())), nil
	}
	return num.Zero, fmt.Errorf("calc: unknown operator %q", op)
}

var convCommand = cli.Command{
	Name:      "conv",
	Usage:     "convert a value between bases",
	ArgsUsage: "<value>",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "from", Value: 0, Usage: "input base, 2 to 36, or 0 to detect from the prefix"},
		cli.IntFlag{Name: "to", Value: 10, Usage: "output base, 2 to 36"},
		cli.BoolFlag{Name: "lower", Usage: "use lower-case digits above 9"},
		cli.IntFlag{Name: "width", Usage: "zero-pad the output to at least this many digits"},
		cli.BoolFlag{Name: "comma", Usage: "group decimal output in thousands"},
	},
	Action: runConv,
}

func runConv(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("conv: expected <value>")
	}
	from, to, width := c.Int("from"), c.Int("to"), c.Int("width")
	if from != 0 {
		if err := checkBase(from); err != nil {
			return err
		}
	}
	if err := checkBase(to); err != nil {
		return err
	}
	if width < 0 {
		return fmt.Errorf("conv: width %d is negative", width)
	}

	u, err := num.ParseU128(c.Args().First(), from)
	if err != nil {
		return err
	}

	if c.Bool("comma") {
		if to != 10 {
			return fmt.Errorf("conv: --comma needs --to 10, found %d", to)
		}
		fmt.Fprintln(c.App.Writer, humanize.BigComma(u.AsBigInt()))
		return nil
	}

	buf := make([]byte, u.DigitCount(to)+width)
	n, err := num.PutU128Width(buf, width, u, to, c.Bool("lower"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(buf[:n]))
	return nil
}

var floatCommand = cli.Command{
	Name:      "float",
	Usage:     "convert a value to float32 and float64, or a float to a value",
	ArgsUsage: "<value>",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "mode", Usage: "rounding mode: even, zero, down or up; all modes if empty"},
		cli.BoolFlag{Name: "from-float", Usage: "parse <value> as a float and convert it to a U128"},
	},
	Action: runFloat,
}

func runFloat(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("float: expected <value>")
	}
	w := c.App.Writer

	if c.Bool("from-float") {
		f, err := strconv.ParseFloat(c.Args().First(), 64)
		if err != nil {
			return err
		}
		u, err := num.U128FromFloat64(f)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, u)
		return nil
	}

	u, err := num.ParseU128(c.Args().First(), 0)
	if err != nil {
		return err
	}

	modes := []num.RoundingMode{num.ToNearestEven, num.ToZero, num.ToNegativeInf, num.ToPositiveInf}
	if s := c.String("mode"); s != "" {
		mode, err := num.ParseRoundingMode(s)
		if err != nil {
			return err
		}
		modes = []num.RoundingMode{mode}
	}

	for _, mode := range modes {
		fmt.Fprintf(w, "%-14s float64=%s float32=%s\n", mode,
			strconv.FormatFloat(u.Float64Mode(mode), 'g', -1, 64),
			strconv.FormatFloat(float64(u.Float32Mode(mode)), 'g', -1, 32))
	}
	return nil
}

var bitsCommand = cli.Command{
	Name:      "bits",
	Usage:     "show bit scan results for a value",
	ArgsUsage: "<value>",
	Action:    runBits,
}

func runBits(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("bits: expected <value>")
	}
	u, err := num.ParseU128(c.Args().First(), 0)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "fls:      %d\n", u.FlsSafe())
	fmt.Fprintf(w, "ffs:      %d\n", u.FfsSafe())
	fmt.Fprintf(w, "popcount: %d\n", u.Popcount())
	fmt.Fprintf(w, "lz:       %d\n", u.LeadingZeros())
	fmt.Fprintf(w, "tz:       %d\n", u.TrailingZeros())
	fmt.Fprintf(w, "bitlen:   %d\n", u.BitLen())
	fmt.Fprintf(w, "bytes:    %x\n", u.Bytes())
	return nil
}

var dumpCommand = cli.Command{
	Name:      "dump",
	Usage:     "dump the internal representation of a value",
	ArgsUsage: "<value>",
	Action:    runDump,
}

func runDump(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("dump: expected <value>")
	}
	u, err := num.ParseU128(c.Args().First(), 0)
	if err != nil {
		return err
	}
	hi, lo := u.Raw()
	fmt.Fprintf(c.App.Writer, "hi:%#016x lo:%#016x\n", hi, lo)
	spew.Fdump(c.App.Writer, u)
	return nil
}

var infoCommand = cli.Command{
	Name:   "info",
	Usage:  "show the arithmetic backend and bit scan strategy in use",
	Action: runInfo,
}

func runInfo(c *cli.Context) error {
	features := bitscan.HardwareFeatures()
	if len(features) == 0 {
		features = []string{"none"}
	}

	w := c.App.Writer
	fmt.Fprintf(w, "arch:     %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "backend:  %s\n", num.BackendName())
	fmt.Fprintf(w, "bitscan:  %s\n", bitscan.DefaultName)
	fmt.Fprintf(w, "features: %s\n", strings.Join(features, " "))
	return nil
}

func checkBase(base int) error {
	if base < 2 || base > 36 {
		return fmt.Errorf("base %d out of range [2, 36]", base)
	}
	return nil
}
