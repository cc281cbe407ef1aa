// Command digitinfo prints the affine digitization parameters derived for a
// list of sample values and the codes each value maps to.
//
// Usage:
//
//	digitinfo [flags] value ...
//
// Values are parsed with strconv.ParseFloat, so "NaN", "Inf" and "-Inf"
// are accepted. Without -policy both policies are shown.
//
// Examples:
//
//	digitinfo -- -2 -1 0 1 2
//	digitinfo -bits 16 -signed -policy preserve-zero 0.1 0.25 3.5
//	digitinfo -codes 0:10 -nan 255 NaN 1 Inf -1
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-digitize/dsp/digitize"
)

type options struct {
	codes    digitize.CodeRange
	storage  digitize.CodeRange
	policies []digitize.Policy
	digOpts  []digitize.Option
	values   []float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)

		return 2
	}

	if err := printAnalysis(stdout, opts); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("digitinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	bits := fs.Int("bits", 8, "width of the target integer type")
	signed := fs.Bool("signed", false, "use a signed target integer type")
	codes := fs.String("codes", "", "code interval kmin:kmax (default: full -bits range)")
	policy := fs.String("policy", "", "preserve-zero or preserve-bounds (default: both)")
	nanCode := fs.Int("nan", 0, "code for NaN samples")
	posInf := fs.Int("posinf", 0, "code for samples above the data range")
	negInf := fs.Int("neginf", 0, "code for samples below the data range")
	rep := fs.Int("rep", 0, "code for in-range samples when the data range is degenerate")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: digitinfo [flags] value ...\n\n")
		_, _ = fmt.Fprintf(stderr, "Prints affine digitization parameters and codes for the given values.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  digitinfo -- -2 -1 0 1 2\n")
		_, _ = fmt.Fprintf(stderr, "  digitinfo -bits 16 -signed -policy preserve-zero 0.1 0.25 3.5\n")
		_, _ = fmt.Fprintf(stderr, "  digitinfo -codes 0:10 -nan 255 NaN 1 Inf -1\n")
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	var opts options

	storage, err := digitize.BitRange(*bits, *signed)
	if err != nil {
		return options{}, err
	}

	opts.storage = storage
	opts.codes = storage

	if *codes != "" {
		opts.codes, err = parseCodes(*codes)
		if err != nil {
			return options{}, err
		}
	}

	if *policy == "" {
		opts.policies = []digitize.Policy{digitize.PreserveZero, digitize.PreserveBounds}
	} else {
		p, err := digitize.ParsePolicy(*policy)
		if err != nil {
			return options{}, err
		}

		opts.policies = []digitize.Policy{p}
	}

	opts.digOpts = append(opts.digOpts, digitize.WithStorage(storage))

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nan":
			opts.digOpts = append(opts.digOpts, digitize.WithNaNCode(*nanCode))
		case "posinf":
			opts.digOpts = append(opts.digOpts, digitize.WithPosInfCode(*posInf))
		case "neginf":
			opts.digOpts = append(opts.digOpts, digitize.WithNegInfCode(*negInf))
		case "rep":
			opts.digOpts = append(opts.digOpts, digitize.WithRepresentative(*rep))
		}
	})

	if fs.NArg() == 0 {
		fs.Usage()
		return options{}, errors.New("no values given")
	}

	for _, arg := range fs.Args() {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return options{}, fmt.Errorf("invalid value %q: %w", arg, err)
		}

		opts.values = append(opts.values, v)
	}

	return opts, nil
}

func parseCodes(s string) (digitize.CodeRange, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return digitize.CodeRange{}, fmt.Errorf("code interval must be kmin:kmax: %q", s)
	}

	kmin, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return digitize.CodeRange{}, fmt.Errorf("invalid kmin %q: %w", lo, err)
	}

	kmax, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return digitize.CodeRange{}, fmt.Errorf("invalid kmax %q: %w", hi, err)
	}

	return digitize.NewCodeRange(kmin, kmax)
}

func printAnalysis(w io.Writer, opts options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, policy := range opts.policies {
		res, err := digitize.Quantize(opts.values, opts.codes, policy, opts.digOpts...)
		if err != nil {
			return fmt.Errorf("%v: %w", policy, err)
		}

		stats, err := digitize.Measure(opts.values, res.Codes, res.Params)
		if err != nil {
			return err
		}

		if i > 0 {
			if _, err := fmt.Fprintln(tw); err != nil {
				return err
			}
		}

		p := res.Params
		if _, err := fmt.Fprintf(tw, "Policy\tCodes\tData\tAlpha\tBeta\tBound\tMax error\n"); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(tw, "%v\t%v\t[%g, %g]\t%.6g\t%.6g\t%.6g\t%.6g\n",
			policy, p.Codes, p.Data.Min, p.Data.Max, p.Alpha, p.Beta, p.WorstCaseError(), stats.MaxError,
		); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(tw, "\nValue\tCode\tReconstructed\n"); err != nil {
			return err
		}

		for j, v := range opts.values {
			recon := "-"
			if p.Data.Contains(v) {
				recon = strconv.FormatFloat(p.Value(res.Codes[j]), 'g', 8, 64)
			}

			if _, err := fmt.Fprintf(tw, "%g\t%d\t%s\n", v, res.Codes[j], recon); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}
