// Command lvrand prints reproducible samples from an lvrand provider.
//
// Usage:
//
//	lvrand [-config run.yaml] [-op name] [-count n] [-seed zero|example|random|[w0, w1, ...]]
//	       [-scale n] [-secondary-scale n] [-tertiary-scale n]
//	       [-lo n] [-hi n] [-size n] [-chars s] [-elements "[e0, e1, ...]"] [-stats] [-v]
//
// Flags override values read from -config. One sample is printed per line on
// stdout; diagnostics go to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvrand/readers"
	"github.com/katalvlaran/lvrand/seq"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	config, op, seed, chars, elements string
	count, scale, secondary, tertiary int
	size                              int
	lo, hi                            int64
	stats, verbose, list              bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lvrand", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f flags
	fs.StringVar(&f.config, "config", "", "YAML run configuration")
	fs.StringVar(&f.op, "op", "", "operation to sample (see -list)")
	fs.StringVar(&f.seed, "seed", "", "zero, example, random or a list of 256 integers")
	fs.StringVar(&f.chars, "chars", "", "alphabet for string operations")
	fs.StringVar(&f.elements, "elements", "", `elements as a list of quoted strings, e.g. ["a", "b"]`)
	fs.IntVar(&f.count, "count", 0, "number of samples")
	fs.IntVar(&f.scale, "scale", 0, "primary scale")
	fs.IntVar(&f.secondary, "secondary-scale", 0, "secondary scale")
	fs.IntVar(&f.tertiary, "tertiary-scale", 0, "tertiary scale")
	fs.IntVar(&f.size, "size", -1, "fixed container size; negative for variable")
	fs.Int64Var(&f.lo, "lo", 0, "lower bound")
	fs.Int64Var(&f.hi, "hi", 9, "upper bound")
	fs.BoolVar(&f.stats, "stats", false, "log the mean of the samples")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	fs.BoolVar(&f.list, "list", false, "list operations and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if f.list {
		for _, name := range operationNames() {
			fmt.Fprintf(stdout, "%-22s %s\n", name, operations[name].help)
		}
		return 0
	}

	cfg, err := configure(fs, &f)
	if err != nil {
		logger.Error("configuration", "err", err)
		return 2
	}
	if err := sampleRun(cfg, stdout, logger); err != nil {
		logger.Error("sampling", "op", cfg.Op, "err", err)
		return 1
	}

	return 0
}

// configure loads -config (if any) and applies the flags that were set.
func configure(fs *flag.FlagSet, f *flags) (*Config, error) {
	cfg := &Config{}
	if f.config != "" {
		loaded, err := Load(f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var ferr error
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "op":
			cfg.Op = f.op
		case "seed":
			seed, err := ParseSeed(f.seed)
			if err != nil {
				ferr = errors.Join(ferr, err)
			}
			cfg.Seed = seed
		case "chars":
			cfg.Chars = f.chars
		case "elements":
			elems, ok := readers.ReadStrings(f.elements)
			if !ok {
				ferr = errors.Join(ferr, fmt.Errorf("elements %q: %w", f.elements, ErrConfig))
			}
			cfg.Elements = elems
		case "count":
			cfg.Count = f.count
		case "scale":
			cfg.Scale = intPtr(f.scale)
		case "secondary-scale":
			cfg.SecondaryScale = intPtr(f.secondary)
		case "tertiary-scale":
			cfg.TertiaryScale = intPtr(f.tertiary)
		case "size":
			cfg.Size = intPtr(f.size)
		case "lo":
			cfg.Lo = &f.lo
		case "hi":
			cfg.Hi = &f.hi
		case "stats":
			cfg.Stats = f.stats
		}
	})
	if ferr != nil {
		return nil, ferr
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func sampleRun(cfg *Config, stdout io.Writer, logger *slog.Logger) error {
	p, err := cfg.Provider()
	if err != nil {
		return err
	}
	logger.Debug("provider", "provider", p.String(), "seed", cfg.Seed.Mode)

	samples, err := operations[cfg.Op].run(p, cfg)
	if err != nil {
		return err
	}

	var (
		n   int
		sum float64
	)
	err = seq.Try(func() {
		for s := range seq.Take(cfg.Count, samples) {
			fmt.Fprintln(stdout, s.text)
			n++
			sum += s.num
		}
	})
	if err != nil {
		return err
	}

	attrs := []any{"op", cfg.Op, "samples", humanize.Comma(int64(n))}
	if cfg.Stats && n > 0 {
		attrs = append(attrs, "mean", humanize.FormatFloat("#,###.####", sum/float64(n)))
	}
	logger.Info("done", attrs...)

	return nil
}
