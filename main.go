package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/YLivay/minifixed/filter"
	"github.com/YLivay/minifixed/format"
	"github.com/YLivay/minifixed/log"
	"github.com/YLivay/minifixed/reader"
	"github.com/YLivay/minifixed/table"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	separator   string
	format      string
	query       string
	input       string
	verbose     bool
	showVersion bool
}

func main() {
	fs := flag.NewFlagSet("minifixed", flag.ContinueOnError)
	opts, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalln("Invalid arguments:", err)
	}

	if opts.showVersion {
		fmt.Printf("minifixed %s (%s)\n", version, commit)
		return
	}

	log.SetVerbose(opts.verbose)

	input, cleanup, err := prepareReader(opts.input)
	if err != nil {
		log.Fatalln("Failed to prepare input:", err)
	}
	defer cleanup()

	if err := run(opts, input, os.Stdout); err != nil {
		// Fatalln exits without running deferred calls.
		cleanup()
		log.Fatalln(err)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var opts options

	fs.StringVar(&opts.separator, "sep", table.DefaultSeparator, "Filler characters between columns (any of them)")
	fs.StringVar(&opts.format, "format", "table", "Output format (table, json, csv)")
	fs.StringVar(&opts.query, "query", "", "Only output records for which this jq expression is truthy")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log debug information to stderr")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "minifixed - read fixed-width tables by guessing column offsets from the header\n\n")
		fmt.Fprintf(fs.Output(), "Usage: minifixed [options] [file]\n\n")
		fmt.Fprintf(fs.Output(), "Reads stdin when file is omitted or \"-\".\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch fs.NArg() {
	case 0:
		opts.input = "-"
	case 1:
		opts.input = fs.Arg(0)
	default:
		return opts, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	if _, err := format.Lookup(opts.format); err != nil {
		return opts, err
	}

	return opts, nil
}

func prepareReader(filename string) (input io.Reader, cleanup func(), err error) {
	if filename == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file for reading: %w", err)
	}

	cleanup = func() {
		if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			log.Println("Failed to close input:", err)
		}
	}
	return f, cleanup, nil
}

func run(opts options, input io.Reader, output io.Writer) error {
	formatter, err := format.Lookup(opts.format)
	if err != nil {
		return err
	}

	var flt *filter.Filter
	if opts.query != "" {
		flt, err = filter.New(opts.query)
		if err != nil {
			return err
		}
	}

	r := table.NewReader(reader.NewForwardsLineScanner(input), opts.separator)
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	log.Debugf("read %d records", len(records))

	if flt != nil {
		records, err = flt.Apply(records)
		if err != nil {
			return err
		}
		log.Debugf("%d records match %q", len(records), flt)
	}

	header, _ := r.Header()
	if err := formatter.Format(header, records, output); err != nil {
		return fmt.Errorf("failed to write %s output: %w", formatter.Name(), err)
	}
	return nil
}
