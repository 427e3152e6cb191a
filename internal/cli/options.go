// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"taxmerge/internal/version"
)

// Options holds all CLI flags.
type Options struct {
	SeqFile string // --greengenes / -g
	TaxFile string // --taxonomy / -t
	OutFile string // --out / -o

	Quiet   bool
	Verbose bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: merge taxonomy annotations into a FASTA sequence database

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.SeqFile, "greengenes", "", "FASTA sequence database ('-' = stdin, .gz ok) [*]")
	fs.StringVar(&opt.SeqFile, "g", "", "shorthand for --greengenes")
	fs.StringVar(&opt.TaxFile, "taxonomy", "", "tab-separated taxonomy table [*]")
	fs.StringVar(&opt.TaxFile, "t", "", "shorthand for --taxonomy")
	fs.StringVar(&opt.OutFile, "out", "", "merged FASTA output path ('-' = stdout) [*]")
	fs.StringVar(&opt.OutFile, "o", "", "shorthand for --out")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "shorthand for --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "enable debug logging [false]")

	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation: all three paths are required, no defaults.
	switch {
	case opt.SeqFile == "":
		return opt, errors.New("--greengenes is required")
	case opt.TaxFile == "":
		return opt, errors.New("--taxonomy is required")
	case opt.OutFile == "":
		return opt, errors.New("--out is required")
	}
	return opt, nil
}
