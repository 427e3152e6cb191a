// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"taxmerge-core/fasta"
	"taxmerge-core/merge"
	"taxmerge-core/taxonomy"
	"taxmerge/internal/cli"
	"taxmerge/internal/version"
	"taxmerge/internal/writers"

	"github.com/charmbracelet/log"
)

// Run drives one merge and returns the process exit code: 0 on success,
// 2 for parameter and taxonomy-table errors, 1 for I/O failures during
// the rewrite. A broken pipe on stdout output is treated as success.
//
// The full taxonomy table is loaded before the first sequence record is
// read; the sequence database is then rewritten in a single streaming
// pass.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("taxmerge")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "taxmerge version %s\n", version.Version)
		return 0
	}

	logger := log.New(stderr)
	switch {
	case opts.Quiet:
		logger.SetLevel(log.ErrorLevel)
	case opts.Verbose:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	tab, err := taxonomy.LoadTSV(opts.TaxFile)
	if err != nil {
		logger.Error("cannot load taxonomy table", "path", opts.TaxFile, "err", err)
		return 2
	}
	logger.Debug("taxonomy table loaded", "path", opts.TaxFile, "ids", len(tab))

	in, err := fasta.Open(opts.SeqFile)
	if err != nil {
		logger.Error("cannot open sequence database", "path", opts.SeqFile, "err", err)
		return 2
	}
	defer func() { _ = in.Close() }()

	out, err := writers.Create(opts.OutFile, stdout)
	if err != nil {
		logger.Error("cannot create output", "path", opts.OutFile, "err", err)
		return 2
	}

	bw := bufio.NewWriter(out)
	st, err := merge.Rewrite(tab, in, bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		logger.Error("merge failed", "out", opts.OutFile, "err", err)
		return 1
	}

	logger.Info("merged database written",
		"out", opts.OutFile, "records", st.Records, "relabeled", st.Relabeled)
	return 0
}
