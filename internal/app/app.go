// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"jank/internal/cli"
	"jank/internal/cmdutil"
	"jank/internal/config"
	"jank/internal/kmer"
	"jank/internal/output"
	"jank/internal/report"
	"jank/internal/seqio"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitRuntime     = 3
	ExitInterrupted = 130
)

// runtimeError marks failures that happen after the arguments were accepted.
type runtimeError struct{ err error }

func (e *runtimeError) Error() string { return e.err.Error() }
func (e *runtimeError) Unwrap() error { return e.err }

func fail(err error) error {
	if err == nil {
		return nil
	}
	return &runtimeError{err: err}
}

// RunContext parses argv, counts k-mers, and writes the table to stdout.
// Diagnostics go to stderr. It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	v := config.New()
	cmd := cli.NewCommand(v, func(cmd *cobra.Command, cfg config.Config) error {
		return execute(cmd.Context(), cfg, stdout, stderr)
	})
	if argv == nil {
		argv = []string{} // cobra reads os.Args for nil
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintln(stderr, "interrupted")
		return ExitInterrupted
	}
	var re *runtimeError
	if errors.As(err, &re) {
		if output.IsBrokenPipe(err) {
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitRuntime
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)
	_, _ = fmt.Fprint(stderr, cmd.UsageString())
	return ExitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func execute(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	start := time.Now()
	log := cmdutil.NewLogger(stderr, cfg.Quiet, cfg.Verbose)

	format, err := seqio.ResolveFormat(cfg.Input, cfg.InputFormat())
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input":   cfg.Input,
		"format":  format,
		"k":       cfg.KmerSize,
		"cpus":    cfg.CPUCount,
		"revcomp": cfg.CountReverseComplement,
	}).Debug("main parameters")

	recs, err := seqio.ReadFile(ctx, cfg.Input, seqio.Options{Format: format, Logger: log})
	if err != nil {
		return fail(err)
	}

	policy := kmer.Abort
	if cfg.SkipInvalid {
		policy = kmer.Skip
	}
	bar := report.StartProgress(stderr, len(recs), cfg.Progress)
	res, err := kmer.Count(ctx, recs, kmer.Options{
		K:                 cfg.KmerSize,
		Workers:           cfg.CPUCount,
		ReverseComplement: cfg.CountReverseComplement,
		OnInvalid:         policy,
		Progress:          bar.Increment,
	})
	bar.Finish(err == nil)
	if err != nil {
		return fail(err)
	}

	rep := report.New(log)
	rep.Discards(res.Discarded, cfg.KmerSize)
	rep.Totals(res)

	outw := bufio.NewWriter(stdout)
	payload := output.Payload{
		Input:  cfg.Input,
		K:      cfg.KmerSize,
		Header: !cfg.NoHeader,
		Sort:   cfg.Sort,
		Table:  res.Table,
	}
	if err := output.Write(cfg.Output, outw, payload); err != nil {
		return fail(err)
	}
	if err := outw.Flush(); err != nil {
		return fail(err)
	}

	// Only a run whose table reached stdout gets a summary.
	if cfg.Summary != "" {
		s := report.NewSummary(cfg.Input, format.String(), cfg.KmerSize, cfg.CountReverseComplement,
			len(recs), res, time.Since(start))
		if err := report.WriteSummary(cfg.Summary, s); err != nil {
			return fail(err)
		}
		log.Debugf("summary written to %s", cfg.Summary)
	}
	return nil
}
