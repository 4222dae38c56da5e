// Package cli wires the diagscan command line: it loads two sequences,
// runs the diagonal overlap analysis and renders the report.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diagscan/matrix"
	"github.com/katalvlaran/diagscan/overlap"
	"github.com/katalvlaran/diagscan/seqio"
)

// maxPrintedCells bounds --grid output; larger grids are skipped with a warning.
const maxPrintedCells = 10000

type flags struct {
	tolerance     float64
	noCutoff      bool
	cutoffDivisor int
	square        bool
	workers       int
	grid          bool
	verbose       bool
}

// Run executes the command with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := newCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "diagscan:", err)
		if errors.Is(err, overlap.ErrLengthMismatch) {
			return 3
		}
		return 1
	}

	return 0
}

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	var f flags
	def := overlap.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "diagscan [flags] X_FILE Y_FILE",
		Short: "Find where two numeric recordings overlap",
		Long: "diagscan sweeps the diagonals of the squared-distance grid of two sequences\n" +
			"and reports the time shift with the most matches and the longest matching run.\n" +
			"Use - to read one of the sequences from stdin; .gz files are decompressed.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), newLogger(stderr, f.verbose), f, args[0], args[1])
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.Float64VarP(&f.tolerance, "tolerance", "t", def.Tolerance, "values within this distance count as a match")
	fl.BoolVar(&f.noCutoff, "no-cutoff", !def.ApplyCutoff, "scan the short corner diagonals too")
	fl.IntVar(&f.cutoffDivisor, "cutoff-divisor", def.CutoffDivisor, "skip diagonals no longer than min(|X|,|Y|)/divisor")
	fl.BoolVar(&f.square, "square", false, "require equal-length sequences")
	fl.IntVarP(&f.workers, "workers", "w", def.Workers, "goroutines used for the sweep")
	fl.BoolVar(&f.grid, "grid", false, "also print the naive distance grid (small inputs only)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log debug details to stderr")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(out io.Writer, log *slog.Logger, f flags, xPath, yPath string) error {
	x, err := seqio.ReadFile(xPath)
	if err != nil {
		return err
	}
	y, err := seqio.ReadFile(yPath)
	if err != nil {
		return err
	}
	log.Debug("loaded sequences", "x", xPath, "nx", len(x), "y", yPath, "ny", len(y))

	opts := overlap.Options{
		Tolerance:     f.tolerance,
		ApplyCutoff:   !f.noCutoff,
		CutoffDivisor: f.cutoffDivisor,
		Variant:       overlap.Rectangular,
		Workers:       f.workers,
	}
	if f.square {
		opts.Variant = overlap.Square
	}

	res, err := overlap.Analyze(x, y, &opts)
	if err != nil {
		return err
	}
	log.Debug("scan finished", "diagonals", len(res.Stats), "scanned", res.Scanned,
		"skipped", res.Skipped, "cutoff", res.Cutoff)

	if f.grid {
		if err := writeGrid(out, log, x, y); err != nil {
			return err
		}
	}

	return WriteReport(out, res)
}

func writeGrid(out io.Writer, log *slog.Logger, x, y []float64) error {
	if len(x)*len(y) > maxPrintedCells {
		log.Warn("grid too large to print, skipping", "cells", len(x)*len(y), "limit", maxPrintedCells)
		return nil
	}
	g, err := matrix.SquaredDistances(x, y)
	if err != nil {
		return err
	}
	if err := g.Format(out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, "_____________________________________")

	return err
}
