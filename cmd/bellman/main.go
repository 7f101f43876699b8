// Command bellman searches for still-life catalysts and reactions in
// Conway's Game of Life. Usage: bellman [-c] [-v]... <input-file>.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/haldun/bellman/classify"
	"github.com/haldun/bellman/internal/status"
	"github.com/haldun/bellman/parse"
	"github.com/haldun/bellman/search"
	"github.com/haldun/bellman/solution"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("bellman", flag.ContinueOnError)
	classifyMode := fs.Bool("c", false, "classify mode: trace one evolution instead of searching")
	var verbose verbosity
	fs.Var(&verbose, "v", "verbosity (repeatable: -v -v)")
	if err := fs.Parse(args); err != nil {
		return -1
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: bellman [-c] [-v]... <input-file>")
		return -1
	}

	level := slog.LevelWarn
	if verbose > 0 {
		level = slog.LevelInfo
	}
	if verbose > 1 {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	path := fs.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		logger.Error("open input file", "path", path, "error", err)
		return -1
	}
	defer f.Close()

	pattern, err := parse.ReadLife105(f)
	if err != nil {
		logger.Error("parse input file", "path", path, "error", err)
		return -1
	}

	if *classifyMode {
		maxGens := pattern.Params.Finish(pattern.Filter.NGens())
		if err := search.Wire(pattern.Static, pattern.Evolving, pattern.Forbidden, pattern.Filter, pattern.Params.Symmetry, pattern.Params.SymmetryOfs, maxGens); err != nil {
			logger.Error("rejected input", "error", err)
			return -1
		}
		runClassify(logger, pattern, int(verbose))
		return 0
	}

	return runSearch(logger, pattern)
}

// verbosity implements flag.Value as a repeat-counted boolean: each bare
// -v increments it, matching getopt's handling of repeatable options.
type verbosity int

func (v *verbosity) String() string { return fmt.Sprintf("%d", int(*v)) }
func (v *verbosity) Set(string) error {
	*v++
	return nil
}
func (v *verbosity) IsBoolFlag() bool { return true }

func runClassify(logger *slog.Logger, pattern *parse.Pattern, verbose int) {
	if verbose > 0 {
		for g := pattern.Evolving.FindGeneration(0, false); g != nil; g = g.Next {
			logger.Debug("generation flags", "gen", g.Gen, "flags", g.Flags)
		}
	}

	events := classify.Trace(pattern.Evolving)
	_ = classify.WriteTrace(os.Stdout, events)

	class := classify.Classify(pattern.Evolving, pattern.Static)
	if !class.HasActivity {
		fmt.Println("klass 0")
		return
	}
	fmt.Printf("klass %d\n", class.Hash)
}

func runSearch(logger *slog.Logger, pattern *parse.Pattern) int {
	printer := status.NewPrinter(logger)
	s := &search.Search{
		Static:    pattern.Static,
		Evolving:  pattern.Evolving,
		Forbidden: pattern.Forbidden,
		Filter:    pattern.Filter,
		Params:    pattern.Params,
	}
	s.OnStatus = func(c search.Counters) { printer.Tick(time.Now(), c) }

	writer := solution.Writer{}
	found := 0
	s.OnSolution = func(sol search.Solution) error {
		found++
		path, err := writer.Write(found, s.Params, s.Static, s.Evolving, sol.AcceptedGen)
		if err != nil {
			return err
		}
		fmt.Printf("--- Found solution %d ---\n", found)
		logger.Info("solution written", "path", path, "gen", sol.AcceptedGen)
		return nil
	}

	if err := s.Wire(); err != nil {
		logger.Error("rejected input", "error", err)
		return -1
	}
	logger.Info("starting search", "max_gens", parse.MaxGenerations(s.Params, s.Filter.NGens()))

	if err := s.Run(); err != nil {
		logger.Error("search aborted", "error", err)
		return -1
	}

	for _, c := range s.Counters.Snapshot() {
		if c.Count > 0 {
			logger.Info("prune counter", "reason", c.Reason.String(), "count", c.Count)
		}
	}
	logger.Info("search complete", "solutions", found)
	return 0
}
