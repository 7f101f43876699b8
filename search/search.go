// Package search implements the depth-first backtracking driver that finds
// catalysts and still lifes: it repeatedly commits a candidate cell to ON or
// OFF, re-evolves the affected generations, and prunes branches that
// violate any of the configured bounds, until a generation satisfies every
// acceptance condition.
package search

import (
	"github.com/haldun/bellman/parse"
	"github.com/haldun/bellman/tile"
	"github.com/haldun/bellman/universe"
)

// maxOnlistSize bounds the added-oncell list, matching bellman.c's
// ONLIST_SIZE; a list that grows past this is a programming error, not a
// recoverable search outcome.
const maxOnlistSize = 1024

// Solution describes an accepted branch at the moment of acceptance. The
// universes referenced by Search are only valid for the duration of the
// OnSolution call: Run backtracks and keeps searching (or stops, if
// Params.ContinueAfterAccept is false) as soon as it returns.
type Solution struct {
	AcceptedGen int
}

// Search holds every piece of process-wide state the recursive driver
// shares across frames: the four universes, the configured bounds, the
// prune counters, and the added-oncell stack. All mutation to the universes
// is restored before each recursive call returns to its caller — see
// spec §5's restore-on-backtrack invariant.
type Search struct {
	Static, Evolving, Forbidden, Filter *universe.Universe
	Params                              parse.Params

	Counters Counters

	// OnSolution is called synchronously when a generation satisfies every
	// acceptance condition, with the four universes in their accepted
	// state. Returning an error aborts the whole search; Run returns that
	// error.
	OnSolution func(Solution) error

	// OnStatus, if set, is called at the start of every recursion frame
	// with the current counters — matching bellman.c's status print sitting
	// at the top of bellman_recurse. A nil OnStatus costs nothing; a
	// throttling one (internal/status.Printer.Tick) turns this into the
	// original's ten-second status report.
	OnStatus func(Counters)

	onlist []addedCell
}

// addedCell is one entry of the added-oncell list: a committed position in
// a still-undecided tile, recorded so the complexity test can re-score the
// whole list and so a later pop can be matched back to it (restoration
// itself just re-sets the position to UnknownStable, independent of this
// struct).
type addedCell struct {
	x, y int
}

// Wire validates and wires the four universes — see package-level Wire —
// after computing how many generations the configured parameters require.
// It must run before Run.
func (s *Search) Wire() error {
	maxGens := s.Params.Finish(s.Filter.NGens())
	return Wire(s.Static, s.Evolving, s.Forbidden, s.Filter, s.Params.Symmetry, s.Params.SymmetryOfs, maxGens)
}

// Run starts the search from the beginning: every static UNKNOWN_STABLE
// cell is still undecided and no generation has produced output yet. It
// evaluates the first frame over the chain Wire already evolved before any
// cell is chosen, so an input whose evolution carries no UNKNOWN cell is
// pruned or accepted without a cell being written.
func (s *Search) Run() error {
	return s.recurse(0, 0)
}

func tileHasUnknown(t *tile.Tile) bool { return t.Flags&tile.HasUnknownCells != 0 }
