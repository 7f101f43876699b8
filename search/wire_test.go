package search

import (
	"errors"
	"testing"

	"github.com/haldun/bellman/cell"
	"github.com/haldun/bellman/parse"
	"github.com/haldun/bellman/tile"
	"github.com/haldun/bellman/universe"
)

func block(g *universe.Generation, x, y int) {
	t := g.FindTile(0, 0, true)
	t.Set(x, y, cell.On)
	t.Set(x+1, y, cell.On)
	t.Set(x, y+1, cell.On)
	t.Set(x+1, y+1, cell.On)
}

func newWiredTestUniverses() (static, evolving, forbidden, filter *universe.Universe) {
	static = universe.New(cell.Off)
	evolving = universe.New(cell.Off)
	forbidden = universe.New(cell.Off)
	filter = universe.New(cell.Unknown)

	block(static.FindGeneration(0, true), 10, 10)
	block(evolving.FindGeneration(0, true), 10, 10)
	return
}

func TestWireLinksAuxDataAndFilter(t *testing.T) {
	static, evolving, forbidden, filter := newWiredTestUniverses()

	if err := Wire(static, evolving, forbidden, filter, parse.SymmetryNone, 0, 3); err != nil {
		t.Fatalf("Wire() error = %v", err)
	}

	staticTile := static.FindGeneration(0, false).FindTile(0, 0, false)
	for g := 0; g <= 3; g++ {
		et := evolving.FindGeneration(g, false).FindTile(0, 0, false)
		if et.AuxData != staticTile {
			t.Fatalf("generation %d: AuxData does not point at the static tile", g)
		}
		if et.Filter == nil {
			t.Fatalf("generation %d: Filter was left nil", g)
		}
		if got := et.Filter.Get(0, 0); got != cell.Unknown {
			t.Fatalf("generation %d: unspecified filter cell = %v, want Unknown", g, got)
		}
	}
	if staticTile.AuxData != nil {
		t.Fatal("static tile's AuxData should be nil: no forbidden tile was ever created at this position")
	}
}

func TestWireRejectsUnstableCatalyst(t *testing.T) {
	static := universe.New(cell.Off)
	evolving := universe.New(cell.Off)
	forbidden := universe.New(cell.Off)
	filter := universe.New(cell.Unknown)

	// A blinker is period-2, not a still life.
	g := static.FindGeneration(0, true)
	tl := g.FindTile(0, 0, true)
	tl.Set(9, 10, cell.On)
	tl.Set(10, 10, cell.On)
	tl.Set(11, 10, cell.On)
	evolving.FindGeneration(0, true).FindTile(0, 0, true).Set(10, 10, cell.On)

	err := Wire(static, evolving, forbidden, filter, parse.SymmetryNone, 0, 1)
	if !errors.Is(err, parse.ErrUnstableCatalyst) {
		t.Fatalf("Wire() error = %v, want ErrUnstableCatalyst", err)
	}
}

func TestWireRejectsAsymmetricInput(t *testing.T) {
	static, evolving, forbidden, filter := newWiredTestUniverses()
	// Put an UNKNOWN_STABLE cell at (20, 20) with no mirror image at its
	// vertical-symmetry reflection (ofs=50 reflects x=20 to x=30).
	static.FindGeneration(0, false).FindTile(0, 0, false).Set(20, 20, cell.UnknownStable)

	err := Wire(static, evolving, forbidden, filter, parse.SymmetryVert, 50, 1)
	if !errors.Is(err, parse.ErrAsymmetricInput) {
		t.Fatalf("Wire() error = %v, want ErrAsymmetricInput", err)
	}
}

func TestWireEvolvesEveryGenerationUpfront(t *testing.T) {
	static, evolving, forbidden, filter := newWiredTestUniverses()
	if err := Wire(static, evolving, forbidden, filter, parse.SymmetryNone, 0, 3); err != nil {
		t.Fatalf("Wire() error = %v", err)
	}

	// Wire evolves generation 0 through maxGens-1 itself (mirroring the
	// upfront bellman_evolve_generations sweep), consuming generation 0's
	// Changed mark in the process: by the time it returns, every generation
	// up to maxGens must already carry a freshly evolved copy of the block,
	// not just generation 0.
	g0 := evolving.FindGeneration(0, false)
	if g0.Flags&tile.Changed != 0 {
		t.Fatal("generation 0's Changed flag should be consumed by the upfront evolution pass")
	}
	for g := 0; g <= 3; g++ {
		gen := evolving.FindGeneration(g, false)
		if gen == nil {
			t.Fatalf("generation %d was never created by the upfront evolution pass", g)
		}
		et := gen.FindTile(0, 0, false)
		if et == nil || et.Get(10, 10) != cell.On {
			t.Fatalf("generation %d: block did not survive the upfront evolution pass", g)
		}
	}
}
