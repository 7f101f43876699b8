package search

import (
	"github.com/haldun/bellman/cell"
	"github.com/haldun/bellman/kernel"
	"github.com/haldun/bellman/parse"
	"github.com/haldun/bellman/tile"
	"github.com/haldun/bellman/universe"
)

// Wire establishes the cross-universe back-reference lattice spec §3
// describes (evolving -> static -> forbidden, evolving -> filter, plus the
// within-universe Prev chain), extends evolving through maxGens, and
// validates the input: the static background must already be a still life,
// and any UNKNOWN_STABLE cell the configured symmetry mirrors must agree
// with its mirror image. It must run exactly once, before the first call to
// Run.
func Wire(static, evolving, forbidden, filter *universe.Universe, sym parse.Symmetry, ofs uint, maxGens int) error {
	static0 := static.FindGeneration(0, true)
	static0.Each(func(t *tile.Tile) {
		if f := forbidden.FindTile(0, t.XPos, t.YPos, false); f != nil {
			t.AuxData = f
		}
	})

	evolving.ExtendLike(maxGens)
	for g := 0; g <= maxGens; g++ {
		gen := evolving.FindGeneration(g, true)
		gen.Each(func(t *tile.Tile) {
			t.AuxData = static0.FindTile(t.XPos, t.YPos, true)
			t.Filter = filter.FindTile(g+1, t.XPos, t.YPos, true)
		})
	}

	if !kernel.StabiliseStatic(static) {
		return parse.ErrUnstableCatalyst
	}

	if sym != parse.SymmetryNone {
		var asymmetric bool
		static0.Each(func(t *tile.Tile) {
			for y := 1; y < tile.Height-1 && !asymmetric; y++ {
				for x := 1; x < tile.Width-1; x++ {
					if t.Get(x, y) != cell.UnknownStable {
						continue
					}
					for _, m := range mirrorPositions(sym, ofs, x, y) {
						if tile.OnOuterEdge(m[0], m[1]) {
							continue
						}
						if t.Get(m[0], m[1]) != cell.UnknownStable {
							asymmetric = true
							break
						}
					}
				}
			}
		})
		if asymmetric {
			return parse.ErrAsymmetricInput
		}
	}

	// Mark generation 0 and every tile in it CHANGED, then evolve every
	// generation from 0 through maxGens-1 so each has its derived flags
	// (HasUnknownCells, DiffersFromStable, ...) populated before the search
	// ever looks at them — mirroring bellman_evolve_generations, which runs
	// this same upfront sweep before main() ever calls bellman_choose_cells.
	// Without it the very first search frame would find no generation
	// carrying HasUnknownCells and fail immediately.
	g0 := evolving.FindGeneration(0, true)
	g0.Flags |= tile.Changed
	g0.Each(func(t *tile.Tile) { t.Flags |= tile.Changed })

	for g := g0; g.Gen < maxGens; g = kernel.EvolveGeneration(g) {
	}

	return nil
}
