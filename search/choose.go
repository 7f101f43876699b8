package search

import (
	"github.com/haldun/bellman/cell"
	"github.com/haldun/bellman/tile"
	"github.com/haldun/bellman/universe"
)

// choosePriority is the fixed offset order choose_cell tries when looking
// for an UNKNOWN_STABLE predecessor near a chosen UNKNOWN successor: the
// cell itself, then the four orthogonal neighbours, then the four
// diagonals — spec §4.3.
var choosePriority = [][2]int{
	{0, 0},
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// chooseCell scans forward from generation 0 for the earliest tile with an
// UNKNOWN successor cell, selects a candidate predecessor offset in
// choosePriority order, expands it through the configured symmetry, and
// recurses on committing the mirror set ON then OFF.
func (s *Search) chooseCell(allowNewOncells bool, firstGenWithUnknown, firstNextSolGen int) error {
	g, t := s.findUnknownTile(firstGenWithUnknown)
	if t == nil {
		panic("search: ran out of generations without a solution or prune")
	}

	for y := 0; y < tile.Height; y++ {
		isUnknown := t.Bit0[y] & t.Bit1[y]
		if isUnknown == 0 {
			continue
		}
		for x := 0; x < tile.Width; x++ {
			if isUnknown>>uint(x)&1 == 0 {
				continue
			}
			if tile.OnOuterEdge(x, y) {
				panic("search: unknown successor cell on a tile edge; cross-tile propagation is not supported")
			}
			for _, d := range choosePriority {
				px, py := x+d[0], y+d[1]
				if t.Prev.Get(px, py) != cell.UnknownStable {
					continue
				}
				if !validXYForSymmetry(s.Params.Symmetry, s.Params.SymmetryOfs, px, py) {
					continue
				}
				return s.expandAndRecurse(g, t, px, py, allowNewOncells, firstGenWithUnknown, firstNextSolGen)
			}
		}
	}

	panic("search: tile flagged HasUnknownCells but no UNKNOWN cell with an UNKNOWN_STABLE predecessor was found")
}

// findUnknownTile returns the earliest generation (from the start of the
// chain, not from firstGenWithUnknown — chooseCell re-scans from scratch
// every time, same as bellman.c's choose_cells) and, within it, the
// earliest tile with HAS_UNKNOWN_CELLS set.
func (s *Search) findUnknownTile(firstGenWithUnknown int) (*universe.Generation, *tile.Tile) {
	for g := s.Evolving.FindGeneration(0, false); g != nil; g = g.Next {
		var found *tile.Tile
		g.Each(func(t *tile.Tile) {
			if found == nil && tileHasUnknown(t) {
				found = t
			}
		})
		if found != nil {
			return g, found
		}
	}
	return nil, nil
}

// expandAndRecurse mirrors (x, y) through the configured symmetry and tries
// the resulting set ON then OFF. Wire already rejected asymmetric input, so
// a mirror position that is not UNKNOWN_STABLE in the static background is
// a programming error and panics.
func (s *Search) expandAndRecurse(g *universe.Generation, t *tile.Tile, x, y int, allowNewOncells bool, firstGenWithUnknown, firstNextSolGen int) error {
	mirrors := mirrorPositions(s.Params.Symmetry, s.Params.SymmetryOfs, x, y)
	evolvingPrev := t.Prev
	staticTile := t.AuxData
	prevGen := g.Prev

	for _, m := range mirrors {
		if staticTile.Get(m[0], m[1]) != cell.UnknownStable {
			panic("search: mirror position is not UNKNOWN_STABLE")
		}
	}

	if allowNewOncells {
		if len(s.onlist)+len(mirrors) <= int(s.Params.MaxAddedStaticOncells) {
			if len(s.onlist)+len(mirrors) > maxOnlistSize {
				panic("search: added-oncell list overflow")
			}
			positions := make([][2]int, 0, len(s.onlist)+len(mirrors))
			for _, c := range s.onlist {
				positions = append(positions, [2]int{c.x, c.y})
			}
			for _, m := range mirrors {
				positions = append(positions, m)
			}

			if reason := complexityOK(positions, int(s.Params.MaxLocalAreas), int(s.Params.MaxLocalComplexity), int(s.Params.MaxGlobalComplexity)); reason == PruneNone {
				for _, m := range mirrors {
					evolvingPrev.Set(m[0], m[1], cell.On)
					staticTile.Set(m[0], m[1], cell.On)
					s.onlist = append(s.onlist, addedCell{m[0], m[1]})
				}
				prevGen.Flags |= tile.Changed

				if err := s.recurse(firstGenWithUnknown, firstNextSolGen); err != nil {
					return err
				}

				s.onlist = s.onlist[:len(s.onlist)-len(mirrors)]
			} else {
				s.Counters.record(reason)
			}
		} else {
			s.Counters.record(PruneTooManyAddedOncells)
		}
	} else {
		s.Counters.record(PruneNewOncellsNotAllowed)
	}

	for _, m := range mirrors {
		evolvingPrev.Set(m[0], m[1], cell.Off)
		staticTile.Set(m[0], m[1], cell.Off)
	}
	prevGen.Flags |= tile.Changed

	if err := s.recurse(firstGenWithUnknown, firstNextSolGen); err != nil {
		return err
	}

	for _, m := range mirrors {
		evolvingPrev.Set(m[0], m[1], cell.UnknownStable)
		staticTile.Set(m[0], m[1], cell.UnknownStable)
	}
	prevGen.Flags |= tile.Changed

	return nil
}
