package search

import (
	"github.com/haldun/bellman/kernel"
	"github.com/haldun/bellman/tile"
	"github.com/haldun/bellman/universe"
)

// recurse is the per-frame evaluation step: it verifies the static
// background is still a still life, re-evolves every CHANGED generation,
// walks forward applying the pruning predicate table (spec §4.3), and —
// unless a predicate fires or a non-continuing solution is found — calls
// chooseCell again to pick the next candidate. It returns nil when the
// branch is exhausted (pruned or a sub-branch was tried and backtracked)
// and a non-nil error only when OnSolution asks to stop the whole search.
func (s *Search) recurse(previousFirstGenWithUnknown, firstNextSolGen int) error {
	if s.OnStatus != nil {
		s.OnStatus(s.Counters)
	}

	if !kernel.StabiliseStatic(s.Static) {
		s.Counters.record(PruneUnstable)
		return nil
	}

	ge := s.Evolving.FindGeneration(0, false)
	for ge != nil && ge.Next != nil {
		if ge.Flags&tile.Changed != 0 {
			kernel.EvolveGeneration(ge)
		}
		if ge.Gen == previousFirstGenWithUnknown {
			break
		}
		ge = ge.Next
	}

	if ge != nil && ge.HasFlag(tile.HasUnknownCells) {
		// The boundary generation still has unknowns: the prior frame's
		// scan already covers everything beyond it this round. stabilized
		// hasn't been computed on this path, so (per its false zero value)
		// new on-cells are always allowed here.
		return s.chooseCell(true, ge.Gen, firstNextSolGen)
	}

	firstActiveGen := -1
	stabilized := false
	stabilizedGen := -1
	stabilizationYielded := false

	ge = s.Evolving.FindGeneration(0, false)
	for ge != nil && ge.Next != nil {
		if ge.Flags&tile.Changed != 0 {
			kernel.EvolveGeneration(ge)
		}

		if ge.HasFlag(tile.HasUnknownCells) {
			break
		}

		genNActive := sumNActive(ge)

		if genNActive > int(s.Params.MaxFlippedCellsInActivation) {
			s.Counters.record(PruneTooManyFlippedCells)
			return nil
		}

		if firstActiveGen == -1 && ge.Gen > int(s.Params.MaxFirstActivationGen) {
			s.Counters.record(PruneFirstActivationTooLate)
			return nil
		}

		if firstActiveGen == -1 && ge.HasFlag(tile.DiffersFromStable) {
			if ge.Gen < int(s.Params.MinActivationGen) {
				s.Counters.record(PruneFirstActivationTooEarly)
				return nil
			}
			firstActiveGen = ge.Gen
		}

		if firstActiveGen >= 0 && genNActive == 0 && !stabilized {
			stabilized = true
			stabilizedGen = ge.Gen
			stabilizationYielded = false
		}

		if stabilized && ge.HasFlag(tile.DiffersFromStable) {
			if ge.Gen > int(s.Params.MaxReactivationGen) {
				s.Counters.record(PruneReactivationTooLate)
				return nil
			}
			firstActiveGen = ge.Gen
			stabilized = false
			stabilizationYielded = false
		}

		if ge.HasFlag(tile.FilterMismatch) {
			s.Counters.record(PruneFilter)
			return nil
		}
		if ge.HasFlag(tile.InForbiddenRegion) {
			s.Counters.record(PruneForbidden)
			return nil
		}

		if firstActiveGen >= 0 && ge.Gen >= firstActiveGen+int(s.Params.MaxActiveGensInARow) {
			if genNActive > 0 {
				s.Counters.record(PruneStayedActiveTooLong)
				return nil
			}
		}

		if stabilized && !stabilizationYielded {
			acceptGen := stabilizedGen + int(s.Params.InactiveGensAtAccept) - 1
			if s.Params.ActivePlusInactiveGensAtAccept != 0 {
				alt := firstActiveGen + int(s.Params.ActivePlusInactiveGensAtAccept) - 1
				if alt < acceptGen {
					acceptGen = alt
				}
			}
			if want := s.Filter.NGens() - 1; want > acceptGen {
				acceptGen = want
			}

			if ge.Gen >= acceptGen {
				stabilizationYielded = true
			}

			if ge.Gen == acceptGen && ge.Gen >= firstNextSolGen {
				s.Counters.Accepted++
				if s.OnSolution != nil {
					if err := s.OnSolution(Solution{AcceptedGen: ge.Gen}); err != nil {
						return err
					}
				}
				if s.Params.ContinueAfterAccept {
					firstNextSolGen = ge.Gen + 1
				} else {
					s.Counters.record(PruneSolution)
					return nil
				}
			}
		}

		if ge.Gen > int(s.Params.MaxReactivationGen) && stabilized && stabilizationYielded {
			s.Counters.record(PruneNoContinuationFound)
			return nil
		}

		ge = ge.Next
	}

	allowNewOncells := ge.Gen <= int(s.Params.MaxReactivationGen) || !stabilized
	return s.chooseCell(allowNewOncells, ge.Gen, firstNextSolGen)
}

// sumNActive totals NActive across every tile of g: the pruning predicates
// operate on the generation's aggregate activity, not any single tile's.
func sumNActive(g *universe.Generation) int {
	total := 0
	g.Each(func(t *tile.Tile) { total += t.NActive })
	return total
}
