package search

// PruneReason names why a recursion branch was abandoned. The zero value,
// PruneNone, means the branch wasn't pruned (the search bottomed out and
// produced a solution, or the caller is still recursing).
type PruneReason int

const (
	PruneNone PruneReason = iota
	PruneUnstable
	PruneTooManyFlippedCells
	PruneFirstActivationTooLate
	PruneFirstActivationTooEarly
	PruneFilter
	PruneForbidden
	PruneStayedActiveTooLong
	PruneReactivationTooLate
	PruneSolution
	PruneNoContinuationFound
	PruneTooComplexLocally
	PruneTooComplexGlobally
	PruneTooManyAddedOncells
	PruneNewOncellsNotAllowed
)

// String names the prune reason the way the original tool's diagnostic
// counters were named, for use in status output.
func (r PruneReason) String() string {
	switch r {
	case PruneNone:
		return "none"
	case PruneUnstable:
		return "unstable"
	case PruneTooManyFlippedCells:
		return "too_many_flipped_cells"
	case PruneFirstActivationTooLate:
		return "first_activation_too_late"
	case PruneFirstActivationTooEarly:
		return "first_activation_too_early"
	case PruneFilter:
		return "filter"
	case PruneForbidden:
		return "forbidden"
	case PruneStayedActiveTooLong:
		return "stayed_active_too_long"
	case PruneReactivationTooLate:
		return "reactivation_too_late"
	case PruneSolution:
		return "solution"
	case PruneNoContinuationFound:
		return "no_continuation_found"
	case PruneTooComplexLocally:
		return "too_complex_locally"
	case PruneTooComplexGlobally:
		return "too_complex_globally"
	case PruneTooManyAddedOncells:
		return "too_many_added_oncells"
	case PruneNewOncellsNotAllowed:
		return "new_oncells_not_allowed"
	default:
		return "unknown"
	}
}

// allReasons enumerates every named reason, in the order the status printer
// reports them.
var allReasons = []PruneReason{
	PruneUnstable,
	PruneTooManyFlippedCells,
	PruneFirstActivationTooLate,
	PruneFirstActivationTooEarly,
	PruneFilter,
	PruneForbidden,
	PruneStayedActiveTooLong,
	PruneReactivationTooLate,
	PruneSolution,
	PruneNoContinuationFound,
	PruneTooComplexLocally,
	PruneTooComplexGlobally,
	PruneTooManyAddedOncells,
	PruneNewOncellsNotAllowed,
}

// Counters tallies every prune event by reason, plus the number of
// solutions accepted (a superset of the "solution" prune counter, since in
// continue-after-accept mode acceptance doesn't prune).
type Counters struct {
	byReason  map[PruneReason]int
	Accepted  int
}

func newCounters() Counters {
	return Counters{byReason: make(map[PruneReason]int, len(allReasons))}
}

func (c *Counters) record(r PruneReason) {
	if c.byReason == nil {
		c.byReason = make(map[PruneReason]int, len(allReasons))
	}
	c.byReason[r]++
}

// Count returns how many times r has been recorded.
func (c Counters) Count(r PruneReason) int {
	return c.byReason[r]
}

// Snapshot returns every named reason paired with its current count, in
// reporting order, for the status printer.
func (c Counters) Snapshot() []struct {
	Reason PruneReason
	Count  int
} {
	out := make([]struct {
		Reason PruneReason
		Count  int
	}, len(allReasons))
	for i, r := range allReasons {
		out[i].Reason = r
		out[i].Count = c.byReason[r]
	}
	return out
}
