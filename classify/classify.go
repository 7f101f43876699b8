// Package classify implements CLASSIFY mode: tracing one evolution's
// interaction history and computing an order-independent summary hash of
// how it settled, so two runs that find the same spark can be recognized
// as equivalent even if the search reached it by different branches.
package classify

import (
	"fmt"
	"io"

	"github.com/haldun/bellman/tile"
	"github.com/haldun/bellman/universe"
)

// Event is one line of the interaction trace.
type Event struct {
	Gen     int
	Message string
}

func (e Event) String() string {
	return fmt.Sprintf("log: g%d: %s", e.Gen, e.Message)
}

// Trace walks evolving forward from generation 1, emitting one Event for
// every transition original_source/bellman.c's CLASSIFY mode logs: dying
// out, becoming undetermined, settling to a still life, collapsing to
// period 2, and each interaction's start/end. It stops at the first
// terminal transition (die-out, undetermined, stable, or period-2), the
// same as the original's trace loop.
func Trace(evolving *universe.Universe) []Event {
	g0 := evolving.FindGeneration(0, false)
	if g0 == nil {
		return nil
	}

	var events []Event
	inInteraction := false
	interactionNr := 0

	for g := g0.Next; g != nil; g = g.Next {
		if g.Flags&tile.IsLive == 0 {
			events = append(events, Event{g.Gen, "died out"})
			break
		}
		if g.HasFlag(tile.HasUnknownCells) {
			events = append(events, Event{g.Gen, "became undetermined"})
			break
		}
		if g.Flags&tile.DiffersFromPrevious == 0 {
			events = append(events, Event{g.Gen, "became stable"})
			break
		}
		if g.Flags&tile.DiffersFrom2Prev == 0 {
			events = append(events, Event{g.Gen, "became period 2"})
			break
		}

		if !inInteraction {
			if g.Flags&tile.DiffersFromStable != 0 {
				interactionNr++
				inInteraction = true
				events = append(events, Event{g.Gen, fmt.Sprintf("interaction %d begins", interactionNr)})
			}
		} else if g.Flags&tile.DiffersFromStable == 0 {
			inInteraction = false
			events = append(events, Event{g.Gen, fmt.Sprintf("interaction %d ends", interactionNr)})
		}
	}
	return events
}

// WriteTrace writes each event to w in the original's "log: g<N>: <msg>"
// format, one per line.
func WriteTrace(w io.Writer, events []Event) error {
	for _, e := range events {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}

// Class summarizes one evolution: the generations its deviation from the
// stable background spans, and a hash of the settled spark's shape.
type Class struct {
	// HasActivity is false when evolving never differed from static at
	// all (the degenerate klass=0 case).
	HasActivity bool
	FirstActive int
	LastActive  int
	Hash        uint32
}

// Classify computes a Class for evolving against static. It replicates
// bellman.c's CLASSIFY-mode klass/hash arithmetic exactly, including the
// per-tile multiplicative XOR-fold hash: tiles are summed rather than
// concatenated, so the result doesn't depend on tile enumeration order.
func Classify(evolving, static *universe.Universe) Class {
	g0 := evolving.FindGeneration(0, false)
	if g0 == nil {
		return Class{}
	}

	var first *universe.Generation
	for g := g0; g != nil; g = g.Next {
		if g.Flags&tile.DiffersFromStable != 0 {
			first = g
			break
		}
	}
	if first == nil {
		return Class{}
	}

	last := first
	for g := first; g != nil; g = g.Next {
		if g.Flags&tile.DiffersFromStable != 0 {
			last = g
		}
	}

	settleGen := last
	if last.Next != nil {
		settleGen = last.Next
	}

	staticGen0 := static.FindGeneration(0, true)
	klass := uint32(2*first.Gen + 3*settleGen.Gen)
	settleGen.Each(func(t *tile.Tile) {
		klass += tileHash(t, staticGen0.FindTile(t.XPos, t.YPos, true))
	})

	return Class{
		HasActivity: true,
		FirstActive: first.Gen,
		LastActive:  last.Gen,
		Hash:        klass,
	}
}

func tileHash(t, stable *tile.Tile) uint32 {
	const mul = 0xabcdef13
	hash := uint32(1)
	for y := 0; y < tile.Height; y++ {
		for x := 0; x < tile.Width; x++ {
			t1, t2 := t.Get(x, y), stable.Get(x, y)
			if t1 == t2 {
				continue
			}
			hash = (hash ^ uint32(t1)) * mul
			hash = (hash ^ uint32(t2)) * mul
			hash = (hash ^ uint32(x)) * mul
			hash = (hash ^ uint32(y)) * mul
		}
	}
	return hash
}
