// Package universe implements the sparse, generation-chained tile grid that
// the search and evolution kernel operate over. It is a deliberately thin
// container: allocation, lookup, and enumeration only. The semantics of what
// a generation means (static background, evolving universe, forbidden mask,
// filter) live in the packages that use it.
package universe

import "github.com/haldun/bellman/cell"

// Universe is a chain of generations sharing a default off-grid cell value
// (the value returned for any position that has no tile yet).
type Universe struct {
	Default cell.Value
	First   *Generation
	last    *Generation
}

// New returns an empty universe whose generation 0 is ready to receive
// cells, with the given default value for any cell outside an allocated
// tile.
func New(def cell.Value) *Universe {
	u := &Universe{Default: def}
	g0 := newGeneration(u, 0)
	u.First, u.last = g0, g0
	return u
}

// FindGeneration returns the generation numbered gen, extending the chain
// (by repeatedly stepping past the last known generation) if create is true
// and the chain doesn't reach that far yet. Newly created generations start
// with no tiles; callers are expected to populate them via evolution or
// direct cell sets.
func (u *Universe) FindGeneration(gen int, create bool) *Generation {
	g := u.First
	for g != nil && g.Gen != gen {
		if g.Next == nil {
			if !create {
				return nil
			}
			ng := newGeneration(u, g.Gen+1)
			g.Next, ng.Prev = ng, g
			u.last = ng
		}
		g = g.Next
	}
	return g
}

// FindTile returns the tile at tile coordinates (x, y) in generation gen,
// creating the generation and/or tile if create is true.
func (u *Universe) FindTile(gen, x, y int, create bool) *Tile {
	g := u.FindGeneration(gen, create)
	if g == nil {
		return nil
	}
	return g.FindTile(x, y, create)
}

// NGens returns the number of generations currently allocated in the chain.
func (u *Universe) NGens() int {
	n := 0
	for g := u.First; g != nil; g = g.Next {
		n++
	}
	return n
}

// ExtendLike replicates generation 0's tile layout through generation gens,
// creating tiles at the same (x, y) positions (and linking their compass
// neighbours) in every generation up to and including gens, and wiring each
// tile's Prev pointer to its same-position predecessor. The tile layout
// never changes generation to generation — only cell contents do — so this
// only needs to run once, before the kernel evolves anything.
func (u *Universe) ExtendLike(gens int) {
	var positions [][2]int
	u.First.Each(func(t *Tile) { positions = append(positions, [2]int{t.XPos, t.YPos}) })

	prevGen := u.First
	for i := 1; i <= gens; i++ {
		g := u.FindGeneration(i, true)
		for _, p := range positions {
			t := g.FindTile(p[0], p[1], true)
			t.Prev = prevGen.FindTile(p[0], p[1], false)
		}
		prevGen = g
	}
}
