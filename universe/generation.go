package universe

import (
	"github.com/haldun/bellman/cell"
	"github.com/haldun/bellman/tile"
)

// Generation is an ordered collection of tiles at a single generation
// number, linked into the chain owned by a Universe.
type Generation struct {
	Gen        int
	Next, Prev *Generation
	First      *Tile // root of the tile enumeration list (tile.AllNext)

	// Flags is the OR of every tile's flags in this generation, refreshed
	// each time the generation is evolved into.
	Flags tile.Flags

	tiles map[tileKey]*Tile
	u     *Universe
}

// Tile is an alias kept local to this package to avoid a stutter; it's the
// same type as tile.Tile.
type Tile = tile.Tile

type tileKey struct{ x, y int }

func newGeneration(u *Universe, gen int) *Generation {
	return &Generation{Gen: gen, tiles: make(map[tileKey]*Tile), u: u}
}

// FindTile returns the tile at (x, y), creating it (and linking it to its
// existing neighbours) if create is true and it doesn't exist yet.
func (g *Generation) FindTile(x, y int, create bool) *Tile {
	if t, ok := g.tiles[tileKey{x, y}]; ok {
		return t
	}
	if !create {
		return nil
	}

	t := tile.New(x, y)
	if g.u.Default != cell.Off {
		t.Fill(g.u.Default)
	}
	g.tiles[tileKey{x, y}] = t
	t.AllNext = g.First
	g.First = t

	if left, ok := g.tiles[tileKey{x - 1, y}]; ok {
		t.Left, left.Right = left, t
	}
	if right, ok := g.tiles[tileKey{x + 1, y}]; ok {
		t.Right, right.Left = right, t
	}
	if up, ok := g.tiles[tileKey{x, y - 1}]; ok {
		t.Up, up.Down = up, t
	}
	if down, ok := g.tiles[tileKey{x, y + 1}]; ok {
		t.Down, down.Up = down, t
	}
	return t
}

// SetCell sets the cell at global cell coordinates (gx, gy), creating the
// tile that contains it if necessary.
func (g *Generation) SetCell(gx, gy int, v cell.Value) {
	tx, ty := gx/tile.Width, gy/tile.Height
	cx, cy := gx%tile.Width, gy%tile.Height
	t := g.FindTile(tx, ty, true)
	t.Set(cx, cy, v)
}

// Each calls fn for every tile in the generation, in enumeration order.
func (g *Generation) Each(fn func(t *Tile)) {
	for t := g.First; t != nil; t = t.AllNext {
		fn(t)
	}
}

// HasFlag reports whether the generation's aggregate flags contain all bits
// of want.
func (g *Generation) HasFlag(want tile.Flags) bool {
	return g.Flags&want == want
}
