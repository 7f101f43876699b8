// Package tile implements the fixed-size rectangular block of cells that the
// universe is built from: two bit-plane word arrays plus the links needed to
// evolve it without ever touching a neighbouring tile through anything but
// its edge words.
package tile

import "github.com/haldun/bellman/cell"

// Width and Height are the tile's dimensions in cells. Width equals one
// machine word (64 bits) so a tile row is exactly one bit-plane word; Height
// is chosen to match, giving square 64x64 tiles.
const (
	Width  = 64
	Height = 64
)

// Flags is a bitmask of aggregate, derived per-generation conditions.
// Individual tiles accumulate Flags as they're evolved; a Generation's Flags
// is the OR of all its tiles' Flags (see universe.Generation).
type Flags uint16

const (
	// Changed marks a generation (or the tile that caused it) as needing
	// re-evolution before it can be trusted.
	Changed Flags = 1 << iota
	// HasUnknownCells is set when any cell of the tile is Unknown.
	HasUnknownCells
	// HasOnCells is set when any cell of the tile is On.
	HasOnCells
	// DiffersFromStable is set when the tile differs from the same
	// position in the static (still-life) universe.
	DiffersFromStable
	// DiffersFromPrevious is set when the tile differs from its own
	// previous generation.
	DiffersFromPrevious
	// DiffersFrom2Prev is set when the tile differs from the generation
	// two steps back (or when no such generation exists).
	DiffersFrom2Prev
	// IsLive is set when the tile has ever differed from stable, even if
	// it has since settled back.
	IsLive
	// InForbiddenRegion is set when a cell inside the forbidden mask
	// changed value.
	InForbiddenRegion
	// FilterMismatch is set when a cell disagrees with a fully specified
	// filter cell.
	FilterMismatch
)

// Tile is a Width x Height block of cells stored as two bit-plane word
// arrays (Bit0, Bit1), one word per row. Cell (x, y) within the tile reads
// bit x of row y in each plane; see cell.FromBits.
type Tile struct {
	Bit0, Bit1 [Height]uint64

	// Compass neighbours. A nil link is treated as an all-Off, off-grid
	// tile by the evolution kernel.
	Up, Down, Left, Right *Tile

	// AllNext threads every tile of the owning generation into a single
	// enumeration list, rooted at Generation.First.
	AllNext *Tile

	// XPos, YPos are this tile's coordinates in tile units (not cells).
	XPos, YPos int

	// AuxData points to the corresponding tile in a different universe:
	// for u_evolving tiles, the same-position u_static tile; for u_static
	// tiles, the same-position u_forbidden tile. Nil if the sibling
	// universe has no tile at this position. AuxData never owns its
	// target — it is a plain cross-universe reference wired once at
	// startup (see search.Wire).
	AuxData *Tile

	// Filter points to the same-position tile in the filter universe at
	// generation+1. Nil once there is no further filter data.
	Filter *Tile

	// Prev is the same-position tile in the previous generation of this
	// tile's own universe. Nil for generation 0.
	Prev *Tile

	// Flags accumulates the derived conditions computed the last time
	// this tile was evolved into.
	Flags Flags

	// NActive is the number of cells that differ from the stable
	// background and also border a stable-set cell (spec.md §4.1).
	NActive int

	// DeltaPrev is the same count computed against the previous
	// generation instead of the stable background.
	DeltaPrev int
}

// New returns a fresh, all-Off tile at the given tile coordinates.
func New(x, y int) *Tile {
	return &Tile{XPos: x, YPos: y}
}

// Fill sets every cell of the tile to v. It's used to give a newly
// allocated tile its owning universe's default value (see
// universe.Universe.Default) instead of the zero value New leaves it with.
func (t *Tile) Fill(v cell.Value) {
	bit0, bit1 := v.Bits()
	var w0, w1 uint64
	if bit0 {
		w0 = ^uint64(0)
	}
	if bit1 {
		w1 = ^uint64(0)
	}
	for y := 0; y < Height; y++ {
		t.Bit0[y], t.Bit1[y] = w0, w1
	}
}

// Get returns the value of cell (x, y) within the tile. x and y must be in
// [0, Width) and [0, Height) respectively.
func (t *Tile) Get(x, y int) cell.Value {
	bit0 := t.Bit0[y]>>uint(x)&1 != 0
	bit1 := t.Bit1[y]>>uint(x)&1 != 0
	return cell.FromBits(bit0, bit1)
}

// Set writes the value of cell (x, y) within the tile.
func (t *Tile) Set(x, y int, v cell.Value) {
	bit0, bit1 := v.Bits()
	mask := uint64(1) << uint(x)
	if bit0 {
		t.Bit0[y] |= mask
	} else {
		t.Bit0[y] &^= mask
	}
	if bit1 {
		t.Bit1[y] |= mask
	} else {
		t.Bit1[y] &^= mask
	}
}

// OnOuterEdge reports whether (x, y) lies on the tile's outer row or column.
// Cells there can't be chosen as search candidates: resolving them would
// require propagating state across a tile boundary, which this
// implementation — like the program it's grounded on — does not support.
func OnOuterEdge(x, y int) bool {
	return x == 0 || x == Width-1 || y == 0 || y == Height-1
}
