// Package kernel implements the three-state bitwise evolution step: the
// B3/S23 Life rule extended so that UNKNOWN neighbours propagate
// uncertainty, plus the stability override and derived per-tile signals the
// search driver prunes on.
package kernel

import (
	"math/bits"

	"github.com/haldun/bellman/tile"
	"github.com/haldun/bellman/universe"
)

// zero stands in for a nil tile link: an all-Off, off-grid neighbour.
var zero tile.Tile

func plane(t *tile.Tile, bit1 bool, row int) uint64 {
	if t == nil {
		t = &zero
	}
	if bit1 {
		return t.Bit1[row]
	}
	return t.Bit0[row]
}

// shiftTriple reads row `row` of plane `bit1` from t and the corresponding
// edge columns of its Left/Right neighbours, returning the values one
// column left, at, and one column right of every cell in the row — i.e. the
// three horizontal neighbour words a 3x3 stencil needs, with tile edges
// stitched in from the adjacent tile's own row.
func shiftTriple(t *tile.Tile, bit1 bool, row int) (left, center, right uint64) {
	if t == nil {
		return 0, 0, 0
	}
	center = plane(t, bit1, row)
	left = center<<1 | plane(t.Left, bit1, row)>>63
	right = center>>1 | plane(t.Right, bit1, row)<<63
	return
}

// rowAbove and rowBelow locate the tile and row index one row up/down from
// (t, y), crossing into Up/Down when y is on the tile's top/bottom edge.
func rowAbove(t *tile.Tile, y int) (*tile.Tile, int) {
	if y > 0 {
		return t, y - 1
	}
	return t.Up, tile.Height - 1
}

func rowBelow(t *tile.Tile, y int) (*tile.Tile, int) {
	if y < tile.Height-1 {
		return t, y + 1
	}
	return t.Down, 0
}

// addBit adds the single-bit lane value `bit` into the parallel 4-bit
// binary counter (c0..c3), lane by lane, via a ripple-carry half-adder
// chain. The counter never needs to hold more than 8 (the neighbour count),
// which fits in 4 bits without overflow.
func addBit(c0, c1, c2, c3, bit uint64) (uint64, uint64, uint64, uint64) {
	carry := c0 & bit
	c0 ^= bit
	next := c1 & carry
	c1 ^= carry
	carry = c2 & next
	c2 ^= next
	c3 ^= carry
	return c0, c1, c2, c3
}

// addWords4 adds two parallel 4-bit binary counters together, lane by lane,
// producing a 5-bit sum (0..16) via a standard full-adder chain.
func addWords4(a0, a1, a2, a3, b0, b1, b2, b3 uint64) (s0, s1, s2, s3, s4 uint64) {
	carry := uint64(0)
	s0 = a0 ^ b0 ^ carry
	carry = a0&b0 | carry&(a0^b0)
	s1 = a1 ^ b1 ^ carry
	carry = a1&b1 | carry&(a1^b1)
	s2 = a2 ^ b2 ^ carry
	carry = a2&b2 | carry&(a2^b2)
	s3 = a3 ^ b3 ^ carry
	carry = a3&b3 | carry&(a3^b3)
	s4 = carry
	return
}

// RawStep computes the three-state B3/S23 successor of t with no stability
// override applied: each output cell is ON or OFF only if every producible
// value of the (possibly uncertain) 3x3 neighbourhood and self agrees on
// the result, and UNKNOWN otherwise. It is the kernel's pure form, used
// directly by StabiliseStatic and as the first pass of EvolveTile.
func RawStep(t *tile.Tile) (bit0, bit1 [tile.Height]uint64) {
	for y := 0; y < tile.Height; y++ {
		upT, upY := rowAbove(t, y)
		downT, downY := rowBelow(t, y)

		ul0, u0, ur0 := shiftTriple(upT, false, upY)
		ul1, u1, ur1 := shiftTriple(upT, true, upY)
		l0, c0, r0 := shiftTriple(t, false, y)
		l1, c1, r1 := shiftTriple(t, true, y)
		dl0, d0, dr0 := shiftTriple(downT, false, downY)
		dl1, d1, dr1 := shiftTriple(downT, true, downY)

		// knownAlive/unknown per neighbour position, per the cell encoding
		// in package cell: bit1 set means uncertain regardless of bit0.
		type pair struct{ b0, b1 uint64 }
		neighbours := [8]pair{
			{ul0, ul1}, {u0, u1}, {ur0, ur1},
			{l0, l1}, {r0, r1},
			{dl0, dl1}, {d0, d1}, {dr0, dr1},
		}

		var m0, m1, m2, m3 uint64 // minimum certain alive count
		var r0c, r1c, r2c, r3c uint64 // count of uncertain neighbours (possible range width)
		for _, n := range neighbours {
			knownAlive := n.b0 &^ n.b1
			unknown := n.b1
			m0, m1, m2, m3 = addBit(m0, m1, m2, m3, knownAlive)
			r0c, r1c, r2c, r3c = addBit(r0c, r1c, r2c, r3c, unknown)
		}
		M0, M1, M2, M3, M4 := addWords4(m0, m1, m2, m3, r0c, r1c, r2c, r3c)

		minLE2 := ^m3 & ^m2 & ^(m1 & m0)
		minLE3 := ^m3 & ^m2
		minLT2 := ^m3 & ^m2 & ^m1
		maxGE2 := M4 | M3 | M2 | M1
		maxGE3 := M4 | M3 | M2 | (M1 & M0)
		maxGT3 := M4 | M3 | M2

		canBe2 := minLE2 & maxGE2
		canBe3 := minLE3 & maxGE3
		canBeOther := minLT2 | maxGT3

		selfKnownAlive := c0 &^ c1
		selfKnownDead := ^c0 &^ c1
		selfUnknown := c1
		selfMaybeAlive := selfKnownAlive | selfUnknown
		selfMaybeDead := selfKnownDead | selfUnknown

		canBeAlive := canBe3 | (canBe2 & selfMaybeAlive)
		canBeDead := canBeOther | (canBe2 & selfMaybeDead)

		bit0[y] = canBeAlive
		bit1[y] = canBeAlive & canBeDead
	}
	return
}

// EvolveTile advances current by one generation into out: it runs RawStep,
// then applies the stability override against the same-position tile in
// the static background (current.AuxData), then computes the derived
// flags, n_active and delta_prev that the search driver prunes on. It
// writes only to out; current, and every tile out's links reach, are left
// untouched. It returns out.Flags for convenience.
func EvolveTile(current, out *tile.Tile) tile.Flags {
	raw0, raw1 := RawStep(current)

	stable := current.AuxData
	if stable == nil {
		stable = &zero
	}
	var forbidden *tile.Tile
	if stable.AuxData != nil {
		forbidden = stable.AuxData
	} else {
		forbidden = &zero
	}
	filter := current.Filter
	twoPrev := current.Prev
	if twoPrev == nil {
		twoPrev = &zero
	}

	var deltaFromStable, deltaFromPrevious [tile.Height]uint64
	var setMask [tile.Height]uint64

	for y := 0; y < tile.Height; y++ {
		// "differs" mask: any plane of current's 3x3 neighbourhood
		// disagrees with the same neighbourhood of stable.
		upC, upCY := rowAbove(current, y)
		downC, downCY := rowBelow(current, y)
		upS, upSY := rowAbove(stable, y)
		downS, downSY := rowBelow(stable, y)

		var differs uint64
		for p := 0; p < 2; p++ {
			isBit1 := p == 1
			cul, cu, cur := shiftTriple(upC, isBit1, upCY)
			cl, cc, cr := shiftTriple(current, isBit1, y)
			cdl, cd, cdr := shiftTriple(downC, isBit1, downCY)
			sul, su, sur := shiftTriple(upS, isBit1, upSY)
			sl, sc, sr := shiftTriple(stable, isBit1, y)
			sdl, sd, sdr := shiftTriple(downS, isBit1, downSY)

			differs |= cul ^ sul
			differs |= cu ^ su
			differs |= cur ^ sur
			differs |= cl ^ sl
			differs |= cc ^ sc
			differs |= cr ^ sr
			differs |= cdl ^ sdl
			differs |= cd ^ sd
			differs |= cdr ^ sdr
		}

		outBit0 := raw0[y]&differs | stable.Bit0[y]&^differs
		outBit1 := raw1[y]&differs | stable.Bit1[y]&^differs
		out.Bit0[y], out.Bit1[y] = outBit0, outBit1

		// set_mask: cells ON in stable, or bordering a cell ON in stable.
		sul, su, sur := shiftTriple(upS, false, upSY)
		sl, sc, sr := shiftTriple(stable, false, y)
		sdl, sd, sdr := shiftTriple(downS, false, downSY)
		setMask[y] = sc | sul | su | sur | sl | sr | sdl | sd | sdr

		deltaFromStable[y] = outBit0^stable.Bit0[y] | outBit1^stable.Bit1[y]
		deltaFromPrevious[y] = outBit0^current.Bit0[y] | outBit1^current.Bit1[y]
	}

	var flags tile.Flags
	var nActive, deltaPrev int
	var anyDiffersStable, any2Prev, anyUnknown, anyOn, anyForbidden, anyFilterMismatch bool

	for y := 0; y < tile.Height; y++ {
		nActive += bits.OnesCount64(deltaFromStable[y] & setMask[y])
		deltaPrev += bits.OnesCount64(deltaFromPrevious[y] & setMask[y])

		if deltaFromStable[y] != 0 {
			anyDiffersStable = true
		}
		if out.Bit0[y] != twoPrev.Bit0[y] || out.Bit1[y] != twoPrev.Bit1[y] {
			any2Prev = true
		}
		if out.Bit0[y]&out.Bit1[y] != 0 {
			anyUnknown = true
		}
		if out.Bit0[y]&^out.Bit1[y] != 0 {
			anyOn = true
		}
		if deltaFromStable[y]&forbidden.Bit0[y] != 0 {
			anyForbidden = true
		}
		// A nil filter (no #F data for this tile/generation) behaves as if
		// every cell were Unknown: bit1 all set masks out the comparison
		// entirely, so an unconstrained cell can never mismatch.
		var filterBit0, filterBit1 uint64
		if filter != nil {
			filterBit0, filterBit1 = filter.Bit0[y], filter.Bit1[y]
		} else {
			filterBit1 = ^uint64(0)
		}
		filterDiff := out.Bit0[y] ^ filterBit0
		filterDiff &^= filterBit1
		filterDiff &^= out.Bit1[y]
		if filterDiff != 0 {
			anyFilterMismatch = true
		}
	}
	if current.Prev == nil {
		any2Prev = true
	}

	if anyUnknown {
		flags |= tile.HasUnknownCells
	}
	if anyOn {
		flags |= tile.HasOnCells
	}
	if anyDiffersStable {
		flags |= tile.DiffersFromStable
	}
	if deltaPrev != 0 {
		flags |= tile.DiffersFromPrevious
	}
	if any2Prev {
		flags |= tile.DiffersFrom2Prev
	}
	if anyForbidden {
		flags |= tile.InForbiddenRegion
	}
	if anyFilterMismatch {
		flags |= tile.FilterMismatch
	}
	if anyDiffersStable || current.Flags&tile.IsLive != 0 {
		flags |= tile.IsLive
	}

	out.NActive = nActive
	out.DeltaPrev = deltaPrev
	out.Flags = flags
	return flags
}

// EvolveGeneration evaluates EvolveTile for every tile of g, writing into
// g.Next (which must already exist with the same tile layout as g — see
// universe.Universe.ExtendLike), clears g's Changed flag, and replaces
// g.Next.Flags (keeping only its Changed bit) with the OR of every evolved
// tile's flags. It returns g.Next.
func EvolveGeneration(g *universe.Generation) *universe.Generation {
	next := g.Next
	next.Flags &= tile.Changed
	g.Each(func(t *tile.Tile) {
		out := next.FindTile(t.XPos, t.YPos, false)
		next.Flags |= EvolveTile(t, out)
	})
	g.Flags &^= tile.Changed
	return next
}

// StabiliseStatic reports whether every known (ON or OFF) cell of u's
// generation 0 maps to itself under the raw (override-free) evolution
// step — i.e. whether the decided part of the candidate background is a
// still life under B3/S23. UNKNOWN_STABLE cells are exempt: they haven't
// been committed yet, so RawStep resolving one to a definite value (as it
// will whenever the surrounding neighbourhood already forces an outcome)
// is not by itself a sign of instability. Likewise a known cell whose
// successor RawStep leaves uncertain (because undecided cells around it
// could still go either way) is not counted: only a definite successor
// that differs from the cell is a mismatch.
func StabiliseStatic(u *universe.Universe) bool {
	stable := true
	u.First.Each(func(t *tile.Tile) {
		rawBit0, rawBit1 := RawStep(t)
		for y := 0; y < tile.Height; y++ {
			exempt := t.Bit1[y] &^ t.Bit0[y] // UNKNOWN_STABLE: bit1 set, bit0 clear
			mismatch := (rawBit0[y]^t.Bit0[y] | rawBit1[y]^t.Bit1[y]) &^ exempt &^ rawBit1[y]
			if mismatch != 0 {
				stable = false
			}
		}
	})
	return stable
}
