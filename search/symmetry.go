package search

import "github.com/haldun/bellman/parse"

// validXYForSymmetry reports whether (x, y) is the canonical representative
// of its mirror set under sym/ofs — i.e. whether it's on or past the
// symmetry axis, so choose_cell's orthogonal/diagonal offset scan doesn't
// pick the same mirror pair twice from two different starting cells.
func validXYForSymmetry(sym parse.Symmetry, ofs uint, x, y int) bool {
	switch sym {
	case parse.SymmetryHoriz:
		return int(ofs)-y <= y
	case parse.SymmetryVert:
		return int(ofs)-x <= x
	default:
		return true
	}
}

// mirrorPositions returns the 1 or 2 positions (x, y) expands to under the
// configured symmetry: itself alone when the symmetry is None, sits exactly
// on the axis, or both itself and its mirror image otherwise.
func mirrorPositions(sym parse.Symmetry, ofs uint, x, y int) [][2]int {
	switch sym {
	case parse.SymmetryHoriz:
		my := int(ofs) - y
		if my == y {
			return [][2]int{{x, y}}
		}
		return [][2]int{{x, y}, {x, my}}
	case parse.SymmetryVert:
		mx := int(ofs) - x
		if mx == x {
			return [][2]int{{x, y}}
		}
		return [][2]int{{x, y}, {mx, y}}
	default:
		return [][2]int{{x, y}}
	}
}
