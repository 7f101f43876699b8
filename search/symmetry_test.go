package search

import (
	"testing"

	"github.com/haldun/bellman/parse"
)

func TestMirrorPositionsNoneReturnsSingleton(t *testing.T) {
	got := mirrorPositions(parse.SymmetryNone, 0, 3, 4)
	if len(got) != 1 || got[0] != [2]int{3, 4} {
		t.Fatalf("mirrorPositions(None) = %v, want [(3,4)]", got)
	}
}

func TestMirrorPositionsHorizReflectsY(t *testing.T) {
	got := mirrorPositions(parse.SymmetryHoriz, 20, 3, 4)
	want := [][2]int{{3, 4}, {3, 16}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("mirrorPositions(Horiz, ofs=20) = %v, want %v", got, want)
	}
}

func TestMirrorPositionsHorizOnAxisIsSingleton(t *testing.T) {
	got := mirrorPositions(parse.SymmetryHoriz, 8, 4, 4)
	if len(got) != 1 {
		t.Fatalf("mirrorPositions on the symmetry axis should not duplicate the cell, got %v", got)
	}
}

func TestMirrorPositionsVertReflectsX(t *testing.T) {
	got := mirrorPositions(parse.SymmetryVert, 20, 3, 4)
	want := [][2]int{{3, 4}, {17, 4}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("mirrorPositions(Vert, ofs=20) = %v, want %v", got, want)
	}
}

func TestValidXYForSymmetryNoneAlwaysValid(t *testing.T) {
	if !validXYForSymmetry(parse.SymmetryNone, 0, -5, 100) {
		t.Fatal("SymmetryNone should accept any position")
	}
}

func TestValidXYForSymmetryHorizRejectsBelowAxis(t *testing.T) {
	// ofs=20: canonical region is y such that ofs-y <= y, i.e. y >= 10.
	if !validXYForSymmetry(parse.SymmetryHoriz, 20, 0, 12) {
		t.Fatal("y=12 should be valid (on or past the axis) for ofs=20")
	}
	if validXYForSymmetry(parse.SymmetryHoriz, 20, 0, 8) {
		t.Fatal("y=8 should be invalid (its mirror y=12 is the canonical one) for ofs=20")
	}
}
