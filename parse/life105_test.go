package parse_test

import (
	"strings"
	"testing"

	"github.com/haldun/bellman/cell"
	"github.com/haldun/bellman/parse"
)

func TestReadLife105ParsesPatternBlock(t *testing.T) {
	input := `#C a block with a perturbation and an unknown-stable cell
#P 10 10
**
*@
?.
#S max-added-static-oncells 5
`
	pat, err := parse.ReadLife105(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLife105() error = %v", err)
	}

	static0 := pat.Static.FindGeneration(0, false)
	evolving0 := pat.Evolving.FindGeneration(0, false)

	if got := static0.FindTile(0, 0, false).Get(10, 10); got != cell.On {
		t.Fatalf("static (10,10) = %v, want On", got)
	}
	if got := static0.FindTile(0, 0, false).Get(10, 11); got != cell.On {
		t.Fatalf("static (10,11) = %v, want On", got)
	}
	if got := evolving0.FindTile(0, 0, false).Get(11, 11); got != cell.On {
		t.Fatalf("evolving (11,11) = %v, want On (the perturbation)", got)
	}
	if got := static0.FindTile(0, 0, false).Get(11, 11); got != cell.Off {
		t.Fatalf("static (11,11) = %v, want Off (not the perturbation's cell)", got)
	}
	if got := static0.FindTile(0, 0, false).Get(10, 12); got != cell.UnknownStable {
		t.Fatalf("static (10,12) = %v, want UnknownStable", got)
	}
	if got := evolving0.FindTile(0, 0, false).Get(10, 12); got != cell.UnknownStable {
		t.Fatalf("evolving (10,12) = %v, want UnknownStable", got)
	}

	if pat.Params.MaxAddedStaticOncells != 5 {
		t.Fatalf("MaxAddedStaticOncells = %d, want 5", pat.Params.MaxAddedStaticOncells)
	}
}

func TestReadLife105ParsesForbiddenMarker(t *testing.T) {
	input := "#P 0 0\n!\n"
	pat, err := parse.ReadLife105(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLife105() error = %v", err)
	}
	forbidden0 := pat.Forbidden.FindGeneration(0, false)
	if got := forbidden0.FindTile(0, 0, false).Get(0, 0); got != cell.On {
		t.Fatalf("forbidden (0,0) = %v, want On", got)
	}
	static0 := pat.Static.FindGeneration(0, false)
	if tl := static0.FindTile(0, 0, false); tl != nil {
		if got := tl.Get(0, 0); got != cell.Off {
			t.Fatalf("static (0,0) = %v, want Off for a forbidden-only marker", got)
		}
	}
}

func TestReadLife105ParsesFilterBlock(t *testing.T) {
	input := "#F 3 0 0\n*.\n.*\n"
	pat, err := parse.ReadLife105(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLife105() error = %v", err)
	}
	g := pat.Filter.FindGeneration(3, false)
	if g == nil {
		t.Fatal("expected filter generation 3 to exist")
	}
	tl := g.FindTile(0, 0, false)
	if got := tl.Get(0, 0); got != cell.On {
		t.Fatalf("filter (0,0) = %v, want On", got)
	}
	if got := tl.Get(1, 0); got != cell.Off {
		t.Fatalf("filter (1,0) = %v, want Off", got)
	}
	if got := tl.Get(5, 5); got != cell.Unknown {
		t.Fatalf("filter (5,5) = %v, want Unknown (unspecified cell)", got)
	}
}

func TestReadLife105RejectsUnknownParameter(t *testing.T) {
	_, err := parse.ReadLife105(strings.NewReader("#S not-a-parameter 1\n"))
	if err == nil {
		t.Fatal("expected an error for an unknown parameter")
	}
}
