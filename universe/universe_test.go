package universe_test

import (
	"testing"

	"github.com/haldun/bellman/cell"
	"github.com/haldun/bellman/tile"
	"github.com/haldun/bellman/universe"
)

func TestFindGenerationExtendsChain(t *testing.T) {
	u := universe.New(cell.Off)
	g := u.FindGeneration(3, true)
	if g == nil || g.Gen != 3 {
		t.Fatalf("FindGeneration(3, true) = %+v, want generation 3", g)
	}
	if u.NGens() != 4 {
		t.Fatalf("NGens() = %d, want 4", u.NGens())
	}
	if g2 := u.FindGeneration(3, false); g2 != g {
		t.Fatalf("FindGeneration(3, false) returned a different generation")
	}
	if g3 := u.FindGeneration(9, false); g3 != nil {
		t.Fatalf("FindGeneration(9, false) = %+v, want nil", g3)
	}
}

func TestFindTileLinksNeighbours(t *testing.T) {
	u := universe.New(cell.Off)
	g := u.FindGeneration(0, true)

	center := g.FindTile(0, 0, true)
	right := g.FindTile(1, 0, true)
	down := g.FindTile(0, 1, true)

	if center.Right != right || right.Left != center {
		t.Fatalf("left/right neighbour links not established")
	}
	if center.Down != down || down.Up != center {
		t.Fatalf("up/down neighbour links not established")
	}
}

func TestSetCellAcrossTileBoundary(t *testing.T) {
	u := universe.New(cell.Off)
	g := u.FindGeneration(0, true)

	g.SetCell(tile.Width+3, 2, cell.On)
	tl := g.FindTile(1, 0, false)
	if tl == nil {
		t.Fatal("expected tile (1,0) to be created by SetCell")
	}
	if got := tl.Get(3, 2); got != cell.On {
		t.Fatalf("Get(3,2) on tile (1,0) = %v, want On", got)
	}
}

func TestEachVisitsAllTiles(t *testing.T) {
	u := universe.New(cell.Off)
	g := u.FindGeneration(0, true)
	g.FindTile(0, 0, true)
	g.FindTile(1, 0, true)
	g.FindTile(0, 1, true)

	count := 0
	g.Each(func(t *tile.Tile) { count++ })
	if count != 3 {
		t.Fatalf("Each visited %d tiles, want 3", count)
	}
}
