package board

import (
	"testing"

	"linie1/pkg/engine/tiles"
)

func mustType(t *testing.T, catalog *tiles.Catalog, name string) *tiles.TileType {
	t.Helper()
	tt, ok := catalog.Get(name)
	if !ok {
		t.Fatalf("catalog has no %s", name)
	}
	return tt
}

func TestNewGrid_Dimensions(t *testing.T) {
	g := NewGrid(DefaultRows, DefaultCols)
	if g.Rows() != 14 || g.Cols() != 14 {
		t.Errorf("grid is %dx%d, want 14x14", g.Rows(), g.Cols())
	}
	g.ForEachTile(func(row, col int, tile *tiles.PlacedTile) {
		t.Errorf("new grid has a tile at (%d,%d)", row, col)
	})
}

func TestGrid_PositionChecks(t *testing.T) {
	g := NewGrid(DefaultRows, DefaultCols)

	cases := []struct {
		row, col        int
		valid, playable bool
	}{
		{0, 0, true, false},
		{0, 5, true, false},
		{13, 13, true, false},
		{1, 1, true, true},
		{12, 12, true, true},
		{6, 6, true, true},
		{-1, 0, false, false},
		{14, 0, false, false},
		{0, 14, false, false},
	}
	for _, c := range cases {
		if got := g.IsValidPosition(c.row, c.col); got != c.valid {
			t.Errorf("IsValidPosition(%d,%d) = %v, want %v", c.row, c.col, got, c.valid)
		}
		if got := g.IsPlayablePosition(c.row, c.col); got != c.playable {
			t.Errorf("IsPlayablePosition(%d,%d) = %v, want %v", c.row, c.col, got, c.playable)
		}
	}
}

func TestGrid_PlaceAndRemove(t *testing.T) {
	catalog := tiles.DefaultCatalog()
	g := NewGrid(DefaultRows, DefaultCols)

	straight := tiles.NewPlacedTile(mustType(t, catalog, "Straight"), 0)
	if err := g.Place(4, 4, straight); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if g.At(4, 4) != straight {
		t.Error("At(4,4) did not return the placed tile")
	}

	// Swappable tiles may be replaced
	curve := tiles.NewPlacedTile(mustType(t, catalog, "Curve"), 90)
	if err := g.Place(4, 4, curve); err != nil {
		t.Errorf("replacing a swappable tile: %v", err)
	}

	if removed := g.Remove(4, 4); removed != curve {
		t.Error("Remove did not return the replaced tile")
	}
	if g.At(4, 4) != nil {
		t.Error("cell still occupied after Remove")
	}
}

func TestGrid_PlaceRejections(t *testing.T) {
	catalog := tiles.DefaultCatalog()
	g := NewGrid(DefaultRows, DefaultCols)

	straight := tiles.NewPlacedTile(mustType(t, catalog, "Straight"), 0)
	if err := g.Place(-1, 3, straight); err == nil {
		t.Error("placing outside the board succeeded")
	}

	// Tree tiles are permanent once placed
	tree := tiles.NewPlacedTile(mustType(t, catalog, "Tree_JunctionTop"), 0)
	if err := g.Place(5, 5, tree); err != nil {
		t.Fatalf("Place tree: %v", err)
	}
	if err := g.Place(5, 5, straight); err == nil {
		t.Error("overwriting a non-swappable tile succeeded")
	}

	// Terminals can never be built over
	if err := g.SetupTerminals(catalog); err != nil {
		t.Fatalf("SetupTerminals: %v", err)
	}
	if err := g.Place(6, 0, straight); err == nil {
		t.Error("overwriting a terminal succeeded")
	}
}

func TestSetupTerminals(t *testing.T) {
	catalog := tiles.DefaultCatalog()
	g := NewGrid(DefaultRows, DefaultCols)
	if err := g.SetupTerminals(catalog); err != nil {
		t.Fatalf("SetupTerminals: %v", err)
	}

	count := 0
	g.ForEachTile(func(row, col int, tile *tiles.PlacedTile) {
		count++
		if !tile.IsTerminal {
			t.Errorf("tile at (%d,%d) not marked as terminal", row, col)
		}
		if tile.Type.Name != "Curve" {
			t.Errorf("terminal at (%d,%d) is %s, want Curve", row, col, tile.Type.Name)
		}
		if g.IsPlayablePosition(row, col) {
			t.Errorf("terminal at (%d,%d) inside the playable area", row, col)
		}
	})

	// Six lines, two ends each, two curve tiles per end
	if count != 24 {
		t.Errorf("placed %d terminal tiles, want 24", count)
	}
}

func TestTerminalCoords(t *testing.T) {
	for _, line := range Lines() {
		r1, c1, r2, c2, ok := TerminalCoords(line)
		if !ok {
			t.Errorf("line %d has no terminal coords", line)
			continue
		}
		for _, p := range [][2]int{{r1, c1}, {r2, c2}} {
			onBorder := p[0] == 0 || p[0] == DefaultRows-1 || p[1] == 0 || p[1] == DefaultCols-1
			if !onBorder {
				t.Errorf("line %d terminal at (%d,%d) not on the border", line, p[0], p[1])
			}
		}
	}
	if _, _, _, _, ok := TerminalCoords(7); ok {
		t.Error("line 7 unexpectedly has terminals")
	}
}
