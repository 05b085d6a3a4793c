package devtools

import (
	"strings"
	"testing"

	"linie1/pkg/engine/tiles"
	"linie1/pkg/game/board"
)

func TestBoardDump_EmptyGrid(t *testing.T) {
	g := board.NewGrid(3, 4)
	dump := BoardDump(g)

	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("dump has %d rows, want 3", len(lines))
	}
	for i, line := range lines {
		if line != ". . . . " {
			t.Errorf("row %d = %q, want all-empty cells", i, line)
		}
	}
}

func TestBoardDump_Symbols(t *testing.T) {
	catalog := tiles.DefaultCatalog()
	g := board.NewGrid(board.DefaultRows, board.DefaultCols)

	place := func(row, col, orientation int, name string) {
		t.Helper()
		tt, ok := catalog.Get(name)
		if !ok {
			t.Fatalf("catalog has no %s", name)
		}
		if err := g.Place(row, col, tiles.NewPlacedTile(tt, orientation)); err != nil {
			t.Fatalf("Place %s: %v", name, err)
		}
	}

	place(1, 1, 0, "Straight")
	place(1, 2, 90, "Curve")
	place(2, 1, 0, "Tree_Roundabout")

	dump := BoardDump(g)
	rows := strings.Split(dump, "\n")

	cellAt := func(row, col int) rune {
		return []rune(rows[row])[col*2]
	}

	if got := cellAt(1, 1); got != '│' {
		t.Errorf("Straight dumped as %q, want │", got)
	}
	if got := cellAt(1, 2); got != '╰' {
		t.Errorf("Curve dumped as %q, want ╰", got)
	}
	if got := cellAt(2, 1); got != '○' {
		t.Errorf("Tree_Roundabout dumped as %q, want ○", got)
	}
	if got := cellAt(0, 0); got != '.' {
		t.Errorf("empty cell dumped as %q, want .", got)
	}
}

func TestBoardDump_UnknownModTile(t *testing.T) {
	g := board.NewGrid(3, 3)
	mod := tiles.NewTileType("SomeModTile", [][2]tiles.Direction{{tiles.North, tiles.South}}, true, 0)
	if err := g.Place(1, 1, tiles.NewPlacedTile(mod, 0)); err != nil {
		t.Fatalf("Place: %v", err)
	}

	rows := strings.Split(BoardDump(g), "\n")
	if got := []rune(rows[1])[2]; got != '?' {
		t.Errorf("unknown tile dumped as %q, want ?", got)
	}
}

func TestBoardDump_CoversWholeCatalog(t *testing.T) {
	catalog := tiles.DefaultCatalog()
	for _, name := range catalog.Names() {
		if _, ok := tileSymbols[name]; !ok {
			t.Errorf("no dump symbol for %s", name)
		}
	}
}
