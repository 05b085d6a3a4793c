package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"linie1/pkg/engine/tiles"
	"linie1/pkg/game/board"
	"linie1/pkg/game/deck"
	"linie1/pkg/game/devtools"
	"linie1/pkg/game/fonts"
	"linie1/pkg/game/icon"
	"linie1/pkg/game/renderer"
	ebitenrenderer "linie1/pkg/game/renderer/ebiten"
)

func initGettext(locale string) {
	gotext.Configure("po", locale, "default")
}

// newDemoBoard builds a board with terminals placed and a few starter tiles
// so the renderer has something to show.
func newDemoBoard(catalog *tiles.Catalog) (*board.Grid, error) {
	grid := board.NewGrid(board.DefaultRows, board.DefaultCols)
	if err := grid.SetupTerminals(catalog); err != nil {
		return nil, err
	}

	demo := []struct {
		row, col    int
		name        string
		orientation int
	}{
		{6, 1, "Straight", 90},
		{6, 2, "Curve", 90},
		{5, 2, "Straight", 0},
		{4, 2, "StraightRightCurve", 0},
		{4, 3, "Tree_Crossroad", 0},
		{4, 4, "Tree_Roundabout", 0},
	}
	for _, d := range demo {
		t, ok := catalog.Get(d.name)
		if !ok {
			return nil, fmt.Errorf("demo tile %q not in catalog", d.name)
		}
		if err := grid.Place(d.row, d.col, tiles.NewPlacedTile(t, d.orientation)); err != nil {
			return nil, err
		}
	}
	return grid, nil
}

func main() {
	debugPanel := flag.Bool("debug", false, "show the all-tiles debug gallery instead of the hand panel")
	dump := flag.Bool("dump", false, "print a colored board dump to stdout and exit")
	locale := flag.String("locale", "en_US", "UI locale")
	seed := flag.Int64("seed", time.Now().UnixNano(), "draw pile shuffle seed")
	flag.Parse()

	initGettext(*locale)

	catalog := tiles.DefaultCatalog()
	grid, err := newDemoBoard(catalog)
	if err != nil {
		log.Printf("building board: %v", err)
		os.Exit(1)
	}

	if *dump {
		devtools.PrintBoard(grid)
		return
	}

	icons := icon.NewCache(icon.New(fonts.NewCache()), icon.DefaultCacheCapacity)
	pile := deck.New(catalog, *seed)
	renderer.SetRenderer(ebitenrenderer.New(catalog, grid, icons, pile, *debugPanel))

	if err := renderer.Init(); err != nil {
		log.Printf("initializing renderer: %v", err)
		os.Exit(1)
	}
	if err := renderer.Run(); err != nil {
		log.Printf("renderer exited: %v", err)
		os.Exit(1)
	}
}
