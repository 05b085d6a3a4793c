// Package ebiten provides the Ebiten-based 2D graphical renderer for Linie 1.
package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/zyedidia/generic/cache"
	"golang.org/x/image/font/gofont/goregular"

	"linie1/pkg/engine/layout"
	"linie1/pkg/engine/tiles"
	"linie1/pkg/game/board"
	"linie1/pkg/game/deck"
	"linie1/pkg/game/icon"
)

// textureCacheCapacity bounds the number of uploaded tile textures. Two
// full catalogs (board size plus debug size) fit with headroom.
const textureCacheCapacity = 64

// New creates a new Ebiten renderer for the given board, catalog and draw
// pile. The starting hand is dealt from the pile.
func New(catalog *tiles.Catalog, grid *board.Grid, icons *icon.Cache, pile *deck.Deck, debugPanel bool) *EbitenRenderer {
	e := &EbitenRenderer{
		catalog:      catalog,
		grid:         grid,
		icons:        icons,
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		debugPanel:   debugPanel,
		faces:        map[float64]*text.GoTextFace{},
		textures:     cache.New[textureKey, *ebiten.Image](textureCacheCapacity),
	}
	e.spec = layout.Compute(layout.Native, layout.Size{Width: e.windowWidth, Height: e.windowHeight})

	if pile != nil {
		e.hand = pile.DealHand(layout.HandTileCount)
	}
	e.message = "Place a tile"
	return e
}

// SetMessage sets the message line shown under the hand panel
func (e *EbitenRenderer) SetMessage(msg string) {
	e.message = msg
}

// Init loads the UI font source and configures the window
func (e *EbitenRenderer) Init() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("loading UI font: %w", err)
	}
	e.sansSource = src

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Linie 1")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run enters the Ebiten main loop and blocks until the window closes
func (e *EbitenRenderer) Run() error {
	return ebiten.RunGame(e)
}

// Update advances game state once per tick (Ebiten interface). The board
// view is static; interaction belongs to the scene layer above this core.
func (e *EbitenRenderer) Update() error {
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface). A size
// change is the resize notification: it swaps in a freshly computed layout
// snapshot before the next draw.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.spec = layout.Compute(layout.Native, layout.Size{Width: outsideWidth, Height: outsideHeight})
	}
	return outsideWidth, outsideHeight
}
