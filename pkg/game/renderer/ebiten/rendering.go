// Package ebiten provides the Ebiten-based 2D graphical renderer for Linie 1.
package ebiten

import (
	"log"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"linie1/pkg/engine/layout"
	"linie1/pkg/game/board"
)

// Draw renders the board view to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	if e.sansSource == nil {
		return
	}

	screen.Fill(colorBackground)

	e.drawBoard(screen)
	e.drawTerminals(screen)
	e.drawPanel(screen)
	if e.debugPanel {
		e.drawDebugGallery(screen)
	} else {
		e.drawHand(screen)
	}
	e.drawDebugButton(screen)
	e.drawMessages(screen)
}

// drawBoard draws the board backdrop, the placed tiles of the visible grid
// window, and the grid lines on top.
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image) {
	spec := e.spec

	vector.DrawFilledRect(screen,
		float32(spec.BoardXOffset), float32(spec.BoardYOffset),
		float32(spec.BoardDrawWidth), float32(spec.BoardDrawHeight),
		colorBoardBg, false)

	for row := board.PlayableRowMin; row <= board.PlayableRowMax; row++ {
		for col := board.PlayableColMin; col <= board.PlayableColMax; col++ {
			tile := e.grid.At(row, col)
			if tile == nil {
				continue
			}
			x, y, visible := e.tileScreenPos(row, col)
			if !visible {
				continue
			}
			tex := e.tileTexture(tile.Type.Name, spec.TileSize)
			if tex == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			e.orientTile(op, tile.Orientation, spec.TileSize)
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(tex, op)
		}
	}

	for i := 0; i <= layout.VisibleGridRows; i++ {
		y := float32(spec.BoardYOffset + i*spec.TileSize)
		vector.StrokeLine(screen,
			float32(spec.BoardXOffset), y,
			float32(spec.BoardXOffset+spec.BoardDrawWidth), y,
			1, colorGrid, false)
	}
	for i := 0; i <= layout.VisibleGridCols; i++ {
		x := float32(spec.BoardXOffset + i*spec.TileSize)
		vector.StrokeLine(screen,
			x, float32(spec.BoardYOffset),
			x, float32(spec.BoardYOffset+spec.BoardDrawHeight),
			1, colorGrid, false)
	}
}

// drawTerminals marks both ends of every tram line with a numbered red
// marker in the border ring just outside the visible grid window.
func (e *EbitenRenderer) drawTerminals(screen *ebiten.Image) {
	spec := e.spec
	face := e.face(e.uiFontSize())
	markerSize := spec.TileSize / 3

	for _, line := range board.Lines() {
		r1, c1, r2, c2, ok := board.TerminalCoords(line)
		if !ok {
			continue
		}
		for _, end := range [][2]int{{r1, c1}, {r2, c2}} {
			// Border cells sit one step outside the playable window
			x := spec.BoardXOffset + (end[1]-board.PlayableColMin)*spec.TileSize
			y := spec.BoardYOffset + (end[0]-board.PlayableRowMin)*spec.TileSize
			cx := x + spec.TileSize/2
			cy := y + spec.TileSize/2

			vector.DrawFilledRect(screen,
				float32(cx-markerSize/2), float32(cy-markerSize/2),
				float32(markerSize), float32(markerSize),
				colorTerminalMark, false)
			e.drawTextCentered(screen, strconv.Itoa(line), cx, cy, colorButtonText, face)
		}
	}
}

// drawPanel draws the side panel backdrop and its header rows
func (e *EbitenRenderer) drawPanel(screen *ebiten.Image) {
	spec := e.spec

	vector.DrawFilledRect(screen,
		float32(spec.PanelX), float32(spec.PanelY),
		float32(spec.PanelWidth), float32(spec.PanelHeight),
		colorPanelBg, false)

	face := e.face(e.uiFontSize())
	e.drawText(screen, "Linie 1", spec.TextX, spec.TurnInfoY, colorText, e.face(e.titleFontSizeScaled()))
	e.drawText(screen, "Route: build your line", spec.TextX, spec.RouteInfoY, colorText, face)
}

// drawHand draws the hand panel title and one icon per hand slot
func (e *EbitenRenderer) drawHand(screen *ebiten.Image) {
	spec := e.spec
	face := e.face(e.uiFontSize())

	e.drawText(screen, "Your Hand", spec.TextX, spec.HandTitleY, colorTitleText, face)

	for i := 0; i < len(e.hand) && i < layout.HandTileCount; i++ {
		y := spec.HandAreaY + i*(spec.HandTileSize+spec.HandSpacing)
		vector.DrawFilledRect(screen,
			float32(spec.HandAreaX), float32(y),
			float32(spec.HandTileSize), float32(spec.HandTileSize),
			colorHandSlotBg, false)
		if tex := e.tileTexture(e.hand[i], spec.HandTileSize); tex != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(spec.HandAreaX), float64(y))
			screen.DrawImage(tex, op)
		}
	}
}

// drawDebugGallery draws every catalog tile type at half tile size in a
// fixed-column grid, in place of the hand panel.
func (e *EbitenRenderer) drawDebugGallery(screen *ebiten.Image) {
	spec := e.spec
	face := e.face(e.uiFontSize())

	e.drawText(screen, "All Tiles", spec.TextX, spec.HandTitleY, colorTitleText, face)

	names := e.catalog.Names()
	step := spec.DebugTileSize + spec.DebugTileSpacing
	for i, name := range names {
		row := i / spec.DebugTilesPerRow
		col := i % spec.DebugTilesPerRow
		x := spec.HandAreaX + col*step
		y := spec.DebugPanelY + row*step
		if tex := e.tileTexture(name, spec.DebugTileSize); tex != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(tex, op)
		}
	}
}

// drawDebugButton draws the debug gallery toggle button
func (e *EbitenRenderer) drawDebugButton(screen *ebiten.Image) {
	spec := e.spec

	vector.DrawFilledRect(screen,
		float32(spec.DebugButtonX), float32(spec.DebugButtonY),
		float32(spec.DebugButtonWidth), float32(spec.DebugButtonHeight),
		colorButtonBg, false)
	e.drawTextCentered(screen, "Debug Tiles",
		spec.DebugButtonX+spec.DebugButtonWidth/2,
		spec.DebugButtonY+spec.DebugButtonHeight/2,
		colorButtonText, e.face(e.uiFontSize()))
}

// drawMessages draws the selected-tile and message rows under the hand area
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image) {
	spec := e.spec
	face := e.face(e.uiFontSize())

	e.drawText(screen, "Selected: none", spec.TextX, spec.SelectedTileY, colorText, face)
	if e.message != "" {
		e.drawText(screen, e.message, spec.TextX, spec.MessageY, colorText, face)
	}
}

// tileTexture returns the uploaded texture for a tile type at the given
// size, rendering and uploading it on first use. Render failures are logged
// and the tile skipped.
func (e *EbitenRenderer) tileTexture(name string, size int) *ebiten.Image {
	key := textureKey{name: name, size: size}
	if tex, ok := e.textures.Get(key); ok {
		return tex
	}

	img, err := e.icons.Get(name, size)
	if err != nil {
		log.Printf("rendering tile icon %q at %d: %v", name, size, err)
		return nil
	}
	tex := ebiten.NewImageFromImage(img)
	e.textures.Put(key, tex)
	return tex
}

// orientTile rotates a tile texture around its center by the placement
// orientation (degrees clockwise).
func (e *EbitenRenderer) orientTile(op *ebiten.DrawImageOptions, orientation, size int) {
	if orientation == 0 {
		return
	}
	half := float64(size) / 2
	op.GeoM.Translate(-half, -half)
	op.GeoM.Rotate(float64(orientation) * math.Pi / 180)
	op.GeoM.Translate(half, half)
}

// tileScreenPos maps a board position to screen pixels, reporting whether
// the position is inside the visible grid window (the playable area).
func (e *EbitenRenderer) tileScreenPos(row, col int) (x, y int, visible bool) {
	spec := e.spec
	vr := row - board.PlayableRowMin
	vc := col - board.PlayableColMin
	if vr < 0 || vr >= layout.VisibleGridRows || vc < 0 || vc >= layout.VisibleGridCols {
		return 0, 0, false
	}
	return spec.BoardXOffset + vc*spec.TileSize, spec.BoardYOffset + vr*spec.TileSize, true
}
