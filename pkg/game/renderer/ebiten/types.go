// Package ebiten provides the Ebiten-based 2D graphical renderer for Linie 1.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/zyedidia/generic/cache"

	"linie1/pkg/engine/layout"
	"linie1/pkg/engine/tiles"
	"linie1/pkg/game/board"
	"linie1/pkg/game/icon"
)

// textureKey identifies one uploaded tile texture by type name and pixel size
type textureKey struct {
	name string
	size int
}

// EbitenRenderer is the Ebiten-based graphical renderer. It owns the layout
// snapshot for the current window size and the texture cache of uploaded
// tile icons; icon pixel data itself comes from the shared icon cache.
type EbitenRenderer struct {
	catalog *tiles.Catalog
	grid    *board.Grid
	icons   *icon.Cache

	// Current window size and its derived layout snapshot
	windowWidth  int
	windowHeight int
	spec         layout.Spec

	// Hand dealt from the draw pile, shown in the side panel
	hand []string

	// Message line under the hand panel
	message string

	// Whether the debug tile gallery replaces the hand panel
	debugPanel bool

	// Font source and cached faces for UI text
	sansSource *text.GoTextFaceSource
	faces      map[float64]*text.GoTextFace

	// Uploaded tile textures keyed by (type name, size)
	textures *cache.Cache[textureKey, *ebiten.Image]
}
