// Package layout derives every on-screen UI rectangle from the native design
// resolution and the current window size. All absolute pixel constants were
// authored against 1920x1080; a single scale factor maps them to the current
// resolution. Compute is a pure function returning an immutable snapshot, so
// resize handling is a full recompute with no partially-initialized state.
package layout

// Resolution is the fixed reference resolution layout constants were
// authored against.
type Resolution struct {
	Width  int
	Height int
}

// Size is a window size in pixels
type Size struct {
	Width  int
	Height int
}

// Native is the design resolution for all layout constants
var Native = Resolution{Width: 1920, Height: 1080}

// Visible board dimensions in tiles
const (
	VisibleGridRows = 12
	VisibleGridCols = 12
)

// HandTileCount is the number of tile slots in the hand panel
const HandTileCount = 5

// Spec is one immutable snapshot of every derived geometry value for a
// (native resolution, screen size) pair. Fields are final; a resize produces
// a fresh snapshot via Compute.
type Spec struct {
	ScreenWidth  int
	ScreenHeight int
	Scale        float64

	// Board
	BoardAreaHeight int
	TileSize        int
	BoardDrawWidth  int
	BoardDrawHeight int
	BoardXOffset    int
	BoardYOffset    int

	// Side panel
	PanelMarginLeft int
	PanelX          int
	PanelY          int
	PanelWidth      int
	PanelHeight     int

	// Panel text rows
	TextX      int
	LineHeight int
	TurnInfoY  int
	RouteInfoY int

	// Hand panel
	HandTileSize int
	HandSpacing  int
	HandTitleY   int
	HandAreaX    int
	HandAreaY    int

	// Message rows
	SelectedTileY int
	MessageY      int

	// Buttons
	ButtonWidth   int
	ButtonHeight  int
	ButtonSpacing int
	ButtonMarginX int
	ButtonMarginY int

	// Debug panel
	DebugButtonWidth  int
	DebugButtonHeight int
	DebugButtonX      int
	DebugButtonY      int
	DebugTileSize     int
	DebugTileSpacing  int
	DebugTilesPerRow  int
	DebugPanelY       int
}

// Compute derives a full layout snapshot for the given screen size. Screen
// dimensions are clamped to at least 1 pixel per axis so a degenerate resize
// event cannot produce an all-zero layout.
func Compute(native Resolution, screen Size) Spec {
	if screen.Width < 1 {
		screen.Width = 1
	}
	if screen.Height < 1 {
		screen.Height = 1
	}

	scaleW := float64(screen.Width) / float64(native.Width)
	scaleH := float64(screen.Height) / float64(native.Height)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	s := Spec{
		ScreenWidth:  screen.Width,
		ScreenHeight: screen.Height,
		Scale:        scale,
	}

	// Board and grid. TileSize is floored, not rounded, so every tile
	// boundary lands on an integer pixel and adjacent tiles render without
	// seams.
	s.BoardAreaHeight = px(972, scale)
	s.TileSize = s.BoardAreaHeight / VisibleGridRows
	s.BoardDrawWidth = s.TileSize * VisibleGridCols
	s.BoardDrawHeight = s.TileSize * VisibleGridRows
	s.BoardXOffset = px(77, scale)
	s.BoardYOffset = (screen.Height - s.BoardDrawHeight) / 2

	// Side panel, immediately right of the board
	s.PanelMarginLeft = px(50, scale)
	s.PanelX = s.BoardXOffset + s.BoardDrawWidth + s.PanelMarginLeft
	s.PanelY = s.BoardYOffset
	s.PanelWidth = screen.Width - s.PanelX - px(40, scale)
	s.PanelHeight = s.BoardDrawHeight

	// Panel text rows, each positioned from the previous one
	s.TextX = s.PanelX + px(15, scale)
	s.LineHeight = px(28, scale)
	s.TurnInfoY = s.PanelY + px(15, scale)
	s.RouteInfoY = s.TurnInfoY + s.LineHeight

	// Hand panel
	s.HandTileSize = minInt(int(float64(s.TileSize)*0.8), int(float64(s.PanelWidth)*0.7))
	s.HandSpacing = px(15, scale)
	s.HandTitleY = s.RouteInfoY + s.LineHeight*2
	s.HandAreaX = s.PanelX + px(15, scale)
	s.HandAreaY = s.HandTitleY + s.LineHeight

	// Message rows, below the hand slots
	s.SelectedTileY = s.HandAreaY + HandTileCount*(s.HandTileSize+s.HandSpacing) + px(20, scale)
	s.MessageY = s.SelectedTileY + s.LineHeight

	// Buttons
	s.ButtonWidth = px(120, scale)
	s.ButtonHeight = px(40, scale)
	s.ButtonSpacing = px(8, scale)
	s.ButtonMarginX = px(10, scale)
	s.ButtonMarginY = px(10, scale)

	// Debug panel
	s.DebugButtonWidth = px(150, scale)
	s.DebugButtonHeight = px(30, scale)
	s.DebugButtonX = s.PanelX + (s.PanelWidth-s.DebugButtonWidth)/2
	s.DebugButtonY = s.PanelY + s.PanelHeight - s.DebugButtonHeight - px(97, scale)
	s.DebugTileSize = s.TileSize / 2
	s.DebugTileSpacing = px(5, scale)
	s.DebugTilesPerRow = 4
	s.DebugPanelY = s.HandTitleY + s.LineHeight

	return s
}

// px scales a native-resolution pixel constant, truncating toward zero the
// way every historical layout value did.
func px(native int, scale float64) int {
	return int(float64(native) * scale)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
