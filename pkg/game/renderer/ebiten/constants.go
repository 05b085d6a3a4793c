// Package ebiten provides the Ebiten-based 2D graphical renderer for Linie 1.
package ebiten

import "image/color"

// Color palette, carried over from the resolutions the board art was
// designed against
var (
	colorBackground   = color.RGBA{200, 200, 220, 255} // Light blue-gray window fill
	colorBoardBg      = color.RGBA{180, 180, 180, 255} // Board backdrop
	colorGrid         = color.RGBA{100, 100, 100, 255} // Grid lines
	colorPanelBg      = color.RGBA{160, 160, 190, 255} // Side panel backdrop
	colorText         = color.RGBA{10, 10, 50, 255}    // UI text, dark navy
	colorTitleText    = color.RGBA{0, 80, 0, 255}      // Section titles, dark green
	colorButtonBg     = color.RGBA{180, 180, 180, 255} // Button background
	colorButtonText   = color.RGBA{0, 0, 0, 255}       // Button label
	colorTerminalMark = color.RGBA{255, 0, 0, 255}     // Terminal cell marker
	colorHandSlotBg   = color.RGBA{220, 220, 235, 255} // Empty hand slot
)

// Window defaults before the first resize event
const (
	defaultWindowWidth  = 1366
	defaultWindowHeight = 768
)

// UI font sizes in points at scale 1.0
const (
	baseFontSize  = 24.0
	titleFontSize = 28.0
)
