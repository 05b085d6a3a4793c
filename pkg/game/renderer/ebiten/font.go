// Package ebiten provides the Ebiten-based 2D graphical renderer for Linie 1.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// uiFontSize returns the standard UI font size scaled to the current layout
func (e *EbitenRenderer) uiFontSize() float64 {
	size := baseFontSize * e.spec.Scale
	if size < 10 {
		size = 10
	}
	return size
}

// titleFontSizeScaled returns the section title font size scaled to the
// current layout
func (e *EbitenRenderer) titleFontSizeScaled() float64 {
	size := titleFontSize * e.spec.Scale
	if size < 12 {
		size = 12
	}
	return size
}

// face returns a cached font face for the given size, creating it on first
// request. Faces accumulate per size; a handful of sizes exist per scale.
func (e *EbitenRenderer) face(size float64) *text.GoTextFace {
	if f, ok := e.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: e.sansSource, Size: size}
	e.faces[size] = f
	return f
}
