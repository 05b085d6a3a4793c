// Package ebiten provides the Ebiten-based 2D graphical renderer for Linie 1.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
)

// drawText draws a UI string at (x, y) top-left with the given color.
// Static labels are passed through gettext first; untranslated strings come
// back unchanged.
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	translated := gotext.Get(str)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, translated, face, op)
}

// drawTextCentered draws a UI string centered on (x, y)
func (e *EbitenRenderer) drawTextCentered(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	translated := gotext.Get(str)
	w, h := text.Measure(translated, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)-w/2, float64(y)-h/2)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, translated, face, op)
}

// textWidth returns the width of a string in pixels with the given face
func (e *EbitenRenderer) textWidth(str string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(gotext.Get(str), face, 0)
	return w
}
