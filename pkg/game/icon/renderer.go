// Package icon renders rail-tile topologies to square RGBA images built from
// straight track segments and quarter-circle corner arcs. Rendering is pure
// CPU rasterization so icons can be generated, cached and inspected without a
// window or GPU; the graphical shell uploads them as textures afterwards.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"linie1/pkg/engine/tiles"
	"linie1/pkg/game/fonts"
)

// TrackWidthRatio is the stroke width of track art relative to tile size
const TrackWidthRatio = 0.1

// fallbackLabelSize is the font size of the placeholder name label
const fallbackLabelSize = 12

var (
	colorTrack = color.RGBA{50, 250, 50, 255}
	colorGrid  = color.RGBA{100, 100, 100, 255}
)

// kappa is the cubic Bezier control distance producing an endpoint-exact
// quarter circle of unit radius.
const kappa = 0.5522847498307936

// Renderer draws tile icons. It holds no per-call state beyond the shared
// font cache, so a single instance is safely re-entrant.
type Renderer struct {
	fonts *fonts.Cache
}

// New returns a tile icon renderer using the given font cache for
// placeholder labels
func New(fc *fonts.Cache) *Renderer {
	return &Renderer{fonts: fc}
}

// StrokeWidth returns the track stroke width for a tile of the given size
func StrokeWidth(size int) int {
	w := int(math.Round(float64(size) * TrackWidthRatio))
	if w < 2 {
		w = 2
	}
	return w
}

// Render draws the icon for the named tile type as a transparent-background
// square image of exactly size×size pixels. Unknown type names are not an
// error: they produce a placeholder (border plus centered name label) so mod
// tiles without art still show up on the board. A non-positive size is the
// caller's bug and is rejected.
func (r *Renderer) Render(typeName string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("tile icon size must be positive, got %d", size)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))

	prims, ok := tiles.PrimitivesFor(typeName)
	if !ok {
		r.renderPlaceholder(img, typeName, size)
		return img, nil
	}

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	stroker := rasterx.NewStroker(size, size, scanner)
	stroker.SetColor(colorTrack)
	stroker.SetStroke(
		fixed.I(StrokeWidth(size)), fixed.I(4*StrokeWidth(size)),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round)

	fsize := float64(size)
	for _, p := range prims {
		switch p.Kind {
		case tiles.KindLine:
			ax, ay := p.EdgeA.EdgeMidpoint(fsize)
			bx, by := p.EdgeB.EdgeMidpoint(fsize)
			stroker.Start(fixedPoint(ax, ay))
			stroker.Line(fixedPoint(bx, by))
			stroker.Stop(false)
		case tiles.KindArc:
			strokeCornerArc(stroker, p.Corner, fsize)
		}
	}
	stroker.Draw()

	return img, nil
}

// strokeCornerArc adds the quarter-circle arc anchored at the given corner
// to the path. The arc's circle is centered on the corner with radius
// size/2, so its two endpoints land exactly on the corner's two edge
// midpoints; it is emitted as a single cubic Bezier, which is endpoint-exact
// and within a fraction of a pixel of the true circle everywhere else.
func strokeCornerArc(stroker *rasterx.Stroker, corner tiles.Corner, size float64) {
	cx, cy := corner.Center(size)
	radius := size / 2
	start, stop := corner.ArcAngles()

	x0, y0 := arcPoint(cx, cy, radius, start)
	x1, y1 := arcPoint(cx, cy, radius, stop)

	// Control points sit along the tangents of the increasing-angle
	// direction at each endpoint.
	k := kappa * radius
	t0x, t0y := arcTangent(start)
	t1x, t1y := arcTangent(stop)

	stroker.Start(fixedPoint(x0, y0))
	stroker.CubeBezier(
		fixedPoint(x0+k*t0x, y0+k*t0y),
		fixedPoint(x1-k*t1x, y1-k*t1y),
		fixedPoint(x1, y1))
	stroker.Stop(false)
}

// arcPoint maps a compass angle on a circle to image coordinates. Compass
// angles increase counter-clockwise with y growing upward; image y grows
// downward, hence the negated sine.
func arcPoint(cx, cy, radius, degrees float64) (x, y float64) {
	rad := degrees * math.Pi / 180
	return cx + radius*math.Cos(rad), cy - radius*math.Sin(rad)
}

// arcTangent returns the unit tangent, in image coordinates, of the
// increasing-compass-angle direction at the given angle.
func arcTangent(degrees float64) (tx, ty float64) {
	rad := degrees * math.Pi / 180
	return -math.Sin(rad), -math.Cos(rad)
}

// renderPlaceholder draws the unknown-type fallback: a one-pixel border
// rectangle and the type name centered in the tile.
func (r *Renderer) renderPlaceholder(img *image.RGBA, typeName string, size int) {
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	stroker := rasterx.NewStroker(size, size, scanner)
	stroker.SetColor(colorGrid)
	stroker.SetStroke(
		fixed.I(1), fixed.I(4),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Miter)

	// Inset by half the stroke so the border is not clipped at the bounds
	s := float64(size)
	stroker.Start(fixedPoint(0.5, 0.5))
	stroker.Line(fixedPoint(s-0.5, 0.5))
	stroker.Line(fixedPoint(s-0.5, s-0.5))
	stroker.Line(fixedPoint(0.5, s-0.5))
	stroker.Stop(true)
	stroker.Draw()

	r.fonts.Draw(img, typeName, size/2, size/2, colorTrack, fallbackLabelSize, true, true)
}

func fixedPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}
}
