// Package tiles tests corner-arc geometry: quarter-turn sweeps, endpoint
// placement on edge midpoints, and the per-type primitive tables.
package tiles

import (
	"math"
	"testing"
)

// compassPoint maps a compass angle on a circle to image coordinates
// (y grows downward).
func compassPoint(cx, cy, radius, degrees float64) (x, y float64) {
	rad := degrees * math.Pi / 180
	return cx + radius*math.Cos(rad), cy - radius*math.Sin(rad)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// Every corner arc must sweep exactly a quarter turn in the increasing-angle
// direction. A wrong angle ordering historically produced a 270-degree sweep
// for the NW and SW corners.
func TestCornerArcAngles_SweepIsQuarterTurn(t *testing.T) {
	for _, c := range []Corner{NorthEast, NorthWest, SouthEast, SouthWest} {
		start, stop := c.ArcAngles()
		if stop-start != 90 {
			t.Errorf("%s arc sweeps %v..%v (%v degrees), want exactly 90", c, start, stop, stop-start)
		}
	}
}

// The two arc endpoints, reconstructed from the bounding box center and the
// normalized angles, must land exactly on the corner's two edge midpoints.
func TestCornerArcAngles_EndpointsAreEdgeMidpoints(t *testing.T) {
	const size = 100.0
	for _, c := range []Corner{NorthEast, NorthWest, SouthEast, SouthWest} {
		cx, cy := c.Center(size)
		start, stop := c.ArcAngles()

		x0, y0 := compassPoint(cx, cy, size/2, start)
		x1, y1 := compassPoint(cx, cy, size/2, stop)

		e1, e2 := c.Edges()
		m1x, m1y := e1.EdgeMidpoint(size)
		m2x, m2y := e2.EdgeMidpoint(size)

		// Endpoint order along the arc is not specified; match as a set
		matchesForward := near(x0, m1x) && near(y0, m1y) && near(x1, m2x) && near(y1, m2y)
		matchesReverse := near(x0, m2x) && near(y0, m2y) && near(x1, m1x) && near(y1, m1y)
		if !matchesForward && !matchesReverse {
			t.Errorf("%s arc endpoints (%v,%v)..(%v,%v) do not match edge midpoints (%v,%v),(%v,%v)",
				c, x0, y0, x1, y1, m1x, m1y, m2x, m2y)
		}
	}
}

func TestCorner_OffsetSigns(t *testing.T) {
	cases := []struct {
		corner Corner
		sx, sy int
	}{
		{NorthEast, 1, -1},
		{NorthWest, -1, -1},
		{SouthEast, 1, 1},
		{SouthWest, -1, 1},
	}
	for _, c := range cases {
		sx, sy := c.corner.OffsetSign()
		if sx != c.sx || sy != c.sy {
			t.Errorf("%s offset sign = (%d,%d), want (%d,%d)", c.corner, sx, sy, c.sx, c.sy)
		}
	}
}

func TestCorner_CenterIsTileCorner(t *testing.T) {
	const size = 80.0
	cases := []struct {
		corner Corner
		x, y   float64
	}{
		{NorthEast, 80, 0},
		{NorthWest, 0, 0},
		{SouthEast, 80, 80},
		{SouthWest, 0, 80},
	}
	for _, c := range cases {
		x, y := c.corner.Center(size)
		if !near(x, c.x) || !near(y, c.y) {
			t.Errorf("%s center = (%v,%v), want (%v,%v)", c.corner, x, y, c.x, c.y)
		}
	}
}

func TestPrimitivesFor_KnownTypes(t *testing.T) {
	cases := []struct {
		name  string
		lines int
		arcs  int
	}{
		{"Straight", 1, 0},
		{"Curve", 0, 1},
		{"StraightLeftCurve", 1, 1},
		{"StraightRightCurve", 1, 1},
		{"DoubleCurveY", 0, 2},
		{"DiagonalCurve", 0, 2},
		{"Tree_JunctionTop", 1, 2},
		{"Tree_JunctionRight", 1, 2},
		{"Tree_Roundabout", 0, 4},
		{"Tree_Crossroad", 2, 0},
		{"Tree_StraightDiagonal1", 1, 2},
		{"Tree_StraightDiagonal2", 1, 2},
	}
	for _, c := range cases {
		prims, ok := PrimitivesFor(c.name)
		if !ok {
			t.Errorf("PrimitivesFor(%q) unknown, want known", c.name)
			continue
		}
		lines, arcs := 0, 0
		for _, p := range prims {
			switch p.Kind {
			case KindLine:
				lines++
			case KindArc:
				arcs++
			}
		}
		if lines != c.lines || arcs != c.arcs {
			t.Errorf("%s has %d lines, %d arcs, want %d lines, %d arcs", c.name, lines, arcs, c.lines, c.arcs)
		}
	}
}

func TestPrimitivesFor_RoundaboutCoversAllCorners(t *testing.T) {
	prims, ok := PrimitivesFor("Tree_Roundabout")
	if !ok {
		t.Fatal("Tree_Roundabout missing from primitive table")
	}
	seen := map[Corner]bool{}
	for _, p := range prims {
		if p.Kind == KindArc {
			seen[p.Corner] = true
		}
	}
	for _, c := range []Corner{NorthEast, NorthWest, SouthEast, SouthWest} {
		if !seen[c] {
			t.Errorf("Tree_Roundabout missing %s arc", c)
		}
	}
}

func TestPrimitivesFor_UnknownName(t *testing.T) {
	if _, ok := PrimitivesFor("UnknownModTile"); ok {
		t.Error("PrimitivesFor(\"UnknownModTile\") reported known")
	}
}
