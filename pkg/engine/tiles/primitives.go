package tiles

// Corner identifies one of the four tile corners used as the center of a
// quarter-circle arc's bounding box.
type Corner int

// Corner constants
const (
	NorthEast Corner = iota
	NorthWest
	SouthEast
	SouthWest
)

// String returns the string representation of a corner
func (c Corner) String() string {
	switch c {
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	default:
		return "?"
	}
}

// Edges returns the two tile edges this corner joins. A quarter-circle arc
// anchored at the corner connects the midpoints of these two edges.
func (c Corner) Edges() (Direction, Direction) {
	switch c {
	case NorthEast:
		return North, East
	case NorthWest:
		return North, West
	case SouthEast:
		return East, South
	default:
		return South, West
	}
}

// OffsetSign returns the sign of the corner's offset from the tile center,
// in tile-local coordinates (y grows downward). The arc's bounding square of
// side size is centered on the corner, i.e. shifted by (sx*size/2, sy*size/2)
// from the tile center.
func (c Corner) OffsetSign() (sx, sy int) {
	switch c {
	case NorthEast:
		return 1, -1
	case NorthWest:
		return -1, -1
	case SouthEast:
		return 1, 1
	default:
		return -1, 1
	}
}

// Center returns the corner's position on a size×size tile in tile-local
// coordinates. This is the center of the arc's bounding square.
func (c Corner) Center(size float64) (x, y float64) {
	sx, sy := c.OffsetSign()
	half := size / 2
	return half + float64(sx)*half, half + float64(sy)*half
}

// ArcAngles returns the normalized start and stop compass angles of the
// quarter-circle arc anchored at this corner, with stop == start+90 so the
// sweep is always exactly 90 degrees counter-clockwise and never wraps the
// rest of the circle.
//
// Seen from the corner, the arc endpoint lying on one edge is in the
// direction opposite the corner's other edge: for NE the endpoint on the N
// edge is west of the corner (180) and the endpoint on the E edge is south
// of it (270), so the NE arc sweeps 180..270. For SW the raw endpoint angles
// are E=0 and N=90, already ordered, giving 0..90 rather than a 270-degree
// sweep from 90 back around to 0.
func (c Corner) ArcAngles() (start, stop float64) {
	e1, e2 := c.Edges()
	a1 := e2.Opposite().CompassAngle()
	a2 := e1.Opposite().CompassAngle()

	if mod360(a2-a1) == 90 {
		return a1, a1 + 90
	}
	return a2, a2 + 90
}

func mod360(a float64) float64 {
	for a < 0 {
		a += 360
	}
	for a >= 360 {
		a -= 360
	}
	return a
}

// PrimitiveKind distinguishes the two draw primitive variants
type PrimitiveKind int

// Primitive kinds
const (
	KindLine PrimitiveKind = iota
	KindArc
)

// Primitive is one draw instruction of a tile icon, in tile-local
// coordinates. A line runs between two edge midpoints; an arc is the
// quarter circle anchored at a corner, connecting that corner's two edge
// midpoints.
type Primitive struct {
	Kind   PrimitiveKind
	EdgeA  Direction // line only
	EdgeB  Direction // line only
	Corner Corner    // arc only
}

// LineBetween returns a line primitive between two edge midpoints
func LineBetween(a, b Direction) Primitive {
	return Primitive{Kind: KindLine, EdgeA: a, EdgeB: b}
}

// ArcAt returns a quarter-circle arc primitive anchored at the given corner
func ArcAt(c Corner) Primitive {
	return Primitive{Kind: KindArc, Corner: c}
}

// primitiveTable maps each known tile type name to its fixed draw list.
// One generic draw loop interprets these; no per-type drawing code exists.
var primitiveTable = map[string][]Primitive{
	"Straight": {LineBetween(North, South)},
	"Curve":    {ArcAt(NorthEast)},
	"StraightLeftCurve": {
		LineBetween(North, South),
		ArcAt(SouthWest),
	},
	"StraightRightCurve": {
		LineBetween(North, South),
		ArcAt(SouthEast),
	},
	"DoubleCurveY": {
		ArcAt(NorthWest),
		ArcAt(NorthEast),
	},
	"DiagonalCurve": {
		ArcAt(SouthWest),
		ArcAt(NorthEast),
	},
	"Tree_JunctionTop": {
		LineBetween(West, East),
		ArcAt(NorthWest),
		ArcAt(NorthEast),
	},
	"Tree_JunctionRight": {
		LineBetween(West, East),
		ArcAt(NorthEast),
		ArcAt(SouthEast),
	},
	"Tree_Roundabout": {
		ArcAt(NorthWest),
		ArcAt(NorthEast),
		ArcAt(SouthEast),
		ArcAt(SouthWest),
	},
	"Tree_Crossroad": {
		LineBetween(North, South),
		LineBetween(West, East),
	},
	"Tree_StraightDiagonal1": {
		LineBetween(North, South),
		ArcAt(SouthWest),
		ArcAt(NorthEast),
	},
	"Tree_StraightDiagonal2": {
		LineBetween(North, South),
		ArcAt(NorthWest),
		ArcAt(SouthEast),
	},
}

// PrimitivesFor returns the draw list for a tile type name. The second
// return value is false for unknown names (e.g. mod tiles), which callers
// render with a fallback placeholder instead of treating as an error.
func PrimitivesFor(name string) ([]Primitive, bool) {
	prims, ok := primitiveTable[name]
	return prims, ok
}
