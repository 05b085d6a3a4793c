package tiles

// Direction represents a cardinal direction / tile edge
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Rotate returns the direction turned clockwise by the given number of
// quarter turns. Negative values turn counter-clockwise.
func (d Direction) Rotate(quarterTurns int) Direction {
	q := quarterTurns % 4
	if q < 0 {
		q += 4
	}
	return Direction((int(d) + q) % 4)
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// CompassAngle returns the direction's angle in degrees using the compass
// convention N=90, E=0, S=270, W=180, with angles increasing counter-clockwise.
func (d Direction) CompassAngle() float64 {
	switch d {
	case North:
		return 90
	case East:
		return 0
	case South:
		return 270
	case West:
		return 180
	default:
		return 0
	}
}

// EdgeMidpoint returns the midpoint of this edge of a size×size tile in
// tile-local coordinates (origin top-left, y grows downward).
func (d Direction) EdgeMidpoint(size float64) (x, y float64) {
	half := size / 2
	switch d {
	case North:
		return half, 0
	case East:
		return size, half
	case South:
		return half, size
	case West:
		return 0, half
	default:
		return half, half
	}
}
