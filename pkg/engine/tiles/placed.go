package tiles

import "fmt"

// PlacedTile is a tile type placed on the board at an orientation.
// Orientation is degrees clockwise, always a multiple of 90, stored mod 360.
type PlacedTile struct {
	Type        *TileType
	Orientation int
	HasStopSign bool
	IsTerminal  bool
}

// NewPlacedTile places a tile type at the given orientation
func NewPlacedTile(t *TileType, orientation int) *PlacedTile {
	o := orientation % 360
	if o < 0 {
		o += 360
	}
	return &PlacedTile{Type: t, Orientation: o}
}

// Connections returns the tile's connection map with the placement
// orientation applied.
func (p *PlacedTile) Connections() map[Direction][]Direction {
	q := p.Orientation / 90
	rotated := map[Direction][]Direction{}
	for from, tos := range p.Type.Connections {
		rf := from.Rotate(q)
		for _, to := range tos {
			rotated[rf] = append(rotated[rf], to.Rotate(q))
		}
	}
	return rotated
}

// ConnectsTo reports whether edge a connects to edge b with the placement
// orientation applied.
func (p *PlacedTile) ConnectsTo(a, b Direction) bool {
	q := p.Orientation / 90
	// Undo the placement rotation and ask the base type
	return p.Type.ConnectsTo(a.Rotate(-q), b.Rotate(-q))
}

// String returns a debug representation of the placed tile
func (p *PlacedTile) String() string {
	suffix := ""
	if p.IsTerminal {
		suffix += " Term"
	}
	if p.HasStopSign {
		suffix += " Stop"
	}
	return fmt.Sprintf("Placed(%s, %ddeg%s)", p.Type.Name, p.Orientation, suffix)
}
