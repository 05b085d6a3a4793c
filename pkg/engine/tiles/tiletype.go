// Package tiles defines the rail-tile catalog: tile topologies, their
// track connections, and the line/arc primitives their icons are drawn from.
package tiles

import "sort"

// TileType describes one rail-tile topology. Instances are immutable after
// catalog construction; placed tiles reference them by pointer.
type TileType struct {
	// Name is the catalog key, e.g. "Straight" or "Tree_Roundabout"
	Name string

	// Connections maps each edge to the edges it connects to, both ways
	Connections map[Direction][]Direction

	// Swappable reports whether players may replace this tile once placed
	Swappable bool

	// DeckCount is the number of copies in the base draw pile
	DeckCount int
}

// newTileType builds a TileType with a two-way connection map from raw
// edge pairs.
func newTileType(name string, pairs [][2]Direction, swappable bool, deckCount int) *TileType {
	conns := map[Direction][]Direction{
		North: {}, East: {}, South: {}, West: {},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if !contains(conns[a], b) {
			conns[a] = append(conns[a], b)
		}
		if !contains(conns[b], a) {
			conns[b] = append(conns[b], a)
		}
	}
	for d := range conns {
		sort.Slice(conns[d], func(i, j int) bool { return conns[d][i] < conns[d][j] })
	}
	return &TileType{
		Name:        name,
		Connections: conns,
		Swappable:   swappable,
		DeckCount:   deckCount,
	}
}

// NewTileType builds a custom tile type from raw edge connection pairs.
// Mod tiles created this way can be added to a catalog with Register.
func NewTileType(name string, pairs [][2]Direction, swappable bool, deckCount int) *TileType {
	return newTileType(name, pairs, swappable, deckCount)
}

func contains(dirs []Direction, d Direction) bool {
	for _, x := range dirs {
		if x == d {
			return true
		}
	}
	return false
}

// ConnectsTo reports whether edge a connects to edge b on this tile type
// (orientation 0).
func (t *TileType) ConnectsTo(a, b Direction) bool {
	return contains(t.Connections[a], b)
}

// Catalog is the set of known tile types, keyed by name. It is supplied to
// renderers and boards as the source of truth for tile topologies; mod tiles
// missing from the catalog fall back to a placeholder render.
type Catalog struct {
	types map[string]*TileType
}

// tileRunOutPreventionScale inflates the historical per-type deck counts so
// long advanced games cannot exhaust the draw pile.
const tileRunOutPreventionScale = 10

// DefaultCatalog returns the standard Linie 1 tile catalog
func DefaultCatalog() *Catalog {
	c := &Catalog{types: map[string]*TileType{}}
	for _, t := range []*TileType{
		newTileType("Straight", [][2]Direction{{North, South}}, true, 21*tileRunOutPreventionScale),
		newTileType("Curve", [][2]Direction{{North, East}}, true, 20*tileRunOutPreventionScale),
		newTileType("StraightLeftCurve", [][2]Direction{{North, South}, {South, West}}, true, 10*tileRunOutPreventionScale),
		newTileType("StraightRightCurve", [][2]Direction{{North, South}, {South, East}}, true, 10*tileRunOutPreventionScale),
		newTileType("DoubleCurveY", [][2]Direction{{North, West}, {North, East}}, true, 10*tileRunOutPreventionScale),
		newTileType("DiagonalCurve", [][2]Direction{{South, West}, {North, East}}, true, 6*tileRunOutPreventionScale),
		newTileType("Tree_JunctionTop", [][2]Direction{{East, West}, {West, North}, {North, East}}, false, 6*tileRunOutPreventionScale),
		newTileType("Tree_JunctionRight", [][2]Direction{{East, West}, {North, East}, {South, East}}, false, 6*tileRunOutPreventionScale),
		newTileType("Tree_Roundabout", [][2]Direction{{West, North}, {North, East}, {East, South}, {South, West}}, false, 4*tileRunOutPreventionScale),
		newTileType("Tree_Crossroad", [][2]Direction{{North, South}, {East, West}}, false, 4*tileRunOutPreventionScale),
		newTileType("Tree_StraightDiagonal1", [][2]Direction{{North, South}, {South, West}, {North, East}}, false, 2*tileRunOutPreventionScale),
		newTileType("Tree_StraightDiagonal2", [][2]Direction{{North, South}, {North, West}, {South, East}}, false, 2*tileRunOutPreventionScale),
	} {
		c.types[t.Name] = t
	}
	return c
}

// Get returns the tile type with the given name, or nil and false if the
// name is unknown
func (c *Catalog) Get(name string) (*TileType, bool) {
	t, ok := c.types[name]
	return t, ok
}

// Register adds a tile type to the catalog, replacing any existing type of
// the same name
func (c *Catalog) Register(t *TileType) {
	c.types[t.Name] = t
}

// Names returns all catalog type names in sorted order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of tile types in the catalog
func (c *Catalog) Len() int {
	return len(c.types)
}
