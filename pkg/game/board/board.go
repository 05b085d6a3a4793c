// Package board holds the rail board: a grid of placed tiles with a fixed
// border of terminal positions around the playable area.
package board

import (
	"fmt"

	"linie1/pkg/engine/tiles"
)

// Default board dimensions, including the non-playable border
const (
	DefaultRows = 14
	DefaultCols = 14
)

// Playable area bounds (inclusive) on the default board
const (
	PlayableRowMin = 1
	PlayableRowMax = 12
	PlayableColMin = 1
	PlayableColMax = 12
)

// Grid represents the rail board with encapsulated tile storage
type Grid struct {
	cells [][]*tiles.PlacedTile
	rows  int
	cols  int
}

// NewGrid creates an empty grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	cells := make([][]*tiles.PlacedTile, rows)
	for r := range cells {
		cells[r] = make([]*tiles.PlacedTile, cols)
	}
	return &Grid{cells: cells, rows: rows, cols: cols}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsPlayablePosition checks if a position is within the playable area,
// excluding the border ring reserved for terminals
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= PlayableRowMin && row <= PlayableRowMax &&
		col >= PlayableColMin && col <= PlayableColMax &&
		g.IsValidPosition(row, col)
}

// At returns the placed tile at the given position, or nil if the position
// is empty or out of bounds
func (g *Grid) At(row, col int) *tiles.PlacedTile {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// Place puts a tile on the board. Placing on an occupied non-swappable cell
// or outside the grid is rejected.
func (g *Grid) Place(row, col int, tile *tiles.PlacedTile) error {
	if !g.IsValidPosition(row, col) {
		return fmt.Errorf("position (%d,%d) outside %dx%d board", row, col, g.rows, g.cols)
	}
	if existing := g.cells[row][col]; existing != nil {
		if existing.IsTerminal {
			return fmt.Errorf("position (%d,%d) is a terminal", row, col)
		}
		if !existing.Type.Swappable {
			return fmt.Errorf("tile %s at (%d,%d) is not swappable", existing.Type.Name, row, col)
		}
	}
	g.cells[row][col] = tile
	return nil
}

// Remove clears the tile at the given position and returns it
func (g *Grid) Remove(row, col int) *tiles.PlacedTile {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	t := g.cells[row][col]
	g.cells[row][col] = nil
	return t
}

// ForEachTile calls fn for every occupied cell, in row-major order
func (g *Grid) ForEachTile(fn func(row, col int, tile *tiles.PlacedTile)) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != nil {
				fn(r, c, g.cells[r][c])
			}
		}
	}
}
