package board

import (
	"fmt"

	"linie1/pkg/engine/tiles"
)

// terminalEnd is one curve tile of a terminal pair on the board border
type terminalEnd struct {
	row         int
	col         int
	orientation int
}

// terminalLayout maps each tram line to its two terminal pairs on the
// default 14x14 board. Each end of a line occupies two adjacent border
// cells holding curve tiles angled toward the playable area.
var terminalLayout = map[int][2][2]terminalEnd{
	1: {
		{{6, 0, 90}, {7, 0, 0}},
		{{2, 13, 180}, {3, 13, 270}},
	},
	2: {
		{{10, 0, 90}, {11, 0, 0}},
		{{6, 13, 180}, {7, 13, 270}},
	},
	3: {
		{{2, 0, 90}, {3, 0, 0}},
		{{10, 13, 180}, {11, 13, 270}},
	},
	4: {
		{{0, 6, 90}, {0, 7, 180}},
		{{13, 10, 0}, {13, 11, 270}},
	},
	5: {
		{{0, 2, 90}, {0, 3, 180}},
		{{13, 6, 0}, {13, 7, 270}},
	},
	6: {
		{{0, 10, 90}, {0, 11, 180}},
		{{13, 2, 0}, {13, 3, 270}},
	},
}

// Lines returns the tram line numbers that have terminals on this board
func Lines() []int {
	return []int{1, 2, 3, 4, 5, 6}
}

// TerminalCoords returns the representative coordinate of each end of the
// given line, or false for an unknown line
func TerminalCoords(line int) (end1Row, end1Col, end2Row, end2Col int, ok bool) {
	ends, found := terminalLayout[line]
	if !found {
		return 0, 0, 0, 0, false
	}
	return ends[0][0].row, ends[0][0].col, ends[1][0].row, ends[1][0].col, true
}

// SetupTerminals places the terminal curve tiles for all six tram lines on
// the board border. The catalog must contain the Curve type.
func (g *Grid) SetupTerminals(catalog *tiles.Catalog) error {
	curve, ok := catalog.Get("Curve")
	if !ok {
		return fmt.Errorf("catalog has no Curve tile type for terminals")
	}

	for line, ends := range terminalLayout {
		for _, end := range ends {
			for _, cell := range end {
				if !g.IsValidPosition(cell.row, cell.col) {
					return fmt.Errorf("terminal for line %d at (%d,%d) outside board", line, cell.row, cell.col)
				}
				t := tiles.NewPlacedTile(curve, cell.orientation)
				t.IsTerminal = true
				g.cells[cell.row][cell.col] = t
			}
		}
	}
	return nil
}
