// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"linie1/pkg/engine/terminal"
	"linie1/pkg/engine/tiles"
	"linie1/pkg/game/board"
)

// tileSymbols maps tile type names to a single-rune topology sketch.
// Orientation is not reflected; the dump answers "what sits where", not
// "which way does it face".
var tileSymbols = map[string]rune{
	"Straight":               '│',
	"Curve":                  '╰',
	"StraightLeftCurve":      '┤',
	"StraightRightCurve":     '├',
	"DoubleCurveY":           '┴',
	"DiagonalCurve":          '╳',
	"Tree_JunctionTop":       '┬',
	"Tree_JunctionRight":     '┼',
	"Tree_Roundabout":        '○',
	"Tree_Crossroad":         '┼',
	"Tree_StraightDiagonal1": '╪',
	"Tree_StraightDiagonal2": '╪',
}

// tileSymbol returns the dump rune for a placed tile
func tileSymbol(t *tiles.PlacedTile) rune {
	if t == nil {
		return '.'
	}
	if sym, ok := tileSymbols[t.Type.Name]; ok {
		return sym
	}
	// Unknown mod tile
	return '?'
}

// BoardDump renders the board as a plain-text grid, one rune per cell
func BoardDump(g *board.Grid) string {
	var sb strings.Builder
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			sb.WriteRune(tileSymbol(g.At(row, col)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrintBoard writes a colored board dump to stdout: terminals red, track
// green, empty cells gray. Falls back to a compact note when the terminal
// is too narrow for one row per line.
func PrintBoard(g *board.Grid) {
	if width := terminal.GetWidth(); width < g.Cols()*2 {
		fmt.Printf("terminal too narrow for %dx%d board dump (need %d cols, have %d)\n",
			g.Rows(), g.Cols(), g.Cols()*2, width)
		return
	}

	for row := 0; row < g.Rows(); row++ {
		var sb strings.Builder
		for col := 0; col < g.Cols(); col++ {
			t := g.At(row, col)
			cell := string(tileSymbol(t)) + " "
			switch {
			case t == nil:
				sb.WriteString(color.Gray.Sprint(cell))
			case t.IsTerminal:
				sb.WriteString(color.Red.Sprint(cell))
			default:
				sb.WriteString(color.Green.Sprint(cell))
			}
		}
		fmt.Println(sb.String())
	}
}
