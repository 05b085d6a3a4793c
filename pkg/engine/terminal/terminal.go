// Package terminal probes the controlling terminal for size, for tools that
// print board dumps.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is assumed when the terminal size cannot be determined
const DefaultWidth = 80

// GetSize returns the current terminal width and height, falling back to
// defaults when stdout is not a terminal.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, 24
	}
	return width, height
}

// GetWidth returns the current terminal width
func GetWidth() int {
	width, _ := GetSize()
	return width
}
