// Package renderer defines the interface for game rendering backends and
// holds the active backend instance.
package renderer

// Renderer defines the interface for rendering backends. The Ebiten backend
// is the graphical implementation; tools may provide headless ones.
type Renderer interface {
	// Init prepares the renderer (fonts, window parameters)
	Init() error

	// Run enters the backend's main loop and blocks until exit
	Run() error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() error {
	if Current == nil {
		return nil
	}
	return Current.Init()
}

// Run runs the current renderer's main loop
func Run() error {
	if Current == nil {
		return nil
	}
	return Current.Run()
}
