// Package fonts provides a memoizing font cache and a fail-soft text drawing
// helper for CPU-side image rendering (tile placeholder labels, tool output).
// The preferred family is Go Regular; face creation failures degrade to Go
// Mono and finally to a built-in bitmap face, never to an error.
package fonts

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// DefaultSize is the font size used when callers do not care
const DefaultSize = 24

// Cache creates and memoizes font faces keyed by pixel size. Growth is
// monotonic; faces are never evicted. Safe for concurrent use.
type Cache struct {
	mu        sync.Mutex
	faces     map[int]font.Face
	preferred *sfnt.Font
	fallback  *sfnt.Font
}

// NewCache returns a font cache backed by the bundled Go font families.
// Parse failures of a family leave it nil; Face degrades past it.
func NewCache() *Cache {
	c := &Cache{faces: map[int]font.Face{}}

	if f, err := opentype.Parse(goregular.TTF); err == nil {
		c.preferred = f
	} else {
		log.Printf("fonts: parsing preferred family failed: %v", err)
	}
	if f, err := opentype.Parse(gomono.TTF); err == nil {
		c.fallback = f
	} else {
		log.Printf("fonts: parsing fallback family failed: %v", err)
	}

	return c
}

// Face returns the memoized face for the given pixel size, creating it on
// first request. It never returns nil: if neither font family yields a face
// the built-in bitmap face is used.
func (c *Cache) Face(size int) font.Face {
	if size < 1 {
		size = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if face, ok := c.faces[size]; ok {
		return face
	}

	face := c.newFace(size)
	c.faces[size] = face
	return face
}

func (c *Cache) newFace(size int) font.Face {
	opts := &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	}
	for _, src := range []*sfnt.Font{c.preferred, c.fallback} {
		if src == nil {
			continue
		}
		face, err := opentype.NewFace(src, opts)
		if err == nil {
			return face
		}
		log.Printf("fonts: creating size-%d face failed: %v", size, err)
	}
	return basicfont.Face7x13
}

// Draw renders text into dst at (x, y) (top-left of the text box). With
// centerX/centerY set, (x, y) is instead treated as the corresponding center
// reference. Any rendering problem is logged and skipped rather than
// propagated; a dropped label must not abort the frame.
func (c *Cache) Draw(dst draw.Image, text string, x, y int, col color.Color, size int, centerX, centerY bool) {
	if text == "" || dst == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("fonts: rendering %q failed: %v", text, r)
		}
	}()

	face := c.Face(size)
	metrics := face.Metrics()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}

	width := d.MeasureString(text).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	if centerX {
		x -= width / 2
	}
	if centerY {
		y -= height / 2
	}

	d.Dot = fixed.P(x, y+metrics.Ascent.Ceil())
	d.DrawString(text)
}

// Measure returns the pixel width and height of text at the given size
func (c *Cache) Measure(text string, size int) (width, height int) {
	face := c.Face(size)
	metrics := face.Metrics()
	return font.MeasureString(face, text).Ceil(), (metrics.Ascent + metrics.Descent).Ceil()
}
