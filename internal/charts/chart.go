// Package charts composes geometry, shapes and annotations into the charts
// embedded in articles. Every builder is a pure function of its spec: the
// same spec always yields a value-equal Chart.
package charts

import (
	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/scene"
)

// Chart is one fully computed chart, ready to hand to a renderer.
type Chart struct {
	ID      string
	Title   string
	Caption string
	Canvas  geometry.Canvas
	Frame   geometry.Frame
	// Primitives are ordered back to front.
	Primitives []scene.Primitive
}

// DefaultCanvas is the logical size charts are authored against.
var DefaultCanvas = geometry.Canvas{
	Width:   640,
	Height:  360,
	Padding: geometry.Padding{Top: 36, Right: 32, Bottom: 48, Left: 32},
}

func canvasOr(c geometry.Canvas) geometry.Canvas {
	if c == (geometry.Canvas{}) {
		return DefaultCanvas
	}
	return c
}

func compose(id, title, caption string, c geometry.Canvas, f geometry.Frame, s *scene.Scene) Chart {
	return Chart{
		ID:         id,
		Title:      title,
		Caption:    caption,
		Canvas:     c,
		Frame:      f,
		Primitives: s.Primitives(),
	}
}
