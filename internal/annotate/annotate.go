package annotate

import (
	"unicode/utf8"

	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/scene"
	"github.com/junkd0g/blogcharts/internal/theme"
)

const (
	// DefaultSize is the font size used when a label leaves it unset.
	DefaultSize = 12
	// advance approximates the width of one glyph as a fraction of the font
	// size. Close enough for the sans-serif stacks used on the site.
	advance = 0.6
	// backgroundPad surrounds label text with a little breathing room.
	backgroundPad = 4
)

// Orientation selects between horizontal and vertical guides.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Label is a piece of text placed at a fixed offset from an anchor point.
// There is no overlap avoidance: the offset is chosen by whoever writes
// the chart.
type Label struct {
	Text       string
	Anchor     geometry.Point
	Offset     geometry.Point
	Align      scene.Anchor
	Baseline   scene.Baseline
	Role       theme.Role
	Size       float64
	Bold       bool
	Background bool
}

// Labels turns label requests into text primitives, each optionally
// preceded by a background rectangle.
func Labels(labels ...Label) []scene.Primitive {
	out := make([]scene.Primitive, 0, len(labels))
	for _, l := range labels {
		size := l.Size
		if size <= 0 {
			size = DefaultSize
		}
		align := l.Align
		if align == "" {
			align = scene.AnchorStart
		}
		baseline := l.Baseline
		if baseline == "" {
			baseline = scene.BaselineAuto
		}
		role := l.Role
		if role == "" {
			role = theme.RoleText
		}
		at := l.Anchor.Add(l.Offset)

		if l.Background {
			out = append(out, scene.Rect{
				Bounds: TextBox(l.Text, at, size, align, baseline),
				Radius: 3,
				Style:  scene.Style{Fill: theme.RoleSurface, Opacity: 0.85},
				Z:      scene.LayerMarker,
			})
		}
		out = append(out, scene.Text{
			At:       at,
			Content:  l.Text,
			Size:     size,
			Anchor:   align,
			Baseline: baseline,
			Bold:     l.Bold,
			Fill:     role,
		})
	}
	return out
}

// TextWidth estimates the rendered width of s at the given size.
func TextWidth(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * advance
}

// TextBox estimates the padded box a label occupies.
func TextBox(s string, at geometry.Point, size float64, align scene.Anchor, baseline scene.Baseline) geometry.Rect {
	w := TextWidth(s, size)
	x := at.X
	switch align {
	case scene.AnchorMiddle:
		x -= w / 2
	case scene.AnchorEnd:
		x -= w
	}
	y := at.Y - size*0.8
	switch baseline {
	case scene.BaselineMiddle:
		y = at.Y - size/2
	case scene.BaselineHanging:
		y = at.Y
	}
	return geometry.Rect{
		X: x - backgroundPad,
		Y: y - backgroundPad/2,
		W: w + 2*backgroundPad,
		H: size + backgroundPad,
	}
}

// Gridlines draws one grid line per tick across the frame. Horizontal
// lines use s as a vertical scale, vertical lines as a horizontal one.
func Gridlines(frame geometry.Frame, s geometry.Linear, ticks []float64, o Orientation) []scene.Primitive {
	style := scene.Style{Stroke: theme.RoleGrid, StrokeWidth: 1}
	out := make([]scene.Primitive, 0, len(ticks))
	for _, v := range ticks {
		p := s.Map(v)
		l := scene.Line{Style: style, Z: scene.LayerGrid}
		if o == Horizontal {
			l.From, l.To = geometry.Pt(frame.Left, p), geometry.Pt(frame.Right, p)
		} else {
			l.From, l.To = geometry.Pt(p, frame.Top), geometry.Pt(p, frame.Bottom)
		}
		out = append(out, l)
	}
	return out
}

// Axes draws the left and bottom edges of the frame.
func Axes(frame geometry.Frame) []scene.Primitive {
	style := scene.Style{Stroke: theme.RoleNeutral, StrokeWidth: 1.5}
	return []scene.Primitive{
		scene.Line{From: geometry.Pt(frame.Left, frame.Bottom), To: geometry.Pt(frame.Right, frame.Bottom), Style: style, Z: scene.LayerGrid},
		scene.Line{From: geometry.Pt(frame.Left, frame.Top), To: geometry.Pt(frame.Left, frame.Bottom), Style: style, Z: scene.LayerGrid},
	}
}

// TickLabels labels each tick outside the frame. format renders a tick
// value; horizontal orientation means labels along the bottom axis.
func TickLabels(frame geometry.Frame, s geometry.Linear, ticks []float64, o Orientation, format func(float64) string) []scene.Primitive {
	labels := make([]Label, 0, len(ticks))
	for _, v := range ticks {
		p := s.Map(v)
		l := Label{Text: format(v), Role: theme.RoleMuted, Size: 11}
		if o == Horizontal {
			l.Anchor = geometry.Pt(p, frame.Bottom)
			l.Offset = geometry.Pt(0, 16)
			l.Align = scene.AnchorMiddle
		} else {
			l.Anchor = geometry.Pt(frame.Left, p)
			l.Offset = geometry.Pt(-8, 0)
			l.Align = scene.AnchorEnd
			l.Baseline = scene.BaselineMiddle
		}
		labels = append(labels, l)
	}
	return Labels(labels...)
}

// AxisTitles places an x title centred below the frame and a y title at
// the top-left corner above the axis. Empty titles are skipped.
func AxisTitles(frame geometry.Frame, x, y string) []scene.Primitive {
	var labels []Label
	if x != "" {
		labels = append(labels, Label{
			Text:   x,
			Anchor: geometry.Pt(frame.Left+frame.Width/2, frame.Bottom),
			Offset: geometry.Pt(0, 34),
			Align:  scene.AnchorMiddle,
			Role:   theme.RoleMuted,
		})
	}
	if y != "" {
		labels = append(labels, Label{
			Text:   y,
			Anchor: geometry.Pt(frame.Left, frame.Top),
			Offset: geometry.Pt(0, -14),
			Align:  scene.AnchorStart,
			Role:   theme.RoleMuted,
		})
	}
	return Labels(labels...)
}

// LegendEntry is one row of a legend.
type LegendEntry struct {
	Text string
	Role theme.Role
}

const (
	// legendRow is the vertical distance between legend entries.
	legendRow = 18
	// legendIndent is the room taken by a swatch and its gap.
	legendIndent = 16
	legendSize   = 11
)

// LegendWidth estimates the width of a legend row labelled text.
func LegendWidth(text string) float64 {
	return legendIndent + TextWidth(text, legendSize)
}

// Legend stacks swatches and their labels downwards from origin.
func Legend(origin geometry.Point, entries ...LegendEntry) []scene.Primitive {
	out := make([]scene.Primitive, 0, 2*len(entries))
	labels := make([]Label, 0, len(entries))
	for i, e := range entries {
		y := origin.Y + float64(i)*legendRow
		out = append(out, scene.Rect{
			Bounds: geometry.Rect{X: origin.X, Y: y - 5, W: 10, H: 10},
			Radius: 2,
			Style:  scene.Style{Fill: e.Role},
			Z:      scene.LayerMarker,
		})
		labels = append(labels, Label{
			Text:     e.Text,
			Anchor:   geometry.Pt(origin.X, y),
			Offset:   geometry.Pt(legendIndent, 0),
			Baseline: scene.BaselineMiddle,
			Size:     legendSize,
		})
	}
	return append(out, Labels(labels...)...)
}
