package shapes

import (
	"math"

	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/scene"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// Band returns a full-height highlight between x0 and x1, clipped to the
// frame.
func Band(frame geometry.Frame, x0, x1 float64, role theme.Role, opacity float64) scene.Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	x0 = math.Max(x0, frame.Left)
	x1 = math.Min(x1, frame.Right)
	if x1 < x0 {
		x1 = x0
	}
	return scene.Rect{
		Bounds: geometry.Rect{X: x0, Y: frame.Top, W: x1 - x0, H: frame.Height},
		Style:  scene.Style{Fill: role, Opacity: opacity},
		Z:      scene.LayerBackground,
	}
}

// HBand is Band for a horizontal strip between y0 and y1.
func HBand(frame geometry.Frame, y0, y1 float64, role theme.Role, opacity float64) scene.Rect {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	y0 = math.Max(y0, frame.Top)
	y1 = math.Min(y1, frame.Bottom)
	if y1 < y0 {
		y1 = y0
	}
	return scene.Rect{
		Bounds: geometry.Rect{X: frame.Left, Y: y0, W: frame.Width, H: y1 - y0},
		Style:  scene.Style{Fill: role, Opacity: opacity},
		Z:      scene.LayerBackground,
	}
}

// Marker is a point marker drawn above shapes.
func Marker(center geometry.Point, r float64, role theme.Role) scene.Circle {
	return scene.Circle{
		Center: center,
		R:      r,
		Style:  scene.Style{Fill: role, Stroke: theme.RoleSurface, StrokeWidth: 2},
		Z:      scene.LayerMarker,
	}
}

// Arrow draws a shaft from `from` to `to` with a chevron head of the given
// size at `to`.
func Arrow(from, to geometry.Point, head float64, style scene.Style) []scene.Primitive {
	angle := math.Atan2(to.Y-from.Y, to.X-from.X)
	wing := func(delta float64) scene.Line {
		a := angle + math.Pi - delta
		return scene.Line{
			From:  to,
			To:    geometry.Pt(to.X+head*math.Cos(a), to.Y+head*math.Sin(a)),
			Style: style,
			Z:     scene.LayerShape,
		}
	}
	return []scene.Primitive{
		scene.Line{From: from, To: to, Style: style, Z: scene.LayerShape},
		wing(math.Pi / 6),
		wing(-math.Pi / 6),
	}
}

// Bar is one row of a comparison chart.
type Bar struct {
	Label string
	Value float64
	Role  theme.Role
}

// Bars lays horizontal bars out in band order, each running from the
// scale's zero to its value. With no bars it degrades to a flat line.
func Bars(frame geometry.Frame, bars []Bar, x geometry.Linear, band geometry.Band) []scene.Primitive {
	if len(bars) == 0 {
		return []scene.Primitive{FlatLine(frame, frame.Center().Y, scene.Style{Stroke: theme.RoleGrid, StrokeWidth: 1})}
	}
	zero := x.Map(0)
	out := make([]scene.Primitive, 0, len(bars))
	for i, b := range bars {
		end := x.Map(b.Value)
		left, right := math.Min(zero, end), math.Max(zero, end)
		out = append(out, scene.Rect{
			Bounds: geometry.Rect{X: left, Y: band.Start(i), W: right - left, H: band.Bandwidth()},
			Radius: math.Min(4, band.Bandwidth()/4),
			Style:  scene.Style{Fill: b.Role},
			Z:      scene.LayerShape,
			Title:  b.Label,
		})
	}
	return out
}

// StageLayout is the geometry of a left-to-right pipeline.
type StageLayout struct {
	Boxes  []geometry.Rect
	Shapes []scene.Primitive
}

// Stages lays n boxes out evenly across the frame, joined by arrows across
// the gap between them. gap is the horizontal space reserved for each
// arrow. With n < 1 it degrades to a flat line.
func Stages(frame geometry.Frame, n int, gap float64, roles []theme.Role) StageLayout {
	if n < 1 {
		return StageLayout{Shapes: []scene.Primitive{FlatLine(frame, frame.Center().Y, scene.Style{Stroke: theme.RoleGrid, StrokeWidth: 1})}}
	}
	maxGap := frame.Width / float64(n)
	if gap > maxGap {
		gap = maxGap / 2
	}
	w := (frame.Width - gap*float64(n-1)) / float64(n)
	layout := StageLayout{Boxes: make([]geometry.Rect, n)}
	for i := 0; i < n; i++ {
		box := geometry.Rect{X: frame.Left + float64(i)*(w+gap), Y: frame.Top, W: w, H: frame.Height}
		layout.Boxes[i] = box
		role := theme.RoleAccent
		if i < len(roles) {
			role = roles[i]
		}
		layout.Shapes = append(layout.Shapes, scene.Rect{
			Bounds: box,
			Radius: 8,
			Style:  scene.Style{Fill: role, Opacity: 0.15, Stroke: role, StrokeWidth: 2},
			Z:      scene.LayerShape,
		})
	}
	arrowStyle := scene.Style{Stroke: theme.RoleNeutral, StrokeWidth: 2}
	head := math.Min(8, gap/3)
	for i := 1; i < n; i++ {
		prev, next := layout.Boxes[i-1], layout.Boxes[i]
		y := prev.Y + prev.H/2
		from := geometry.Pt(prev.X+prev.W+gap*0.15, y)
		to := geometry.Pt(next.X-gap*0.15, y)
		layout.Shapes = append(layout.Shapes, Arrow(from, to, head, arrowStyle)...)
	}
	return layout
}
