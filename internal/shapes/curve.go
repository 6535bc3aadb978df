package shapes

import (
	"math"

	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/scene"
)

// Control points sit at these fractions of each segment's horizontal span.
const (
	ControlNear = 0.3
	ControlFar  = 0.7
)

const (
	bisectIterations = 60
	crossingSamples  = 64
)

// SCurve returns a single cubic from `from` to `to` that leaves and arrives
// horizontally, giving the familiar S shape.
func SCurve(from, to geometry.Point, style scene.Style) scene.Curve {
	return scene.Curve{
		Start:    from,
		Segments: []scene.Segment{segment(from, to)},
		Style:    style,
		Z:        scene.LayerShape,
	}
}

// VerticalSCurve is SCurve rotated a quarter turn. Tree edges use it.
func VerticalSCurve(from, to geometry.Point, style scene.Style) scene.Curve {
	dy := to.Y - from.Y
	return scene.Curve{
		Start: from,
		Segments: []scene.Segment{{
			C1:  geometry.Pt(from.X, from.Y+ControlNear*dy),
			C2:  geometry.Pt(to.X, from.Y+ControlFar*dy),
			End: to,
		}},
		Style: style,
		Z:     scene.LayerShape,
	}
}

// Smooth threads a piecewise cubic through points. With fewer than two
// points it degrades to a flat reference line across the frame.
func Smooth(frame geometry.Frame, points []geometry.Point, style scene.Style) scene.Primitive {
	switch len(points) {
	case 0:
		return FlatLine(frame, frame.Center().Y, style)
	case 1:
		return FlatLine(frame, points[0].Y, style)
	}
	c := scene.Curve{
		Start:    points[0],
		Segments: make([]scene.Segment, 0, len(points)-1),
		Style:    style,
		Z:        scene.LayerShape,
	}
	for i := 1; i < len(points); i++ {
		c.Segments = append(c.Segments, segment(points[i-1], points[i]))
	}
	return c
}

// FlatLine is the fallback for shapes that have nothing to draw.
func FlatLine(frame geometry.Frame, y float64, style scene.Style) scene.Line {
	if y < frame.Top || y > frame.Bottom || math.IsNaN(y) {
		y = frame.Center().Y
	}
	return scene.Line{
		From:  geometry.Pt(frame.Left, y),
		To:    geometry.Pt(frame.Right, y),
		Style: style,
		Z:     scene.LayerShape,
	}
}

func segment(p0, p1 geometry.Point) scene.Segment {
	dx := p1.X - p0.X
	return scene.Segment{
		C1:  geometry.Pt(p0.X+ControlNear*dx, p0.Y),
		C2:  geometry.Pt(p0.X+ControlFar*dx, p1.Y),
		End: p1,
	}
}

// YAt returns the curve's y at horizontal position x. Curves built here are
// monotonic in x per segment, so a bisection on t finds the point. ok is
// false when x lies outside the curve's horizontal extent.
func YAt(c scene.Curve, x float64) (y float64, ok bool) {
	p0 := c.Start
	for _, s := range c.Segments {
		lo, hi := math.Min(p0.X, s.End.X), math.Max(p0.X, s.End.X)
		if x >= lo && x <= hi {
			return yOnSegment(p0, s, x), true
		}
		p0 = s.End
	}
	return 0, false
}

func yOnSegment(p0 geometry.Point, s scene.Segment, x float64) float64 {
	switch x {
	case p0.X:
		return p0.Y
	case s.End.X:
		return s.End.Y
	}
	increasing := s.End.X >= p0.X
	lo, hi := 0.0, 1.0
	for i := 0; i < bisectIterations; i++ {
		mid := (lo + hi) / 2
		px := geometry.CubicAt(p0, s.C1, s.C2, s.End, mid).X
		if (px < x) == increasing {
			lo = mid
		} else {
			hi = mid
		}
	}
	return geometry.CubicAt(p0, s.C1, s.C2, s.End, (lo+hi)/2).Y
}

// Crossing finds the first point where a and b meet over their shared
// horizontal extent.
func Crossing(a, b scene.Curve) (geometry.Point, bool) {
	lo := math.Max(minX(a), minX(b))
	hi := math.Min(maxX(a), maxX(b))
	if lo > hi {
		return geometry.Point{}, false
	}

	diff := func(x float64) float64 {
		ya, _ := YAt(a, x)
		yb, _ := YAt(b, x)
		return ya - yb
	}

	prevX, prevD := lo, diff(lo)
	if prevD == 0 {
		ya, _ := YAt(a, lo)
		return geometry.Pt(lo, ya), true
	}
	for i := 1; i <= crossingSamples; i++ {
		x := lo + (hi-lo)*float64(i)/crossingSamples
		d := diff(x)
		if d == 0 || (d < 0) != (prevD < 0) {
			cx := bisectRoot(diff, prevX, x, prevD)
			ya, _ := YAt(a, cx)
			return geometry.Pt(cx, ya), true
		}
		prevX, prevD = x, d
	}
	return geometry.Point{}, false
}

func bisectRoot(f func(float64) float64, lo, hi, flo float64) float64 {
	for i := 0; i < bisectIterations; i++ {
		mid := (lo + hi) / 2
		fm := f(mid)
		if fm == 0 {
			return mid
		}
		if (fm < 0) == (flo < 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func minX(c scene.Curve) float64 {
	return math.Min(c.Start.X, c.End().X)
}

func maxX(c scene.Curve) float64 {
	return math.Max(c.Start.X, c.End().X)
}
