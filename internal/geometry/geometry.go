package geometry

import "math"

const (
	// MinPlotFraction is the share of a canvas axis the plot frame keeps
	// when the padding on that axis would leave nothing to draw in.
	MinPlotFraction = 0.2

	// MinCanvasSize replaces a zero or negative canvas dimension.
	MinCanvasSize = 1.0
)

// Point is a position in canvas pixel space. Y grows downwards.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Lerp interpolates between a and b. t=0 returns a, t=1 returns b.
func Lerp(a, b Point, t float64) Point {
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// CubicAt evaluates the cubic Bézier p0,c1,c2,p1 at t in [0,1].
// The endpoints are returned as given so t=0 and t=1 are exact.
func CubicAt(p0, c1, c2, p1 Point, t float64) Point {
	switch {
	case t <= 0:
		return p0
	case t >= 1:
		return p1
	}
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*c1.X + c*c2.X + d*p1.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p1.Y,
	}
}

// Padding is the space reserved around the plot for axes and labels.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Uniform returns a padding with the same value on every side.
func Uniform(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Canvas is the logical pixel size a chart is authored against.
type Canvas struct {
	Width   float64
	Height  float64
	Padding Padding
}

// Rect is an axis aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the middle of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Frame is the drawable rectangle left inside a canvas after padding.
type Frame struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	Width  float64
	Height float64
}

// NewFrame derives the plot frame of c.
//
// With room to spare the frame is exactly the canvas minus its padding.
// When padding would consume an axis the padding on that axis is scaled
// down, keeping its left/right (or top/bottom) proportions, until the frame
// holds MinPlotFraction of the axis. The result always has positive size.
func NewFrame(c Canvas) Frame {
	w := sanitizeSize(c.Width)
	h := sanitizeSize(c.Height)

	left, right := fitAxis(w, sanitizePad(c.Padding.Left), sanitizePad(c.Padding.Right))
	top, bottom := fitAxis(h, sanitizePad(c.Padding.Top), sanitizePad(c.Padding.Bottom))

	return Frame{
		Left:   left,
		Right:  w - right,
		Top:    top,
		Bottom: h - bottom,
		Width:  w - left - right,
		Height: h - top - bottom,
	}
}

func fitAxis(size, a, b float64) (float64, float64) {
	if size-a-b > 0 {
		return a, b
	}
	budget := size * (1 - MinPlotFraction)
	total := a + b
	return a / total * budget, b / total * budget
}

func sanitizeSize(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return MinCanvasSize
	}
	return v
}

func sanitizePad(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Rect returns the frame as a rectangle.
func (f Frame) Rect() Rect {
	return Rect{X: f.Left, Y: f.Top, W: f.Width, H: f.Height}
}

// Center returns the middle of the frame.
func (f Frame) Center() Point {
	return Point{X: f.Left + f.Width/2, Y: f.Top + f.Height/2}
}

// At maps fractional coordinates to pixels. (0,0) is the top-left corner
// of the frame and (1,1) the bottom-right.
func (f Frame) At(fx, fy float64) Point {
	return Point{X: f.Left + f.Width*fx, Y: f.Top + f.Height*fy}
}

// XScale returns a scale from [d0,d1] onto the frame's horizontal extent.
func (f Frame) XScale(d0, d1 float64) Linear {
	return NewLinear(d0, d1, f.Left, f.Right)
}

// YScale returns a scale from [d0,d1] onto the frame's vertical extent,
// with d0 at the bottom.
func (f Frame) YScale(d0, d1 float64) Linear {
	return NewLinear(d0, d1, f.Bottom, f.Top)
}
