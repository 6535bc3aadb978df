package scene

import (
	"sort"

	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// Layer decides draw order. Lower layers are painted first.
type Layer int

const (
	LayerBackground Layer = iota
	LayerGrid
	LayerShape
	LayerMarker
	LayerText
)

var layerNames = map[Layer]string{
	LayerBackground: "background",
	LayerGrid:       "grid",
	LayerShape:      "shape",
	LayerMarker:     "marker",
	LayerText:       "text",
}

func (l Layer) String() string {
	if n, ok := layerNames[l]; ok {
		return n
	}
	return "unknown"
}

// Kind names the primitive type.
type Kind string

const (
	KindLine   Kind = "line"
	KindCurve  Kind = "curve"
	KindCircle Kind = "circle"
	KindRect   Kind = "rect"
	KindText   Kind = "text"
)

// Style holds presentation attributes. Colours are roles, resolved by the
// renderer against a theme.
type Style struct {
	Stroke      theme.Role
	Fill        theme.Role
	StrokeWidth float64
	// Opacity of 0 means fully opaque.
	Opacity float64
	Dash    []float64
}

// Primitive is a single drawable value.
type Primitive interface {
	Kind() Kind
	Layer() Layer
}

// Line is a straight segment.
type Line struct {
	From  geometry.Point
	To    geometry.Point
	Style Style
	Z     Layer
}

func (Line) Kind() Kind { return KindLine }
func (l Line) Layer() Layer { return l.Z }

// Segment is one cubic Bézier piece ending at End.
type Segment struct {
	C1  geometry.Point
	C2  geometry.Point
	End geometry.Point
}

// Curve is a path of cubic segments starting at Start.
type Curve struct {
	Start    geometry.Point
	Segments []Segment
	Style    Style
	Z        Layer
	// Title is shown as a hover tooltip where the output supports it.
	Title string
}

func (Curve) Kind() Kind { return KindCurve }
func (c Curve) Layer() Layer { return c.Z }

// End returns the last point of the curve.
func (c Curve) End() geometry.Point {
	if len(c.Segments) == 0 {
		return c.Start
	}
	return c.Segments[len(c.Segments)-1].End
}

// Circle is a filled or stroked circle.
type Circle struct {
	Center geometry.Point
	R      float64
	Style  Style
	Z      Layer
	Title  string
}

func (Circle) Kind() Kind { return KindCircle }
func (c Circle) Layer() Layer { return c.Z }

// Rect is an axis aligned rectangle with optional rounded corners.
type Rect struct {
	Bounds geometry.Rect
	Radius float64
	Style  Style
	Z      Layer
	Title  string
}

func (Rect) Kind() Kind { return KindRect }
func (r Rect) Layer() Layer { return r.Z }

// Anchor is the horizontal alignment of text around its position.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Baseline is the vertical alignment of text around its position.
type Baseline string

const (
	BaselineAuto    Baseline = "auto"
	BaselineMiddle  Baseline = "middle"
	BaselineHanging Baseline = "hanging"
)

// Text is a single line of text. Text always lives on LayerText.
type Text struct {
	At       geometry.Point
	Content  string
	Size     float64
	Anchor   Anchor
	Baseline Baseline
	Bold     bool
	Fill     theme.Role
}

func (Text) Kind() Kind { return KindText }
func (Text) Layer() Layer { return LayerText }

// Scene collects primitives for one render.
type Scene struct {
	items []Primitive
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends primitives.
func (s *Scene) Add(p ...Primitive) {
	s.items = append(s.items, p...)
}

// Len returns the number of primitives added so far.
func (s *Scene) Len() int {
	return len(s.items)
}

// Primitives returns a fresh slice ordered back to front. Primitives on
// the same layer keep the order they were added in.
func (s *Scene) Primitives() []Primitive {
	out := make([]Primitive, len(s.items))
	copy(out, s.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Layer() < out[j].Layer()
	})
	return out
}

// Filter returns the primitives of one kind, in draw order.
func Filter(ps []Primitive, kind Kind) []Primitive {
	var out []Primitive
	for _, p := range ps {
		if p.Kind() == kind {
			out = append(out, p)
		}
	}
	return out
}

// Ordered reports whether ps is sorted back to front.
func Ordered(ps []Primitive) bool {
	for i := 1; i < len(ps); i++ {
		if ps[i].Layer() < ps[i-1].Layer() {
			return false
		}
	}
	return true
}
