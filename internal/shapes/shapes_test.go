package shapes

import (
	"math"
	"reflect"
	"testing"

	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/scene"
	"github.com/junkd0g/blogcharts/internal/theme"
)

const tol = 1e-6

var testFrame = geometry.NewFrame(geometry.Canvas{
	Width:   640,
	Height:  360,
	Padding: geometry.Padding{Top: 36, Right: 32, Bottom: 48, Left: 32},
})

func TestSCurveEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to geometry.Point
	}{
		{"rising", testFrame.At(0, 1), testFrame.At(1, 0)},
		{"falling", testFrame.At(0, 0), testFrame.At(1, 1)},
		{"flat", geometry.Pt(10, 10), geometry.Pt(20, 10)},
		{"backwards", geometry.Pt(300, 40), geometry.Pt(50, 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := SCurve(tt.from, tt.to, scene.Style{})
			if c.Start != tt.from {
				t.Errorf("Start = %v, want %v", c.Start, tt.from)
			}
			if c.End() != tt.to {
				t.Errorf("End = %v, want %v", c.End(), tt.to)
			}
			seg := c.Segments[0]
			dx := tt.to.X - tt.from.X
			if math.Abs(seg.C1.X-(tt.from.X+0.3*dx)) > tol || math.Abs(seg.C2.X-(tt.from.X+0.7*dx)) > tol {
				t.Errorf("control points at %v, %v", seg.C1, seg.C2)
			}
		})
	}
}

func TestSmoothEndpointsAndDegrade(t *testing.T) {
	t.Parallel()

	pts := []geometry.Point{testFrame.At(0, 0.9), testFrame.At(0.4, 0.5), testFrame.At(1, 0.1)}
	c, ok := Smooth(testFrame, pts, scene.Style{}).(scene.Curve)
	if !ok {
		t.Fatal("Smooth with three points should return a curve")
	}
	if c.Start != pts[0] || c.End() != pts[2] || len(c.Segments) != 2 {
		t.Errorf("curve = %+v", c)
	}
	if c.Segments[0].End != pts[1] {
		t.Errorf("curve does not pass through interior point")
	}

	one, ok := Smooth(testFrame, pts[:1], scene.Style{}).(scene.Line)
	if !ok {
		t.Fatal("Smooth with one point should degrade to a line")
	}
	if one.From.Y != pts[0].Y || one.From.X != testFrame.Left || one.To.X != testFrame.Right {
		t.Errorf("reference line = %+v", one)
	}

	none, ok := Smooth(testFrame, nil, scene.Style{}).(scene.Line)
	if !ok || none.From.Y != testFrame.Center().Y {
		t.Errorf("empty Smooth = %+v", none)
	}
}

func TestYAt(t *testing.T) {
	t.Parallel()

	c := SCurve(geometry.Pt(0, 100), geometry.Pt(100, 0), scene.Style{})

	if y, ok := YAt(c, 0); !ok || y != 100 {
		t.Errorf("YAt(0) = %v, %v", y, ok)
	}
	if y, ok := YAt(c, 100); !ok || y != 0 {
		t.Errorf("YAt(100) = %v, %v", y, ok)
	}
	if y, ok := YAt(c, 50); !ok || math.Abs(y-50) > tol {
		t.Errorf("YAt(50) = %v, %v", y, ok)
	}
	if _, ok := YAt(c, 150); ok {
		t.Error("YAt outside the curve should report false")
	}
}

func TestCrossingMirroredCurves(t *testing.T) {
	t.Parallel()

	a := SCurve(testFrame.At(0, 0.1), testFrame.At(1, 0.9), scene.Style{})
	b := SCurve(testFrame.At(0, 0.9), testFrame.At(1, 0.1), scene.Style{})

	p, ok := Crossing(a, b)
	if !ok {
		t.Fatal("mirrored curves should cross")
	}
	wantX := testFrame.Left + testFrame.Width/2
	if math.Abs(p.X-wantX) > tol {
		t.Errorf("crossing x = %v, want %v", p.X, wantX)
	}
	if math.Abs(p.Y-testFrame.Center().Y) > tol {
		t.Errorf("crossing y = %v, want %v", p.Y, testFrame.Center().Y)
	}
}

func TestCrossingDisjoint(t *testing.T) {
	t.Parallel()

	a := SCurve(geometry.Pt(0, 0), geometry.Pt(100, 10), scene.Style{})
	b := SCurve(geometry.Pt(0, 50), geometry.Pt(100, 60), scene.Style{})
	if _, ok := Crossing(a, b); ok {
		t.Error("parallel curves should not cross")
	}

	c := SCurve(geometry.Pt(200, 0), geometry.Pt(300, 10), scene.Style{})
	if _, ok := Crossing(a, c); ok {
		t.Error("curves without shared extent should not cross")
	}
}

func TestBandClipsToFrame(t *testing.T) {
	t.Parallel()

	r := Band(testFrame, testFrame.Right+50, testFrame.Left-50, theme.RoleSuccess, 0.2)
	if r.Bounds.X != testFrame.Left || r.Bounds.W != testFrame.Width {
		t.Errorf("band = %+v, want full frame width", r.Bounds)
	}
	if r.Layer() != scene.LayerBackground {
		t.Errorf("band layer = %v", r.Layer())
	}

	h := HBand(testFrame, testFrame.Top+10, testFrame.Top+20, theme.RoleDanger, 0.1)
	if h.Bounds.H != 10 || h.Bounds.W != testFrame.Width {
		t.Errorf("hband = %+v", h.Bounds)
	}
}

func TestBars(t *testing.T) {
	t.Parallel()

	x := testFrame.XScale(0, 100)
	band := geometry.NewBand(2, testFrame.Top, testFrame.Bottom, 0.3, 0.1)
	ps := Bars(testFrame, []Bar{{Label: "a", Value: 50, Role: theme.RoleSuccess}, {Label: "b", Value: 100}}, x, band)
	if len(ps) != 2 {
		t.Fatalf("got %d primitives, want 2", len(ps))
	}
	first := ps[0].(scene.Rect)
	if first.Bounds.X != testFrame.Left || math.Abs(first.Bounds.W-testFrame.Width/2) > tol {
		t.Errorf("first bar = %+v", first.Bounds)
	}
	second := ps[1].(scene.Rect)
	if math.Abs(second.Bounds.X+second.Bounds.W-testFrame.Right) > tol {
		t.Errorf("full bar ends at %v, want %v", second.Bounds.X+second.Bounds.W, testFrame.Right)
	}

	empty := Bars(testFrame, nil, x, band)
	if len(empty) != 1 || empty[0].Kind() != scene.KindLine {
		t.Errorf("empty bars = %v", empty)
	}
}

func TestStages(t *testing.T) {
	t.Parallel()

	l := Stages(testFrame, 3, 48, nil)
	if len(l.Boxes) != 3 {
		t.Fatalf("got %d boxes", len(l.Boxes))
	}
	if l.Boxes[0].X != testFrame.Left {
		t.Errorf("first box starts at %v", l.Boxes[0].X)
	}
	last := l.Boxes[2]
	if math.Abs(last.X+last.W-testFrame.Right) > tol {
		t.Errorf("last box ends at %v, want %v", last.X+last.W, testFrame.Right)
	}
	w := l.Boxes[0].W
	for _, b := range l.Boxes {
		if math.Abs(b.W-w) > tol {
			t.Errorf("boxes not evenly sized: %v vs %v", b.W, w)
		}
	}
	// 3 boxes + 2 arrows of 3 lines each.
	if len(l.Shapes) != 3+6 {
		t.Errorf("got %d shapes, want 9", len(l.Shapes))
	}

	if got := Stages(testFrame, 0, 48, nil); len(got.Boxes) != 0 || len(got.Shapes) != 1 {
		t.Errorf("zero stages = %+v", got)
	}
}

func TestArrowHeadAtTarget(t *testing.T) {
	t.Parallel()

	ps := Arrow(geometry.Pt(0, 0), geometry.Pt(10, 0), 4, scene.Style{})
	if len(ps) != 3 {
		t.Fatalf("got %d lines", len(ps))
	}
	for _, p := range ps[1:] {
		l := p.(scene.Line)
		if l.From != geometry.Pt(10, 0) {
			t.Errorf("wing starts at %v", l.From)
		}
		if l.To.X >= 10 {
			t.Errorf("wing points forward: %v", l.To)
		}
	}
}

func TestTree(t *testing.T) {
	t.Parallel()

	root := &Node{Label: "app", Children: []Node{
		{Label: "http", Children: []Node{{Label: "router"}, {Label: "middleware"}}},
		{Label: "store"},
	}}

	l := Tree(testFrame, root)
	if len(l.Nodes) != 5 {
		t.Fatalf("got %d nodes", len(l.Nodes))
	}
	if len(l.Edges) != 4 {
		t.Errorf("got %d edges, want 4", len(l.Edges))
	}

	rootNode := l.Nodes[0]
	if rootNode.Parent != -1 || rootNode.At.Y != testFrame.Top {
		t.Errorf("root = %+v", rootNode)
	}
	http := l.Nodes[1]
	router, middleware := l.Nodes[2], l.Nodes[3]
	if math.Abs(http.At.X-(router.At.X+middleware.At.X)/2) > tol {
		t.Errorf("parent not centred over children: %v", http.At.X)
	}
	if router.At.Y != testFrame.Bottom {
		t.Errorf("deepest level at %v, want %v", router.At.Y, testFrame.Bottom)
	}

	for _, e := range l.Edges {
		c := e.(scene.Curve)
		if c.Start.Y >= c.End().Y {
			t.Errorf("edge does not run downwards: %v -> %v", c.Start, c.End())
		}
	}

	if !reflect.DeepEqual(l, Tree(testFrame, root)) {
		t.Error("tree layout is not deterministic")
	}

	if nilTree := Tree(testFrame, nil); len(nilTree.Nodes) != 0 || len(nilTree.Edges) != 1 {
		t.Errorf("nil tree = %+v", nilTree)
	}

	single := Tree(testFrame, &Node{Label: "solo"})
	if single.Nodes[0].At != testFrame.Center() {
		t.Errorf("single node at %v, want centre %v", single.Nodes[0].At, testFrame.Center())
	}
}
