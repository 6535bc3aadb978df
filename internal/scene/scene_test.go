package scene

import (
	"testing"

	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/theme"
)

func TestPrimitivesDrawOrder(t *testing.T) {
	t.Parallel()

	s := New()
	s.Add(
		Text{Content: "label"},
		Curve{Start: geometry.Pt(0, 0), Z: LayerShape},
		Circle{R: 3, Z: LayerMarker},
		Line{Z: LayerGrid},
		Rect{Z: LayerBackground},
		Line{From: geometry.Pt(1, 1), Z: LayerGrid},
	)

	ps := s.Primitives()
	if !Ordered(ps) {
		t.Fatalf("primitives not ordered: %v", layers(ps))
	}

	want := []Layer{LayerBackground, LayerGrid, LayerGrid, LayerShape, LayerMarker, LayerText}
	got := layers(ps)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("layers = %v, want %v", got, want)
		}
	}

	// Same-layer primitives keep insertion order.
	if ps[1].(Line).From != (geometry.Point{}) || ps[2].(Line).From != geometry.Pt(1, 1) {
		t.Error("stable order within a layer was not preserved")
	}
}

func TestPrimitivesReturnsCopy(t *testing.T) {
	t.Parallel()

	s := New()
	s.Add(Line{Z: LayerGrid}, Rect{Z: LayerBackground})

	first := s.Primitives()
	first[0] = Text{Content: "mutated"}

	second := s.Primitives()
	if second[0].Kind() != KindRect {
		t.Errorf("mutating the returned slice leaked into the scene: %v", second[0].Kind())
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	ps := []Primitive{
		Line{}, Text{Fill: theme.RoleText}, Line{}, Circle{},
	}
	if got := len(Filter(ps, KindLine)); got != 2 {
		t.Errorf("Filter(line) = %d, want 2", got)
	}
	if got := len(Filter(ps, KindCurve)); got != 0 {
		t.Errorf("Filter(curve) = %d, want 0", got)
	}
}

func TestCurveEnd(t *testing.T) {
	t.Parallel()

	c := Curve{Start: geometry.Pt(1, 2)}
	if c.End() != c.Start {
		t.Errorf("empty curve End = %v, want start", c.End())
	}
	c.Segments = []Segment{{End: geometry.Pt(3, 4)}, {End: geometry.Pt(5, 6)}}
	if c.End() != geometry.Pt(5, 6) {
		t.Errorf("End = %v", c.End())
	}
}

func TestLayerString(t *testing.T) {
	t.Parallel()

	if LayerText.String() != "text" || Layer(42).String() != "unknown" {
		t.Errorf("unexpected layer names: %s %s", LayerText, Layer(42))
	}
}

func layers(ps []Primitive) []Layer {
	out := make([]Layer, len(ps))
	for i, p := range ps {
		out[i] = p.Layer()
	}
	return out
}
