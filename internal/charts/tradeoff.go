package charts

import (
	"github.com/junkd0g/blogcharts/internal/annotate"
	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/scene"
	"github.com/junkd0g/blogcharts/internal/shapes"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// TradeoffCurve is one side of a tradeoff. From and To are fractional
// heights (0 bottom, 1 top) at the left and right edges of the frame.
type TradeoffCurve struct {
	Label string
	From  float64
	To    float64
	Role  theme.Role
}

// TradeoffSpec describes two opposing curves and the optimum where they
// meet.
type TradeoffSpec struct {
	ID      string
	Title   string
	Caption string
	Canvas  geometry.Canvas

	Rising  TradeoffCurve
	Falling TradeoffCurve

	XTitle string
	YTitle string
	// OptimumLabel names the crossing. Empty means "optimal".
	OptimumLabel string
	// BandWidth is the share of the frame width highlighted around the
	// optimum. Zero disables the band.
	BandWidth float64
	Gridlines int
}

// Tradeoff builds a two-curve tradeoff chart with a marker at the crossing.
func Tradeoff(spec TradeoffSpec) Chart {
	c := canvasOr(spec.Canvas)
	f := geometry.NewFrame(c)
	s := scene.New()

	rising := shapes.SCurve(f.At(0, 1-spec.Rising.From), f.At(1, 1-spec.Rising.To),
		scene.Style{Stroke: spec.Rising.Role, StrokeWidth: 3})
	rising.Title = spec.Rising.Label
	falling := shapes.SCurve(f.At(0, 1-spec.Falling.From), f.At(1, 1-spec.Falling.To),
		scene.Style{Stroke: spec.Falling.Role, StrokeWidth: 3})
	falling.Title = spec.Falling.Label
	s.Add(rising, falling)

	if spec.Gridlines > 0 {
		y := f.YScale(0, 1)
		s.Add(annotate.Gridlines(f, y, y.Ticks(spec.Gridlines), annotate.Horizontal)...)
	}
	s.Add(annotate.Axes(f)...)
	s.Add(annotate.AxisTitles(f, spec.XTitle, spec.YTitle)...)

	s.Add(annotate.Labels(
		annotate.Label{
			Text:   spec.Rising.Label,
			Anchor: rising.End(),
			Offset: geometry.Pt(-6, -10),
			Align:  scene.AnchorEnd,
			Role:   spec.Rising.Role,
			Bold:   true,
		},
		annotate.Label{
			Text:   spec.Falling.Label,
			Anchor: falling.Start,
			Offset: geometry.Pt(6, -10),
			Align:  scene.AnchorStart,
			Role:   spec.Falling.Role,
			Bold:   true,
		},
	)...)

	s.Add(tradeoffLegend(f, spec.Rising, spec.Falling)...)

	if p, ok := shapes.Crossing(rising, falling); ok {
		if spec.BandWidth > 0 {
			half := f.Width * spec.BandWidth / 2
			s.Add(shapes.Band(f, p.X-half, p.X+half, theme.RoleSuccess, 0.12))
		}
		s.Add(
			scene.Line{
				From:  geometry.Pt(p.X, p.Y),
				To:    geometry.Pt(p.X, f.Bottom),
				Style: scene.Style{Stroke: theme.RoleMuted, StrokeWidth: 1, Dash: []float64{4, 4}},
				Z:     scene.LayerGrid,
			},
		)
		marker := shapes.Marker(p, 6, theme.RoleSuccess)
		label := spec.OptimumLabel
		if label == "" {
			label = "optimal"
		}
		marker.Title = label
		s.Add(marker)
		s.Add(annotate.Labels(annotate.Label{
			Text:       label,
			Anchor:     p,
			Offset:     geometry.Pt(0, -16),
			Align:      scene.AnchorMiddle,
			Role:       theme.RoleSuccess,
			Bold:       true,
			Background: true,
		})...)
	}

	return compose(spec.ID, spec.Title, spec.Caption, c, f, s)
}

// legendTop is how far above the frame the first legend row sits. Both top
// corners of the frame hold curve ends, so the legend lives in the padding.
const legendTop = 26

// tradeoffLegend lists both curves, right-aligned with the frame.
func tradeoffLegend(f geometry.Frame, curves ...TradeoffCurve) []scene.Primitive {
	entries := make([]annotate.LegendEntry, 0, len(curves))
	width := 0.0
	for _, c := range curves {
		if c.Label == "" {
			continue
		}
		entries = append(entries, annotate.LegendEntry{Text: c.Label, Role: c.Role})
		width = max(width, annotate.LegendWidth(c.Label))
	}
	if len(entries) == 0 {
		return nil
	}
	return annotate.Legend(geometry.Pt(f.Right-width, f.Top-legendTop), entries...)
}

// Optimum returns the optimum marker of a tradeoff chart, if it has one.
func Optimum(ch Chart) (geometry.Point, bool) {
	for _, p := range ch.Primitives {
		if m, ok := p.(scene.Circle); ok && m.Layer() == scene.LayerMarker {
			return m.Center, true
		}
	}
	return geometry.Point{}, false
}
