package charts

import (
	"fmt"

	"github.com/junkd0g/blogcharts/internal/annotate"
	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/scene"
	"github.com/junkd0g/blogcharts/internal/shapes"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// ComparisonSpec describes horizontal bars compared against one axis.
type ComparisonSpec struct {
	ID      string
	Title   string
	Caption string
	Canvas  geometry.Canvas

	Bars []shapes.Bar
	// Max is the right end of the value axis. Zero uses the largest bar.
	Max  float64
	Unit string
	// Ticks is the number of vertical gridline intervals.
	Ticks int
	// LabelWidth reserves room left of the bars for bar labels.
	LabelWidth float64
}

// Comparison builds a bar comparison chart.
func Comparison(spec ComparisonSpec) Chart {
	c := canvasOr(spec.Canvas)
	if spec.LabelWidth > 0 {
		c.Padding.Left += spec.LabelWidth
	}
	f := geometry.NewFrame(c)
	s := scene.New()

	hi := spec.Max
	for _, b := range spec.Bars {
		if b.Value > hi {
			hi = b.Value
		}
	}
	if hi <= 0 {
		hi = 1
	}
	x := f.XScale(0, hi)
	band := geometry.NewBand(len(spec.Bars), f.Top, f.Bottom, 0.35, 0.15)

	if spec.Ticks > 0 {
		ticks := x.Ticks(spec.Ticks)
		s.Add(annotate.Gridlines(f, x, ticks, annotate.Vertical)...)
		s.Add(annotate.TickLabels(f, x, ticks, annotate.Horizontal, func(v float64) string {
			return formatValue(v, spec.Unit)
		})...)
	}

	s.Add(shapes.Bars(f, spec.Bars, x, band)...)

	labels := make([]annotate.Label, 0, 2*len(spec.Bars))
	for i, b := range spec.Bars {
		cy := band.Center(i)
		labels = append(labels,
			annotate.Label{
				Text:     b.Label,
				Anchor:   geometry.Pt(f.Left, cy),
				Offset:   geometry.Pt(-10, 0),
				Align:    scene.AnchorEnd,
				Baseline: scene.BaselineMiddle,
				Role:     theme.RoleText,
			},
			annotate.Label{
				Text:     formatValue(b.Value, spec.Unit),
				Anchor:   geometry.Pt(x.Map(b.Value), cy),
				Offset:   geometry.Pt(8, 0),
				Baseline: scene.BaselineMiddle,
				Role:     theme.RoleMuted,
				Size:     11,
			},
		)
	}
	s.Add(annotate.Labels(labels...)...)

	return compose(spec.ID, spec.Title, spec.Caption, c, f, s)
}

func formatValue(v float64, unit string) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d%s", int64(v), unit)
	}
	return fmt.Sprintf("%.1f%s", v, unit)
}
