package charts

import (
	"github.com/junkd0g/blogcharts/internal/annotate"
	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/scene"
	"github.com/junkd0g/blogcharts/internal/shapes"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// Zone is a horizontal band of the value axis, e.g. "healthy" or "paging".
type Zone struct {
	Label string
	From  float64
	To    float64
	Role  theme.Role
}

// ThresholdSpec describes one curve measured against coloured zones.
type ThresholdSpec struct {
	ID      string
	Title   string
	Caption string
	Canvas  geometry.Canvas

	// Points are (x, y) pairs in data units.
	Points [][2]float64
	XMax   float64
	YMax   float64
	Zones  []Zone
	Line   theme.Role

	XTitle string
	YTitle string
}

// Threshold builds a smooth curve drawn over threshold zones.
func Threshold(spec ThresholdSpec) Chart {
	c := canvasOr(spec.Canvas)
	f := geometry.NewFrame(c)
	s := scene.New()

	xMax, yMax := spec.XMax, spec.YMax
	for _, p := range spec.Points {
		if p[0] > xMax {
			xMax = p[0]
		}
		if p[1] > yMax {
			yMax = p[1]
		}
	}
	if xMax <= 0 {
		xMax = 1
	}
	if yMax <= 0 {
		yMax = 1
	}
	x := f.XScale(0, xMax)
	y := f.YScale(0, yMax)

	zoneLabels := make([]annotate.Label, 0, len(spec.Zones))
	for _, z := range spec.Zones {
		band := shapes.HBand(f, y.Map(z.To), y.Map(z.From), z.Role, 0.12)
		s.Add(band)
		zoneLabels = append(zoneLabels, annotate.Label{
			Text:   z.Label,
			Anchor: geometry.Pt(f.Right, band.Bounds.Y),
			Offset: geometry.Pt(-6, 14),
			Align:  scene.AnchorEnd,
			Role:   z.Role,
			Size:   11,
			Bold:   true,
		})
	}

	ticks := y.Ticks(4)
	s.Add(annotate.Gridlines(f, y, ticks, annotate.Horizontal)...)
	s.Add(annotate.Axes(f)...)
	s.Add(annotate.AxisTitles(f, spec.XTitle, spec.YTitle)...)

	pts := make([]geometry.Point, len(spec.Points))
	for i, p := range spec.Points {
		pts[i] = geometry.Pt(x.Map(p[0]), y.Map(p[1]))
	}
	role := spec.Line
	if role == "" {
		role = theme.RoleAccent
	}
	s.Add(shapes.Smooth(f, pts, scene.Style{Stroke: role, StrokeWidth: 3}))
	if n := len(pts); n > 0 {
		s.Add(shapes.Marker(pts[n-1], 5, role))
	}
	s.Add(annotate.Labels(zoneLabels...)...)

	return compose(spec.ID, spec.Title, spec.Caption, c, f, s)
}
