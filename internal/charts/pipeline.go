package charts

import (
	"strconv"

	"github.com/junkd0g/blogcharts/internal/annotate"
	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/scene"
	"github.com/junkd0g/blogcharts/internal/shapes"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// Stage is one box of a pipeline.
type Stage struct {
	Name   string
	Detail string
	Role   theme.Role
}

// PipelineSpec describes sequential stages joined by arrows.
type PipelineSpec struct {
	ID      string
	Title   string
	Caption string
	Canvas  geometry.Canvas

	Stages []Stage
	// Gap is the horizontal room for each arrow.
	Gap float64
}

// Pipeline builds a left-to-right stage diagram.
func Pipeline(spec PipelineSpec) Chart {
	c := canvasOr(spec.Canvas)
	f := geometry.NewFrame(c)
	s := scene.New()

	gap := spec.Gap
	if gap <= 0 {
		gap = 48
	}
	roles := make([]theme.Role, len(spec.Stages))
	for i, st := range spec.Stages {
		roles[i] = st.Role
		if roles[i] == "" {
			roles[i] = theme.RoleAccent
		}
	}
	layout := shapes.Stages(f, len(spec.Stages), gap, roles)
	s.Add(layout.Shapes...)

	labels := make([]annotate.Label, 0, 3*len(spec.Stages))
	for i, box := range layout.Boxes {
		st := spec.Stages[i]
		centre := box.Center()
		labels = append(labels,
			annotate.Label{
				Text:   stepLabel(i),
				Anchor: geometry.Pt(centre.X, box.Y),
				Offset: geometry.Pt(0, 24),
				Align:  scene.AnchorMiddle,
				Role:   roles[i],
				Size:   11,
				Bold:   true,
			},
			annotate.Label{
				Text:     st.Name,
				Anchor:   centre,
				Align:    scene.AnchorMiddle,
				Baseline: scene.BaselineMiddle,
				Size:     15,
				Bold:     true,
			},
		)
		if st.Detail != "" {
			labels = append(labels, annotate.Label{
				Text:     st.Detail,
				Anchor:   centre,
				Offset:   geometry.Pt(0, 22),
				Align:    scene.AnchorMiddle,
				Baseline: scene.BaselineMiddle,
				Role:     theme.RoleMuted,
				Size:     11,
			})
		}
	}
	s.Add(annotate.Labels(labels...)...)

	return compose(spec.ID, spec.Title, spec.Caption, c, f, s)
}

func stepLabel(i int) string {
	return "STEP " + strconv.Itoa(i+1)
}
