package charts

import (
	"github.com/junkd0g/blogcharts/internal/annotate"
	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/scene"
	"github.com/junkd0g/blogcharts/internal/shapes"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// TreeSpec describes a dependency tree drawn top-down.
type TreeSpec struct {
	ID      string
	Title   string
	Caption string
	Canvas  geometry.Canvas

	Root *shapes.Node
	// NodeRadius defaults to 7.
	NodeRadius float64
}

// DependencyTree builds an N-ary tree chart.
func DependencyTree(spec TreeSpec) Chart {
	c := canvasOr(spec.Canvas)
	f := geometry.NewFrame(c)
	s := scene.New()

	r := spec.NodeRadius
	if r <= 0 {
		r = 7
	}

	layout := shapes.Tree(f, spec.Root)
	s.Add(layout.Edges...)

	labels := make([]annotate.Label, 0, len(layout.Nodes))
	for _, n := range layout.Nodes {
		role := n.Role
		if role == "" {
			role = theme.RoleAccent
		}
		marker := shapes.Marker(n.At, r, role)
		marker.Title = n.Label
		s.Add(marker)

		l := annotate.Label{
			Text:       n.Label,
			Anchor:     n.At,
			Align:      scene.AnchorMiddle,
			Size:       11,
			Background: true,
		}
		// Leaves hang their label below, inner nodes above, so the
		// label never sits on top of an edge leaving the node.
		if n.Leaf {
			l.Offset = geometry.Pt(0, r+14)
		} else {
			l.Offset = geometry.Pt(0, -(r + 6))
		}
		labels = append(labels, l)
	}
	s.Add(annotate.Labels(labels...)...)

	return compose(spec.ID, spec.Title, spec.Caption, c, f, s)
}
