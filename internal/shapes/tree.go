package shapes

import (
	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/scene"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// Node is a tree vertex as the author writes it.
type Node struct {
	Label    string
	Role     theme.Role
	Children []Node
}

// PlacedNode is a node with its computed position.
type PlacedNode struct {
	Label  string
	Role   theme.Role
	At     geometry.Point
	Depth  int
	Parent int // index into TreeLayout.Nodes, -1 for the root
	Leaf   bool
}

// TreeLayout is the geometry of a laid-out tree.
type TreeLayout struct {
	Nodes []PlacedNode
	Edges []scene.Primitive
}

// Depth returns the number of levels in the tree rooted at n.
func (n Node) Depth() int {
	d := 0
	for _, c := range n.Children {
		if cd := c.Depth(); cd > d {
			d = cd
		}
	}
	return d + 1
}

// Leaves returns the number of leaf nodes under n, n included.
func (n Node) Leaves() int {
	if len(n.Children) == 0 {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += c.Leaves()
	}
	return total
}

// Tree lays root out top-down. Leaves sit in evenly spaced columns in
// depth-first order, every parent is centred over its first and last child
// and levels are spread evenly between the frame's top and bottom. Edges are
// vertical S-curves from parent to child. A nil root yields a flat line.
func Tree(frame geometry.Frame, root *Node) TreeLayout {
	if root == nil {
		return TreeLayout{Edges: []scene.Primitive{FlatLine(frame, frame.Center().Y, scene.Style{Stroke: theme.RoleGrid, StrokeWidth: 1})}}
	}

	leaves := root.Leaves()
	depth := root.Depth()
	columns := geometry.NewBand(leaves, frame.Left, frame.Right, 0, 0)
	rows := geometry.NewLinear(0, float64(max(depth-1, 1)), frame.Top, frame.Bottom)
	if depth == 1 {
		rows = geometry.NewLinear(0, 0, frame.Top, frame.Bottom)
	}

	l := &treeLayouter{columns: columns, rows: rows}
	l.place(*root, 0, -1)

	edgeStyle := scene.Style{Stroke: theme.RoleNeutral, StrokeWidth: 1.5}
	for _, n := range l.nodes {
		if n.Parent < 0 {
			continue
		}
		parent := l.nodes[n.Parent]
		l.edges = append(l.edges, VerticalSCurve(parent.At, n.At, edgeStyle))
	}
	return TreeLayout{Nodes: l.nodes, Edges: l.edges}
}

type treeLayouter struct {
	columns geometry.Band
	rows    geometry.Linear
	leaf    int
	nodes   []PlacedNode
	edges   []scene.Primitive
}

func (l *treeLayouter) place(n Node, depth, parent int) float64 {
	idx := len(l.nodes)
	l.nodes = append(l.nodes, PlacedNode{
		Label:  n.Label,
		Role:   n.Role,
		Depth:  depth,
		Parent: parent,
		Leaf:   len(n.Children) == 0,
	})

	var x float64
	if len(n.Children) == 0 {
		x = l.columns.Center(l.leaf)
		l.leaf++
	} else {
		first, last := 0.0, 0.0
		for i, c := range n.Children {
			cx := l.place(c, depth+1, idx)
			if i == 0 {
				first = cx
			}
			last = cx
		}
		x = (first + last) / 2
	}
	l.nodes[idx].At = geometry.Pt(x, l.rows.Map(float64(depth)))
	return x
}
