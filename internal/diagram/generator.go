package diagram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/junkd0g/blogcharts/internal/charts"
	"github.com/junkd0g/blogcharts/internal/shapes"
	"github.com/junkd0g/blogcharts/internal/theme"
)

var (
	// ErrNotTree is returned when a tree spec has no root.
	ErrNotTree = errors.New("tree spec has no root")
	// ErrUnsupportedOutput is returned for output paths that are not
	// .dot, .svg or .png.
	ErrUnsupportedOutput = errors.New("unsupported output extension")
)

// Generate produces the file content for outputPath, chosen by its
// extension: DOT text for .dot, and a graphviz layout as SVG or PNG for .svg
// and .png.
func Generate(ctx context.Context, tree charts.TreeSpec, th theme.Theme, outputPath string) ([]byte, error) {
	var format graphviz.Format
	switch ext := strings.ToLower(filepath.Ext(outputPath)); ext {
	case ".dot", ".gv":
		if tree.Root == nil {
			return nil, ErrNotTree
		}
		return []byte(GenerateDOT(tree, th)), nil
	case ".svg":
		format = graphviz.SVG
	case ".png":
		format = graphviz.PNG
	default:
		return nil, fmt.Errorf("%w %q, want .dot, .svg or .png", ErrUnsupportedOutput, ext)
	}

	var buf bytes.Buffer
	if err := Render(ctx, tree, th, format, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render writes the graphviz layout of the tree to w.
func Render(ctx context.Context, tree charts.TreeSpec, th theme.Theme, format graphviz.Format, w io.Writer) error {
	if tree.Root == nil {
		return ErrNotTree
	}

	g, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer g.Close()

	graph, err := graphviz.ParseBytes([]byte(GenerateDOT(tree, th)))
	if err != nil {
		return fmt.Errorf("failed to parse DOT: %w", err)
	}
	defer graph.Close()

	if err := g.Render(ctx, graph, format, w); err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}

	return nil
}

// GenerateDOT creates a top-down DOT representation of the tree, coloured
// with the theme's literal values.
func GenerateDOT(tree charts.TreeSpec, th theme.Theme) string {
	var sb strings.Builder

	sb.WriteString("digraph Tree {\n")
	sb.WriteString("  rankdir=TB;\n")
	if tree.Title != "" {
		sb.WriteString(fmt.Sprintf("  label=%s;\n", quote(tree.Title)))
		sb.WriteString("  labelloc=t;\n")
	}
	sb.WriteString("  fontname=\"Helvetica-Bold\";\n")
	sb.WriteString(fmt.Sprintf("  bgcolor=%s;\n", quote(th.Hex(theme.RoleSurface))))
	sb.WriteString("  pad=0.3;\n")
	sb.WriteString("  nodesep=0.5;\n")
	sb.WriteString("  ranksep=0.6;\n")
	sb.WriteString("  splines=spline;\n\n")

	sb.WriteString(fmt.Sprintf("  node [fontname=\"Helvetica\", fontsize=12, shape=box, style=\"rounded,filled\", penwidth=2, fontcolor=%s];\n",
		quote(th.Hex(theme.RoleText))))
	sb.WriteString(fmt.Sprintf("  edge [penwidth=1.5, arrowsize=0.7, color=%s];\n\n", quote(th.Hex(theme.RoleMuted))))

	if tree.Root == nil {
		sb.WriteString("}\n")
		return sb.String()
	}

	w := dotWriter{sb: &sb, th: th}
	w.node(*tree.Root)

	sb.WriteString("}\n")

	return sb.String()
}

// dotWriter numbers nodes in preorder so repeated labels stay distinct.
type dotWriter struct {
	sb   *strings.Builder
	th   theme.Theme
	next int
}

func (w *dotWriter) node(n shapes.Node) string {
	id := fmt.Sprintf("n%d", w.next)
	w.next++

	role := n.Role
	if role == "" {
		role = theme.RoleAccent
	}
	w.sb.WriteString(fmt.Sprintf("  %s [label=%s, color=%s, fillcolor=%s];\n",
		id, quote(n.Label), quote(w.th.Hex(role)), quote(w.th.Hex(theme.RoleSurface))))

	for _, c := range n.Children {
		child := w.node(c)
		w.sb.WriteString(fmt.Sprintf("  %s -> %s;\n", id, child))
	}
	return id
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
