package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/junkd0g/blogcharts/internal/charts"
	"github.com/junkd0g/blogcharts/internal/scene"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// idNamespace scopes the element ids generated for charts.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/junkd0g/blogcharts"))

// ElementID returns the id prefix used for a chart's SVG elements. It is
// derived from the chart id alone, so repeated renders are byte-identical
// while different charts on one page never collide.
func ElementID(ch charts.Chart) string {
	id := uuid.NewSHA1(idNamespace, []byte(ch.ID))
	return "chart-" + id.String()[:8]
}

// SVG writes ch as a standalone, viewBox-scaled SVG element.
func SVG(w io.Writer, ch charts.Chart, th theme.Theme) error {
	var buf bytes.Buffer
	writeSVG(&buf, ch, th)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

// SVGString is SVG into a string.
func SVGString(ch charts.Chart, th theme.Theme) string {
	var buf bytes.Buffer
	writeSVG(&buf, ch, th)
	return buf.String()
}

// Figure wraps the SVG in a figure element with the chart caption.
func Figure(w io.Writer, ch charts.Chart, th theme.Theme) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<figure class="chart" id="fig-%s">`, escape(ch.ID))
	buf.WriteString("\n")
	writeSVG(&buf, ch, th)
	if ch.Caption != "" {
		fmt.Fprintf(&buf, "<figcaption>%s</figcaption>\n", escape(ch.Caption))
	}
	buf.WriteString("</figure>\n")
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write figure: %w", err)
	}
	return nil
}

func writeSVG(buf *bytes.Buffer, ch charts.Chart, th theme.Theme) {
	id := ElementID(ch)
	fmt.Fprintf(buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="100%%" preserveAspectRatio="xMidYMid meet" role="img" aria-labelledby="%s-title %s-desc" class="chart-svg" font-family="%s">`,
		num(ch.Canvas.Width), num(ch.Canvas.Height), id, id, escape(th.FontFamily))
	buf.WriteString("\n")
	fmt.Fprintf(buf, "<title id=\"%s-title\">%s</title>\n", id, escape(ch.Title))
	fmt.Fprintf(buf, "<desc id=\"%s-desc\">%s</desc>\n", id, escape(ch.Caption))

	for _, p := range ch.Primitives {
		writePrimitive(buf, p, th)
	}
	buf.WriteString("</svg>\n")
}

func writePrimitive(buf *bytes.Buffer, p scene.Primitive, th theme.Theme) {
	switch v := p.(type) {
	case scene.Line:
		fmt.Fprintf(buf, `<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`,
			num(v.From.X), num(v.From.Y), num(v.To.X), num(v.To.Y), strokeAttrs(v.Style, th))
	case scene.Curve:
		fmt.Fprintf(buf, `<path d="%s" fill="none" stroke-linecap="round"%s>`, pathData(v), strokeAttrs(v.Style, th))
		writeTitle(buf, v.Title)
		buf.WriteString("</path>")
	case scene.Circle:
		fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="%s"%s%s>`,
			num(v.Center.X), num(v.Center.Y), num(v.R), fillAttrs(v.Style, th), strokeAttrs(v.Style, th))
		writeTitle(buf, v.Title)
		buf.WriteString("</circle>")
	case scene.Rect:
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s"`,
			num(v.Bounds.X), num(v.Bounds.Y), num(math.Max(v.Bounds.W, 0)), num(math.Max(v.Bounds.H, 0)))
		if v.Radius > 0 {
			fmt.Fprintf(buf, ` rx="%s"`, num(v.Radius))
		}
		fmt.Fprintf(buf, `%s%s>`, fillAttrs(v.Style, th), strokeAttrs(v.Style, th))
		writeTitle(buf, v.Title)
		buf.WriteString("</rect>")
	case scene.Text:
		fmt.Fprintf(buf, `<text x="%s" y="%s" font-size="%s" text-anchor="%s"`,
			num(v.At.X), num(v.At.Y), num(v.Size), v.Anchor)
		if v.Baseline != "" && v.Baseline != scene.BaselineAuto {
			fmt.Fprintf(buf, ` dominant-baseline="%s"`, v.Baseline)
		}
		if v.Bold {
			buf.WriteString(` font-weight="600"`)
		}
		fmt.Fprintf(buf, ` fill="%s">%s</text>`, escape(th.Paint(v.Fill)), escape(v.Content))
	default:
		return
	}
	buf.WriteString("\n")
}

func pathData(c scene.Curve) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "M%s %s", num(c.Start.X), num(c.Start.Y))
	for _, s := range c.Segments {
		fmt.Fprintf(&sb, " C%s %s %s %s %s %s",
			num(s.C1.X), num(s.C1.Y), num(s.C2.X), num(s.C2.Y), num(s.End.X), num(s.End.Y))
	}
	return sb.String()
}

func strokeAttrs(s scene.Style, th theme.Theme) string {
	if s.Stroke == "" || s.Stroke == theme.RoleNone {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, ` stroke="%s"`, escape(th.Paint(s.Stroke)))
	if s.StrokeWidth > 0 {
		fmt.Fprintf(&sb, ` stroke-width="%s"`, num(s.StrokeWidth))
	}
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = num(d)
		}
		fmt.Fprintf(&sb, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	if s.Opacity > 0 && s.Opacity < 1 && (s.Fill == "" || s.Fill == theme.RoleNone) {
		fmt.Fprintf(&sb, ` stroke-opacity="%s"`, num(s.Opacity))
	}
	return sb.String()
}

func fillAttrs(s scene.Style, th theme.Theme) string {
	if s.Fill == "" || s.Fill == theme.RoleNone {
		return ` fill="none"`
	}
	out := fmt.Sprintf(` fill="%s"`, escape(th.Paint(s.Fill)))
	if s.Opacity > 0 && s.Opacity < 1 {
		out += fmt.Sprintf(` fill-opacity="%s"`, num(s.Opacity))
	}
	return out
}

func writeTitle(buf *bytes.Buffer, title string) {
	if title == "" {
		return
	}
	fmt.Fprintf(buf, "<title>%s</title>", escape(title))
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
