package render

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/junkd0g/blogcharts/internal/charts"
	"github.com/junkd0g/blogcharts/internal/scene"
	"github.com/junkd0g/blogcharts/internal/theme"
)

type fontSet struct {
	regular *text.FontSource
	bold    *text.FontSource
}

var loadFonts = sync.OnceValues(func() (fontSet, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("failed to load bold font: %w", err)
	}
	return fontSet{regular: regular, bold: bold}, nil
})

// PNG rasterises ch at scale times its logical size. Colours are always
// the theme's literal values since a bitmap has no host page to inherit
// tokens from.
func PNG(w io.Writer, ch charts.Chart, th theme.Theme, scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	fonts, err := loadFonts()
	if err != nil {
		return err
	}

	width := max(int(math.Ceil(ch.Canvas.Width*scale)), 1)
	height := max(int(math.Ceil(ch.Canvas.Height*scale)), 1)
	dc := gg.NewContext(width, height)
	defer dc.Close()

	r := &rasterizer{dc: dc, th: th.Literal(), scale: scale, fonts: fonts}
	dc.ClearWithColor(gg.Hex(r.th.Hex(theme.RoleSurface)))

	for _, p := range ch.Primitives {
		if err := r.draw(p); err != nil {
			return fmt.Errorf("failed to rasterise %s: %w", p.Kind(), err)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

type rasterizer struct {
	dc    *gg.Context
	th    theme.Theme
	scale float64
	fonts fontSet
}

func (r *rasterizer) draw(p scene.Primitive) error {
	s := r.scale
	switch v := p.(type) {
	case scene.Line:
		r.dc.DrawLine(v.From.X*s, v.From.Y*s, v.To.X*s, v.To.Y*s)
		return r.paint(v.Style, false)
	case scene.Curve:
		r.dc.MoveTo(v.Start.X*s, v.Start.Y*s)
		for _, seg := range v.Segments {
			r.dc.CubicTo(seg.C1.X*s, seg.C1.Y*s, seg.C2.X*s, seg.C2.Y*s, seg.End.X*s, seg.End.Y*s)
		}
		return r.paint(v.Style, false)
	case scene.Circle:
		r.dc.DrawCircle(v.Center.X*s, v.Center.Y*s, v.R*s)
		return r.paint(v.Style, true)
	case scene.Rect:
		b := v.Bounds
		if b.W <= 0 || b.H <= 0 {
			return nil
		}
		if v.Radius > 0 {
			r.dc.DrawRoundedRectangle(b.X*s, b.Y*s, b.W*s, b.H*s, v.Radius*s)
		} else {
			r.dc.DrawRectangle(b.X*s, b.Y*s, b.W*s, b.H*s)
		}
		return r.paint(v.Style, true)
	case scene.Text:
		r.text(v)
	}
	return nil
}

// paint fills and/or strokes the current path, then clears it.
func (r *rasterizer) paint(st scene.Style, fillable bool) error {
	defer r.dc.ClearPath()

	alpha := 1.0
	if st.Opacity > 0 && st.Opacity < 1 {
		alpha = st.Opacity
	}
	filled := fillable && st.Fill != "" && st.Fill != theme.RoleNone
	if filled {
		r.setColor(st.Fill, alpha)
		if err := r.dc.FillPreserve(); err != nil {
			return err
		}
	}
	if st.Stroke == "" || st.Stroke == theme.RoleNone {
		return nil
	}
	// Opacity applies to the fill when there is one, as in the SVG output.
	if filled {
		alpha = 1
	}
	r.setColor(st.Stroke, alpha)
	lw := st.StrokeWidth
	if lw <= 0 {
		lw = 1
	}
	r.dc.SetLineWidth(lw * r.scale)
	if len(st.Dash) > 0 {
		dash := make([]float64, len(st.Dash))
		for i, d := range st.Dash {
			dash[i] = d * r.scale
		}
		r.dc.SetDash(dash...)
		defer r.dc.ClearDash()
	}
	return r.dc.StrokePreserve()
}

func (r *rasterizer) setColor(role theme.Role, alpha float64) {
	c := gg.Hex(r.th.Hex(role))
	r.dc.SetRGBA(c.R, c.G, c.B, c.A*alpha)
}

func (r *rasterizer) text(t scene.Text) {
	src := r.fonts.regular
	if t.Bold {
		src = r.fonts.bold
	}
	r.dc.SetFont(src.Face(t.Size * r.scale))
	r.setColor(t.Fill, 1)

	ax := 0.0
	switch t.Anchor {
	case scene.AnchorMiddle:
		ax = 0.5
	case scene.AnchorEnd:
		ax = 1
	}
	// ay shifts the baseline down by a fraction of the line height.
	ay := 0.0
	switch t.Baseline {
	case scene.BaselineMiddle:
		ay = 0.3
	case scene.BaselineHanging:
		ay = 0.75
	}
	r.dc.DrawStringAnchored(t.Content, t.At.X*r.scale, t.At.Y*r.scale, ax, ay)
}
