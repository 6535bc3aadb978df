package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNewFrameSubtractsPadding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		canvas Canvas
	}{
		{"article width", Canvas{Width: 640, Height: 360, Padding: Padding{Top: 36, Right: 32, Bottom: 48, Left: 32}}},
		{"no padding", Canvas{Width: 100, Height: 50}},
		{"fractional", Canvas{Width: 333.3, Height: 121.7, Padding: Padding{Top: 1.1, Right: 2.2, Bottom: 3.3, Left: 4.4}}},
		{"mobile", Canvas{Width: 320, Height: 240, Padding: Uniform(24)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.canvas
			f := NewFrame(c)
			wantW := c.Width - c.Padding.Left - c.Padding.Right
			wantH := c.Height - c.Padding.Top - c.Padding.Bottom
			if f.Width != wantW {
				t.Errorf("Width = %v, want %v", f.Width, wantW)
			}
			if f.Height != wantH {
				t.Errorf("Height = %v, want %v", f.Height, wantH)
			}
			if f.Left != c.Padding.Left || f.Top != c.Padding.Top {
				t.Errorf("origin = (%v,%v), want (%v,%v)", f.Left, f.Top, c.Padding.Left, c.Padding.Top)
			}
			if math.Abs(f.Right-(c.Width-c.Padding.Right)) > eps {
				t.Errorf("Right = %v, want %v", f.Right, c.Width-c.Padding.Right)
			}
		})
	}
}

func TestNewFrameDegenerateCanvas(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		canvas Canvas
	}{
		{"padding exceeds canvas", Canvas{Width: 10, Height: 10, Padding: Padding{Top: 36, Right: 32, Bottom: 48, Left: 32}}},
		{"padding equals canvas", Canvas{Width: 64, Height: 84, Padding: Padding{Top: 36, Right: 32, Bottom: 48, Left: 32}}},
		{"zero canvas", Canvas{Padding: Uniform(10)}},
		{"negative canvas", Canvas{Width: -5, Height: -5}},
		{"negative padding", Canvas{Width: 20, Height: 20, Padding: Uniform(-10)}},
		{"nan", Canvas{Width: math.NaN(), Height: 10, Padding: Padding{Left: math.NaN()}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(tt.canvas)
			if !(f.Width > 0) || !(f.Height > 0) {
				t.Fatalf("frame = %+v, want positive width and height", f)
			}
			if f.Left < 0 || f.Top < 0 {
				t.Errorf("frame origin negative: %+v", f)
			}
		})
	}
}

func TestNewFrameKeepsPaddingProportions(t *testing.T) {
	t.Parallel()

	f := NewFrame(Canvas{Width: 10, Height: 10, Padding: Padding{Top: 36, Right: 32, Bottom: 48, Left: 32}})

	if math.Abs(f.Width-10*MinPlotFraction) > eps {
		t.Errorf("Width = %v, want %v", f.Width, 10*MinPlotFraction)
	}
	if math.Abs(f.Left-(10-f.Right)) > eps {
		t.Errorf("left %v and right %v padding should stay equal", f.Left, 10-f.Right)
	}
	topShare := f.Top / (f.Top + (10 - f.Bottom))
	if math.Abs(topShare-36.0/84.0) > eps {
		t.Errorf("top share = %v, want %v", topShare, 36.0/84.0)
	}
}

func TestFrameAt(t *testing.T) {
	t.Parallel()

	f := NewFrame(Canvas{Width: 200, Height: 100, Padding: Uniform(10)})

	if got := f.At(0, 0); got != Pt(10, 10) {
		t.Errorf("At(0,0) = %v", got)
	}
	if got := f.At(1, 1); got != Pt(190, 90) {
		t.Errorf("At(1,1) = %v", got)
	}
	if got := f.Center(); got != Pt(100, 50) {
		t.Errorf("Center = %v", got)
	}
	if !f.Rect().Contains(f.Center()) {
		t.Error("frame rect should contain its centre")
	}
}

func TestCubicAtEndpoints(t *testing.T) {
	t.Parallel()

	p0, c1, c2, p1 := Pt(0.1, 0.7), Pt(3, 9), Pt(-4, 2), Pt(7.3, -1.9)

	if got := CubicAt(p0, c1, c2, p1, 0); got != p0 {
		t.Errorf("t=0 gives %v, want %v", got, p0)
	}
	if got := CubicAt(p0, c1, c2, p1, 1); got != p1 {
		t.Errorf("t=1 gives %v, want %v", got, p1)
	}
	mid := CubicAt(Pt(0, 0), Pt(0, 0), Pt(10, 10), Pt(10, 10), 0.5)
	if math.Abs(mid.X-5) > eps || math.Abs(mid.Y-5) > eps {
		t.Errorf("symmetric midpoint = %v, want (5,5)", mid)
	}
}

func TestLerp(t *testing.T) {
	t.Parallel()

	a, b := Pt(1, 2), Pt(5, 10)
	if got := Lerp(a, b, 0.5); got != Pt(3, 6) {
		t.Errorf("Lerp = %v", got)
	}
	if Lerp(a, b, 0) != a || Lerp(a, b, 1) != b {
		t.Error("Lerp endpoints drifted")
	}
}
