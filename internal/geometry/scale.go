package geometry

// Linear maps a data domain [d0,d1] onto a pixel range [p0,p1].
type Linear struct {
	d0, d1 float64
	p0, p1 float64
}

// NewLinear returns the scale taking d0 to p0 and d1 to p1.
func NewLinear(d0, d1, p0, p1 float64) Linear {
	return Linear{d0: d0, d1: d1, p0: p0, p1: p1}
}

// Domain returns the data interval.
func (s Linear) Domain() (float64, float64) { return s.d0, s.d1 }

// Range returns the pixel interval.
func (s Linear) Range() (float64, float64) { return s.p0, s.p1 }

// Map converts a domain value to a pixel coordinate. Values outside the
// domain extrapolate. A zero-width domain maps everything to the middle
// of the range.
func (s Linear) Map(v float64) float64 {
	if s.d0 == s.d1 {
		return (s.p0 + s.p1) / 2
	}
	// Endpoints are returned verbatim so they never drift.
	switch v {
	case s.d0:
		return s.p0
	case s.d1:
		return s.p1
	}
	t := (v - s.d0) / (s.d1 - s.d0)
	return s.p0 + t*(s.p1-s.p0)
}

// Invert converts a pixel coordinate back to the domain.
func (s Linear) Invert(px float64) float64 {
	if s.p0 == s.p1 {
		return (s.d0 + s.d1) / 2
	}
	switch px {
	case s.p0:
		return s.d0
	case s.p1:
		return s.d1
	}
	t := (px - s.p0) / (s.p1 - s.p0)
	return s.d0 + t*(s.d1-s.d0)
}

// Ticks returns n+1 evenly spaced domain values from d0 to d1 inclusive.
func (s Linear) Ticks(n int) []float64 {
	if n < 1 {
		return []float64{s.d0, s.d1}
	}
	ticks := make([]float64, n+1)
	step := (s.d1 - s.d0) / float64(n)
	for i := range ticks {
		ticks[i] = s.d0 + step*float64(i)
	}
	ticks[n] = s.d1
	return ticks
}

// Band divides a pixel range into n equal bands separated by gaps.
// PaddingInner and PaddingOuter are fractions of the step, as in most
// plotting toolkits.
type Band struct {
	n         int
	start     float64
	step      float64
	bandwidth float64
}

// NewBand lays n bands out across [p0,p1]. n below 1 is treated as 1.
func NewBand(n int, p0, p1, paddingInner, paddingOuter float64) Band {
	if n < 1 {
		n = 1
	}
	paddingInner = clamp01(paddingInner)
	if paddingOuter < 0 {
		paddingOuter = 0
	}
	span := p1 - p0
	step := span / (float64(n) - paddingInner + 2*paddingOuter)
	return Band{
		n:         n,
		start:     p0 + step*paddingOuter,
		step:      step,
		bandwidth: step * (1 - paddingInner),
	}
}

// Len returns the number of bands.
func (b Band) Len() int { return b.n }

// Start returns the leading edge of band i.
func (b Band) Start(i int) float64 { return b.start + b.step*float64(i) }

// Center returns the middle of band i.
func (b Band) Center(i int) float64 { return b.Start(i) + b.bandwidth/2 }

// Bandwidth returns the width of a single band.
func (b Band) Bandwidth() float64 { return b.bandwidth }

// Step returns the distance between the starts of consecutive bands.
func (b Band) Step() float64 { return b.step }

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v >= 1:
		return 0.99
	}
	return v
}
