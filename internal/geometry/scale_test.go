package geometry

import (
	"math"
	"testing"
)

func TestLinearEndpointsExact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d0, d1, p0, p1 float64
	}{
		{0, 1, 32, 608},
		{0, 100, 312, 36},
		{-3.7, 12.1, 0.3, 0.1},
		{1e-9, 3e-9, 1e6, 1e6 + 1},
		{5, -5, 10, 20},
	}

	for _, tt := range tests {
		s := NewLinear(tt.d0, tt.d1, tt.p0, tt.p1)
		if got := s.Map(tt.d0); got != tt.p0 {
			t.Errorf("Map(%v) = %v, want %v", tt.d0, got, tt.p0)
		}
		if got := s.Map(tt.d1); got != tt.p1 {
			t.Errorf("Map(%v) = %v, want %v", tt.d1, got, tt.p1)
		}
		if got := s.Invert(tt.p0); got != tt.d0 {
			t.Errorf("Invert(%v) = %v, want %v", tt.p0, got, tt.d0)
		}
	}
}

func TestLinearMonotonic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		s          Linear
		increasing bool
	}{
		{"increasing", NewLinear(0, 10, 0, 500), true},
		{"decreasing range", NewLinear(0, 10, 300, 20), false},
		{"reversed domain", NewLinear(10, 0, 0, 500), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d0, d1 := tt.s.Domain()
			prev := tt.s.Map(d0)
			for i := 1; i <= 100; i++ {
				v := d0 + (d1-d0)*float64(i)/100
				cur := tt.s.Map(v)
				if tt.increasing && cur <= prev {
					t.Fatalf("not increasing at %v: %v <= %v", v, cur, prev)
				}
				if !tt.increasing && cur >= prev {
					t.Fatalf("not decreasing at %v: %v >= %v", v, cur, prev)
				}
				prev = cur
			}
		})
	}
}

func TestLinearRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewLinear(-2, 7, 40, 620)
	for _, v := range []float64{-2, -1.5, 0, 3.3, 7, 9} {
		if got := s.Invert(s.Map(v)); math.Abs(got-v) > 1e-9 {
			t.Errorf("Invert(Map(%v)) = %v", v, got)
		}
	}
}

func TestLinearZeroDomain(t *testing.T) {
	t.Parallel()

	s := NewLinear(4, 4, 0, 100)
	for _, v := range []float64{-1, 4, 9} {
		if got := s.Map(v); got != 50 {
			t.Errorf("Map(%v) = %v, want 50", v, got)
		}
	}
}

func TestLinearTicks(t *testing.T) {
	t.Parallel()

	ticks := NewLinear(0, 1, 0, 100).Ticks(4)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(ticks) != len(want) {
		t.Fatalf("got %d ticks, want %d", len(ticks), len(want))
	}
	for i := range want {
		if math.Abs(ticks[i]-want[i]) > eps {
			t.Errorf("tick %d = %v, want %v", i, ticks[i], want[i])
		}
	}
	if got := NewLinear(2, 3, 0, 1).Ticks(0); len(got) != 2 {
		t.Errorf("Ticks(0) = %v, want both endpoints", got)
	}
}

func TestBand(t *testing.T) {
	t.Parallel()

	b := NewBand(3, 0, 300, 0, 0)
	if b.Bandwidth() != 100 {
		t.Errorf("Bandwidth = %v, want 100", b.Bandwidth())
	}
	if b.Center(1) != 150 {
		t.Errorf("Center(1) = %v, want 150", b.Center(1))
	}

	padded := NewBand(4, 40, 600, 0.3, 0.1)
	last := padded.Start(3) + padded.Bandwidth()
	if last > 600+eps {
		t.Errorf("last band ends at %v, beyond range", last)
	}
	if padded.Start(0) < 40 {
		t.Errorf("first band starts at %v, before range", padded.Start(0))
	}
	gap := padded.Start(1) - (padded.Start(0) + padded.Bandwidth())
	if gap <= 0 {
		t.Errorf("inner padding produced gap %v", gap)
	}

	if NewBand(0, 0, 10, 0, 0).Len() != 1 {
		t.Error("empty band count should degrade to one band")
	}
}
