package geom

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector
		want   Vector
		wantOK bool
	}{
		{"unit x", Vec(5, 0), Vec(1, 0), true},
		{"negative y", Vec(0, -3), Vec(0, -1), true},
		{"3-4-5", Vec(3, 4), Vec(0.6, 0.8), true},
		{"zero", Vec(0, 0), Vec(0, 0), false},
		{"nan", Vec(math.NaN(), 1), Vec(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.v)
			if ok != tt.wantOK {
				t.Fatalf("Normalize(%v) ok = %v, want %v", tt.v, ok, tt.wantOK)
			}
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("Normalize(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v    Vector
		want Point
	}{
		{Vec(0.4, 0.6), Pt(0, 1)},
		{Vec(0.5, -0.5), Pt(1, -1)},
		{Vec(-1.49, 2.51), Pt(-1, 3)},
		{Vec(7, -7), Pt(7, -7)},
	}

	for _, tt := range tests {
		if got := Round(tt.v); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestPointVector(t *testing.T) {
	p := Pt(-3, 8)
	if got := p.Vector(); got != Vec(-3, 8) {
		t.Errorf("Vector() = %v", got)
	}
	if got := Round(p.Vector()); got != p {
		t.Errorf("round trip = %v, want %v", got, p)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Vec(1, 1), Vec(4, 5)); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if !IsFinite(Vec(1, 2)) || IsFinite(Vec(math.Inf(1), 0)) {
		t.Error("IsFinite misreports")
	}
}

func TestSizeValid(t *testing.T) {
	tests := []struct {
		s    Size
		want bool
	}{
		{Sz(1, 1), true},
		{Sz(0, 3), false},
		{Sz(3, 0), false},
		{Sz(-1, 2), false},
		{Sz(-1, -1), false},
	}
	for _, tt := range tests {
		if got := tt.s.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v, want %v", tt.s, got, tt.want)
		}
	}
}
