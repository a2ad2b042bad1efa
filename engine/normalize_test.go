package engine

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name          string
		raw, capacity float64
		want          float64
	}{
		{"zero", 0, 100, 0},
		{"quarter", 25, 100, 0.25},
		{"midpoint", 50, 100, 0.5},
		{"at capacity", 100, 100, 1},
		{"above capacity", 1e12, 100, 1},
		{"negative", -5, 100, 0},
		{"NaN", math.NaN(), 100, 0},
		{"zero capacity with traffic", 1, 0, 1},
		{"zero capacity idle", 0, 0, 0},
		{"disk read boundary", 200_000_000, DefaultCapacities().DiskRead, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw, tt.capacity)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Normalize(%v, %v) = %v, want %v", tt.raw, tt.capacity, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Normalize(%v, %v) = %v outside [0,1]", tt.raw, tt.capacity, got)
			}
		})
	}
}

func TestNormalizeExactlyOneAtCapacity(t *testing.T) {
	caps := DefaultCapacities()
	for _, c := range []float64{caps.NetRecv, caps.NetSent, caps.DiskRead, caps.DiskWrite} {
		if got := Normalize(c, c); got != 1.0 {
			t.Errorf("Normalize(%v, %v) = %v, want exactly 1", c, c, got)
		}
		if got := Normalize(c-1, c); got >= 1.0 {
			t.Errorf("Normalize(%v, %v) = %v, want < 1", c-1, c, got)
		}
	}
}

func TestClamp01(t *testing.T) {
	for in, want := range map[float64]float64{
		-1:   0,
		0:    0,
		0.3:  0.3,
		1:    1,
		1.01: 1,
	} {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%v) = %v, want %v", in, got, want)
		}
	}
	if got := Clamp01(math.NaN()); got != 0 {
		t.Errorf("Clamp01(NaN) = %v, want 0", got)
	}
}
