package engine

import "math"

// Normalize maps a raw per-tick delta onto [0,1] against the delta that is
// considered saturated. Anything at or above capacity is 1.
func Normalize(raw, capacity float64) float64 {
	if math.IsNaN(raw) || raw <= 0 {
		return 0
	}
	if capacity <= 0 || raw >= capacity {
		return 1
	}
	return raw / capacity
}

// Clamp01 limits an already-relative value (a CPU busy fraction) to [0,1].
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 1
	default:
		return v
	}
}

// Capacities are the per-tick byte deltas at which a channel saturates.
type Capacities struct {
	NetRecv   float64
	NetSent   float64
	DiskRead  float64
	DiskWrite float64
}

// DefaultCapacities: 200 MB per tick of disk traffic either way, 1 MB
// received and 100 kB sent on the network.
func DefaultCapacities() Capacities {
	return Capacities{
		NetRecv:   1_000_000,
		NetSent:   100_000,
		DiskRead:  200_000_000,
		DiskWrite: 200_000_000,
	}
}
