package engine

import (
	"io"
	"log/slog"
	"slices"

	"github.com/ftahirops/ledstat/model"
	"github.com/ftahirops/ledstat/util"
)

// Sampler turns successive cumulative samples of one subsystem into
// per-tick activity. It remembers exactly one previous sample.
type Sampler struct {
	subsystem model.Subsystem
	prev      model.Sample
	primed    bool
	logger    *slog.Logger
}

// NewSampler creates a Sampler for one subsystem.
// If logger is nil, a no-op logger is used.
func NewSampler(s model.Subsystem, logger *slog.Logger) *Sampler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Sampler{subsystem: s, logger: logger}
}

// advance stores cur as the new baseline and returns the sample to diff
// against. On the first call, or when the unit count changed since the last
// call, the baseline is cur itself and every delta comes out zero.
func (s *Sampler) advance(cur model.Sample) model.Sample {
	prev := s.prev
	switch {
	case !s.primed:
		prev = cur
	case len(prev) != len(cur):
		s.logger.Warn("unit count changed, re-baselining",
			"subsystem", s.subsystem, "before", len(prev), "after", len(cur))
		prev = cur
	}
	s.prev = slices.Clone(cur)
	s.primed = true
	return prev
}

// Ratios returns, per unit, the fraction of elapsed ticks spent busy.
// Each sample pair is (busy, total).
func (s *Sampler) Ratios(cur model.Sample) []float64 {
	prev := s.advance(cur)
	out := make([]float64, len(cur))
	for i, c := range cur {
		out[i] = util.Ratio(prev[i].A, c.A, prev[i].B, c.B)
	}
	return out
}

// Deltas returns the per-unit deltas summed across all units.
func (s *Sampler) Deltas(cur model.Sample) model.CounterPair {
	prev := s.advance(cur)
	var d model.CounterPair
	for i, c := range cur {
		d.A += util.Delta(prev[i].A, c.A)
		d.B += util.Delta(prev[i].B, c.B)
	}
	return d
}

// Reset forgets the baseline; the next call behaves like the first tick.
func (s *Sampler) Reset() {
	s.prev = nil
	s.primed = false
}
