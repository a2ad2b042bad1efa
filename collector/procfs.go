package collector

import "github.com/ftahirops/ledstat/model"

// SectorSize is the unit of the sector counters in /proc/diskstats,
// independent of the device's physical sector size.
const SectorSize = 512

// Procfs reads counters from a Linux proc filesystem.
type Procfs struct {
	root  string
	match Match
}

// NewProcfs returns a Source reading below root (normally "/proc").
func NewProcfs(root string, m Match) *Procfs {
	return &Procfs{root: root, match: m}
}

func (p *Procfs) Name() string { return KindProcfs }

func (p *Procfs) path(rel string) string { return p.root + "/" + rel }

var _ Source = (*Procfs)(nil)

// pairs converts parsed rows into a Sample, keeping source order.
func pairs[T any](rows []T, pair func(T) model.CounterPair) model.Sample {
	s := make(model.Sample, 0, len(rows))
	for _, r := range rows {
		s = append(s, pair(r))
	}
	return s
}
