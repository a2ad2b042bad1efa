package collector

import (
	"fmt"
	"sort"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/ftahirops/ledstat/model"
	"github.com/ftahirops/ledstat/util"
)

// ticksPerSecond converts gopsutil's CPU seconds back to USER_HZ ticks so
// both sources feed the sampler the same unit.
const ticksPerSecond = 100

// Gopsutil reads counters through the host's native APIs (host_processor_info
// on macOS, PDH on Windows, sysctl on the BSDs).
type Gopsutil struct {
	match Match

	cpuTimes func(percpu bool) ([]cpu.TimesStat, error)
	netIO    func(pernic bool) ([]psnet.IOCountersStat, error)
	diskIO   func(names ...string) (map[string]disk.IOCountersStat, error)
}

// NewGopsutil returns a Source backed by gopsutil.
func NewGopsutil(m Match) *Gopsutil {
	return &Gopsutil{
		match:    m,
		cpuTimes: cpu.Times,
		netIO:    psnet.IOCounters,
		diskIO:   disk.IOCounters,
	}
}

var _ Source = (*Gopsutil)(nil)

func (g *Gopsutil) Name() string { return KindGopsutil }

func (g *Gopsutil) CPU() (model.Sample, error) {
	stats, err := g.cpuTimes(true)
	if err != nil {
		return nil, fmt.Errorf("cpu times: %w", err)
	}
	if len(stats) == 0 {
		return nil, fmt.Errorf("cpu times: no cores reported: %w", ErrParse)
	}
	return pairs(stats, func(t cpu.TimesStat) model.CounterPair {
		return model.CPUTimes{
			User:    toTicks(t.User),
			Nice:    toTicks(t.Nice),
			System:  toTicks(t.System),
			Idle:    toTicks(t.Idle),
			IOWait:  toTicks(t.Iowait),
			IRQ:     toTicks(t.Irq),
			SoftIRQ: toTicks(t.Softirq),
			Steal:   toTicks(t.Steal),
		}.Pair()
	}), nil
}

func (g *Gopsutil) Network() (model.Sample, error) {
	counters, err := g.netIO(true)
	if err != nil {
		return nil, fmt.Errorf("net io counters: %w", err)
	}
	var s model.Sample
	for _, c := range counters {
		if !util.HasAnyPrefix(c.Name, g.match.InterfacePrefixes) {
			continue
		}
		s = append(s, model.CounterPair{A: c.BytesRecv, B: c.BytesSent})
	}
	return s, nil
}

func (g *Gopsutil) Disk() (model.Sample, error) {
	counters, err := g.diskIO()
	if err != nil {
		return nil, fmt.Errorf("disk io counters: %w", err)
	}
	// Map order is random; the sampler pairs units by position.
	names := make([]string, 0, len(counters))
	for name := range counters {
		if g.match.device("", name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	s := make(model.Sample, 0, len(names))
	for _, name := range names {
		c := counters[name]
		s = append(s, model.CounterPair{A: c.ReadBytes, B: c.WriteBytes})
	}
	return s, nil
}

func toTicks(seconds float64) uint64 {
	if seconds <= 0 {
		return 0
	}
	return uint64(seconds * ticksPerSecond)
}
