package engine

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/ftahirops/ledstat/collector"
	"github.com/ftahirops/ledstat/model"
)

// Channels assigns a subsystem to each colour channel, indexed by
// model.Channel. An empty entry leaves that channel dark.
type Channels [3]model.Subsystem

// DefaultChannels shows CPU in red, disk in green and network in blue.
func DefaultChannels() Channels {
	return Channels{
		model.ChannelRed:   model.SubsystemCPU,
		model.ChannelGreen: model.SubsystemDisk,
		model.ChannelBlue:  model.SubsystemNetwork,
	}
}

// PipelineConfig configures a Pipeline.
type PipelineConfig struct {
	NumLEDs    int
	Capacities Capacities
	Channels   Channels
	// CPUTotal folds all cores into one unit before sampling, so the whole
	// strip shows overall load instead of one share per core.
	CPUTotal bool
	Logger   *slog.Logger
}

// Pipeline runs one sample → normalize → encode → report cycle per Tick.
// It is not safe for concurrent use; the scheduler owns it.
type Pipeline struct {
	src    collector.Source
	cfg    PipelineConfig
	cpu    *Sampler
	net    *Sampler
	disk   *Sampler
	logger *slog.Logger
}

// NewPipeline creates a Pipeline reading from src.
func NewPipeline(src collector.Source, cfg PipelineConfig) *Pipeline {
	if cfg.NumLEDs <= 0 {
		cfg.NumLEDs = model.NumLEDs
	}
	if cfg.Capacities == (Capacities{}) {
		cfg.Capacities = DefaultCapacities()
	}
	if cfg.Channels == (Channels{}) {
		cfg.Channels = DefaultChannels()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		src:    src,
		cfg:    cfg,
		cpu:    NewSampler(model.SubsystemCPU, logger),
		net:    NewSampler(model.SubsystemNetwork, logger),
		disk:   NewSampler(model.SubsystemDisk, logger),
		logger: logger,
	}
}

// NumLEDs returns the frame length the pipeline encodes.
func (p *Pipeline) NumLEDs() int { return p.cfg.NumLEDs }

// Tick reads all three subsystems and returns the HID report for this tick
// together with the values it was derived from. Source errors are returned
// as-is with the failing subsystem named; nothing is retried.
func (p *Pipeline) Tick() ([]byte, model.Reading, error) {
	cpuSample, err := p.src.CPU()
	if err != nil {
		return nil, model.Reading{}, fmt.Errorf("sample cpu: %w", err)
	}
	diskSample, err := p.src.Disk()
	if err != nil {
		return nil, model.Reading{}, fmt.Errorf("sample disk: %w", err)
	}
	netSample, err := p.src.Network()
	if err != nil {
		return nil, model.Reading{}, fmt.Errorf("sample net: %w", err)
	}
	if p.cfg.CPUTotal {
		cpuSample = model.Sample{cpuSample.Sum()}
	}

	var r model.Reading
	r.CPU = p.cpu.Ratios(cpuSample)
	for i, v := range r.CPU {
		r.CPU[i] = Clamp01(v)
	}

	caps := p.cfg.Capacities
	r.DiskDelta = p.disk.Deltas(diskSample)
	r.Disk = [2]float64{
		Normalize(float64(r.DiskDelta.A), caps.DiskRead),
		Normalize(float64(r.DiskDelta.B), caps.DiskWrite),
	}
	r.NetDelta = p.net.Deltas(netSample)
	r.Net = [2]float64{
		Normalize(float64(r.NetDelta.A), caps.NetRecv),
		Normalize(float64(r.NetDelta.B), caps.NetSent),
	}

	ch := p.cfg.Channels
	r.Frame = Encode(
		r.Metrics(ch[model.ChannelRed]),
		r.Metrics(ch[model.ChannelGreen]),
		r.Metrics(ch[model.ChannelBlue]),
		p.cfg.NumLEDs,
	)

	p.logger.Debug("tick",
		"cpu", r.CPU,
		"disk_read", humanize.Bytes(r.DiskDelta.A),
		"disk_written", humanize.Bytes(r.DiskDelta.B),
		"net_recv", humanize.Bytes(r.NetDelta.A),
		"net_sent", humanize.Bytes(r.NetDelta.B),
	)
	return BuildReport(r.Frame), r, nil
}

// Off returns the all-dark report for this pipeline's strip.
func (p *Pipeline) Off() []byte {
	return DarkReport(p.cfg.NumLEDs)
}
