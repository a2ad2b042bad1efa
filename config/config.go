// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ftahirops/ledstat/collector"
	"github.com/ftahirops/ledstat/engine"
	"github.com/ftahirops/ledstat/model"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// CPU display modes.
const (
	CPUModePerCore = "per-core"
	CPUModeTotal   = "total"
)

// Config holds everything the daemon can be told without recompiling.
type Config struct {
	// Interval is a duration string (e.g. "2s", "500ms") between reports.
	Interval string `yaml:"interval"`
	// FixedRate keeps reports on a fixed grid instead of sleeping after each write.
	FixedRate bool `yaml:"fixed_rate"`
	// LEDs is the strip length; it must match the firmware.
	LEDs int `yaml:"leds"`
	// Source selects the counter backend: auto, procfs, gopsutil or stub.
	Source string `yaml:"source"`

	Device   DeviceConfig   `yaml:"device"`
	CPU      CPUConfig      `yaml:"cpu"`
	Net      NetConfig      `yaml:"net"`
	Disk     DiskConfig     `yaml:"disk"`
	Channels ChannelsConfig `yaml:"channels"`
	Log      LogConfig      `yaml:"log"`
}

// DeviceConfig identifies the USB device.
type DeviceConfig struct {
	VendorID  uint16 `yaml:"vendor_id"`
	ProductID uint16 `yaml:"product_id"`
}

// CPUConfig controls how cores map onto the strip.
type CPUConfig struct {
	// Mode is "per-core" (one LED share per core) or "total".
	Mode string `yaml:"mode"`
}

// NetConfig selects interfaces and their saturation points.
type NetConfig struct {
	// Prefixes matches interface names, e.g. "en" and "wl".
	Prefixes []string `yaml:"prefixes"`
	// RecvCapacity is the received bytes per tick shown at full brightness.
	RecvCapacity float64 `yaml:"recv_capacity"`
	// SentCapacity is the sent bytes per tick shown at full brightness.
	SentCapacity float64 `yaml:"sent_capacity"`
}

// DiskConfig selects disks and their saturation points.
type DiskConfig struct {
	// Devices lists "major:minor" numbers or device names.
	Devices       []string `yaml:"devices"`
	ReadCapacity  float64  `yaml:"read_capacity"`
	WriteCapacity float64  `yaml:"write_capacity"`
}

// ChannelsConfig assigns "cpu", "net", "disk" or "" to each colour.
type ChannelsConfig struct {
	Red   string `yaml:"red"`
	Green string `yaml:"green"`
	Blue  string `yaml:"blue"`
}

// LogConfig holds diagnostic output settings.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration.
func Default() Config {
	m := collector.DefaultMatch()
	caps := engine.DefaultCapacities()
	return Config{
		Interval: engine.DefaultInterval.String(),
		LEDs:     model.NumLEDs,
		Source:   collector.KindAuto,
		Device: DeviceConfig{
			VendorID:  model.DefaultVendorID,
			ProductID: model.DefaultProductID,
		},
		CPU: CPUConfig{Mode: CPUModePerCore},
		Net: NetConfig{
			Prefixes:     m.InterfacePrefixes,
			RecvCapacity: caps.NetRecv,
			SentCapacity: caps.NetSent,
		},
		Disk: DiskConfig{
			Devices:       m.Devices,
			ReadCapacity:  caps.DiskRead,
			WriteCapacity: caps.DiskWrite,
		},
		Channels: ChannelsConfig{
			Red:   string(model.SubsystemCPU),
			Green: string(model.SubsystemDisk),
			Blue:  string(model.SubsystemNetwork),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Path returns ~/.config/ledstat/config.yaml (or under XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "ledstat", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error; a
// file that does not parse or validate is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %v: %w", path, err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format+": %w", append(args, ErrInvalidConfig)...))
	}

	if d, err := time.ParseDuration(c.Interval); err != nil || d <= 0 {
		add("interval %q must be a positive duration", c.Interval)
	}
	if c.LEDs <= 0 {
		add("leds must be positive, got %d", c.LEDs)
	}
	switch c.Source {
	case collector.KindAuto, collector.KindProcfs, collector.KindGopsutil, collector.KindStub:
	default:
		add("unknown source %q", c.Source)
	}
	if c.CPU.Mode != CPUModePerCore && c.CPU.Mode != CPUModeTotal {
		add("cpu.mode %q must be %q or %q", c.CPU.Mode, CPUModePerCore, CPUModeTotal)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"net.recv_capacity", c.Net.RecvCapacity},
		{"net.sent_capacity", c.Net.SentCapacity},
		{"disk.read_capacity", c.Disk.ReadCapacity},
		{"disk.write_capacity", c.Disk.WriteCapacity},
	} {
		if f.v <= 0 {
			add("%s must be positive, got %v", f.name, f.v)
		}
	}

	seen := make(map[string]string)
	for _, ch := range []struct{ colour, sub string }{
		{"red", c.Channels.Red},
		{"green", c.Channels.Green},
		{"blue", c.Channels.Blue},
	} {
		colour, sub := ch.colour, ch.sub
		switch model.Subsystem(sub) {
		case "":
			continue
		case model.SubsystemCPU, model.SubsystemNetwork, model.SubsystemDisk:
		default:
			add("channels.%s: unknown subsystem %q", colour, sub)
			continue
		}
		if other, ok := seen[sub]; ok {
			add("channels: %q assigned to both %s and %s", sub, other, colour)
			continue
		}
		seen[sub] = colour
	}
	if len(seen) == 0 {
		add("channels: no subsystem assigned to any colour")
	}

	return errors.Join(errs...)
}

// PollInterval returns the parsed interval, falling back to the default.
func (c Config) PollInterval() time.Duration {
	d, err := time.ParseDuration(c.Interval)
	if err != nil || d <= 0 {
		return engine.DefaultInterval
	}
	return d
}

// Match returns the collector device selection.
func (c Config) Match() collector.Match {
	return collector.Match{
		InterfacePrefixes: c.Net.Prefixes,
		Devices:           c.Disk.Devices,
	}
}

// Capacities returns the normalization capacities.
func (c Config) Capacities() engine.Capacities {
	return engine.Capacities{
		NetRecv:   c.Net.RecvCapacity,
		NetSent:   c.Net.SentCapacity,
		DiskRead:  c.Disk.ReadCapacity,
		DiskWrite: c.Disk.WriteCapacity,
	}
}

// ChannelAssignment returns which subsystem drives each colour.
func (c Config) ChannelAssignment() engine.Channels {
	return engine.Channels{
		model.ChannelRed:   model.Subsystem(c.Channels.Red),
		model.ChannelGreen: model.Subsystem(c.Channels.Green),
		model.ChannelBlue:  model.Subsystem(c.Channels.Blue),
	}
}
