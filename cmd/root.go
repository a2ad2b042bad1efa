package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ftahirops/ledstat/collector"
	"github.com/ftahirops/ledstat/config"
	"github.com/ftahirops/ledstat/engine"
	"github.com/ftahirops/ledstat/hid"
	"github.com/ftahirops/ledstat/logging"
	"github.com/ftahirops/ledstat/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// Options holds CLI configuration. Zero values defer to the config file.
type Options struct {
	ConfigPath  string
	Interval    time.Duration
	Source      string
	Count       int
	DryRun      bool
	Preview     bool
	List        bool
	LogLevel    string
	LogJSON     bool
	ShowVersion bool
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `ledstat v%s — host activity on a USB LED strip

Usage:
  ledstat [OPTIONS]

Modes:
  (default)         Send a frame to the device every interval until interrupted
  -dry-run          Print frames as colour swatches instead of sending them
  -preview          Interactive live preview (bubbletea, fullscreen), no device
  -list             List attached devices with the configured USB ids
  -version          Print version and exit

Options:
  -config PATH      Config file (default: %s)
  -interval D       Time between frames, e.g. 2s, 500ms (default: from config, 2s)
  -source NAME      Counter source: auto, procfs, gopsutil, stub
  -count N          Stop after N frames (0 = run until interrupted)
  -log-level L      debug, info, warn, error
  -log-json         Log as JSON

The first frame is always dark: rates need two samples.

Examples:
  ledstat                            Drive the strip, 2s refresh
  ledstat -interval 500ms            Faster refresh
  ledstat -dry-run -count 5          Five frames to the terminal
  ledstat -preview -source gopsutil  Live preview using gopsutil counters
`, Version, config.Path())
}

// parseFlags parses args without touching the global flag set.
func parseFlags(args []string, stderr io.Writer) (Options, error) {
	var opts Options
	fs := flag.NewFlagSet("ledstat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	fs.StringVar(&opts.ConfigPath, "config", config.Path(), "Config file path")
	fs.DurationVar(&opts.Interval, "interval", 0, "Time between frames")
	fs.StringVar(&opts.Source, "source", "", "Counter source (auto, procfs, gopsutil, stub)")
	fs.IntVar(&opts.Count, "count", 0, "Number of frames to send (0=infinite)")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Print frames instead of sending them")
	fs.BoolVar(&opts.Preview, "preview", false, "Interactive live preview")
	fs.BoolVar(&opts.List, "list", false, "List matching devices and exit")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level")
	fs.BoolVar(&opts.LogJSON, "log-json", false, "Log as JSON")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if opts.Count < 0 {
		return opts, fmt.Errorf("-count must not be negative")
	}
	if opts.Interval < 0 {
		return opts, fmt.Errorf("-interval must not be negative")
	}
	if opts.DryRun && opts.Preview {
		return opts, fmt.Errorf("-dry-run and -preview are mutually exclusive")
	}
	return opts, nil
}

// applyOptions overlays command-line values onto the loaded config.
func applyOptions(cfg *config.Config, opts Options) error {
	if opts.Interval > 0 {
		cfg.Interval = opts.Interval.String()
	}
	if opts.Source != "" {
		cfg.Source = opts.Source
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogJSON {
		cfg.Log.JSON = true
	}
	return cfg.Validate()
}

// Run parses flags and starts the application.
func Run() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.ShowVersion {
		fmt.Fprintf(stdout, "ledstat v%s\n", Version)
		return nil
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := applyOptions(&cfg, opts); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logging.InitWithWriter(stderr, level, cfg.Log.JSON)
	log := logging.Component("main")

	if opts.List {
		return runList(cfg, stdout)
	}

	src, err := collector.New(cfg.Source, cfg.Match())
	if err != nil {
		return err
	}
	pipeline := engine.NewPipeline(src, engine.PipelineConfig{
		NumLEDs:    cfg.LEDs,
		Capacities: cfg.Capacities(),
		Channels:   cfg.ChannelAssignment(),
		CPUTotal:   cfg.CPU.Mode == config.CPUModeTotal,
		Logger:     logging.Component("pipeline"),
	})

	if opts.Preview {
		return runPreview(pipeline, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := engine.ScheduleConfig{
		Interval:  cfg.PollInterval(),
		FixedRate: cfg.FixedRate,
		Count:     opts.Count,
		Logger:    logging.Component("scheduler"),
	}

	if opts.DryRun {
		log.Info("dry run, printing frames", "source", src.Name(), "leds", cfg.LEDs)
		return engine.Run(ctx, pipeline, ui.NewPreview(stdout), sched)
	}

	dev, err := hid.Open(cfg.Device.VendorID, cfg.Device.ProductID)
	if err != nil {
		return err
	}
	defer dev.Close()

	log.Info("sending system activity to device", "product", dev.Product, "source", src.Name(), "leds", cfg.LEDs)
	return engine.Run(ctx, pipeline, dev, sched)
}

// runPreview runs the bubbletea live preview until the user quits.
func runPreview(t engine.Ticker, cfg config.Config) error {
	m := ui.NewModel(t, cfg.ChannelAssignment(), cfg.PollInterval())
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(ui.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

// runList prints the attached devices matching the configured ids.
func runList(cfg config.Config, w io.Writer) error {
	vid, pid := cfg.Device.VendorID, cfg.Device.ProductID
	infos, err := hid.List(vid, pid)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintf(w, "no device %04x:%04x attached\n", vid, pid)
		return nil
	}
	for _, d := range infos {
		fmt.Fprintf(w, "%04x:%04x  %-20s %-20s %s\n", d.VendorID, d.ProductID, d.Manufacturer, d.Product, d.Path)
	}
	return nil
}
