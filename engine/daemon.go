package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// DefaultInterval is the pause between two reports.
const DefaultInterval = 2 * time.Second

// ScheduleConfig controls the report loop.
type ScheduleConfig struct {
	Interval time.Duration
	// FixedRate starts cycles on a fixed wall-clock grid. When false the
	// loop sleeps a full Interval after each write, so the period grows by
	// the time a cycle takes.
	FixedRate bool
	// Count stops the loop after that many reports; 0 runs until ctx ends.
	Count  int
	Logger *slog.Logger
}

// Run drives t and writes every report to w until ctx is cancelled or
// Count reports have been written. The first sampling or write error ends
// the loop and is returned; there is no retry. On cancellation the strip is
// switched off before returning nil.
func Run(ctx context.Context, t Ticker, w io.Writer, cfg ScheduleConfig) error {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var grid *time.Ticker
	if cfg.FixedRate {
		grid = time.NewTicker(cfg.Interval)
		defer grid.Stop()
	}

	logger.Info("report loop started", "interval", cfg.Interval, "fixed_rate", cfg.FixedRate, "count", cfg.Count)

	for n := 1; ; n++ {
		if ctx.Err() != nil {
			return switchOff(t, w, logger)
		}
		report, _, err := t.Tick()
		if err != nil {
			return err
		}
		if err := writeReport(w, report); err != nil {
			return err
		}
		if cfg.Count > 0 && n >= cfg.Count {
			return nil
		}
		if !wait(ctx, grid, cfg.Interval) {
			return switchOff(t, w, logger)
		}
	}
}

// wait blocks for the next cycle and reports false if ctx ended first.
func wait(ctx context.Context, grid *time.Ticker, d time.Duration) bool {
	if grid != nil {
		select {
		case <-ctx.Done():
			return false
		case <-grid.C:
			return true
		}
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func writeReport(w io.Writer, report []byte) error {
	n, err := w.Write(report)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if n != len(report) {
		return fmt.Errorf("write report: wrote %d of %d bytes: %w", n, len(report), io.ErrShortWrite)
	}
	return nil
}

func switchOff(t Ticker, w io.Writer, logger *slog.Logger) error {
	logger.Info("report loop stopping, switching strip off")
	if err := writeReport(w, t.Off()); err != nil {
		return fmt.Errorf("switch off: %w", err)
	}
	return nil
}
