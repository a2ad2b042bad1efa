package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ftahirops/ledstat/collector"
	"github.com/ftahirops/ledstat/config"
)

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer
	opts, err := parseFlags([]string{"-interval", "500ms", "-source", "stub", "-count", "3", "-dry-run", "-log-level", "debug"}, &stderr)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if opts.Interval != 500*time.Millisecond || opts.Source != "stub" || opts.Count != 3 || !opts.DryRun {
		t.Errorf("opts = %+v", opts)
	}
	if opts.LogLevel != "debug" {
		t.Errorf("log level = %q", opts.LogLevel)
	}
}

func TestParseFlagsRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"extra argument", []string{"now"}},
		{"negative count", []string{"-count", "-1"}},
		{"negative interval", []string{"-interval", "-2s"}},
		{"dry-run with preview", []string{"-dry-run", "-preview"}},
		{"unknown flag", []string{"-frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags(tt.args, &bytes.Buffer{}); err == nil {
				t.Errorf("parseFlags(%v) succeeded", tt.args)
			}
		})
	}
}

func TestApplyOptions(t *testing.T) {
	cfg := config.Default()
	err := applyOptions(&cfg, Options{Interval: 250 * time.Millisecond, Source: collector.KindStub, LogJSON: true})
	if err != nil {
		t.Fatalf("applyOptions: %v", err)
	}
	if cfg.PollInterval() != 250*time.Millisecond {
		t.Errorf("interval = %v", cfg.PollInterval())
	}
	if cfg.Source != collector.KindStub || !cfg.Log.JSON {
		t.Errorf("cfg = %+v", cfg)
	}

	cfg = config.Default()
	if err := applyOptions(&cfg, Options{Source: "snmp"}); err == nil {
		t.Error("unknown source accepted")
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-version"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := stdout.String(); got != "ledstat v"+Version+"\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-h"}, &stdout, &stderr); err != nil {
		t.Fatalf("run -h: %v", err)
	}
	if !strings.Contains(stderr.String(), "-dry-run") {
		t.Errorf("usage not printed: %q", stderr.String())
	}
}

func TestRunDryRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{
		"-config", filepath.Join(t.TempDir(), "missing.yaml"),
		"-dry-run",
		"-source", "stub",
		"-count", "2",
		"-interval", "1ms",
		"-log-level", "error",
	}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}
	if lines := strings.Count(stdout.String(), "\n"); lines != 2 {
		t.Errorf("printed %d frames, want 2:\n%s", lines, stdout.String())
	}
}

func TestRunInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "leds: -1\n")
	err := run([]string{"-config", path, "-dry-run", "-source", "stub"}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "leds") {
		t.Errorf("run = %v, want leds validation error", err)
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}
