package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestComponentText(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, slog.LevelInfo, false)
	Component("scheduler").Info("report loop started", "count", 3)
	Component("scheduler").Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "component=scheduler") || !strings.Contains(out, "count=3") {
		t.Errorf("unexpected output %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %q", out)
	}
}

func TestComponentJSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, slog.LevelDebug, true)
	Component("pipeline").Debug("tick", "leds", 12)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v: %q", err, buf.String())
	}
	if rec["component"] != "pipeline" || rec["msg"] != "tick" {
		t.Errorf("record = %v", rec)
	}
	if _, ok := rec["source"]; !ok {
		t.Errorf("debug level should add source location: %v", rec)
	}
}
