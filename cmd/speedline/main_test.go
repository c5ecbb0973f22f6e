package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmdartus/speedline/pkg/trace"
)

func writeTrace(t *testing.T, dir string) string {
	t.Helper()

	var events []trace.Event
	for i, c := range []color.Color{color.White, color.White, color.Black} {
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				img.Set(x, y, c)
			}
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatalf("encode PNG: %v", err)
		}
		events = append(events, trace.Event{
			Name:     "Screenshot",
			Category: trace.ScreenshotCategory,
			Ts:       float64(1_000_000 + i*1_000_000),
			Args:     trace.EventArgs{Snapshot: base64.StdEncoding.EncodeToString(buf.Bytes())},
		})
	}

	data, err := json.Marshal(trace.Document{TraceEvents: events})
	if err != nil {
		t.Fatalf("marshal trace: %v", err)
	}
	path := filepath.Join(dir, "trace.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write trace: %v", err)
	}
	return path
}

func TestFramesCommand(t *testing.T) {
	dir := t.TempDir()
	tracePath := writeTrace(t, dir)
	summaryPath := filepath.Join(dir, "summary.md")

	var out bytes.Buffer
	err := newApp(&out).Run([]string{"speedline", "frames", "--quiet", "--relative", "--summary", summaryPath, tracePath})
	if err != nil {
		t.Fatalf("frames failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// header, blank anchor, first white screenshot, black screenshot
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out.String())
	}
	white := strings.Fields(lines[2])
	if len(white) != 7 || white[1] != "0.000" {
		t.Fatalf("expected white frame at the origin with means, got %q", lines[2])
	}
	black := strings.Fields(lines[3])
	if len(black) != 7 {
		t.Fatalf("expected 7 columns for black frame, got %q", lines[3])
	}
	if black[1] != "2000.000" {
		t.Errorf("expected black frame 2000 ms after origin, got %q", black[1])
	}
	for c := 0; c < 3; c++ {
		if white[4+c] != "255.0" {
			t.Errorf("expected white channel %d mean 255.0, got %q", c, white[4+c])
		}
		if black[4+c] != "0.0" {
			t.Errorf("expected black channel %d mean 0.0, got %q", c, black[4+c])
		}
	}

	summary, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("expected summary: %v", err)
	}
	if !strings.Contains(string(summary), tracePath) {
		t.Errorf("expected summary to name the trace, got:\n%s", summary)
	}
}

func TestFramesCommand_Debug(t *testing.T) {
	dir := t.TempDir()
	tracePath := writeTrace(t, dir)
	debugDir := filepath.Join(dir, "debug")

	var out bytes.Buffer
	if err := newApp(&out).Run([]string{"speedline", "frames", "-q", "-d", "--debug-dir", debugDir, tracePath}); err != nil {
		t.Fatalf("frames failed: %v", err)
	}

	for _, name := range []string{"timeline.json", "histograms.json", filepath.Join("frames", "frame-0000.jpg"), filepath.Join("frames", "frame-0002.png")} {
		if _, err := os.Stat(filepath.Join(debugDir, name)); err != nil {
			t.Errorf("expected debug file %s: %v", name, err)
		}
	}
}

func TestFramesCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	tracePath := writeTrace(t, dir)
	configPath := filepath.Join(dir, "speedline.yaml")
	if err := os.WriteFile(configPath, []byte("histograms: false\nlog_level: quiet\ntime_origin: 2000000\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out bytes.Buffer
	if err := newApp(&out).Run([]string{"speedline", "frames", "--config", configPath, tracePath}); err != nil {
		t.Fatalf("frames failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// header, anchor at 2000 ms, white screenshot at 2000 ms, black screenshot at 3000 ms
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out.String())
	}
	anchor := strings.Fields(lines[1])
	if len(anchor) != 4 || anchor[1] != "2000.000" {
		t.Errorf("expected anchor at the configured origin without means, got %q", lines[1])
	}
}

func TestFramesCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(malformed, []byte(`{"metadata":{}}`), 0o644); err != nil {
		t.Fatalf("write trace: %v", err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"malformed trace", []string{"speedline", "frames", "-q", malformed}},
		{"missing file", []string{"speedline", "frames", "-q", filepath.Join(dir, "missing.json")}},
		{"invalid threshold", []string{"speedline", "frames", "-q", "--white-threshold", "300", malformed}},
		{"unknown log level", []string{"speedline", "frames", "--log-level", "loud", malformed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := newApp(&out).Run(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTraceSource(t *testing.T) {
	src, err := traceSource("trace.json", strings.NewReader(""))
	if err != nil || src.Kind != trace.SourcePath || src.Path != "trace.json" {
		t.Errorf("unexpected path source %v, %v", src, err)
	}

	src, err = traceSource("-", strings.NewReader(`{"traceEvents":[]}`))
	if err != nil || src.Kind != trace.SourceBytes || string(src.Data) != `{"traceEvents":[]}` {
		t.Errorf("unexpected stdin source %v, %v", src, err)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	if err := newApp(&out).Run([]string{"speedline", "version"}); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Errorf("expected version in output, got %q", out.String())
	}
}
