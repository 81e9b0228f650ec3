package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWritesPrefixedLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.InfoLevel)

	logger.Info("copied entry", "name", "Greeting")
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, Prefix) {
		t.Fatalf("output %q missing prefix", out)
	}
	if !strings.Contains(out, "copied entry") || !strings.Contains(out, "name=Greeting") {
		t.Fatalf("output %q missing message or fields", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{" WARN ", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "amenu.log")

	logger, closer, err := Open(path, log.DebugLevel)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	logger.Debug("loaded entries", "count", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "loaded entries") {
		t.Fatalf("log file = %q, want entry", data)
	}
}

func TestOpenEmptyPathDiscards(t *testing.T) {
	logger, closer, err := Open("", log.InfoLevel)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if logger == nil || closer == nil {
		t.Fatal("Open returned nil logger or closer")
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestOpenFailureFallsBack(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	logger, closer, err := Open(filepath.Join(blocker, "amenu.log"), log.InfoLevel)
	if err == nil {
		t.Fatal("expected error when parent is a file")
	}
	if logger == nil || closer == nil {
		t.Fatal("Open returned nil logger or closer on failure")
	}
	logger.Info("still safe")
}
