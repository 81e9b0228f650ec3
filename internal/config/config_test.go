package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.EntriesFile != defaultEntriesFile {
		t.Fatalf("EntriesFile = %q, want %q", cfg.EntriesFile, defaultEntriesFile)
	}
	if cfg.CommitDelay != 200*time.Millisecond {
		t.Fatalf("CommitDelay = %v, want 200ms", cfg.CommitDelay)
	}
	if cfg.Clipboard != defaultClipboard {
		t.Fatalf("Clipboard = %q, want %q", cfg.Clipboard, defaultClipboard)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if !cfg.AltScreen || !cfg.ShowHelp {
		t.Fatalf("AltScreen/ShowHelp = %v/%v, want true/true", cfg.AltScreen, cfg.ShowHelp)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "amenu")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("clipboard = \"osc52\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Clipboard != "osc52" {
		t.Fatalf("Clipboard = %q, want %q", cfg.Clipboard, "osc52")
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
entries_file = "  ~/notes/prompts  "
commit_delay_ms = 50
clipboard = " System "
log_file = "~/logs/amenu.log"
log_level = "DEBUG"
alt_screen = false
show_help = false
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(home, "notes", "prompts"); cfg.EntriesFile != want {
		t.Fatalf("EntriesFile = %q, want %q", cfg.EntriesFile, want)
	}
	if cfg.CommitDelay != 50*time.Millisecond {
		t.Fatalf("CommitDelay = %v, want 50ms", cfg.CommitDelay)
	}
	if cfg.Clipboard != "system" {
		t.Fatalf("Clipboard = %q, want %q", cfg.Clipboard, "system")
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.AltScreen || cfg.ShowHelp {
		t.Fatalf("AltScreen/ShowHelp = %v/%v, want false/false", cfg.AltScreen, cfg.ShowHelp)
	}
}

func TestLoad_CommitDelayEdges(t *testing.T) {
	tests := []struct {
		name string
		body string
		want time.Duration
	}{
		{"zero disables", "commit_delay_ms = 0\n", 0},
		{"negative keeps default", "commit_delay_ms = -5\n", 200 * time.Millisecond},
		{"absent keeps default", "log_level = \"warn\"\n", 200 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if cfg.CommitDelay != tt.want {
				t.Fatalf("CommitDelay = %v, want %v", cfg.CommitDelay, tt.want)
			}
		})
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
entries_file = "   "
clipboard = ""
log_level = " "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.EntriesFile != defaultEntriesFile {
		t.Fatalf("EntriesFile = %q, want %q", cfg.EntriesFile, defaultEntriesFile)
	}
	if cfg.Clipboard != defaultClipboard {
		t.Fatalf("Clipboard = %q, want %q", cfg.Clipboard, defaultClipboard)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`clipboard = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestEntriesPath_Precedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Config{EntriesFile: "/etc/amenu/prompts"}
	if got := cfg.EntriesPath("~/mine"); got != filepath.Join(home, "mine") {
		t.Fatalf("EntriesPath(arg) = %q, want %q", got, filepath.Join(home, "mine"))
	}
	if got := cfg.EntriesPath("  "); got != "/etc/amenu/prompts" {
		t.Fatalf("EntriesPath(\"\") = %q, want configured file", got)
	}

	var empty Config
	if got := empty.EntriesPath(""); got != defaultEntriesFile {
		t.Fatalf("EntriesPath on zero Config = %q, want %q", got, defaultEntriesFile)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
