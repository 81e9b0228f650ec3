package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the operator-tunable settings for amenu.
type Config struct {
	EntriesFile string
	CommitDelay time.Duration
	Clipboard   string
	LogFile     string
	LogLevel    string
	AltScreen   bool
	ShowHelp    bool
}

const (
	defaultConfigPath    = "~/.config/amenu/config.toml"
	defaultEntriesFile   = "prompts"
	defaultCommitDelayMS = 200
	defaultClipboard     = "auto"
	defaultLogFile       = "~/.local/state/amenu/amenu.log"
	defaultLogLevel      = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		EntriesFile: defaultEntriesFile,
		CommitDelay: defaultCommitDelayMS * time.Millisecond,
		Clipboard:   defaultClipboard,
		LogFile:     mustExpand(defaultLogFile),
		LogLevel:    defaultLogLevel,
		AltScreen:   true,
		ShowHelp:    true,
	}
}

// Load locates and parses the amenu config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		EntriesFile   string `toml:"entries_file"`
		CommitDelayMS *int   `toml:"commit_delay_ms"`
		Clipboard     string `toml:"clipboard"`
		LogFile       string `toml:"log_file"`
		LogLevel      string `toml:"log_level"`
		AltScreen     *bool  `toml:"alt_screen"`
		ShowHelp      *bool  `toml:"show_help"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.EntriesFile); v != "" {
		cfg.EntriesFile = mustExpand(v)
	}
	if raw.CommitDelayMS != nil && *raw.CommitDelayMS >= 0 {
		cfg.CommitDelay = time.Duration(*raw.CommitDelayMS) * time.Millisecond
	}
	if v := strings.TrimSpace(raw.Clipboard); v != "" {
		cfg.Clipboard = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if raw.AltScreen != nil {
		cfg.AltScreen = *raw.AltScreen
	}
	if raw.ShowHelp != nil {
		cfg.ShowHelp = *raw.ShowHelp
	}

	return cfg, nil
}

// EntriesPath picks the entry source: an explicit argument wins over the
// configured file.
func (c Config) EntriesPath(arg string) string {
	if v := strings.TrimSpace(arg); v != "" {
		return mustExpand(v)
	}
	if v := strings.TrimSpace(c.EntriesFile); v != "" {
		return v
	}
	return defaultEntriesFile
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
