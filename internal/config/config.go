// Package config loads the bridge's settings from a YAML or TOML file with
// environment overrides.
//
// Resolution order: defaults, then the file (if present), then env vars.
// A missing file is not an error; a malformed one is. Files ending in
// .toml are read as TOML, everything else as YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/HendryAvila/apple-notes-mcp/internal/osascript"
)

const (
	// AppDir is the directory under the user config dir.
	AppDir = "apple-notes-mcp"
	// FileName is the config file inside AppDir.
	FileName = "config.yaml"

	EnvCommand  = "APPLE_NOTES_OSASCRIPT"
	EnvTimeout  = "APPLE_NOTES_TIMEOUT"
	EnvLogLevel = "APPLE_NOTES_LOG_LEVEL"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full bridge configuration.
type Config struct {
	Osascript OsascriptConfig `yaml:"osascript" toml:"osascript"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`
}

// OsascriptConfig controls how the host executable is invoked.
type OsascriptConfig struct {
	Command string        `yaml:"command" toml:"command"`
	Timeout time.Duration `yaml:"timeout" toml:"-"`
}

// LoggingConfig controls the stderr logger.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Osascript: OsascriptConfig{
			Command: osascript.DefaultCommand,
			Timeout: osascript.DefaultTimeout,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/apple-notes-mcp/config.yaml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, AppDir, FileName), nil
}

// Load reads path (DefaultPath when empty), applies env overrides and
// validates the result.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	default:
		if err := decode(path, data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// tomlTimeout reads osascript.timeout as a duration string, which TOML
// has no native type for.
type tomlTimeout struct {
	Osascript struct {
		Timeout string `toml:"timeout"`
	} `toml:"osascript"`
}

func decode(path string, data []byte, cfg *Config) error {
	if !strings.EqualFold(filepath.Ext(path), ".toml") {
		return yaml.Unmarshal(data, cfg)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	var t tomlTimeout
	if err := toml.Unmarshal(data, &t); err != nil {
		return err
	}
	if t.Osascript.Timeout != "" {
		d, err := time.ParseDuration(t.Osascript.Timeout)
		if err != nil {
			return fmt.Errorf("osascript.timeout: %w", err)
		}
		cfg.Osascript.Timeout = d
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCommand); ok && strings.TrimSpace(v) != "" {
		c.Osascript.Command = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvTimeout); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, EnvTimeout, err)
		}
		c.Osascript.Timeout = d
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		c.Logging.Level = strings.TrimSpace(v)
	}
	return nil
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Osascript.Command) == "" {
		return fmt.Errorf("%w: osascript.command is empty", ErrInvalid)
	}
	if c.Osascript.Timeout <= 0 {
		return fmt.Errorf("%w: osascript.timeout must be positive, got %s", ErrInvalid, c.Osascript.Timeout)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format must be text or json, got %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// SlogLevel maps logging.level onto slog.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: unknown logging.level %q", ErrInvalid, c.Logging.Level)
}
