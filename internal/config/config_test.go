package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvCommand, EnvTimeout, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "osascript", cfg.Osascript.Command)
	assert.Equal(t, 30*time.Second, cfg.Osascript.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
osascript:
  command: /usr/local/bin/osascript
  timeout: 45s
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/osascript", cfg.Osascript.Command)
	assert.Equal(t, 45*time.Second, cfg.Osascript.Timeout)
	assert.Equal(t, "json", cfg.Logging.Format)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "logging:\n  level: warn\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "osascript", cfg.Osascript.Command)
	assert.Equal(t, 30*time.Second, cfg.Osascript.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "osascript:\n  timeout: 45s\n")
	t.Setenv(EnvCommand, "/opt/fake-osascript")
	t.Setenv(EnvTimeout, "5s")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/fake-osascript", cfg.Osascript.Command)
	assert.Equal(t, 5*time.Second, cfg.Osascript.Timeout)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		env     map[string]string
		wantErr error
	}{
		{name: "malformed yaml", body: "osascript: [unterminated"},
		{name: "zero timeout", body: "osascript:\n  timeout: 0s\n", wantErr: ErrInvalid},
		{name: "bad level", body: "logging:\n  level: chatty\n", wantErr: ErrInvalid},
		{name: "bad format", body: "logging:\n  format: xml\n", wantErr: ErrInvalid},
		{name: "bad env timeout", env: map[string]string{EnvTimeout: "soon"}, wantErr: ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_EmptyCommand(t *testing.T) {
	cfg := Default()
	cfg.Osascript.Command = "  "
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, AppDir, filepath.Base(filepath.Dir(path)))
	assert.Equal(t, FileName, filepath.Base(path))
}

func TestLoad_TOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[osascript]
command = "/opt/osascript"
timeout = "12s"

[logging]
format = "json"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/osascript", cfg.Osascript.Command)
	assert.Equal(t, 12*time.Second, cfg.Osascript.Timeout)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_TOMLBadTimeout(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[osascript]\ntimeout = \"soon\"\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
