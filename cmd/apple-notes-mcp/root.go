package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HendryAvila/apple-notes-mcp/internal/config"
)

var (
	verbose    bool
	configPath string

	cfg config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "apple-notes-mcp",
	Short: "An MCP server for Apple Notes",
	Long: `apple-notes-mcp lets MCP hosts list, search, read, create, update and
delete notes in Apple Notes. Every operation runs as an AppleScript through
osascript, so it only works on macOS with Notes.app available.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		logger, err := newLogger(cfg, verbose)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/apple-notes-mcp/config.yaml)")
}

// loadConfig reads path, or the default location when path is empty.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			slog.Warn("no user config directory, using defaults", "error", err)
			cfg := config.Default()
			return cfg, cfg.Validate()
		}
		path = p
	}
	c, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return c, nil
}

// newLogger builds the stderr logger. Stdout is reserved for the MCP
// stdio transport.
func newLogger(c config.Config, verbose bool) (*slog.Logger, error) {
	level, err := c.SlogLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}
	if strings.EqualFold(c.Logging.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}
