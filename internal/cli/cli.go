// Package cli implements the svgantt command-line interface.
//
// This package provides commands for rendering declarative schedules as
// Gantt charts, validating and browsing schedule files, and running the
// HTTP render server. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, PNG, PDF, or JSON layout output
//   - validate: Check a schedule file for errors
//   - inspect: Browse schedule items in an interactive table
//   - init: Create a starter schedule file
//   - serve: Run the HTTP render API
//   - cache: Manage the layout and artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
//
// # Configuration
//
// Defaults for chart dimensions, output formats, caching, and the
// server address load from ~/.config/svgantt/config.toml; the --config
// flag points at an alternate file. Flags always win over config
// values.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pfeilbach/svgantt/pkg/buildinfo"
	"github.com/pfeilbach/svgantt/pkg/cache"
	"github.com/pfeilbach/svgantt/pkg/errors"
	"github.com/pfeilbach/svgantt/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "svgantt"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	config *Config
}

// New creates a new CLI instance with a default logger and built-in
// configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "svgantt",
		Short:        "Svgantt renders project schedules as Gantt charts",
		Long:         `Svgantt turns declarative JSON or YAML schedules into Gantt chart diagrams, with weekend-aware scheduling, milestones, and per-resource coloring.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/svgantt/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cch, c.newKeyer(), c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || !c.config.Cache.Enabled {
		return cache.NewNullCache(), nil
	}
	return c.newCacheBackend(ctx, c.config.Cache.Backend)
}

// newCacheBackend builds the configured cache backend. An unavailable
// cache directory degrades to the null cache rather than failing the
// command.
func (c *CLI) newCacheBackend(ctx context.Context, backend string) (cache.Cache, error) {
	switch backend {
	case CacheBackendNone:
		return cache.NewNullCache(), nil
	case CacheBackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     c.config.Cache.Redis.Addr,
			Password: c.config.Cache.Redis.Password,
			DB:       c.config.Cache.Redis.DB,
		})
	case CacheBackendFile, "":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend: %s (must be 'file', 'redis', or 'none')", backend)
	}
}

// newKeyer returns a scoped keyer when a cache scope is configured, and
// nil otherwise so the runner picks its default.
func (c *CLI) newKeyer() cache.Keyer {
	if scope := c.config.Cache.Scope; scope != "" {
		return cache.NewScopedKeyer(nil, scope+":")
	}
	return nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/svgantt/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
