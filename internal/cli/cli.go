package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aigkit/internal/config"
	"github.com/matzehuels/aigkit/pkg/aig"
	"github.com/matzehuels/aigkit/pkg/aig/report"
	"github.com/matzehuels/aigkit/pkg/buildinfo"
	"github.com/matzehuels/aigkit/pkg/cache"
	apperr "github.com/matzehuels/aigkit/pkg/errors"
	pkgio "github.com/matzehuels/aigkit/pkg/io"
	"github.com/matzehuels/aigkit/pkg/observability"
)

// appName is the application name used for directories and display.
const appName = "aigkit"

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

	configPath string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Config returns the configuration loaded for the running command.
func (c *CLI) Config() *config.Config {
	return c.cfg
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "aigkit inspects And-Inverter Graphs",
		Long: `aigkit loads And-Inverter Graph snapshots and reports on them: circuit
statistics, netlists, floating and unused gates, bounded fanin/fanout cones,
ASCII AIGER output and Graphviz drawings.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/aigkit/config.toml)")

	root.AddCommand(c.summaryCommand())
	root.AddCommand(c.netlistCommand())
	root.AddCommand(c.pisCommand())
	root.AddCommand(c.posCommand())
	root.AddCommand(c.floatingCommand())
	root.AddCommand(c.gateCommand())
	root.AddCommand(c.faninCommand())
	root.AddCommand(c.fanoutCommand())
	root.AddCommand(c.writeCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and environment, logs any warnings and
// attaches the logger to the command context.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidInput, err, "load config")
	}
	c.cfg = cfg
	for _, w := range cfg.Validate() {
		c.Logger.Warn(w)
	}
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		c.Logger.SetLevel(level)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Graph Loading
// =============================================================================

// loadGraph imports and sweeps the snapshot at path.
func loadGraph(ctx context.Context, path string) (*aig.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := pkgio.Import(path)
	if err != nil {
		observability.Pipeline().OnLoad(ctx, path, 0, time.Since(prog.start), err)
		return nil, coded(err, "load %s", path)
	}
	observability.Pipeline().OnLoad(ctx, path, g.Len(), time.Since(prog.start), nil)
	logger.Debug("loaded graph", "path", path, "max_var", g.MaxVar(),
		"inputs", len(g.Inputs()), "outputs", len(g.Outputs()), "ands", g.NumAnds())
	prog.done(fmt.Sprintf("Swept %s: %d reachable, %d floating, %d unused",
		filepath.Base(path), len(g.Reachable()), len(g.Floating()), len(g.Unused())))
	return g, nil
}

// coded maps library errors onto CLI error codes. Errors that already carry
// a code and context cancellation pass through unchanged.
func coded(err error, format string, args ...any) error {
	if err == nil || apperr.GetCode(err) != "" || errors.Is(err, context.Canceled) {
		return err
	}
	var code apperr.Code
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = apperr.ErrCodeFileNotFound
	case errors.Is(err, aig.ErrNotFound):
		code = apperr.ErrCodeNotFound
	case errors.Is(err, report.ErrNegativeLevel):
		code = apperr.ErrCodeInvalidLevel
	case errors.Is(err, pkgio.ErrUnknownFormat):
		code = apperr.ErrCodeInvalidFormat
	case errors.Is(err, pkgio.ErrMalformedGate),
		errors.Is(err, aig.ErrInvalidID),
		errors.Is(err, aig.ErrReservedID),
		errors.Is(err, aig.ErrDuplicateID),
		errors.Is(err, aig.ErrInvalidSource),
		errors.Is(err, aig.ErrAlreadyDefined):
		code = apperr.ErrCodeInvalidInput
	case errors.Is(err, fs.ErrPermission):
		code = apperr.ErrCodeIO
	default:
		code = apperr.ErrCodeInternal
	}
	return apperr.Wrap(code, err, format, args...)
}

// =============================================================================
// Cache
// =============================================================================

// openCache builds the render cache selected by the configuration. A Redis
// backend that cannot be reached degrades to no caching.
func (c *CLI) openCache(ctx context.Context) cache.Cache {
	logger := loggerFromContext(ctx)
	switch c.cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache()
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:   c.cfg.Cache.RedisAddr,
			Prefix: appName + ":",
		})
		if err != nil {
			logger.Warn("redis cache unavailable, rendering without cache", "err", err)
			return cache.NewNullCache()
		}
		return rc
	}
	dir, err := c.cacheDir()
	if err != nil {
		logger.Warn("no cache directory, rendering without cache", "err", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Warn("file cache unavailable", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the configured cache directory, or the XDG default
// (~/.cache/aigkit/).
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
