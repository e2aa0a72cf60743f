// Package cli implements the flowbox command-line interface.
//
// # Commands
//
//   - (none): print the sample CI/CD workflow
//   - render: render a JSON, YAML or TOML workflow file
//   - view: page through a rendered workflow in the terminal
//   - sample: print the sample workflow in any output format
//   - serve: run the HTTP API
//   - cache: manage the artifact cache
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging on stderr.
// The rendered diagram is the only thing written to stdout.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowbox/internal/config"
	"github.com/matzehuels/flowbox/pkg/buildinfo"
	"github.com/matzehuels/flowbox/pkg/cache"
	"github.com/matzehuels/flowbox/pkg/pipeline"
	"github.com/matzehuels/flowbox/pkg/render/ascii"
	"github.com/matzehuels/flowbox/pkg/workflow"
)

// appName is the application name used for directories and display.
const appName = "flowbox"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out    io.Writer
	errOut io.Writer

	verbose    bool
	configPath string
	cfg        *config.Config
}

// New creates a CLI that writes diagrams to out and logs and status lines
// to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		out:    out,
		errOut: errOut,
		cfg:    config.DefaultConfig(),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Flowbox draws workflows as text diagrams",
		Long: `Flowbox turns a workflow definition (steps and connections) into a
box-and-arrow diagram drawn with Unicode characters. Run without arguments
to see a sample pipeline.`,
		Version:           buildinfo.Version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(c.out, ascii.Render(workflow.Sample()))
			return err
		},
	}

	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $FLOWBOX_CONFIG or the user config dir)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup applies --verbose, loads configuration and registers log-backed
// observability hooks.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	if c.verbose {
		c.Logger.SetLevel(log.DebugLevel)
	}

	loader := config.NewLoader()
	var err error
	if c.configPath != "" {
		c.cfg, err = loader.LoadFromFile(c.configPath)
	} else {
		c.cfg, err = loader.Load()
	}
	if err != nil {
		return err
	}

	registerHooks(c.Logger)
	return nil
}

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	r := pipeline.NewRunner(c.newCache(ctx, noCache), c.Logger)
	r.TTL = c.cfg.Cache.TTL
	return r
}

// newCache opens the configured cache. Backends that cannot be opened are
// replaced by a null cache with a warning.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}

	switch c.cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache()
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.cfg.Cache.RedisAddr,
			Password: c.cfg.Cache.RedisPassword,
			DB:       c.cfg.Cache.RedisDB,
		})
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "err", err)
			return cache.NewNullCache()
		}
		return rc
	default:
		dir, err := c.cfg.Cache.CacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warn("file cache unavailable, caching disabled", "dir", dir, "err", err)
			return cache.NewNullCache()
		}
		return fc
	}
}
