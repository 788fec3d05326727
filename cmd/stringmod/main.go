// Package main is the entry point for the stringmod command.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/stringmod/internal/app"
	"github.com/dshills/stringmod/internal/config"
	"github.com/dshills/stringmod/internal/config/loader"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errInvalidLogLevel is returned for --log-level values other than the
// four known levels.
var errInvalidLogLevel = errors.New("invalid log level")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// cli holds the global flags and the state built from them.
type cli struct {
	configPath string
	logLevel   string
	logFile    string

	logger    *zap.Logger
	logCloser io.Closer
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "stringmod",
		Short: "Enclose and reformat selected text",
		Long: `stringmod wraps text in braces, brackets, quotes or custom delimiters,
or turns it into a quoted character or word list.

It runs as a filter for editors that pipe selections through shell
commands (apply, helix), as a small terminal editor hosting the String
Modifiers menu (edit), and as a Lua scripting host (script).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			c.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "path to the configuration file (default $STRINGMOD_CONFIG or the user config dir)")
	flags.StringVar(&c.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&c.logFile, "log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(
		c.newApplyCmd(),
		c.newEditCmd(),
		c.newConfigCmd(),
		c.newScriptCmd(),
		c.newHelixCmd(),
		newVersionCmd(),
	)
	return root
}

// setup validates the global flags and builds the logger. The terminal
// editor never logs to the screen: without --log-file its logs are
// discarded.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	switch c.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w %q (must be debug, info, warn, or error)", errInvalidLogLevel, c.logLevel)
	}

	var out io.Writer = cmd.ErrOrStderr()
	switch {
	case c.logFile != "":
		f, err := app.OpenLogFile(c.logFile)
		if err != nil {
			return err
		}
		c.logCloser = f
		out = f
	case cmd.Name() == "edit":
		out = io.Discard
	}

	c.logger = app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(c.logLevel),
		Output: out,
		Name:   "stringmod",
	})
	return nil
}

func (c *cli) teardown() {
	_ = c.logger.Sync()
	if c.logCloser != nil {
		_ = c.logCloser.Close()
		c.logCloser = nil
	}
}

// store opens the configuration store selected by --config.
func (c *cli) store() *config.Store {
	path := c.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.NewStore(path, config.WithLogger(c.logger.Named("config")))
}

// loadConfig loads the configuration, creating it on first run. With env
// the STRINGMOD_<KEY> overrides are applied; they are never saved.
func (c *cli) loadConfig(env bool) (*config.Config, error) {
	cfg, _, err := c.store().Load()
	if err != nil {
		return nil, err
	}
	if env {
		if err := c.envLoader().Apply(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *cli) envLoader() *loader.EnvLoader {
	return loader.NewEnvLoader(loader.DefaultEnvPrefix)
}
