// Package cli implements the lvassign command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "lvassign"

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

	// Config is loaded by the root command before any subcommand runs.
	Config Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "lvassign solves square assignment problems",
		Long: `lvassign finds a minimum-cost one-to-one assignment of rows to columns
of a square, non-negative cost matrix (Hungarian / Kuhn-Munkres method).`,
		SilenceUsage:      true,
		SilenceErrors:     true, // main prints the returned error once
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.randomCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// setup loads the config file and settles the log level: --verbose wins,
// then [log] level, then info.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.configPath != "" {
		cfg, err := LoadConfig(c.configPath)
		if err != nil {
			return err
		}
		c.Config = cfg
	}

	level, err := c.Config.LogLevel()
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	c.Logger.Debug("configuration", "file", c.configPath, "algorithm", c.Config.Solver.Algorithm,
		"extraction", c.Config.Solver.Extraction, "addr", c.Config.Server.Addr)

	return nil
}
