// Package cli implements the brickring command-line interface.
//
// The main commands are:
//   - calc: solve a ring from flags or a TOML job file, print the report,
//     optionally write the two diagrams
//   - prompt: interactive line-oriented entry of every dimension
//   - serve: small HTTP facade over the geometry engine
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/soniarosenberger/brickring/pkg/buildinfo"
)

const (
	// appName is the application name used for display and completions.
	appName = "brickring"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives the report and other primary output. Defaults to stdout;
	// tests point it elsewhere.
	Out io.Writer
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Out: os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Brickring sizes wedge bricks for a barrel lining",
		Long:         `Brickring computes the geometry of a segmented N-sided refractory brick ring fitted inside a cylindrical barrel and produces the cut template for a single wedge brick, including the miter (off-square) angles.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.calcCommand())
	root.AddCommand(c.promptCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
