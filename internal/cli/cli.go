// Package cli implements the designer command-line interface.
//
// Each command opens the configured storage backend, restores the canvas
// stored under the active key, applies one edit through the engine
// packages and saves the canvas back. Read-only commands skip the save.
//
// # Commands
//
//   - add, screen: create elements
//   - move, resize, marquee: replay a pointer gesture with snapping
//   - align, distribute, group: arrange a selection given by --ids
//   - reorder, front, back, layers: change stacking order
//   - list, show, collisions, zoom: inspect the canvas
//   - export: write SVG, PNG or the raw JSON blob
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/canvasflow/designer/internal/config"
	"github.com/canvasflow/designer/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

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
	canvasKey  string
	cfg        config.Config

	// opener overrides how the storage backend is opened. Tests use it to
	// share one in-memory backend across invocations.
	opener backendOpener
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

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Designer edits free-form canvas layouts",
		Long: `Designer places, moves, resizes, aligns, groups and layers visual elements
on a saved canvas. Every command loads the canvas, applies one edit and saves
it back.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			if c.canvasKey != "" {
				c.cfg.Storage.Key = c.canvasKey
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/designer/config.toml)")
	root.PersistentFlags().StringVar(&c.canvasKey, "canvas", "", "canvas key to load and save")

	// Elements
	root.AddCommand(c.addCommand())
	root.AddCommand(c.screenCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.marqueeCommand())
	root.AddCommand(c.lockCommand(true))
	root.AddCommand(c.lockCommand(false))
	root.AddCommand(c.renameCommand())
	root.AddCommand(c.setCommand())
	root.AddCommand(c.deleteCommand())
	root.AddCommand(c.clearCommand())

	// Arrangement
	root.AddCommand(c.alignCommand())
	root.AddCommand(c.distributeCommand())
	root.AddCommand(c.groupCommand())
	root.AddCommand(c.reorderCommand())
	root.AddCommand(c.frontCommand())
	root.AddCommand(c.backCommand())
	root.AddCommand(c.collisionsCommand())

	// Inspection
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.layersCommand())
	root.AddCommand(c.zoomCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.exportCommand())

	root.AddCommand(c.completionCommand())

	return root
}
