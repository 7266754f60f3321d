package cli

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/canvasflow/designer/internal/config"
	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/geom"
	"github.com/canvasflow/designer/pkg/layers"
)

// listCommand creates the "list" command.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List layers front to back",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.view(cmd.Context(), func(w *workspace) error {
				if w.store.Len() == 0 {
					printInfo("Canvas %s is empty", StyleHighlight.Render(w.adapter.Key()))
					printNextStep("Add an element", appName+" add box")
					return nil
				}
				printLayers(w.store, layers.List(w.store.Elements()))
				return nil
			})
		},
	}
}

// showCommand creates the "show" command.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one element in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.view(cmd.Context(), func(w *workspace) error {
				el, err := w.get(args[0])
				if err != nil {
					return err
				}
				fmt.Println(StyleTitle.Render(layers.DisplayName(el)))
				printKeyValue("id", el.ID)
				printKeyValue("type", string(el.Type))
				printKeyValue("tag", el.Tag)
				printElementSummary(el)
				if el.ClassName != "" {
					printKeyValue("class", el.ClassName)
				}
				if el.Content != "" {
					printKeyValue("content", el.Content)
				}
				printKeyValue("locked", strconv.FormatBool(el.IsLocked))
				for _, k := range slices.Sorted(maps.Keys(el.Metadata)) {
					printKeyValue("data-"+k, el.Metadata[k])
				}
				for _, k := range slices.Sorted(maps.Keys(el.Style)) {
					printKeyValue("style "+k, el.Style[k])
				}
				return nil
			})
		},
	}
}

// layersCommand creates the interactive "layers" command.
func (c *CLI) layersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "Reorder layers interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.edit(cmd.Context(), func(w *workspace) error {
				if w.store.Len() == 0 {
					printInfo("Canvas is empty")
					return nil
				}
				p := tea.NewProgram(NewLayerListModel(w.store), tea.WithContext(cmd.Context()))
				result, err := p.Run()
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "layer browser")
				}
				m := result.(LayerListModel)
				if !m.Committed {
					printInfo("Layer order unchanged")
					return nil
				}
				layers.Reorder(w.store, m.Order())
				printSuccess("Reordered %d layers", w.store.Len())
				return nil
			})
		},
	}
}

// zoomCommand creates the "zoom" command.
func (c *CLI) zoomCommand() *cobra.Command {
	var x, y float64

	cmd := &cobra.Command{
		Use:   "zoom <level>",
		Short: "Show how a zoom level maps screen and canvas points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "zoom level %q", args[0])
			}
			vp := canvas.NewViewportWithBounds(c.cfg.ZoomMin, c.cfg.ZoomMax)
			got := vp.SetZoom(level)
			if got != level {
				printWarning("Zoom %s clamped to %s", num(level), num(got))
			}
			printKeyValue("zoom", vp.Percent())
			pt := geom.Point{X: x, Y: y}
			cp := vp.ToCanvas(pt)
			printKeyValue("screen", fmt.Sprintf("(%s, %s)", num(pt.X), num(pt.Y)))
			printKeyValue("canvas", fmt.Sprintf("(%s, %s)", num(cp.X), num(cp.Y)))
			return nil
		},
	}
	cmd.Flags().Float64Var(&x, "x", 100, "screen x to convert")
	cmd.Flags().Float64Var(&y, "y", 100, "screen y to convert")
	return cmd
}

// pathCommand creates the "path" command.
func (c *CLI) pathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show where settings and canvases are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := c.configPath
			if cfgPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				cfgPath = p
			}
			printKeyValue("config", cfgPath)
			printKeyValue("backend", c.cfg.Storage.Backend)
			printKeyValue("key", c.cfg.Storage.Key)

			switch c.cfg.Storage.Backend {
			case config.BackendFile:
				dir, err := c.cfg.DataDir()
				if err != nil {
					return err
				}
				printKeyValue("dir", dir)
			case config.BackendSQLite:
				p, err := c.cfg.SQLitePath()
				if err != nil {
					return err
				}
				printKeyValue("database", p)
			case config.BackendRedis:
				printKeyValue("redis", c.cfg.Storage.RedisAddr)
			case config.BackendMongo:
				printKeyValue("mongodb", c.cfg.Storage.MongoURI)
			}
			return nil
		},
	}
}
