package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/geom"
	"github.com/canvasflow/designer/pkg/layers"
	"github.com/canvasflow/designer/pkg/layout"
)

func parseAxisArg(s string) (geom.Axis, error) {
	axis, ok := geom.ParseAxis(strings.ToLower(s))
	if !ok {
		return axis, errors.New(errors.ErrCodeInvalidInput, "unknown axis %q (want h or v)", s)
	}
	return axis, nil
}

// alignCommand creates the "align" command.
func (c *CLI) alignCommand() *cobra.Command {
	var ids string

	cmd := &cobra.Command{
		Use:   "align <h|v> --ids a,b,...",
		Short: "Center the selected elements on a common line",
		Long: `Align moves each selected element so its center on the axis equals the mean
center of the selection: "v" lines up vertical centers, "h" horizontal ones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, err := parseAxisArg(args[0])
			if err != nil {
				return err
			}
			return c.edit(cmd.Context(), func(w *workspace) error {
				if err := w.selectIDs(splitIDs(ids)); err != nil {
					return err
				}
				if err := layout.Align(w.store, axis); err != nil {
					return err
				}
				printSuccess("Aligned %d elements (%s)", len(w.store.SelectedIDs()), axis)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&ids, "ids", "", "comma-separated elements to align")
	return cmd
}

// distributeCommand creates the "distribute" command.
func (c *CLI) distributeCommand() *cobra.Command {
	var ids string

	cmd := &cobra.Command{
		Use:   "distribute <h|v> --ids a,b,c,...",
		Short: "Space the selected elements with equal gaps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, err := parseAxisArg(args[0])
			if err != nil {
				return err
			}
			return c.edit(cmd.Context(), func(w *workspace) error {
				if err := w.selectIDs(splitIDs(ids)); err != nil {
					return err
				}
				if err := layout.Distribute(w.store, axis); err != nil {
					return err
				}
				printSuccess("Distributed %d elements (%s)", len(w.store.SelectedIDs()), axis)
				for _, el := range w.store.Selected() {
					printDetail("%s at %s", el.ID, num(el.Rect().Lead(axis)))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&ids, "ids", "", "comma-separated elements to distribute")
	return cmd
}

// groupCommand creates the "group" command.
func (c *CLI) groupCommand() *cobra.Command {
	var (
		ids     string
		padding float64
	)

	cmd := &cobra.Command{
		Use:   "group --ids a,b,...",
		Short: "Add a backdrop box behind the selected elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.edit(cmd.Context(), func(w *workspace) error {
				if !cmd.Flags().Changed("padding") {
					padding = w.cfg.GroupPadding
				}
				if err := w.selectIDs(splitIDs(ids)); err != nil {
					return err
				}
				n := len(w.store.SelectedIDs())
				group, err := layout.Group(w.store, padding)
				if err != nil {
					return err
				}
				printSuccess("Grouped %d elements as %s", n, StyleHighlight.Render(group.ID))
				printElementSummary(group)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&ids, "ids", "", "comma-separated elements to group")
	cmd.Flags().Float64Var(&padding, "padding", layout.DefaultGroupPadding, "space between the elements and the backdrop edge")
	return cmd
}

// reorderCommand creates the "reorder" command.
func (c *CLI) reorderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <id>...",
		Short: "Restack elements front to back in the given order",
		Long: `Reorder renumbers every element's zIndex from a front-to-back list. Elements
left out keep their relative order behind the listed ones.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.edit(cmd.Context(), func(w *workspace) error {
				for _, id := range args {
					if _, err := w.get(id); err != nil {
						return err
					}
				}
				layers.Reorder(w.store, args)
				printSuccess("Reordered %d layers", w.store.Len())
				printLayers(w.store, layers.List(w.store.Elements()))
				return nil
			})
		},
	}
}

// frontCommand creates the "front" command.
func (c *CLI) frontCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "front <id>",
		Short: "Bring an element to the front",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.edit(cmd.Context(), func(w *workspace) error {
				if err := layers.BringToFront(w.store, args[0]); err != nil {
					return err
				}
				el, _ := w.store.Get(args[0])
				printSuccess("%s is now in front (zIndex %d)", StyleHighlight.Render(el.ID), el.Geometry.ZIndex)
				return nil
			})
		},
	}
}

// backCommand creates the "back" command.
func (c *CLI) backCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "back <id>",
		Short: "Send an element to the back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.edit(cmd.Context(), func(w *workspace) error {
				if err := layers.SendToBack(w.store, args[0]); err != nil {
					return err
				}
				el, _ := w.store.Get(args[0])
				printSuccess("%s is now at the back (zIndex %d)", StyleHighlight.Render(el.ID), el.Geometry.ZIndex)
				return nil
			})
		},
	}
}

// collisionsCommand creates the "collisions" command.
func (c *CLI) collisionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "collisions <id>",
		Short: "List the layers overlapping an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.view(cmd.Context(), func(w *workspace) error {
				if err := w.selectIDs(args); err != nil {
					return err
				}
				shown, _ := layers.Colliding(w.store)
				if len(shown) == 1 {
					printInfo("Nothing overlaps %s", args[0])
					return nil
				}
				printInfo("%d layers overlap %s", len(shown)-1, StyleHighlight.Render(args[0]))
				printLayers(w.store, shown)
				return nil
			})
		},
	}
}

// without returns ids minus drop.
func without(ids []string, drop string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}

func uniq(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// typeNames lists the element types accepted by "add".
func typeNames() []string {
	var names []string
	for _, t := range canvas.Types {
		if t != canvas.Screen {
			names = append(names, string(t))
		}
	}
	return names
}
