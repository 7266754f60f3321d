package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/geom"
	"github.com/canvasflow/designer/pkg/layers"
)

// addCommand creates the "add" command.
func (c *CLI) addCommand() *cobra.Command {
	var (
		left, top     float64
		width, height float64
		content, name string
		className     string
	)

	cmd := &cobra.Command{
		Use:       "add <type>",
		Short:     "Add an element (Box, Title, Text, Button, Image)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: typeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := canvas.ParseType(args[0])
			if !ok {
				return errors.New(errors.ErrCodeInvalidInput, "unknown element type %q (want one of %s)", args[0], strings.Join(typeNames(), ", "))
			}
			if t == canvas.Screen {
				return errors.New(errors.ErrCodeInvalidInput, "use \"%s screen WxH\" to add a screen", appName)
			}

			var opts []canvas.Option
			flags := cmd.Flags()
			if flags.Changed("left") || flags.Changed("top") {
				opts = append(opts, canvas.At(left, top))
			}
			if flags.Changed("width") || flags.Changed("height") {
				p := canvas.PresetFor(t)
				if !flags.Changed("width") {
					width = p.Width
				}
				if !flags.Changed("height") {
					height = p.Height
				}
				opts = append(opts, canvas.Sized(width, height))
			}
			if flags.Changed("content") {
				opts = append(opts, canvas.WithContent(content))
			}
			if className != "" {
				opts = append(opts, canvas.WithClassName(className))
			}
			if name != "" {
				opts = append(opts, canvas.WithMeta(canvas.MetaName, name))
			}

			return c.edit(cmd.Context(), func(w *workspace) error {
				el := w.store.Add(t, opts...)
				printSuccess("Added %s %s", el.Type, StyleHighlight.Render(el.ID))
				printElementSummary(el)
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&left, "left", canvas.DefaultLeft, "left edge")
	cmd.Flags().Float64Var(&top, "top", canvas.DefaultTop, "top edge")
	cmd.Flags().Float64Var(&width, "width", 0, "width (default: type preset)")
	cmd.Flags().Float64Var(&height, "height", 0, "height (default: type preset)")
	cmd.Flags().StringVar(&content, "content", "", "text content (default: type preset)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&className, "class", "", "class name (default: type preset)")
	return cmd
}

// screenCommand creates the "screen" command.
func (c *CLI) screenCommand() *cobra.Command {
	var left, top float64

	cmd := &cobra.Command{
		Use:     "screen <WxH>",
		Short:   "Add a screen frame of the given size",
		Example: "  designer screen 375x667",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h, err := errors.ParseSize(args[0])
			if err != nil {
				return err
			}
			return c.edit(cmd.Context(), func(ws *workspace) error {
				el := ws.store.AddScreen(w, h, canvas.At(left, top))
				printSuccess("Added %s %s", el.Meta(canvas.MetaName), StyleHighlight.Render(el.ID))
				printElementSummary(el)
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&left, "left", canvas.DefaultLeft, "left edge")
	cmd.Flags().Float64Var(&top, "top", canvas.DefaultTop, "top edge")
	return cmd
}

// moveCommand creates the "move" command, which replays a drag.
func (c *CLI) moveCommand() *cobra.Command {
	var (
		dx, dy float64
		zoom   float64
		ids    string
		steps  int
	)

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Drag an element by a screen offset, snapping to neighbours",
		Long: `Drag an element by (dx, dy) screen pixels at the given zoom. A lone element
snaps to the edges and centers of the others; with --ids the listed elements
follow the drag without snapping.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return c.edit(cmd.Context(), func(w *workspace) error {
				w.view.SetZoom(zoom)
				followers := splitIDs(ids)
				if err := w.selectIDs(without(followers, id)); err != nil {
					return err
				}
				additive := len(followers) > 0

				e := c.engine(w)
				if err := e.BeginDrag(id, geom.Point{}, additive); err != nil {
					return err
				}
				var guides []string
				for i := 1; i <= steps; i++ {
					f := float64(i) / float64(steps)
					frame, err := e.Move(geom.Point{X: dx * f, Y: dy * f})
					if err != nil {
						return err
					}
					guides = guides[:0]
					for _, g := range frame.Guides {
						guides = append(guides, guideLabel(g.Axis, g.Line))
					}
				}
				frame, err := e.End()
				if err != nil {
					return err
				}

				el, _ := w.store.Get(id)
				printSuccess("Moved %s to (%s, %s)", StyleHighlight.Render(id), num(el.Geometry.Left), num(el.Geometry.Top))
				if n := len(w.store.SelectedIDs()) - 1; n > 0 {
					printDetail("%d more selected elements dragged along", n)
				}
				if len(guides) > 0 {
					printDetail("Snapped: %s", strings.Join(guides, ", "))
				}
				c.Logger.Debug("drag committed", "id", frame.Primary, "left", el.Geometry.Left, "top", el.Geometry.Top)
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&dx, "dx", 0, "horizontal pointer offset in screen pixels")
	cmd.Flags().Float64Var(&dy, "dy", 0, "vertical pointer offset in screen pixels")
	cmd.Flags().Float64Var(&zoom, "zoom", canvas.DefaultZoom, "zoom level the drag happens at")
	cmd.Flags().StringVar(&ids, "ids", "", "comma-separated elements that move along")
	cmd.Flags().IntVar(&steps, "steps", 1, "pointer frames to replay")
	return cmd
}

// resizeCommand creates the "resize" command, which replays a corner drag.
func (c *CLI) resizeCommand() *cobra.Command {
	var dx, dy, zoom float64

	cmd := &cobra.Command{
		Use:   "resize <id>",
		Short: "Drag an element's resize handle by a screen offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return c.edit(cmd.Context(), func(w *workspace) error {
				w.view.SetZoom(zoom)
				e := c.engine(w)
				if err := e.BeginResize(id, geom.Point{}); err != nil {
					return err
				}
				if _, err := e.Move(geom.Point{X: dx, Y: dy}); err != nil {
					return err
				}
				if _, err := e.End(); err != nil {
					return err
				}
				el, _ := w.store.Get(id)
				printSuccess("Resized %s to %s×%s", StyleHighlight.Render(id), num(el.Geometry.Width), num(el.Geometry.Height))
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&dx, "dx", 0, "horizontal handle offset in screen pixels")
	cmd.Flags().Float64Var(&dy, "dy", 0, "vertical handle offset in screen pixels")
	cmd.Flags().Float64Var(&zoom, "zoom", canvas.DefaultZoom, "zoom level the resize happens at")
	return cmd
}

// marqueeCommand creates the "marquee" command.
func (c *CLI) marqueeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marquee <x1> <y1> <x2> <y2>",
		Short: "List the elements a selection band in canvas space touches",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := parseFloats(args)
			if err != nil {
				return err
			}
			return c.view(cmd.Context(), func(w *workspace) error {
				w.view.SetZoom(canvas.DefaultZoom)
				e := c.engine(w)
				if err := e.BeginMarquee(geom.Point{X: pts[0], Y: pts[1]}, false); err != nil {
					return err
				}
				if _, err := e.Move(geom.Point{X: pts[2], Y: pts[3]}); err != nil {
					return err
				}
				frame, err := e.End()
				if err != nil {
					return err
				}
				if len(frame.Selected) == 0 {
					printInfo("No elements in band")
					return nil
				}
				printSuccess("%d elements in band", len(frame.Selected))
				for _, id := range frame.Selected {
					el, _ := w.store.Get(id)
					printKeyValue(id, layers.DisplayName(el))
				}
				return nil
			})
		},
	}
	return cmd
}

// lockCommand creates the "lock" or "unlock" command.
func (c *CLI) lockCommand(locked bool) *cobra.Command {
	use, short, verb := "unlock", "Unlock elements", "Unlocked"
	if locked {
		use, short, verb = "lock", "Lock elements against dragging and deletion", "Locked"
	}
	return &cobra.Command{
		Use:   use + " <id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.edit(cmd.Context(), func(w *workspace) error {
				for _, id := range args {
					if err := w.store.Update(id, canvas.SetLocked(locked)); err != nil {
						return err
					}
				}
				printSuccess("%s %d elements", verb, len(args))
				return nil
			})
		},
	}
}

// renameCommand creates the "rename" command.
func (c *CLI) renameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Set an element's display name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, name := args[0], strings.TrimSpace(args[1])
			return c.edit(cmd.Context(), func(w *workspace) error {
				el, err := w.get(id)
				if err != nil {
					return err
				}
				p := canvas.SetMeta(canvas.MetaName, name)
				if el.Type == canvas.Screen {
					p = p.Merge(canvas.SetMeta(canvas.MetaScreenName, name))
				}
				if err := w.store.Update(id, p); err != nil {
					return err
				}
				el, _ = w.store.Get(id)
				printSuccess("Renamed %s to %s", StyleHighlight.Render(id), layers.DisplayName(el))
				return nil
			})
		},
	}
}

// setCommand creates the "set" command, which edits element properties.
func (c *CLI) setCommand() *cobra.Command {
	var content, caption, shape string

	cmd := &cobra.Command{
		Use:     "set <id>",
		Short:   "Edit an element's content, or an image's caption and shape",
		Example: `  designer set el-0 --content "Sign up"
  designer set el-3 --caption off --shape round`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			flags := cmd.Flags()
			if !flags.Changed("content") && caption == "" && shape == "" {
				return errors.New(errors.ErrCodeInvalidInput, "nothing to set (pass --content, --caption or --shape)")
			}
			return c.edit(cmd.Context(), func(w *workspace) error {
				el, err := w.get(id)
				if err != nil {
					return err
				}
				var p canvas.Patch
				if caption != "" || shape != "" {
					if el.Type != canvas.Image {
						return errors.New(errors.ErrCodeInvalidInput, "%s is a %s; --caption and --shape apply to images", id, el.Type)
					}
					if p, err = imagePatch(el, caption, shape); err != nil {
						return err
					}
				}

				if flags.Changed("content") {
					e := c.engine(w)
					e.SetEditing(id)
					err = w.store.Update(id, p.Merge(canvas.SetContent(content)))
					e.StopEditing()
				} else {
					err = w.store.Update(id, p)
				}
				if err != nil {
					return err
				}
				el, _ = w.store.Get(id)
				printSuccess("Updated %s", StyleHighlight.Render(id))
				printElementSummary(el)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "text content")
	cmd.Flags().StringVar(&caption, "caption", "", "show the image caption (on|off)")
	cmd.Flags().StringVar(&shape, "shape", "", "image shape (rect|round)")
	return cmd
}

// imagePatch builds the caption and shape changes for an image element.
func imagePatch(el canvas.Element, caption, shape string) (canvas.Patch, error) {
	var p canvas.Patch
	switch caption {
	case "":
	case "on":
		if el.Meta(canvas.MetaCaption) == "" {
			p = p.Merge(canvas.SetMeta(canvas.MetaCaption, canvas.PresetFor(canvas.Image).Metadata[canvas.MetaCaption]))
		}
	case "off":
		p = p.Merge(canvas.SetMeta(canvas.MetaCaption, ""))
	default:
		return p, errors.New(errors.ErrCodeInvalidInput, "invalid caption %q (want on or off)", caption)
	}
	switch shape {
	case "":
	case "rect":
		p = p.Merge(canvas.SetClassName(swapClass(el.ClassName, roundClass, rectClass)))
	case "round":
		p = p.Merge(canvas.SetClassName(swapClass(el.ClassName, rectClass, roundClass)))
	default:
		return p, errors.New(errors.ErrCodeInvalidInput, "invalid shape %q (want rect or round)", shape)
	}
	return p, nil
}

const (
	rectClass  = "rounded-lg"
	roundClass = "rounded-full"
)

// swapClass replaces from with to in a class list, appending to if from is
// absent. Order of the other classes is kept.
func swapClass(className, from, to string) string {
	var out []string
	for _, cls := range strings.Fields(className) {
		if cls == from || cls == to {
			continue
		}
		out = append(out, cls)
	}
	return strings.Join(append(out, to), " ")
}

// deleteCommand creates the "delete" command.
func (c *CLI) deleteCommand() *cobra.Command {
	var (
		force bool
		ids   string
	)

	cmd := &cobra.Command{
		Use:     "delete [id...]",
		Aliases: []string{"rm"},
		Short:   "Delete elements (locked ones need --force)",
		RunE: func(cmd *cobra.Command, args []string) error {
			args = append(args, splitIDs(ids)...)
			if len(args) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "no elements to delete (pass ids or --ids)")
			}
			return c.edit(cmd.Context(), func(w *workspace) error {
				if err := w.selectIDs(args); err != nil {
					return err
				}
				var n int
				if force {
					n = w.store.Remove(args...)
				} else {
					n = c.engine(w).DeleteSelected()
				}
				printSuccess("Deleted %d elements", n)
				if skipped := len(uniq(args)) - n; skipped > 0 {
					printDetail("%d locked elements kept (use --force)", skipped)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "delete locked elements too")
	cmd.Flags().StringVar(&ids, "ids", "", "comma-separated elements to delete")
	return cmd
}

// clearCommand creates the "clear" command.
func (c *CLI) clearCommand() *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every element and reset the id counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if purge {
				return c.view(cmd.Context(), func(w *workspace) error {
					if !w.adapter.Remove(cmd.Context()) {
						return errors.New(errors.ErrCodePersistence, "canvas %q was not removed", w.adapter.Key())
					}
					printSuccess("Removed saved canvas %s", StyleHighlight.Render(w.adapter.Key()))
					return nil
				})
			}
			return c.edit(cmd.Context(), func(w *workspace) error {
				n := w.store.Len()
				w.store.Clear()
				printSuccess("Cleared %d elements", n)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&purge, "purge", false, "delete the saved canvas instead of saving an empty one")
	return cmd
}
