package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/export"
	"github.com/canvasflow/designer/pkg/persist"
)

// Export formats.
const (
	formatSVG  = "svg"
	formatPNG  = "png"
	formatJSON = "json"
)

var exportFormats = []string{formatSVG, formatPNG, formatJSON}

// exportCommand creates the "export" command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output    string
		margin    float64
		scale     float64
		selection string
		noNames   bool
	)

	cmd := &cobra.Command{
		Use:       "export <svg|png|json>",
		Short:     "Write the canvas as SVG, PNG or its saved JSON blob",
		Args:      cobra.ExactArgs(1),
		ValidArgs: exportFormats,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(args[0])
			return c.view(cmd.Context(), func(w *workspace) error {
				opts := []export.Option{export.WithMargin(margin), export.WithScale(scale)}
				if ids := splitIDs(selection); len(ids) > 0 {
					if err := w.selectIDs(ids); err != nil {
						return err
					}
					opts = append(opts, export.WithSelection(ids...))
				}
				if noNames {
					opts = append(opts, export.WithoutNames())
				}

				var (
					data []byte
					err  error
				)
				switch format {
				case formatSVG:
					data = export.RenderSVG(w.store.Elements(), opts...)
				case formatPNG:
					sp := newSpinner(cmd.Context(), "Rendering PNG...")
					sp.Start()
					data, err = export.RenderPNG(w.store.Elements(), opts...)
					sp.Stop()
				case formatJSON:
					data, err = persist.Encode(persist.FromStore(w.store))
				default:
					return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want one of %s)", format, strings.Join(exportFormats, ", "))
				}
				if err != nil {
					return err
				}

				if output == "" || output == "-" {
					_, err := os.Stdout.Write(data)
					if format == formatJSON {
						fmt.Println()
					}
					return err
				}
				if dir := filepath.Dir(output); dir != "." {
					if err := os.MkdirAll(dir, 0755); err != nil {
						return err
					}
				}
				if err := os.WriteFile(output, data, 0644); err != nil {
					return err
				}
				printSuccess("Exported %d elements", w.store.Len())
				printFile(output)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().Float64Var(&margin, "margin", export.DefaultMargin, "blank border around the elements")
	cmd.Flags().Float64Var(&scale, "scale", 2, "PNG scale factor")
	cmd.Flags().StringVar(&selection, "ids", "", "comma-separated elements to outline as selected")
	cmd.Flags().BoolVar(&noNames, "no-names", false, "omit element labels")
	return cmd
}
