package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonalee1/adstock-visualization/internal/usecase/preset"
)

func newPresetsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "List the built-in presets or compute one",
		Long: `Without a name, list every built-in preset.
With a name, compute and render that preset.

Examples:
  curves presets
  curves presets weibull-impulse`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listPresets(app)
			}

			p, err := preset.Find(args[0])
			if err != nil {
				return err
			}
			return app.Compute(p.Description, p.Request())
		},
	}
}

func listPresets(app *App) error {
	w := tabwriter.NewWriter(app.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCURVES\tDESCRIPTION")
	for _, p := range preset.Catalog() {
		fmt.Fprintf(w, "%s\t%d\t%s\n", p.Name, len(p.Variants), p.Description)
	}
	return w.Flush()
}
