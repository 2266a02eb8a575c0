package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/preset"
	"github.com/jonalee1/adstock-visualization/internal/usecase/series"
)

func newCompareCmd(app *App) *cobra.Command {
	var (
		curves    []string
		intensity float64
		samples   rangeFlags
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Several saturation curves side by side",
		Long: `Evaluate several saturation curves over the same spend range.

Each --curve is "model[:field=value,...]". Without --curve, the six reference
models (three Hill shapes, logistic, log, Michaelis-Menten) are compared.
--intensity compares an S-shaped Hill curve with exponential diminishing
returns driven by one saturation intensity in [0.1, 2], next to a linear
reference reaching the same plateau at the end of the range.

Examples:
  curves compare
  curves compare --curve hill:shape=1 --curve michaelis-menten:half_max=500
  curves compare --intensity 1.2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("intensity") {
				if len(curves) > 0 {
					return fmt.Errorf("%w: --intensity and --curve are mutually exclusive", errInvalidInput)
				}
				r := samples
				if !cmd.Flags().Changed("step") {
					r.Step = 25
				}
				if !cmd.Flags().Changed("to") {
					r.To = 1000
				}
				return app.Compute(fmt.Sprintf("Saturation intensity %s", formatFloat(intensity)), series.Request{
					Domain: r.domain(),
					Variants: []domain.Variant{
						{Label: "S-shaped Saturation", Params: preset.IntensityHill(intensity)},
						{Label: "Diminishing Returns", Params: preset.IntensityExponential(intensity)},
					},
					LinearMax: preset.IntensityMaxResponse,
				})
			}

			if len(curves) == 0 {
				p, err := preset.Find("saturation-models")
				if err != nil {
					return err
				}
				req := p.Request()
				if flagsChanged(cmd, "from", "to", "step") {
					req.Domain = samples.domain()
				}
				return app.Compute(p.Description, req)
			}

			variants := make([]domain.Variant, len(curves))
			for i, spec := range curves {
				params, err := parseCurve(spec)
				if err != nil {
					return fmt.Errorf("curve %d: %w", i+1, err)
				}
				variants[i] = domain.Variant{Label: curveLabel(params), Params: params}
			}

			return app.Compute("Saturation comparison", series.Request{
				Domain:   samples.domain(),
				Variants: variants,
			})
		},
	}

	cmd.Flags().StringArrayVarP(&curves, "curve", "c", nil, "Curve spec model[:field=value,...] (repeatable)")
	cmd.Flags().Float64Var(&intensity, "intensity", 0.5, "Saturation intensity for the S-shaped vs exponential comparison")
	samples.bind(cmd, 0, 100, 5)

	return cmd
}

func flagsChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
