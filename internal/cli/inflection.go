package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/curve"
	"github.com/jonalee1/adstock-visualization/internal/usecase/series"
)

func newInflectionCmd(app *App) *cobra.Command {
	var (
		shapes      []float64
		halfMax     float64
		maxResponse float64
	)

	cmd := &cobra.Command{
		Use:   "inflection",
		Short: "Inflection point of Hill curves",
		Long: `Print where a Hill curve switches from accelerating to diminishing returns:
x* = c·((n-1)/(n+1))^(1/n). Curves with shape n <= 1 have no inflection point.

Examples:
  curves inflection
  curves inflection --shape 3 --half-max 300`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prec := int32(app.Config.Output.Precision)
			for _, n := range shapes {
				params, err := checkHill(app, domain.HillParams{MaxResponse: maxResponse, Shape: n, HalfMax: halfMax})
				if err != nil {
					return err
				}

				label := "shape " + formatFloat(params.Shape)
				x, ok := curve.HillInflectionPoint(params.Shape, params.HalfMax)
				if !ok {
					fmt.Fprintf(app.Out, "%s: no inflection point (shape <= 1)\n", label)
					continue
				}
				y := curve.HillSaturation(x, params.MaxResponse, params.Shape, params.HalfMax)
				fmt.Fprintf(app.Out, "%s: inflection point at x = %s (response %s)\n",
					label,
					decimal.NewFromFloat(x).StringFixed(prec),
					decimal.NewFromFloat(y).StringFixed(prec))
			}
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&shapes, "shape", []float64{1, 2, 4}, "Hill shapes n")
	cmd.Flags().Float64Var(&halfMax, "half-max", 500, "Half-saturation point c")
	cmd.Flags().Float64Var(&maxResponse, "max-response", 1000, "Maximum response a")

	return cmd
}

// checkHill applies the configured boundary policy to a single Hill parameter set
func checkHill(app *App, p domain.HillParams) (domain.HillParams, error) {
	if series.Policy(app.Config.Engine.Policy) == series.PolicyReject {
		if err := p.Validate(); err != nil {
			return p, err
		}
		return p, nil
	}

	clamped, adjustments := p.Clamp()
	for _, adj := range adjustments {
		app.Logger.Warn().Str("adjustment", adj.String()).Msg("clamped out-of-range parameter")
	}
	return clamped.(domain.HillParams), nil
}
