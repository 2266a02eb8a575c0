package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/preset"
	"github.com/jonalee1/adstock-visualization/internal/usecase/series"
)

func newWeibullCmd(app *App) *cobra.Command {
	var (
		shapes  []float64
		scales  []float64
		decay   float64
		spend   string
		periods int
		impulse bool
	)

	cmd := &cobra.Command{
		Use:   "weibull",
		Short: "Weibull adstock compared with geometric decay",
		Long: `Convolve a spend series with the Weibull kernel exp(-(lag/λ)^k).

--shape and --scale are paired by position. Shape below 1 decays fast,
shape 1 matches geometric decay, shape above 1 delays the peak.
A geometric column with --decay is added for comparison (negative disables it).

Examples:
  curves weibull
  curves weibull --impulse
  curves weibull --shape 2 --scale 3 --decay=-1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(shapes) != len(scales) {
				return fmt.Errorf("%w: %d shapes but %d scales", errInvalidInput, len(shapes), len(scales))
			}

			inputs, err := parseSpend(spend)
			if err != nil {
				return err
			}
			n := periods
			switch {
			case inputs != nil:
			case impulse:
				inputs = preset.ImpulseSpend
				if !cmd.Flags().Changed("periods") {
					n = 16
				}
			default:
				inputs = preset.DelayedCampaignSpend
			}

			var variants []domain.Variant
			if decay >= 0 {
				variants = append(variants, domain.Variant{
					Label:  "Geometric (θ=" + formatFloat(decay) + ")",
					Params: domain.GeometricParams{Decay: decay},
				})
			}
			for i := range shapes {
				variants = append(variants, domain.Variant{
					Label:  fmt.Sprintf("Weibull (k=%s, λ=%s)", formatFloat(shapes[i]), formatFloat(scales[i])),
					Params: domain.WeibullParams{Shape: shapes[i], Scale: scales[i]},
				})
			}
			if len(variants) == 0 {
				return fmt.Errorf("%w: nothing to compute", errInvalidInput)
			}

			title := "Weibull adstock"
			if impulse {
				title = "Weibull adstock impulse response"
			}
			return app.Compute(title, series.Request{
				Domain:   domain.PeriodDomain(n),
				Spend:    inputs,
				Variants: variants,
			})
		},
	}

	cmd.Flags().Float64SliceVar(&shapes, "shape", []float64{0.7, 1, 2, 3}, "Weibull shapes k")
	cmd.Flags().Float64SliceVar(&scales, "scale", []float64{2, 3, 3, 5}, "Weibull scales λ, one per shape")
	cmd.Flags().Float64Var(&decay, "decay", 0.7, "Geometric decay for the comparison column (negative disables)")
	cmd.Flags().StringVar(&spend, "spend", "", "Comma-separated spend per period (default: campaign starting in period 4)")
	cmd.Flags().IntVar(&periods, "periods", 20, "Number of periods")
	cmd.Flags().BoolVar(&impulse, "impulse", false, "Use a single burst of 100 in period 5")

	return cmd
}
