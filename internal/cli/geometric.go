package cli

import (
	"github.com/spf13/cobra"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/preset"
	"github.com/jonalee1/adstock-visualization/internal/usecase/series"
)

func newGeometricCmd(app *App) *cobra.Command {
	var (
		decays  []float64
		spend   string
		periods int
	)

	cmd := &cobra.Command{
		Use:   "geometric",
		Short: "Geometric adstock of a spend series",
		Long: `Apply geometric adstock A_t = x_t + θ·A_{t-1} to a spend series.

Each --decay value adds one column. The default spend is a ramped campaign
(100,150,200,250,200,150,100,50) followed by zero spend.

Examples:
  curves geometric
  curves geometric --decay 0.5 --spend 100 --periods 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := parseSpend(spend)
			if err != nil {
				return err
			}
			if inputs == nil {
				inputs = preset.CampaignSpend
			}

			variants := make([]domain.Variant, len(decays))
			for i, d := range decays {
				variants[i] = domain.Variant{
					Label:  "Adstock (θ=" + formatFloat(d) + ")",
					Params: domain.GeometricParams{Decay: d},
				}
			}

			return app.Compute("Geometric adstock", series.Request{
				Domain:   domain.PeriodDomain(periods),
				Spend:    inputs,
				Variants: variants,
			})
		},
	}

	cmd.Flags().Float64SliceVar(&decays, "decay", []float64{0.3, 0.6, 0.9}, "Decay rates θ in [0, 1]")
	cmd.Flags().StringVar(&spend, "spend", "", "Comma-separated spend per period (default: ramped campaign)")
	cmd.Flags().IntVar(&periods, "periods", 20, "Number of periods")

	return cmd
}
