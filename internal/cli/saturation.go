package cli

import (
	"github.com/spf13/cobra"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/preset"
	"github.com/jonalee1/adstock-visualization/internal/usecase/series"
)

// rangeFlags describes an inclusive sample range
type rangeFlags struct {
	From float64
	To   float64
	Step float64
}

func (r *rangeFlags) bind(cmd *cobra.Command, from, to, step float64) {
	cmd.Flags().Float64Var(&r.From, "from", from, "First spend value")
	cmd.Flags().Float64Var(&r.To, "to", to, "Last spend value (inclusive)")
	cmd.Flags().Float64Var(&r.Step, "step", step, "Spacing between spend values")
}

func (r *rangeFlags) domain() domain.SampleDomain {
	return domain.NewSampleDomain(r.From, r.To, r.Step)
}

func newSaturationCmd(app *App) *cobra.Command {
	var (
		model    string
		fields   map[string]string
		marginal bool
		linear   float64
		samples  rangeFlags
	)

	cmd := &cobra.Command{
		Use:   "saturation",
		Short: "Response curve of one saturation model",
		Long: `Evaluate one saturation model over a spend range.

Models: hill, logistic, log, michaelis-menten, exponential.
Fields not given with --param keep their defaults.

  hill              max_response, shape, half_max
  logistic          max_response, slope, midpoint
  log               scale, rate
  michaelis-menten  max_response, half_max
  exponential       max_response, scale

Examples:
  curves saturation --marginal --linear 1000
  curves saturation --model logistic --param slope=0.05,midpoint=400`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := preset.ParseFamily(model)
			if err != nil {
				return err
			}
			params, err := domain.DefaultParams(family)
			if err != nil {
				return err
			}
			params, err = applyFields(params, fields)
			if err != nil {
				return err
			}

			return app.Compute("Saturation: "+model, series.Request{
				Domain:    samples.domain(),
				Variants:  []domain.Variant{{Label: curveLabel(params), Params: params}},
				Marginal:  marginal,
				LinearMax: linear,
			})
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "hill", "Saturation model")
	cmd.Flags().StringToStringVarP(&fields, "param", "p", nil, "Parameter overrides as field=value")
	cmd.Flags().BoolVar(&marginal, "marginal", false, "Add the marginal response column")
	cmd.Flags().Float64Var(&linear, "linear", 0, "Add a linear reference line reaching this value (0 disables)")
	samples.bind(cmd, 0, 1000, 10)

	return cmd
}
