package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonalee1/adstock-visualization/internal/lib"
)

// NewRootCmd builds the curves command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "curves",
		Short: "Explore adstock and saturation response curves",
		Long: `curves computes the transfer functions used in marketing mix models.

Adstock curves (geometric, Weibull) show how advertising effects carry over
across periods. Saturation curves (Hill, logistic, log, Michaelis-Menten,
exponential) show diminishing returns as spend grows.

Output format, precision and the parameter policy come from the environment
(CURVES_OUTPUT, CURVES_PRECISION, CURVES_POLICY) and can be overridden with flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyGlobalFlags(cmd, app)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("output", "o", app.Config.Output.Format, "Output format: auto, table, csv or json")
	flags.Int("precision", app.Config.Output.Precision, "Decimal places in rendered values (0-10)")
	flags.String("policy", app.Config.Engine.Policy, "Out-of-range parameters: clamp or reject")
	flags.Float64Var(&app.Threshold, "threshold", app.Threshold, "Marginal return that marks diminishing returns (0 disables)")

	rootCmd.SetIn(app.In)
	rootCmd.SetOut(app.Out)
	rootCmd.SetErr(app.Err)

	rootCmd.AddCommand(newGeometricCmd(app))
	rootCmd.AddCommand(newWeibullCmd(app))
	rootCmd.AddCommand(newSaturationCmd(app))
	rootCmd.AddCommand(newCompareCmd(app))
	rootCmd.AddCommand(newInflectionCmd(app))
	rootCmd.AddCommand(newPresetsCmd(app))
	rootCmd.AddCommand(newExploreCmd(app))

	return rootCmd
}

// applyGlobalFlags copies explicitly set flags over the configuration and revalidates it
func applyGlobalFlags(cmd *cobra.Command, app *App) error {
	flags := cmd.Flags()

	if flags.Changed("output") {
		v, _ := flags.GetString("output")
		app.Config.Output.Format = v
	}
	if flags.Changed("precision") {
		v, _ := flags.GetInt("precision")
		app.Config.Output.Precision = v
	}
	if flags.Changed("policy") {
		v, _ := flags.GetString("policy")
		app.Config.Engine.Policy = v
	}

	if err := lib.ValidateStruct(app.Config); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if app.Threshold < 0 {
		return fmt.Errorf("invalid flags: threshold must be >= 0, got %g", app.Threshold)
	}
	return nil
}
