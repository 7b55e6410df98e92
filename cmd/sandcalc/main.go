// Command sandcalc evaluates sand-management calculations for a production
// case described in a YAML file: fluid mixture properties first, then the
// requested erosion models, in one pass.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lundrav/sandcalc/erosion"
	"github.com/lundrav/sandcalc/logging"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sandcalc",
	Short: "Sand management calculations (DNVGL RP-O501)",
	Long: `sandcalc evaluates sand-management engineering models: black-oil
mixture properties, erosion rates for the standard geometries, acoustic
sand detector calibration and sand transport thresholds.

Model warnings (inputs outside the validity envelope) are reported on
stderr; out-of-envelope results print as NaN.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.SetLogger(logger)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [case.yaml]",
	Short: "Evaluate a production case file",
	Long: `Reads a YAML case file, derives the mixture velocity, density and
viscosity from its PVT block, and evaluates every erosion model the file
requests against the derived conditions.

Example:
  sandcalc eval well_a.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := LoadCase(args[0])
		if err != nil {
			return err
		}

		return c.Evaluate(cmd.OutOrStdout())
	},
}

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the RP-O501 Table 3-1 material constants",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-14s %10s %5s %9s\n", "MATERIAL", "K", "n", "rho_t")
		for _, name := range erosion.Materials() {
			p, _ := erosion.MaterialProperties(name)
			fmt.Fprintf(w, "%-14s %10.2e %5.2f %9.0f\n", name, p.K, p.N, p.RhoT)
		}

		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(evalCmd, materialsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
