package cmd

import (
	"github.com/cockroachdb/apd"
	"github.com/spf13/cobra"

	"github.com/precisionkit/bigmath/internal/config"
	"github.com/precisionkit/bigmath/internal/logging"
)

var (
	precision uint32
	rounding  string
	verbose   bool

	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bigmath",
	Short: "Arbitrary-precision elementary function evaluator",
	Long: `bigmath evaluates elementary functions (roots, exp, log, pow, the
trigonometric functions and their inverses, pi and e) at any requested
number of significant digits, correctly rounded.

Precision and rounding come from BIGMATH_PRECISION / BIGMATH_ROUNDING or
the corresponding flags; flags win.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()
		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New(logging.Config{
			Level:       level,
			Development: cfg.Logging.Development,
		})
		return err
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && logger != nil {
		logger.Error(err.Error())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().Uint32VarP(&precision, "precision", "p", 0, "significant digits (default from BIGMATH_PRECISION or 50)")
	rootCmd.PersistentFlags().StringVarP(&rounding, "rounding", "r", "", "rounding mode (default from BIGMATH_ROUNDING or half_even)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// evalContext merges environment configuration with flag overrides into
// the evaluation context used by all subcommands.
func evalContext() (*apd.Context, error) {
	cfg := config.LoadOrDefault()
	if precision != 0 {
		cfg.Evaluator.Precision = precision
	}
	if rounding != "" {
		cfg.Evaluator.Rounding = rounding
	}
	return cfg.Evaluator.Context()
}
