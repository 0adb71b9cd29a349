package cmd

import (
	"fmt"

	"github.com/cockroachdb/apd"
	"github.com/spf13/cobra"

	"github.com/precisionkit/bigmath"
)

var piCmd = &cobra.Command{
	Use:   "pi",
	Short: "Print the circle constant at the configured precision",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printConstant(cmd, bigmath.Pi)
	},
}

var eCmd = &cobra.Command{
	Use:   "e",
	Short: "Print the base of the natural logarithm at the configured precision",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printConstant(cmd, bigmath.E)
	},
}

func printConstant(cmd *cobra.Command, f func(*apd.Context) (*apd.Decimal, error)) error {
	c, err := evalContext()
	if err != nil {
		return err
	}
	d, err := f(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), d.String())
	return nil
}

func init() {
	rootCmd.AddCommand(piCmd, eCmd)
}
