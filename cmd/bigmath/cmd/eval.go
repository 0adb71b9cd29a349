package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/precisionkit/bigmath"
)

// function describes one evaluable entry point: its decimal arity and the
// dispatch into the library.
type function struct {
	arity int
	call  func(args []*apd.Decimal, c *apd.Context) (string, error)
}

func one(f func(*apd.Decimal, *apd.Context) (*apd.Decimal, error)) function {
	return function{arity: 1, call: func(args []*apd.Decimal, c *apd.Context) (string, error) {
		d, err := f(args[0], c)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	}}
}

func two(f func(_, _ *apd.Decimal, _ *apd.Context) (*apd.Decimal, error)) function {
	return function{arity: 2, call: func(args []*apd.Decimal, c *apd.Context) (string, error) {
		d, err := f(args[0], args[1], c)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	}}
}

var functions = map[string]function{
	"sqrt": one(bigmath.Sqrt),
	"exp":  one(bigmath.Exp),
	"log":  one(bigmath.Log),
	"sin":  one(bigmath.Sin),
	"cos":  one(bigmath.Cos),
	"tan":  one(bigmath.Tan),
	"asin": one(bigmath.Asin),
	"acos": one(bigmath.Acos),
	"atan": one(bigmath.Atan),
	"pow":  two(bigmath.Pow),
	"atan2": two(func(y, x *apd.Decimal, c *apd.Context) (*apd.Decimal, error) {
		return bigmath.Atan2(y, x, c)
	}),
	"root": {arity: 2, call: func(args []*apd.Decimal, c *apd.Context) (string, error) {
		n, err := args[1].Int64()
		if err != nil {
			return "", fmt.Errorf("root order must be an integer: %w", err)
		}
		d, err := bigmath.Root(args[0], int(n), c)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	}},
	"sincos": {arity: 1, call: func(args []*apd.Decimal, c *apd.Context) (string, error) {
		sin, cos, err := bigmath.SinCos(args[0], c)
		if err != nil {
			return "", err
		}
		return sin.String() + " " + cos.String(), nil
	}},
}

func functionNames() string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

var evalCmd = &cobra.Command{
	Use:   "eval <function> <arg>...",
	Short: "Evaluate a function at the configured precision",
	Long: `Evaluate a named function over decimal arguments, printing the result
correctly rounded to the configured number of significant digits.

Functions taking one argument: sqrt, exp, log, sin, cos, tan, asin, acos,
atan, sincos (prints "sin cos"). Functions taking two: root <x> <n>,
pow <x> <y>, atan2 <y> <x>.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(args[0])
	fn, ok := functions[name]
	if !ok {
		return fmt.Errorf("unknown function %q (available: %s)", name, functionNames())
	}
	if got := len(args) - 1; got != fn.arity {
		return fmt.Errorf("%s takes %d argument(s), got %d", name, fn.arity, got)
	}

	c, err := evalContext()
	if err != nil {
		return err
	}

	operands := make([]*apd.Decimal, fn.arity)
	for i, raw := range args[1:] {
		d, err := bigmath.ParseDecimal(raw)
		if err != nil {
			return fmt.Errorf("argument %s: %w", strconv.Itoa(i+1), err)
		}
		operands[i] = d
	}

	start := time.Now()
	out, err := fn.call(operands, c)
	if err != nil {
		return err
	}
	logger.Debug("evaluated",
		zap.String("function", name),
		zap.Uint32("precision", c.Precision),
		zap.Duration("elapsed", time.Since(start)),
	)

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
