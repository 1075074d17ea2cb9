// Command apmcalc is a thin command-line front end over the bigint/
// decimal packages: it is not part of the arithmetic core, only a
// caller of it, in the same spirit as the corpus's own CLI wrappers
// around a computational core.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/apm/decimal"
	"github.com/spf13/cobra"
)

func main() {
	var scale int
	var roundMode string
	var digits int

	rootCmd := &cobra.Command{
		Use:   "apmcalc",
		Short: "Arbitrary-precision calculator over the apm decimal/bigint packages",
	}
	rootCmd.PersistentFlags().IntVar(&scale, "scale", decimal.DefaultScale,
		"fixed-point scale (fractional digits), fixed on first use")
	rootCmd.PersistentFlags().StringVar(&roundMode, "rounding-mode", "half_even",
		"rounding mode: toward_zero, half_up, half_down, half_even, half_odd, ceil, floor, away_from_zero")
	rootCmd.PersistentFlags().IntVar(&digits, "round", -1,
		"round the result to this many fractional digits before printing (-1 = full scale)")

	evalCmd := &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate an arithmetic expression over decimal/rational literals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decimal.SetScale(scale)
			mode, err := parseRoundingMode(roundMode)
			if err != nil {
				return err
			}
			decimal.SetRoundingMode(mode)

			result, err := eval(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if digits >= 0 {
				result = new(decimal.Decimal).Round(result, digits)
			}
			fmt.Println(result.String())
			return nil
		},
	}

	constCmd := &cobra.Command{
		Use:   "const {pi|e|ln2}",
		Short: "Print a cached transcendental constant at the active scale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decimal.SetScale(scale)
			switch strings.ToLower(args[0]) {
			case "pi":
				fmt.Println(decimal.Pi().String())
			case "e":
				fmt.Println(decimal.E().String())
			case "ln2":
				fmt.Println(decimal.Ln2().String())
			default:
				return fmt.Errorf("unknown constant %q (want pi, e or ln2)", args[0])
			}
			return nil
		},
	}

	rootCmd.AddCommand(evalCmd, constCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseRoundingMode(s string) (decimal.RoundingMode, error) {
	switch strings.ToLower(s) {
	case "toward_zero":
		return decimal.TowardZero, nil
	case "half_up":
		return decimal.HalfUp, nil
	case "half_down":
		return decimal.HalfDown, nil
	case "half_even":
		return decimal.HalfEven, nil
	case "half_odd":
		return decimal.HalfOdd, nil
	case "ceil":
		return decimal.Ceil, nil
	case "floor":
		return decimal.Floor, nil
	case "away_from_zero":
		return decimal.AwayFromZero, nil
	default:
		return 0, fmt.Errorf("unknown rounding mode %q", s)
	}
}
