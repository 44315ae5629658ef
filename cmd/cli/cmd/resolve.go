package cmd

import (
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"limits-fits/core/feature"
	"limits-fits/core/tolerance"
	"limits-fits/internal/errors"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <size> <designation>",
	Short: "Resolve a designation to deviation limits",
	Example: `  limits-fits resolve 10 H7
  limits-fits resolve 52.8 g6 --format json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := parseSize(args[0])
		if err != nil {
			return err
		}
		d, err := tolerance.Parse(args[1])
		if err != nil {
			return err
		}

		ft, err := feature.Resolve(size, d)
		if err != nil {
			return err
		}

		formatter, err := newFormatter()
		if err != nil {
			return err
		}
		out, err := formatter.Feature(d.String(), ft)
		if err != nil {
			return err
		}
		cmd.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func parseSize(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || v <= 0 {
		return 0, errors.Input("size must be a positive number of millimetres").
			WithContext("size", s)
	}
	return v, nil
}
