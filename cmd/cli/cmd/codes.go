package cmd

import (
	"github.com/spf13/cobra"

	"limits-fits/core/standard"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the recognized grade and deviation codes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter, err := newFormatter()
		if err != nil {
			return err
		}
		out, err := formatter.Codes(standard.Grades(), standard.HoleDeviations(), standard.ShaftDeviations())
		if err != nil {
			return err
		}
		cmd.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(codesCmd)
}
