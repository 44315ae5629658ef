package cmd

import (
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the material catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := loadLibrary()
		if err != nil {
			return err
		}

		formatter, err := newFormatter()
		if err != nil {
			return err
		}
		out, err := formatter.Materials(lib.Materials())
		if err != nil {
			return err
		}
		cmd.Print(out)
		return nil
	},
}

func init() {
	materialsCmd.Flags().StringVar(&libraryPath, "library", "", "material library file (HCL)")
	rootCmd.AddCommand(materialsCmd)
}
