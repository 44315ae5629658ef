package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"limits-fits/core/component"
	"limits-fits/core/feature"
	"limits-fits/core/fit"
	"limits-fits/core/material"
	"limits-fits/core/tolerance"
	"limits-fits/internal/errors"
)

var (
	fitHoleSize      float64
	fitHoleTemp      float64
	fitShaftTemp     float64
	fitHoleMaterial  string
	fitShaftMaterial string
)

var fitCmd = &cobra.Command{
	Use:   "fit <size> <hole>/<shaft>",
	Short: "Classify a hole/shaft pairing",
	Example: `  limits-fits fit 10 H7/h6
  limits-fits fit 25 H7/s6 --format json
  limits-fits fit 10 H7/h6 --shaft-temp 100 --shaft-material "Carbon Steel"`,
	Args: cobra.ExactArgs(2),
	RunE: runFit,
}

func init() {
	fitCmd.Flags().Float64Var(&fitHoleSize, "hole-size", 0, "hole basic size when it differs from the shaft's")
	fitCmd.Flags().Float64Var(&fitHoleTemp, "hole-temp", material.ReferenceTemp, "hole temperature in degrees C")
	fitCmd.Flags().Float64Var(&fitShaftTemp, "shaft-temp", material.ReferenceTemp, "shaft temperature in degrees C")
	fitCmd.Flags().StringVar(&fitHoleMaterial, "hole-material", "", "hole material (default brass)")
	fitCmd.Flags().StringVar(&fitShaftMaterial, "shaft-material", "", "shaft material (default carbon steel)")
	fitCmd.Flags().StringVar(&libraryPath, "library", "", "material library file (HCL)")
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, args []string) error {
	shaftSize, err := parseSize(args[0])
	if err != nil {
		return err
	}

	parts := strings.Split(args[1], "/")
	if len(parts) != 2 {
		return errors.Input("pairing must be <hole>/<shaft>, e.g. H7/h6").
			WithContext("pairing", args[1])
	}
	holeDes, err := tolerance.Parse(parts[0])
	if err != nil {
		return err
	}
	shaftDes, err := tolerance.Parse(parts[1])
	if err != nil {
		return err
	}
	if !holeDes.IsHole() || shaftDes.IsHole() {
		return errors.Input("hole designations are upper-case, shaft lower-case").
			WithContext("pairing", args[1])
	}

	holeSize := shaftSize
	if cmd.Flags().Changed("hole-size") {
		if fitHoleSize <= 0 {
			return errors.Input("hole size must be a positive number of millimetres")
		}
		holeSize = fitHoleSize
	}

	hole, err := feature.Resolve(holeSize, holeDes)
	if err != nil {
		return err
	}
	shaft, err := feature.Resolve(shaftSize, shaftDes)
	if err != nil {
		return err
	}

	thermal := cmd.Flags().Changed("hole-temp") || cmd.Flags().Changed("shaft-temp") ||
		fitHoleMaterial != "" || fitShaftMaterial != ""

	var result fit.Fit
	if thermal {
		holeMat, shaftMat, err := fitMaterials()
		if err != nil {
			return err
		}
		holeMat.Temp = fitHoleTemp
		shaftMat.Temp = fitShaftTemp
		result = fit.NewAtTemperature(hole, shaft, holeMat, shaftMat)
	} else {
		result = fit.New(hole, shaft)
	}

	formatter, err := newFormatter()
	if err != nil {
		return err
	}
	out, err := formatter.Fit(holeDes.String()+"/"+shaftDes.String(), result)
	if err != nil {
		return err
	}
	cmd.Print(out)
	return nil
}

// fitMaterials resolves the per-side materials, defaulting to the stock
// hub and shaft materials.
func fitMaterials() (material.Material, material.Material, error) {
	holeMat := component.DefaultHub().Material
	shaftMat := component.DefaultShaft().Material

	if fitHoleMaterial == "" && fitShaftMaterial == "" {
		return holeMat, shaftMat, nil
	}

	lib, err := loadLibrary()
	if err != nil {
		return holeMat, shaftMat, err
	}
	if fitHoleMaterial != "" {
		if holeMat, err = lib.Lookup(fitHoleMaterial); err != nil {
			return holeMat, shaftMat, err
		}
	}
	if fitShaftMaterial != "" {
		if shaftMat, err = lib.Lookup(fitShaftMaterial); err != nil {
			return holeMat, shaftMat, err
		}
	}
	return holeMat, shaftMat, nil
}
