// Package cmd implements the CLI commands.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"limits-fits/core/material"
	"limits-fits/core/output"
	"limits-fits/internal/config"
	"limits-fits/internal/logging"
)

const version = "1.0.0"

var (
	cfgFile      string
	verbose      bool
	outputFormat string
	libraryPath  string
)

var rootCmd = &cobra.Command{
	Use:   "limits-fits",
	Short: "ISO 286 limits and fits calculator",
	Long: `limits-fits resolves ISO 286 designations such as H7 or js4 to
deviation limits and classifies hole/shaft pairings as clearance,
transition or interference fits, at the reference temperature or at
operating temperatures.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command.
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.limits-fits/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
}

func initConfig() error {
	path := cfgFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".limits-fits", "config.json")
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	return logging.Initialize(cfg.Logging)
}

// newFormatter builds a formatter from the flags and config.
func newFormatter() (*output.Formatter, error) {
	format := outputFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	return output.New(format, config.Get().Output.Places)
}

// loadLibrary builds the material catalog, merging the user library file
// from the --library flag or the configured path.
func loadLibrary() (*material.Library, error) {
	lib := material.NewLibrary()

	path := libraryPath
	if path == "" {
		path = config.Get().Library.Path
	}
	if path != "" {
		if err := lib.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return lib, nil
}
