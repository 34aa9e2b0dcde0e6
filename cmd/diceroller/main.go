package main

import (
	"diceroller/internal/ui"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the application.
// launch receives the parsed configuration and runs the GUI; tests pass a
// stub to inspect the flags without opening a window.
func NewRootCmd(launch func(cfg ui.Config) error) *cobra.Command {
	cfg := ui.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:          "diceroller",
		Short:        "Dice Roller - roll a six-sided die",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return launch(cfg)
		},
	}

	rootCmd.Flags().StringVar(&cfg.Theme, "theme", cfg.Theme, "Colour theme: system, light or dark.")
	rootCmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for repeatable rolls (0 for random).")
	rootCmd.Flags().Float32Var(&cfg.FaceSize, "face-size", cfg.FaceSize, fmt.Sprintf("Edge of the die image in pixels. Min: %d, max: %d.", ui.MinFaceSize, ui.MaxFaceSize))
	rootCmd.Flags().IntVar(&cfg.LogSize, "log-size", cfg.LogSize, fmt.Sprintf("Number of status messages to keep. Min: 1, max: %d.", ui.MaxLogMessages))

	return rootCmd
}

func main() {
	log.SetPrefix("[diceroller] ")

	if err := NewRootCmd(ui.CreateApplication).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
