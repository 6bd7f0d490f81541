package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hexlayer/stegocrypt/stegocore"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <image>",
		Short: "Analyse a cover image and report its steganographic quality score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := stegocore.ScoreCoverImage(args[0])
			if err != nil {
				return fmt.Errorf("score: %w", err)
			}
			fmt.Printf("Cover Score: %d/100 (%s)\n", report.Score, report.Label)
			fmt.Printf("  Dimensions:           %d x %d px\n", report.Width, report.Height)
			fmt.Printf("  Entropy:              %.2f / 8.00 bits\n", report.Entropy)
			fmt.Printf("  Texture density:      %.1f%%\n", report.TextureDensity*100)
			fmt.Printf("  Adaptive capacity:    %d bytes\n", report.AdaptiveCapacity)
			fmt.Printf("  Sequential capacity:  %d bytes\n", report.SequentialCapacity)
			return nil
		},
	}
}

func newCapacityCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "capacity <cover>",
		Short: "Report how many payload bytes fit in a cover file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := stegocore.GetCapacity(args[0], parseMode(mode), nil)
			if err != nil {
				return fmt.Errorf("capacity: %w", err)
			}
			fmt.Printf("%d bytes available (%s mode)\n", report.AvailableBytes, report.Mode)
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "sequential", "embedding mode for PNG/BMP covers: adaptive or sequential")
	return cmd
}
