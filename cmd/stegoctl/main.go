// Command stegoctl encrypts and hides payloads inside cover files
// (PNG, BMP, JPEG, WAV) from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stegoctl",
		Short:         "Encrypt and hide payloads inside image and audio cover files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newEmbedCmd(),
		newExtractCmd(),
		newEmbedDeniableCmd(),
		newExtractDeniableCmd(),
		newScoreCmd(),
		newCapacityCmd(),
		newInfoCmd(),
		newCiphersCmd(),
	)
	return root
}
