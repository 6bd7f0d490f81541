package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hexlayer/stegocrypt/stegocore"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <key-file>",
		Short: "Display the metadata stored in a key file",
		Long:  "Display the metadata stored in a key file. Does not require the stego file or passphrase.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kf, err := stegocore.ReadKeyFile(args[0])
			if err != nil {
				return fmt.Errorf("read key file: %w", err)
			}
			fmt.Printf("File:          %s\n", args[0])
			fmt.Printf("Cipher:        %s\n", kf.Cipher)
			fmt.Printf("Steg mode:     %s\n", kf.StegMode)
			fmt.Printf("Deniable:      %v\n", kf.Deniable)
			fmt.Printf("Payload type:  %s\n", kf.InfoType)
			if kf.Deniable {
				half := "0 - real key"
				if kf.PartitionHalf == 1 {
					half = "1 - decoy key"
				}
				fmt.Printf("Partition half: %s\n", half)
			}
			return nil
		},
	}
}

func newCiphersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ciphers",
		Short: "List all supported encryption ciphers",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][4]string{
				{"Ascon-128", "AEAD", "128-bit", "Lightweight, NIST standard - default"},
				{"ChaCha20-Poly1305", "AEAD", "256-bit", "Fast in software, no AES hardware needed"},
				{"AES-256-GCM", "AEAD", "256-bit", "Hardware-accelerated on most modern CPUs"},
			}
			for _, row := range rows {
				fmt.Printf("%-20s %-6s %-9s %s\n", row[0], row[1], row[2], row[3])
			}
			fmt.Println("\nAll ciphers use Argon2id key derivation.")
			return nil
		},
	}
}
