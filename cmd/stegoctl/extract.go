package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexlayer/stegocrypt/stegocore"
)

func newExtractCmd() *cobra.Command {
	var (
		passphrase string
		force      bool
	)

	cmd := &cobra.Command{
		Use:     "extract <stego> <key-file> <output>",
		Short:   "Extract and decrypt a hidden payload from a stego file",
		Args:    cobra.ExactArgs(3),
		Example: "  stegoctl extract stego.png stego.png.key.json recovered.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			stegoPath, keyFilePath, outputPath := args[0], args[1], args[2]

			kf, err := stegocore.ReadKeyFile(keyFilePath)
			if err != nil {
				return fmt.Errorf("read key file: %w", err)
			}
			if kf.Deniable {
				return fmt.Errorf("%s is a deniable key file; use 'stegoctl extract-deniable' instead", keyFilePath)
			}

			ok, err := confirmOverwrite(outputPath, force)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("aborted: %s already exists", outputPath)
			}

			pass, err := readPassphrase(passphrase, "Passphrase: ")
			if err != nil {
				return err
			}

			key, err := stegocore.DeriveKey(pass, kf.Salt, kf.Cipher)
			if err != nil {
				return fmt.Errorf("derive key: %w", err)
			}
			ciphertext, err := stegocore.Extract(stegoPath, key, kf.StegMode)
			if err != nil {
				return fmt.Errorf("extract: %w", err)
			}
			sealed := &stegocore.Sealed{Ciphertext: ciphertext, Nonce: kf.Nonce, Salt: kf.Salt, Suite: kf.Cipher}
			plaintext, err := stegocore.Decrypt(sealed, pass)
			if err != nil {
				return fmt.Errorf("decrypt: %w", err)
			}

			if err := os.WriteFile(outputPath, plaintext, 0o600); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("recovered %d bytes into %s\n", len(plaintext), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase (omit to be prompted securely)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite output without prompting")
	return cmd
}
