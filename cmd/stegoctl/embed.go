package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hexlayer/stegocrypt/stegocore"
)

func newEmbedCmd() *cobra.Command {
	var (
		keyOut     string
		cipher     string
		mode       string
		passphrase string
		force      bool
		noScore    bool
	)

	cmd := &cobra.Command{
		Use:   "embed <cover> <payload> <output>",
		Short: "Embed an encrypted payload inside a cover file",
		Args:  cobra.ExactArgs(3),
		Example: strings.TrimSpace(`
  stegoctl embed photo.png secret.txt stego.png
  stegoctl embed photo.png secret.txt stego.png --cipher AES-256-GCM
  stegoctl embed song.wav secret.txt stego.wav --mode sequential`),
		RunE: func(cmd *cobra.Command, args []string) error {
			coverPath, payloadPath, outputPath := args[0], args[1], args[2]

			if !noScore {
				if report, err := stegocore.ScoreCoverImage(coverPath); err == nil {
					fmt.Fprintf(os.Stderr, "cover score: %d/100 (%s)\n", report.Score, report.Label)
				}
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
			suite, err := parseSuite(cipher)
			if err != nil {
				return err
			}
			stegMode := parseMode(mode)

			payload, err := os.ReadFile(payloadPath)
			if err != nil {
				return fmt.Errorf("read payload: %w", err)
			}

			sealed, err := stegocore.Encrypt(payload, pass, suite)
			if err != nil {
				return fmt.Errorf("encrypt: %w", err)
			}
			key, err := stegocore.DeriveKey(pass, sealed.Salt, suite)
			if err != nil {
				return fmt.Errorf("derive key: %w", err)
			}
			if err := stegocore.Embed(coverPath, sealed.Ciphertext, outputPath, key, stegMode); err != nil {
				return fmt.Errorf("embed: %w", err)
			}

			if keyOut == "" {
				keyOut = outputPath + ".key.json"
			}
			kf := &stegocore.KeyFile{
				Cipher:   suite,
				StegMode: stegMode,
				Nonce:    sealed.Nonce,
				Salt:     sealed.Salt,
				InfoType: "application/octet-stream",
			}
			if err := stegocore.WriteKeyFile(keyOut, kf); err != nil {
				return fmt.Errorf("write key file: %w", err)
			}

			fmt.Printf("embedded %s into %s\n", payloadPath, outputPath)
			fmt.Printf("key file: %s\n", keyOut)
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyOut, "key", "k", "", "key file save path (default: <output>.key.json)")
	cmd.Flags().StringVarP(&cipher, "cipher", "c", string(stegocore.SuiteAscon128), "cipher suite: Ascon-128, ChaCha20-Poly1305, or AES-256-GCM")
	cmd.Flags().StringVarP(&mode, "mode", "m", "adaptive", "embedding mode for PNG/BMP covers: adaptive or sequential")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase (omit to be prompted securely)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite output without prompting")
	cmd.Flags().BoolVar(&noScore, "no-score", false, "skip cover image scoring")
	return cmd
}
