package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexlayer/stegocrypt/stegocore"
)

func newEmbedDeniableCmd() *cobra.Command {
	var (
		cipher      string
		realKeyOut  string
		decoyKeyOut string
		realPass    string
		decoyPass   string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "embed-deniable <cover> <real-payload> <decoy-payload> <output>",
		Short: "Embed two independently recoverable payloads deniably into a raster cover",
		Long: "Embed a real payload and a decoy payload into disjoint halves of a lossless\n" +
			"raster cover's adaptive-eligible channels. Each half is recoverable only with\n" +
			"its own key file and passphrase; neither key file reveals the other's existence.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			coverPath, realPayloadPath, decoyPayloadPath, outputPath := args[0], args[1], args[2], args[3]

			ok, err := confirmOverwrite(outputPath, force)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("aborted: %s already exists", outputPath)
			}

			suite, err := parseSuite(cipher)
			if err != nil {
				return err
			}
			realPassphrase, err := readPassphrase(realPass, "Real payload passphrase: ")
			if err != nil {
				return err
			}
			decoyPassphrase, err := readPassphrase(decoyPass, "Decoy payload passphrase: ")
			if err != nil {
				return err
			}

			realPayload, err := os.ReadFile(realPayloadPath)
			if err != nil {
				return fmt.Errorf("read real payload: %w", err)
			}
			decoyPayload, err := os.ReadFile(decoyPayloadPath)
			if err != nil {
				return fmt.Errorf("read decoy payload: %w", err)
			}

			partitionSeed := make([]byte, stegocore.PartitionSeedSize)
			if _, err := rand.Read(partitionSeed); err != nil {
				return fmt.Errorf("generate partition seed: %w", err)
			}

			sealedReal, err := stegocore.Encrypt(realPayload, realPassphrase, suite)
			if err != nil {
				return fmt.Errorf("encrypt real payload: %w", err)
			}
			realKey, err := stegocore.DeriveKey(realPassphrase, sealedReal.Salt, suite)
			if err != nil {
				return fmt.Errorf("derive real key: %w", err)
			}
			sealedDecoy, err := stegocore.Encrypt(decoyPayload, decoyPassphrase, suite)
			if err != nil {
				return fmt.Errorf("encrypt decoy payload: %w", err)
			}
			decoyKey, err := stegocore.DeriveKey(decoyPassphrase, sealedDecoy.Salt, suite)
			if err != nil {
				return fmt.Errorf("derive decoy key: %w", err)
			}

			if err := stegocore.EmbedDeniable(coverPath, sealedReal.Ciphertext, sealedDecoy.Ciphertext, outputPath, realKey, decoyKey, partitionSeed); err != nil {
				return fmt.Errorf("embed deniable: %w", err)
			}

			if realKeyOut == "" {
				realKeyOut = outputPath + ".real.key.json"
			}
			if decoyKeyOut == "" {
				decoyKeyOut = outputPath + ".decoy.key.json"
			}
			if err := stegocore.WriteKeyFile(realKeyOut, &stegocore.KeyFile{
				Cipher: suite, StegMode: stegocore.ModeAdaptive, Deniable: true,
				Nonce: sealedReal.Nonce, Salt: sealedReal.Salt, InfoType: "application/octet-stream",
				PartitionSeed: partitionSeed, PartitionHalf: 0,
			}); err != nil {
				return fmt.Errorf("write real key file: %w", err)
			}
			if err := stegocore.WriteKeyFile(decoyKeyOut, &stegocore.KeyFile{
				Cipher: suite, StegMode: stegocore.ModeAdaptive, Deniable: true,
				Nonce: sealedDecoy.Nonce, Salt: sealedDecoy.Salt, InfoType: "application/octet-stream",
				PartitionSeed: partitionSeed, PartitionHalf: 1,
			}); err != nil {
				return fmt.Errorf("write decoy key file: %w", err)
			}

			fmt.Printf("embedded real+decoy payloads into %s\n", outputPath)
			fmt.Printf("real key file:  %s\n", realKeyOut)
			fmt.Printf("decoy key file: %s\n", decoyKeyOut)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cipher, "cipher", "c", string(stegocore.SuiteAscon128), "cipher suite shared by both payloads")
	cmd.Flags().StringVar(&realKeyOut, "real-key", "", "real key file save path (default: <output>.real.key.json)")
	cmd.Flags().StringVar(&decoyKeyOut, "decoy-key", "", "decoy key file save path (default: <output>.decoy.key.json)")
	cmd.Flags().StringVar(&realPass, "real-passphrase", "", "real payload passphrase (omit to be prompted securely)")
	cmd.Flags().StringVar(&decoyPass, "decoy-passphrase", "", "decoy payload passphrase (omit to be prompted securely)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite output without prompting")
	return cmd
}

func newExtractDeniableCmd() *cobra.Command {
	var (
		passphrase string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "extract-deniable <stego> <key-file> <output>",
		Short: "Extract the half of a deniable embed addressed by key-file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			stegoPath, keyFilePath, outputPath := args[0], args[1], args[2]

			kf, err := stegocore.ReadKeyFile(keyFilePath)
			if err != nil {
				return fmt.Errorf("read key file: %w", err)
			}
			if !kf.Deniable {
				return fmt.Errorf("%s is not a deniable key file; use 'stegoctl extract' instead", keyFilePath)
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
			ciphertext, err := stegocore.ExtractDeniable(stegoPath, key, kf.PartitionSeed, kf.PartitionHalf)
			if err != nil {
				return fmt.Errorf("extract deniable: %w", err)
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
