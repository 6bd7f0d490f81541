package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/hexlayer/stegocrypt/stegocore"
)

// readPassphrase returns flagValue unchanged if it's non-empty, otherwise
// prompts on the controlling terminal with echo disabled, mirroring the
// original CLI's "omit to be prompted securely" option.
func readPassphrase(flagValue, prompt string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Fprint(os.Stderr, prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read passphrase: %w", err)
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseSuite(s string) (stegocore.Suite, error) {
	suite := stegocore.Suite(s)
	if suite == "" {
		suite = stegocore.SuiteAscon128
	}
	if !suite.Valid() {
		return "", fmt.Errorf("unknown cipher suite %q (want Ascon-128, ChaCha20-Poly1305, or AES-256-GCM)", s)
	}
	return suite, nil
}

func parseMode(s string) stegocore.Mode {
	if stegocore.Mode(strings.ToLower(s)) == stegocore.ModeSequential {
		return stegocore.ModeSequential
	}
	return stegocore.ModeAdaptive
}

// confirmOverwrite returns true if path doesn't exist, force is set, or
// the user answers yes on stdin.
func confirmOverwrite(path string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return true, nil
	}
	fmt.Fprintf(os.Stderr, "%s already exists. Overwrite? [y/N] ", path)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}
