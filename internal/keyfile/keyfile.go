// Package keyfile reads and writes the JSON side-channel file that
// accompanies every embed: the cipher suite, steganography mode, nonce
// and salt, and (for deniable embeds) the partition seed and half
// index. Key files never carry the passphrase or derived key, only what
// is needed to re-derive them.
//
// For deniable embeds, the real and decoy key files are structurally
// identical field-for-field; neither can be distinguished from the
// other by inspecting the file alone.
package keyfile

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/hexlayer/stegocrypt/internal/carrier"
	"github.com/hexlayer/stegocrypt/internal/cryptocore"
)

// ErrMalformed is wrapped by every validation failure in Read: a missing
// required field, bad base64, an unknown cipher suite, or a deniable key
// file missing its partition fields.
var ErrMalformed = errors.New("keyfile: malformed key file")

// KeyFile is the fully decoded contents of a key file.
type KeyFile struct {
	Cipher        cryptocore.Suite
	StegMode      carrier.Mode
	Deniable      bool
	Nonce         []byte
	Salt          []byte
	InfoType      string
	PRNG          string
	PartitionSeed []byte // nil unless Deniable
	PartitionHalf int    // only meaningful when Deniable
}

// wireFormat is the on-disk JSON shape. Byte fields are base64-encoded
// per the original key-file convention.
type wireFormat struct {
	Cipher        string  `json:"cipher"`
	StegMode      string  `json:"steg_mode"`
	Deniable      bool    `json:"deniable"`
	Nonce         string  `json:"nonce"`
	Salt          string  `json:"salt"`
	InfoType      string  `json:"info_type"`
	PRNG          string  `json:"prng,omitempty"`
	PartitionSeed *string `json:"partition_seed,omitempty"`
	PartitionHalf *int    `json:"partition_half,omitempty"`
}

// Write serializes kf to path as indented JSON. An empty kf.PRNG is
// written as carrier.PRNGName.
func Write(path string, kf *KeyFile) error {
	prngName := kf.PRNG
	if prngName == "" {
		prngName = carrier.PRNGName
	}
	wf := wireFormat{
		Cipher:   string(kf.Cipher),
		StegMode: string(kf.StegMode),
		Deniable: kf.Deniable,
		Nonce:    base64.StdEncoding.EncodeToString(kf.Nonce),
		Salt:     base64.StdEncoding.EncodeToString(kf.Salt),
		InfoType: kf.InfoType,
		PRNG:     prngName,
	}
	if kf.Deniable {
		if len(kf.PartitionSeed) == 0 {
			return fmt.Errorf("keyfile: deniable key file requires a partition seed")
		}
		seed := base64.StdEncoding.EncodeToString(kf.PartitionSeed)
		half := kf.PartitionHalf
		wf.PartitionSeed = &seed
		wf.PartitionHalf = &half
	}

	data, err := json.MarshalIndent(wf, "", "  ")
	if err != nil {
		return fmt.Errorf("keyfile: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("keyfile: write %s: %w", path, err)
	}
	return nil
}

// Read loads and validates the key file at path.
//
// A key file missing any of the four always-required fields (cipher,
// nonce, salt, info_type) is rejected as malformed, mirroring the
// source's v1/v2 incompatibility check. A deniable key file missing
// either partition field is likewise rejected.
func Read(path string) (*KeyFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keyfile: read %s: %w", path, err)
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON in %s: %w", ErrMalformed, path, err)
	}
	for _, field := range []string{"cipher", "nonce", "salt", "info_type"} {
		if _, ok := generic[field]; !ok {
			return nil, fmt.Errorf(
				"%w: %s missing field %q (legacy v1 key files are not supported)",
				ErrMalformed, path, field)
		}
	}

	var wf wireFormat
	if err := json.Unmarshal(raw, &wf); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON in %s: %w", ErrMalformed, path, err)
	}

	nonce, err := base64.StdEncoding.DecodeString(wf.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: %s has invalid nonce encoding: %w", ErrMalformed, path, err)
	}
	salt, err := base64.StdEncoding.DecodeString(wf.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %s has invalid salt encoding: %w", ErrMalformed, path, err)
	}

	stegMode := wf.StegMode
	if stegMode == "" {
		stegMode = string(carrier.ModeSequential)
	}
	prngName := wf.PRNG
	if prngName == "" {
		prngName = carrier.PRNGName
	}

	kf := &KeyFile{
		Cipher:   cryptocore.Suite(wf.Cipher),
		StegMode: carrier.Mode(stegMode),
		Deniable: wf.Deniable,
		Nonce:    nonce,
		Salt:     salt,
		InfoType: wf.InfoType,
		PRNG:     prngName,
	}
	if !kf.Cipher.Valid() {
		return nil, fmt.Errorf("%w: %s names unknown cipher suite %q", ErrMalformed, path, wf.Cipher)
	}

	if kf.Deniable {
		if wf.PartitionSeed == nil || wf.PartitionHalf == nil {
			return nil, fmt.Errorf("%w: %s is deniable but missing partition fields", ErrMalformed, path)
		}
		seed, err := base64.StdEncoding.DecodeString(*wf.PartitionSeed)
		if err != nil {
			return nil, fmt.Errorf("%w: %s has invalid partition_seed encoding: %w", ErrMalformed, path, err)
		}
		if len(seed) != carrier.PartitionSeedSize {
			return nil, fmt.Errorf("%w: %s partition_seed must be %d bytes, got %d",
				ErrMalformed, path, carrier.PartitionSeedSize, len(seed))
		}
		kf.PartitionSeed = seed
		kf.PartitionHalf = *wf.PartitionHalf
		if kf.PartitionHalf != 0 && kf.PartitionHalf != 1 {
			return nil, fmt.Errorf("%w: %s has invalid partition_half %d, want 0 or 1",
				ErrMalformed, path, kf.PartitionHalf)
		}
	}

	return kf, nil
}
