// Package cryptocore implements the encryption layer: Argon2id key
// derivation, zstd pre-compression, and dispatch across the three
// supported AEAD suites (Ascon-128, ChaCha20-Poly1305, AES-256-GCM).
//
// Failure modes are deliberately folded together in Decrypt: a wrong
// passphrase, a corrupted ciphertext, and a tampered tag all surface as the
// same ErrBadCredentials, so an attacker observing error output cannot
// distinguish "wrong password" from "not a payload at all".
package cryptocore

import (
	"errors"
	"fmt"
)

// ErrBadCredentials is returned by Decrypt whenever the supplied passphrase
// does not open the payload, for any reason (wrong password, corrupted
// data, wrong cipher suite). Callers must not try to disambiguate further.
var ErrBadCredentials = errors.New("cryptocore: bad credentials or corrupted payload")

// Sealed is the output of Encrypt: everything needed to attempt a Decrypt
// given the right passphrase.
type Sealed struct {
	Ciphertext []byte
	Nonce      []byte
	Salt       []byte
	Suite      Suite
}

// Encrypt compresses plaintext, derives a key from passphrase via
// Argon2id, and seals it under suite. A fresh random salt and nonce are
// generated for every call.
func Encrypt(plaintext []byte, passphrase string, suite Suite) (*Sealed, error) {
	if !suite.Valid() {
		return nil, fmt.Errorf("cryptocore: unsupported cipher suite %q", suite)
	}

	compressed, err := Compress(plaintext)
	if err != nil {
		return nil, fmt.Errorf("cryptocore: compress: %w", err)
	}

	salt, err := NewSalt()
	if err != nil {
		return nil, fmt.Errorf("cryptocore: salt: %w", err)
	}
	nonce, err := NewNonce(suite)
	if err != nil {
		return nil, fmt.Errorf("cryptocore: nonce: %w", err)
	}

	keyLen, _ := suite.KeyLen()
	key := DeriveKey(passphrase, salt, keyLen)

	aead, err := NewAEAD(suite, key)
	if err != nil {
		return nil, fmt.Errorf("cryptocore: build aead: %w", err)
	}

	ciphertext := aead.Seal(nil, nonce, compressed, nil)
	return &Sealed{
		Ciphertext: ciphertext,
		Nonce:      nonce,
		Salt:       salt,
		Suite:      suite,
	}, nil
}

// Decrypt derives the key from passphrase and salt, opens ciphertext under
// suite/nonce, and decompresses the result. Any failure along the way
// (wrong passphrase, tampered ciphertext, truncated data) is reported as
// ErrBadCredentials.
func Decrypt(s *Sealed, passphrase string) ([]byte, error) {
	if !s.Suite.Valid() {
		return nil, ErrBadCredentials
	}

	keyLen, err := s.Suite.KeyLen()
	if err != nil {
		return nil, ErrBadCredentials
	}
	key := DeriveKey(passphrase, s.Salt, keyLen)

	aead, err := NewAEAD(s.Suite, key)
	if err != nil {
		return nil, ErrBadCredentials
	}

	compressed, err := aead.Open(nil, s.Nonce, s.Ciphertext, nil)
	if err != nil {
		return nil, ErrBadCredentials
	}

	plaintext, err := Decompress(compressed)
	if err != nil {
		return nil, ErrBadCredentials
	}
	return plaintext, nil
}

// DeriveKeyForSuite derives a key of the suite's required length from
// passphrase and salt. Called by stegocore.DeriveKey, whose callers pass
// the result to the carrier package as the slot-permutation key.
func DeriveKeyForSuite(passphrase string, salt []byte, suite Suite) ([]byte, error) {
	keyLen, err := suite.KeyLen()
	if err != nil {
		return nil, err
	}
	return DeriveKey(passphrase, salt, keyLen), nil
}
