package stegocore

import (
	"github.com/hexlayer/stegocrypt/internal/cryptocore"
)

// Suite re-exports cryptocore's cipher-suite identifiers so callers never
// need to import internal/cryptocore directly.
type Suite = cryptocore.Suite

const (
	SuiteAscon128         = cryptocore.SuiteAscon128
	SuiteChaCha20Poly1305 = cryptocore.SuiteChaCha20Poly1305
	SuiteAES256GCM        = cryptocore.SuiteAES256GCM
)

// Sealed is the output of Encrypt: everything needed to attempt a
// Decrypt given the right passphrase, plus everything write_key_file
// needs to persist alongside the stego carrier.
type Sealed = cryptocore.Sealed

// Encrypt compresses plaintext, derives a key from passphrase via
// Argon2id under a fresh random salt, and seals it with suite under a
// fresh random nonce.
func Encrypt(plaintext []byte, passphrase string, suite Suite) (*Sealed, error) {
	return cryptocore.Encrypt(plaintext, passphrase, suite)
}

// Decrypt re-derives the key from passphrase and s.Salt, opens
// s.Ciphertext under s.Suite/s.Nonce, and decompresses the result. Any
// failure along the way surfaces as ErrBadCredentials.
func Decrypt(s *Sealed, passphrase string) ([]byte, error) {
	return cryptocore.Decrypt(s, passphrase)
}

// DeriveKey re-derives the key material for (passphrase, salt, suite)
// independent of Decrypt, for callers (the extract flow) that need the
// key to seed slot permutation without attempting an AEAD open.
func DeriveKey(passphrase string, salt []byte, suite Suite) ([]byte, error) {
	return cryptocore.DeriveKeyForSuite(passphrase, salt, suite)
}
