package cryptocore

import (
	"crypto/rand"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters, fixed to match the original implementation so
// key-files produced by either remain cross-compatible at the KDF level.
const (
	argon2TimeCost    = 2
	argon2MemoryCostK = 65536 // KiB
	argon2Parallelism = 2
	SaltSize          = 16
)

// NewSalt returns a fresh random Argon2id salt.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey stretches passphrase into a keyLen-byte key using Argon2id,
// with the salt and suite-appropriate key length supplied by the caller.
func DeriveKey(passphrase string, salt []byte, keyLen int) []byte {
	return argon2.IDKey([]byte(passphrase), salt, argon2TimeCost, argon2MemoryCostK, argon2Parallelism, uint32(keyLen))
}
