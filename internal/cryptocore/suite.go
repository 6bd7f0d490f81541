package cryptocore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Suite identifies one of the three supported AEAD cipher suites.
type Suite string

const (
	SuiteAscon128         Suite = "Ascon-128"
	SuiteChaCha20Poly1305 Suite = "ChaCha20-Poly1305"
	SuiteAES256GCM        Suite = "AES-256-GCM"
)

// suiteParams mirrors _CIPHER_PARAMS from the original crypto core: each
// suite's derived-key length and nonce length.
var suiteParams = map[Suite]struct {
	keyLen   int
	nonceLen int
}{
	SuiteAscon128:         {keyLen: 16, nonceLen: 16},
	SuiteChaCha20Poly1305: {keyLen: 32, nonceLen: 12},
	SuiteAES256GCM:        {keyLen: 32, nonceLen: 12},
}

// KeyLen returns the derived-key length in bytes required by s.
func (s Suite) KeyLen() (int, error) {
	p, ok := suiteParams[s]
	if !ok {
		return 0, fmt.Errorf("cryptocore: unsupported cipher suite %q", s)
	}
	return p.keyLen, nil
}

// NonceLen returns the nonce length in bytes required by s.
func (s Suite) NonceLen() (int, error) {
	p, ok := suiteParams[s]
	if !ok {
		return 0, fmt.Errorf("cryptocore: unsupported cipher suite %q", s)
	}
	return p.nonceLen, nil
}

// Valid reports whether s names one of the three supported suites.
func (s Suite) Valid() bool {
	_, ok := suiteParams[s]
	return ok
}

// NewAEAD constructs the cipher.AEAD implementation for s, given a key of
// the correct length for that suite.
func NewAEAD(s Suite, key []byte) (cipher.AEAD, error) {
	keyLen, err := s.KeyLen()
	if err != nil {
		return nil, err
	}
	if len(key) != keyLen {
		return nil, fmt.Errorf("cryptocore: suite %q requires a %d-byte key, got %d", s, keyLen, len(key))
	}

	switch s {
	case SuiteAscon128:
		return newAsconAEAD(key)
	case SuiteChaCha20Poly1305:
		return chacha20poly1305.New(key)
	case SuiteAES256GCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	default:
		return nil, fmt.Errorf("cryptocore: unsupported cipher suite %q", s)
	}
}

// NewNonce returns a fresh random nonce sized for s.
func NewNonce(s Suite) ([]byte, error) {
	n, err := s.NonceLen()
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, n)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return nonce, nil
}
