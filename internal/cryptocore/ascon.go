package cryptocore

// Ascon-128 authenticated encryption, implemented from scratch: no
// maintained third-party Go module for Ascon exists. Adapted from the
// standalone permutation/init/finalize/encrypt/decrypt routines bundled
// inside the garble obfuscator's literal-encoding library, wrapped here to
// satisfy crypto/cipher.AEAD like the other two suites.
//
// Key size: 16 bytes. Nonce size: 16 bytes. Tag size: 16 bytes.
// Associated data is supported (spec.md uses it with an empty value only).

import (
	"crypto/subtle"
	"errors"
)

const (
	asconKeySize   = 16
	asconNonceSize = 16
	asconTagSize   = 16
	asconRate      = 8 // 64 bits per block

	asconIV = uint64(0x80400c0600000000)
)

type asconState [5]uint64

func rotr(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// permute runs the Ascon permutation for the given number of rounds
// (12 for initialization/finalization, 6 between data blocks).
func (s *asconState) permute(rounds int) {
	for i := 12 - rounds; i < 12; i++ {
		s[2] ^= uint64(0xf0-i*0x10) + uint64(i)

		s[0] ^= s[4]
		s[4] ^= s[3]
		s[2] ^= s[1]

		t0, t1, t2, t3, t4 := s[0], s[1], s[2], s[3], s[4]
		s[0] = t0 ^ (^t1 & t2)
		s[1] = t1 ^ (^t2 & t3)
		s[2] = t2 ^ (^t3 & t4)
		s[3] = t3 ^ (^t4 & t0)
		s[4] = t4 ^ (^t0 & t1)

		s[1] ^= s[0]
		s[0] ^= s[4]
		s[3] ^= s[2]
		s[2] = ^s[2]

		s[0] ^= rotr(s[0], 19) ^ rotr(s[0], 28)
		s[1] ^= rotr(s[1], 61) ^ rotr(s[1], 39)
		s[2] ^= rotr(s[2], 1) ^ rotr(s[2], 6)
		s[3] ^= rotr(s[3], 10) ^ rotr(s[3], 17)
		s[4] ^= rotr(s[4], 7) ^ rotr(s[4], 41)
	}
}

func beU64(b []byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

func putBeU64(b []byte, x uint64) {
	b[0] = byte(x >> 56)
	b[1] = byte(x >> 48)
	b[2] = byte(x >> 40)
	b[3] = byte(x >> 32)
	b[4] = byte(x >> 24)
	b[5] = byte(x >> 16)
	b[6] = byte(x >> 8)
	b[7] = byte(x)
}

func asconInit(key, nonce []byte) asconState {
	var s asconState
	s[0] = asconIV
	s[1] = beU64(key[0:8])
	s[2] = beU64(key[8:16])
	s[3] = beU64(nonce[0:8])
	s[4] = beU64(nonce[8:16])
	s.permute(12)
	s[3] ^= beU64(key[0:8])
	s[4] ^= beU64(key[8:16])
	return s
}

// absorbAD mixes associated data into the state, 8 bytes at a time, then
// applies the domain-separation bit. Safe to call with an empty ad.
func asconAbsorbAD(s *asconState, ad []byte) {
	if len(ad) > 0 {
		offset := 0
		for offset+asconRate <= len(ad) {
			s[0] ^= beU64(ad[offset : offset+asconRate])
			s.permute(6)
			offset += asconRate
		}
		var block [asconRate]byte
		remaining := len(ad) - offset
		copy(block[:], ad[offset:])
		block[remaining] = 0x80
		s[0] ^= beU64(block[:])
		s.permute(6)
	}
	s[4] ^= 1
}

func asconFinalize(s *asconState, key []byte) []byte {
	s[1] ^= beU64(key[0:8])
	s[2] ^= beU64(key[8:16])
	s.permute(12)
	s[3] ^= beU64(key[0:8])
	s[4] ^= beU64(key[8:16])
	tag := make([]byte, asconTagSize)
	putBeU64(tag[0:8], s[3])
	putBeU64(tag[8:16], s[4])
	return tag
}

func asconEncrypt(key, nonce, ad, plaintext []byte) []byte {
	s := asconInit(key, nonce)
	asconAbsorbAD(&s, ad)

	ciphertext := make([]byte, len(plaintext))
	offset := 0
	for offset+asconRate <= len(plaintext) {
		block := beU64(plaintext[offset : offset+asconRate])
		s[0] ^= block
		putBeU64(ciphertext[offset:offset+asconRate], s[0])
		s.permute(6)
		offset += asconRate
	}
	if offset < len(plaintext) {
		remaining := len(plaintext) - offset
		var padded [asconRate]byte
		copy(padded[:], plaintext[offset:])
		padded[remaining] = 0x80
		s[0] ^= beU64(padded[:])
		var out [asconRate]byte
		putBeU64(out[:], s[0])
		copy(ciphertext[offset:], out[:remaining])
	} else {
		s[0] ^= 0x8000000000000000
	}

	tag := asconFinalize(&s, key)
	return append(ciphertext, tag...)
}

func asconDecrypt(key, nonce, ad, ciphertextAndTag []byte) ([]byte, error) {
	if len(ciphertextAndTag) < asconTagSize {
		return nil, errors.New("cryptocore: ascon ciphertext too short")
	}
	ciphertextLen := len(ciphertextAndTag) - asconTagSize
	ciphertext := ciphertextAndTag[:ciphertextLen]
	receivedTag := ciphertextAndTag[ciphertextLen:]

	s := asconInit(key, nonce)
	asconAbsorbAD(&s, ad)

	plaintext := make([]byte, len(ciphertext))
	offset := 0
	for offset+asconRate <= len(ciphertext) {
		block := beU64(ciphertext[offset : offset+asconRate])
		putBeU64(plaintext[offset:offset+asconRate], s[0]^block)
		s[0] = block
		s.permute(6)
		offset += asconRate
	}
	if offset < len(ciphertext) {
		remaining := len(ciphertext) - offset
		var stateBytes [asconRate]byte
		putBeU64(stateBytes[:], s[0])
		var paddedPlain [asconRate]byte
		for i := 0; i < remaining; i++ {
			paddedPlain[i] = ciphertext[offset+i] ^ stateBytes[i]
			plaintext[offset+i] = paddedPlain[i]
		}
		paddedPlain[remaining] = 0x80
		s[0] ^= beU64(paddedPlain[:])
	} else {
		s[0] ^= 0x8000000000000000
	}

	expectedTag := asconFinalize(&s, key)
	if subtle.ConstantTimeCompare(expectedTag, receivedTag) != 1 {
		for i := range plaintext {
			plaintext[i] = 0
		}
		return nil, errors.New("cryptocore: ascon authentication failed")
	}
	return plaintext, nil
}

// asconAEAD adapts Ascon-128 to crypto/cipher.AEAD.
type asconAEAD struct {
	key []byte
}

func newAsconAEAD(key []byte) (*asconAEAD, error) {
	if len(key) != asconKeySize {
		return nil, errors.New("cryptocore: ascon key must be 16 bytes")
	}
	return &asconAEAD{key: key}, nil
}

func (a *asconAEAD) NonceSize() int { return asconNonceSize }
func (a *asconAEAD) Overhead() int  { return asconTagSize }

func (a *asconAEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != asconNonceSize {
		panic("cryptocore: ascon nonce must be 16 bytes")
	}
	ct := asconEncrypt(a.key, nonce, additionalData, plaintext)
	return append(dst, ct...)
}

func (a *asconAEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != asconNonceSize {
		return nil, errors.New("cryptocore: ascon nonce must be 16 bytes")
	}
	pt, err := asconDecrypt(a.key, nonce, additionalData, ciphertext)
	if err != nil {
		return nil, err
	}
	return append(dst, pt...), nil
}
