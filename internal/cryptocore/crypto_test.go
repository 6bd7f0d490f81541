package cryptocore

import (
	"bytes"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	suites := []Suite{SuiteAscon128, SuiteChaCha20Poly1305, SuiteAES256GCM}
	plaintext := []byte("the quick brown fox jumps over the lazy dog, repeated for compressibility. " +
		"the quick brown fox jumps over the lazy dog, repeated for compressibility.")

	for _, suite := range suites {
		sealed, err := Encrypt(plaintext, "correct horse battery staple", suite)
		if err != nil {
			t.Fatalf("%s: Encrypt: %v", suite, err)
		}
		got, err := Decrypt(sealed, "correct horse battery staple")
		if err != nil {
			t.Fatalf("%s: Decrypt: %v", suite, err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Errorf("%s: round trip mismatch: got %q, want %q", suite, got, plaintext)
		}
	}
}

func TestDecryptWrongPassphraseFailsClosed(t *testing.T) {
	sealed, err := Encrypt([]byte("secret payload"), "correct-password", SuiteChaCha20Poly1305)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	_, err = Decrypt(sealed, "wrong-password")
	if err != ErrBadCredentials {
		t.Fatalf("got err %v, want ErrBadCredentials", err)
	}
}

func TestDecryptTamperedCiphertextFailsClosed(t *testing.T) {
	sealed, err := Encrypt([]byte("secret payload"), "correct-password", SuiteAES256GCM)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	tampered := make([]byte, len(sealed.Ciphertext))
	copy(tampered, sealed.Ciphertext)
	tampered[0] ^= 0xFF
	sealed.Ciphertext = tampered

	_, err = Decrypt(sealed, "correct-password")
	if err != ErrBadCredentials {
		t.Fatalf("got err %v, want ErrBadCredentials", err)
	}
}

func TestEncryptRejectsUnsupportedSuite(t *testing.T) {
	_, err := Encrypt([]byte("x"), "pw", Suite("RC4"))
	if err == nil {
		t.Fatal("expected error for unsupported suite")
	}
}

func TestAsconAEADRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, asconKeySize)
	nonce := bytes.Repeat([]byte{0x24}, asconNonceSize)
	aead, err := newAsconAEAD(key)
	if err != nil {
		t.Fatalf("newAsconAEAD: %v", err)
	}

	plaintexts := [][]byte{
		{},
		[]byte("short"),
		bytes.Repeat([]byte("x"), 8),
		bytes.Repeat([]byte("y"), 37),
	}
	for _, pt := range plaintexts {
		ct := aead.Seal(nil, nonce, pt, nil)
		got, err := aead.Open(nil, nonce, ct, nil)
		if err != nil {
			t.Fatalf("Open(%d bytes): %v", len(pt), err)
		}
		if !bytes.Equal(got, pt) {
			t.Errorf("round trip mismatch for %d-byte plaintext: got %q, want %q", len(pt), got, pt)
		}
	}
}

func TestAsconAEADDetectsTamper(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, asconKeySize)
	nonce := bytes.Repeat([]byte{0x02}, asconNonceSize)
	aead, _ := newAsconAEAD(key)

	ct := aead.Seal(nil, nonce, []byte("payload data"), nil)
	ct[0] ^= 0x01
	if _, err := aead.Open(nil, nonce, ct, nil); err == nil {
		t.Fatal("expected tamper detection to fail Open")
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0x07}, SaltSize)
	k1 := DeriveKey("passphrase", salt, 32)
	k2 := DeriveKey("passphrase", salt, 32)
	if !bytes.Equal(k1, k2) {
		t.Error("DeriveKey is not deterministic for identical inputs")
	}

	k3 := DeriveKey("different", salt, 32)
	if bytes.Equal(k1, k3) {
		t.Error("DeriveKey produced identical keys for different passphrases")
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("compress me please "), 50)
	compressed, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if len(compressed) >= len(data) {
		t.Errorf("expected compression to shrink repetitive data: %d >= %d", len(compressed), len(data))
	}
	got, err := Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("decompressed data does not match original")
	}
}
