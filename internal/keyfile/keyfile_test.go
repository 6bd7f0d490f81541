package keyfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hexlayer/stegocrypt/internal/carrier"
	"github.com/hexlayer/stegocrypt/internal/cryptocore"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "key.json")
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := tempPath(t)
	want := &KeyFile{
		Cipher:   cryptocore.SuiteChaCha20Poly1305,
		StegMode: carrier.ModeAdaptive,
		Nonce:    []byte("123456789012"),
		Salt:     []byte("0123456789abcdef"),
		InfoType: "image/png",
		PRNG:     carrier.PRNGName,
	}
	if err := Write(path, want); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Cipher != want.Cipher || got.StegMode != want.StegMode || got.InfoType != want.InfoType {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if string(got.Nonce) != string(want.Nonce) || string(got.Salt) != string(want.Salt) {
		t.Fatalf("nonce/salt mismatch: got %+v", got)
	}
	if got.Deniable {
		t.Fatalf("expected non-deniable key file")
	}
}

func TestWriteReadDeniableRoundTrip(t *testing.T) {
	path := tempPath(t)
	want := &KeyFile{
		Cipher:        cryptocore.SuiteAES256GCM,
		StegMode:      carrier.ModeAdaptive,
		Deniable:      true,
		Nonce:         []byte("123456789012"),
		Salt:          []byte("0123456789abcdef"),
		InfoType:      "image/png",
		PRNG:          carrier.PRNGName,
		PartitionSeed: []byte("0123456789abcdef"),
		PartitionHalf: 1,
	}
	if err := Write(path, want); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !got.Deniable || got.PartitionHalf != 1 {
		t.Fatalf("got %+v, want deniable half 1", got)
	}
	if string(got.PartitionSeed) != string(want.PartitionSeed) {
		t.Fatalf("partition seed mismatch")
	}
}

func TestWriteRejectsDeniableWithoutPartitionSeed(t *testing.T) {
	path := tempPath(t)
	kf := &KeyFile{
		Cipher:   cryptocore.SuiteAscon128,
		StegMode: carrier.ModeAdaptive,
		Deniable: true,
		Nonce:    []byte("0123456789abcdef"),
		Salt:     []byte("0123456789abcdef"),
		InfoType: "image/png",
	}
	if err := Write(path, kf); err == nil {
		t.Fatalf("expected error writing deniable key file without partition seed")
	}
}

func TestReadRejectsMissingRequiredField(t *testing.T) {
	path := tempPath(t)
	// Missing "salt" and "info_type".
	body := `{"cipher": "AES-256-GCM", "nonce": "AAAA"}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Read(path); err == nil {
		t.Fatalf("expected malformed key file error")
	}
}

func TestReadRejectsUnknownCipher(t *testing.T) {
	path := tempPath(t)
	body := `{"cipher": "ROT13", "nonce": "AAAA", "salt": "AAAA", "info_type": "x"}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Read(path); err == nil {
		t.Fatalf("expected unknown cipher error")
	}
}

func TestReadRejectsDeniableMissingPartitionFields(t *testing.T) {
	path := tempPath(t)
	body := `{"cipher": "AES-256-GCM", "nonce": "AAAA", "salt": "AAAA", "info_type": "x", "deniable": true}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Read(path); err == nil {
		t.Fatalf("expected missing partition field error")
	}
}

func TestReadDefaultsStegModeAndPRNGWhenAbsent(t *testing.T) {
	path := tempPath(t)
	body := `{"cipher": "Ascon-128", "nonce": "AAAA", "salt": "AAAA", "info_type": "x"}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.StegMode != carrier.ModeSequential {
		t.Fatalf("got StegMode %q, want sequential default", got.StegMode)
	}
	if got.PRNG != carrier.PRNGName {
		t.Fatalf("got PRNG %q, want default %q", got.PRNG, carrier.PRNGName)
	}
}
