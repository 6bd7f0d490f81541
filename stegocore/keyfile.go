package stegocore

import (
	"github.com/hexlayer/stegocrypt/internal/keyfile"
)

// KeyFile re-exports the key-file record shape.
type KeyFile = keyfile.KeyFile

// WriteKeyFile persists kf to path as indented JSON.
func WriteKeyFile(path string, kf *KeyFile) error {
	return keyfile.Write(path, kf)
}

// ReadKeyFile loads and validates the key file at path.
func ReadKeyFile(path string) (*KeyFile, error) {
	return keyfile.Read(path)
}
