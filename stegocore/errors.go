// Package stegocore is the public library surface of §6: it ties
// cryptocore (encryption), carrier (per-format embed/extract), and
// keyfile (side-channel metadata) into the handful of entry points a
// caller — the CLI, the HTTP API, or another Go program — actually
// needs: Encrypt/Decrypt/DeriveKey, Embed/Extract, EmbedDeniable/
// ExtractDeniable, GetCapacity, ScoreCoverImage, and the key-file codec.
package stegocore

import (
	"github.com/hexlayer/stegocrypt/internal/carrier"
	"github.com/hexlayer/stegocrypt/internal/cryptocore"
	"github.com/hexlayer/stegocrypt/internal/keyfile"
)

// The error taxonomy from spec.md §7, re-exported as the sentinels
// callers should match against with errors.Is. These are the same
// sentinel values internal/carrier, internal/cryptocore, and
// internal/keyfile already return, not copies, so wrapping preserves
// identity all the way from the lowest layer.
var (
	ErrUnsupportedFormat    = carrier.ErrUnsupportedFormat
	ErrInsufficientCapacity = carrier.ErrInsufficientCapacity
	ErrNoPayloadDetected    = carrier.ErrNoPayloadDetected
	ErrBadCredentials       = cryptocore.ErrBadCredentials
	ErrMalformedKeyFile     = keyfile.ErrMalformed
	ErrMissingKey           = carrier.ErrMissingKey
)
