// Package carrier implements the per-format embed/extract engines: lossless
// raster (PNG/BMP) with adaptive and sequential LSB, JPEG DCT-coefficient
// LSB, and PCM/WAV sample LSB, plus the adaptive-mask computation,
// key-seeded slot permutation, and deniable dual-payload index partition
// shared across raster modes.
package carrier

import "errors"

// Sentinel errors mirroring the contract-level error taxonomy: each maps
// to exactly one of these regardless of carrier format, so callers can
// switch on error identity without inspecting format-specific detail.
var (
	ErrUnsupportedFormat    = errors.New("carrier: unsupported format")
	ErrInsufficientCapacity = errors.New("carrier: payload exceeds eligible slot capacity")
	ErrNoPayloadDetected    = errors.New("carrier: no payload detected at decoded length header")
	ErrMissingKey           = errors.New("carrier: adaptive or deniable mode requires a key")
)

// Mode selects the eligible-slot policy for lossless raster covers.
type Mode string

const (
	ModeAdaptive   Mode = "adaptive"
	ModeSequential Mode = "sequential"
	ModeDCT        Mode = "dct"
)
