package httpapi

import (
	"time"

	"github.com/hexlayer/stegocrypt/stegocore"
)

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// CapacityResponse wraps stegocore's capacity report with the uploaded
// filename it was computed against.
type CapacityResponse struct {
	stegocore.CapacityReport
	Filename string `json:"filename"`
}

// ScoreResponse wraps stegocore's cover-quality report with the
// uploaded filename it was computed against.
type ScoreResponse struct {
	stegocore.ScoreReport
	Filename string `json:"filename"`
}

// DeniableEmbedResponse is returned by /embed-deniable, which (unlike
// plain /embed) cannot fit both the stego bytes and two structured key
// files into one binary response with header metadata.
type DeniableEmbedResponse struct {
	StegoBase64  string             `json:"stego_base64"`
	Filename     string             `json:"filename"`
	RealKeyFile  *stegocore.KeyFile `json:"real_key_file"`
	DecoyKeyFile *stegocore.KeyFile `json:"decoy_key_file"`
}
