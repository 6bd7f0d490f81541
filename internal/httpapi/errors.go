// Package httpapi exposes stegocore's embed/extract/capacity/scoring
// operations over a Gin REST API, mirroring the shape and middleware
// stack of the original audio-only service while dispatching across
// every carrier family stegocore supports.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hexlayer/stegocrypt/stegocore"
)

// ErrorResponse is the standardized JSON error envelope.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail carries a human-readable message plus a stable machine
// code for client-side branching.
type ErrorDetail struct {
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// sendError writes a standardized error response.
func sendError(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Message: message,
			Details: map[string]interface{}{"code": code},
		},
	})
}

// statusAndCodeFor classifies an error returned by stegocore into an
// HTTP status and a stable machine code, falling back to 500/INTERNAL
// for anything it doesn't recognize.
func statusAndCodeFor(err error) (int, string) {
	switch {
	case errors.Is(err, stegocore.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT"
	case errors.Is(err, stegocore.ErrInsufficientCapacity):
		return http.StatusUnprocessableEntity, "INSUFFICIENT_CAPACITY"
	case errors.Is(err, stegocore.ErrNoPayloadDetected):
		return http.StatusNotFound, "NO_PAYLOAD_DETECTED"
	case errors.Is(err, stegocore.ErrBadCredentials):
		return http.StatusUnauthorized, "BAD_CREDENTIALS"
	case errors.Is(err, stegocore.ErrMalformedKeyFile):
		return http.StatusBadRequest, "MALFORMED_KEY_FILE"
	case errors.Is(err, stegocore.ErrMissingKey):
		return http.StatusBadRequest, "MISSING_KEY"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// sendStegoError classifies err via statusAndCodeFor and writes it,
// logging the underlying cause at warn level with the request's trace id.
func sendStegoError(c *gin.Context, op string, err error) {
	status, code := statusAndCodeFor(err)
	logFromContext(c).Warn().
		Str("op", op).
		Str("code", code).
		Err(err).
		Msg("request failed")
	sendError(c, status, code, err.Error())
}
