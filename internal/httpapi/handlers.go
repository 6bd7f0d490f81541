package httpapi

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hexlayer/stegocrypt/stegocore"
)

// Handlers holds no state of its own: every operation is a thin,
// stateless wrapper over stegocore, so a single zero-value Handlers
// serves every request.
type Handlers struct{}

// NewHandlers constructs a Handlers. It takes no dependencies because
// stegocore's public functions are themselves stateless.
func NewHandlers() *Handlers {
	return &Handlers{}
}

// HealthHandler reports liveness.
//
//	@Summary	Health check
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
	})
}

// CapacityHandler reports how many payload bytes fit in the uploaded
// cover under the requested mode.
//
//	@Summary		Calculate embedding capacity
//	@Tags			Steganography
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			cover	formData	file	true	"Cover file"
//	@Param			mode	formData	string	false	"sequential or adaptive"
//	@Success		200	{object}	CapacityResponse
//	@Failure		400	{object}	ErrorResponse
//	@Router			/capacity [post]
func (h *Handlers) CapacityHandler(c *gin.Context) {
	coverHeader, err := c.FormFile("cover")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "cover file not provided")
		return
	}
	mode := parseMode(c.PostForm("mode"))

	dir, err := os.MkdirTemp("", "stegocrypt-capacity-*")
	if err != nil {
		sendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to allocate workspace")
		return
	}
	defer os.RemoveAll(dir)

	coverPath, err := saveUpload(coverHeader, dir)
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
		return
	}

	report, err := stegocore.GetCapacity(coverPath, mode, nil)
	if err != nil {
		sendStegoError(c, "capacity", err)
		return
	}

	c.JSON(http.StatusOK, CapacityResponse{CapacityReport: report, Filename: coverHeader.Filename})
}

// ScoreHandler reports the advisory cover-quality heuristic for an
// uploaded lossless raster cover.
//
//	@Summary		Score a candidate cover image
//	@Tags			Steganography
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			cover	formData	file	true	"Raster cover file (png or bmp)"
//	@Success		200	{object}	ScoreResponse
//	@Failure		400	{object}	ErrorResponse
//	@Router			/score [post]
func (h *Handlers) ScoreHandler(c *gin.Context) {
	coverHeader, err := c.FormFile("cover")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "cover file not provided")
		return
	}

	dir, err := os.MkdirTemp("", "stegocrypt-score-*")
	if err != nil {
		sendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to allocate workspace")
		return
	}
	defer os.RemoveAll(dir)

	coverPath, err := saveUpload(coverHeader, dir)
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
		return
	}

	report, err := stegocore.ScoreCoverImage(coverPath)
	if err != nil {
		sendStegoError(c, "score", err)
		return
	}

	c.JSON(http.StatusOK, ScoreResponse{ScoreReport: report, Filename: filepath.Base(coverHeader.Filename)})
}
