package httpapi

import (
	"github.com/gin-gonic/gin"
)

// NewRouter builds the Gin engine serving every stegocore operation
// under /api/v1, with the same middleware stack (recovery, structured
// logging, CORS, security headers, trace ids, body-size limiting) the
// original audio-only service ran.
func NewRouter() *gin.Engine {
	r := gin.New()
	setupMiddleware(r)

	h := NewHandlers()

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", h.HealthHandler)
		v1.POST("/capacity", h.CapacityHandler)
		v1.POST("/score", h.ScoreHandler)
		v1.POST("/embed", h.EmbedHandler)
		v1.POST("/extract", h.ExtractHandler)
		v1.POST("/embed-deniable", h.EmbedDeniableHandler)
		v1.POST("/extract-deniable", h.ExtractDeniableHandler)
	}
	return r
}
