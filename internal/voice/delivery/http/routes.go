package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the single voice endpoint.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/alexa", h.Handle)
}
