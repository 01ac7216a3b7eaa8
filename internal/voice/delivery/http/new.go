package http

import (
	"github.com/gin-gonic/gin"

	"voice-shopping-list/internal/voice"
	"voice-shopping-list/pkg/log"
)

// Handler is the public interface for the voice HTTP delivery layer.
type Handler interface {
	Handle(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc voice.UseCase
}

// New creates a new HTTP handler for the voice endpoint.
func New(l log.Logger, uc voice.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
