package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voice-shopping-list/internal/shoppinglist"
	voiceHTTP "voice-shopping-list/internal/voice/delivery/http"
	voiceUC "voice-shopping-list/internal/voice/usecase"
)

// setupVoiceDomain registers the voice endpoint on top of the shared
// shopping list use case.
func (srv HTTPServer) setupVoiceDomain(ctx context.Context, api *gin.RouterGroup, lists shoppinglist.UseCase) error {
	uc := voiceUC.New(srv.l, lists)
	h := voiceHTTP.New(srv.l, uc)

	voiceHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Voice domain registered at POST /api/alexa")
	return nil
}
