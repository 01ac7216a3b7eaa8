package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voice-shopping-list/internal/middleware"
	"voice-shopping-list/internal/shoppinglist"
	slHTTP "voice-shopping-list/internal/shoppinglist/delivery/http"
)

// setupShoppingListDomain registers the REST management surface.
// The rate limit applies here but not to the voice endpoint, which has
// its own always-answer contract.
func (srv HTTPServer) setupShoppingListDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, uc shoppinglist.UseCase) error {
	h := slHTTP.New(srv.l, uc)

	rest := api.Group("", mw.RateLimit())
	slHTTP.RegisterRoutes(rest, h)

	srv.l.Infof(ctx, "Shopping list domain registered at /api/listas and /api/productos")
	return nil
}
