package http

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"voice-shopping-list/internal/shoppinglist"
	"voice-shopping-list/pkg/response"
)

// respondListError writes the envelope for a failed list operation.
// Not-found carries the requested ID in the message, matching the
// contract the companion apps were built against.
func (h *handler) respondListError(c *gin.Context, err error, id string) {
	switch {
	case errors.Is(err, shoppinglist.ErrListNotFound):
		response.NotFound(c, fmt.Sprintf("No se encontró la lista con ID %s", id))
	case errors.Is(err, shoppinglist.ErrListAlreadyDeleted):
		response.BadRequest(c, "La lista ya está eliminada", nil)
	case errors.Is(err, shoppinglist.ErrListDeleted):
		response.BadRequest(c, "No se pueden agregar productos a una lista eliminada", nil)
	default:
		response.InternalError(c)
	}
}

// respondItemError writes the envelope for a failed product operation.
func (h *handler) respondItemError(c *gin.Context, err error, id string) {
	switch {
	case errors.Is(err, shoppinglist.ErrItemNotFound):
		response.NotFound(c, fmt.Sprintf("No se encontró el producto con ID %s", id))
	default:
		response.InternalError(c)
	}
}
