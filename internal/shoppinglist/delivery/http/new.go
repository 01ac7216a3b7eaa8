package http

import (
	"github.com/gin-gonic/gin"

	"voice-shopping-list/internal/shoppinglist"
	"voice-shopping-list/pkg/log"
)

// Handler is the public interface for the shopping list REST delivery layer.
type Handler interface {
	CreateList(c *gin.Context)
	DetailList(c *gin.Context)
	ListsByDate(c *gin.Context)
	ListActive(c *gin.Context)
	DeleteList(c *gin.Context)
	AddProduct(c *gin.Context)
	DetailProduct(c *gin.Context)
	ProductsByList(c *gin.Context)
	DeleteProduct(c *gin.Context)
	ChangeProductStatus(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc shoppinglist.UseCase
}

// New creates a new REST handler for the shopping list domain.
func New(l log.Logger, uc shoppinglist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
