package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Static segments are registered before parameterized siblings so that
// /listas/por-fecha and /productos/estado never collide with :id.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	listas := rg.Group("/listas")
	{
		listas.POST("", h.CreateList)
		listas.GET("", h.ListActive)
		listas.GET("/por-fecha", h.ListsByDate)
		listas.GET("/:id", h.DetailList)
		listas.DELETE("/:id", h.DeleteList)
	}

	productos := rg.Group("/productos")
	{
		productos.POST("", h.AddProduct)
		productos.PATCH("/estado", h.ChangeProductStatus)
		productos.GET("/lista/:idLista", h.ProductsByList)
		productos.GET("/:id", h.DetailProduct)
		productos.DELETE("/:id", h.DeleteProduct)
	}
}
