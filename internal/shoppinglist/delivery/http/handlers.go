package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"voice-shopping-list/internal/model"
	"voice-shopping-list/internal/shoppinglist"
	"voice-shopping-list/pkg/response"
)

// CreateList godoc
// @Summary     Crear una lista de compras
// @Description Crea una nueva lista con nombre y fecha objetivo. El par (nombre, fecha) debe ser único entre las listas activas.
// @Tags        Listas
// @Accept      json
// @Produce     json
// @Param       body body createListReq true "Datos de la lista"
// @Success     201 {object} response.Resp{datos=listResp}
// @Failure     400 {object} response.Resp "Errores de validación o lista duplicada"
// @Failure     500 {object} response.Resp
// @Router      /api/listas [POST]
func (h *handler) CreateList(c *gin.Context) {
	ctx := c.Request.Context()

	req, errores := h.processCreateListReq(c)
	if len(errores) > 0 {
		response.BadRequest(c, response.MessageValidation, errores)
		return
	}

	list, err := h.uc.CreateList(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, shoppinglist.ErrListConflict) {
			fecha, _ := req.fecha()
			response.BadRequest(c, fmt.Sprintf(
				"Ya existe una lista con el nombre '%s' para la fecha %s",
				req.Nombre, fecha.Format("02/01/2006")), nil)
			return
		}
		h.l.Errorf(ctx, "shoppinglist.http.CreateList: %v", err)
		response.InternalError(c)
		return
	}

	response.Created(c, "Lista creada exitosamente", newListResp(list, nil))
}

// DetailList godoc
// @Summary     Obtener una lista por ID
// @Description Devuelve la lista con sus productos.
// @Tags        Listas
// @Produce     json
// @Param       id path string true "ID de la lista"
// @Success     200 {object} response.Resp{datos=listResp}
// @Failure     404 {object} response.Resp
// @Failure     500 {object} response.Resp
// @Router      /api/listas/{id} [GET]
func (h *handler) DetailList(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	list, err := h.uc.GetList(ctx, id)
	if err != nil {
		h.respondListError(c, err, id)
		return
	}

	items, err := h.uc.ListItems(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "shoppinglist.http.DetailList items: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, "", newListResp(list, items))
}

// ListsByDate godoc
// @Summary     Listas por fecha
// @Description Devuelve las listas activas de una fecha concreta, ordenadas por nombre.
// @Tags        Listas
// @Produce     json
// @Param       fecha query string true "Fecha a consultar (yyyy-MM-dd)"
// @Success     200 {object} response.Resp{datos=[]listResp}
// @Failure     400 {object} response.Resp
// @Failure     500 {object} response.Resp
// @Router      /api/listas/por-fecha [GET]
func (h *handler) ListsByDate(c *gin.Context) {
	ctx := c.Request.Context()

	fecha, err := time.Parse(dateLayout, c.Query("fecha"))
	if err != nil {
		response.BadRequest(c, response.MessageValidation,
			[]string{"La fecha debe tener el formato yyyy-MM-dd"})
		return
	}

	lists, err := h.uc.ListForDate(ctx, fecha)
	if err != nil {
		h.l.Errorf(ctx, "shoppinglist.http.ListsByDate: %v", err)
		response.InternalError(c)
		return
	}

	resp, err := h.newListsResp(c, lists)
	if err != nil {
		return
	}
	response.OK(c, "", resp)
}

// ListActive godoc
// @Summary     Listas activas
// @Description Devuelve todas las listas activas, de la fecha objetivo más reciente a la más antigua.
// @Tags        Listas
// @Produce     json
// @Success     200 {object} response.Resp{datos=[]listResp}
// @Failure     500 {object} response.Resp
// @Router      /api/listas [GET]
func (h *handler) ListActive(c *gin.Context) {
	ctx := c.Request.Context()

	lists, err := h.uc.ListActive(ctx)
	if err != nil {
		h.l.Errorf(ctx, "shoppinglist.http.ListActive: %v", err)
		response.InternalError(c)
		return
	}

	resp, err := h.newListsResp(c, lists)
	if err != nil {
		return
	}
	response.OK(c, "", resp)
}

// newListsResp loads the items of every list and builds the response
// slice. On failure it writes the 500 envelope and returns the error.
func (h *handler) newListsResp(c *gin.Context, lists []model.ShoppingList) ([]listResp, error) {
	ctx := c.Request.Context()

	resp := make([]listResp, 0, len(lists))
	for _, list := range lists {
		items, err := h.uc.ListItems(ctx, list.ID)
		if err != nil {
			h.l.Errorf(ctx, "shoppinglist.http list items %s: %v", list.ID, err)
			response.InternalError(c)
			return nil, err
		}
		resp = append(resp, newListResp(list, items))
	}
	return resp, nil
}

// DeleteList godoc
// @Summary     Eliminar una lista
// @Description Marca la lista como eliminada. Eliminar dos veces es un error.
// @Tags        Listas
// @Produce     json
// @Param       id path string true "ID de la lista"
// @Success     200 {object} response.Resp{datos=bool}
// @Failure     400 {object} response.Resp "La lista ya está eliminada"
// @Failure     404 {object} response.Resp
// @Failure     500 {object} response.Resp
// @Router      /api/listas/{id} [DELETE]
func (h *handler) DeleteList(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.uc.DeleteList(ctx, id); err != nil {
		h.respondListError(c, err, id)
		return
	}

	response.OK(c, "Lista eliminada exitosamente", true)
}

// AddProduct godoc
// @Summary     Agregar un producto
// @Description Agrega un producto a una lista activa.
// @Tags        Productos
// @Accept      json
// @Produce     json
// @Param       body body addProductReq true "Datos del producto"
// @Success     201 {object} response.Resp{datos=itemResp}
// @Failure     400 {object} response.Resp "Errores de validación o lista eliminada"
// @Failure     404 {object} response.Resp "Lista no encontrada"
// @Failure     500 {object} response.Resp
// @Router      /api/productos [POST]
func (h *handler) AddProduct(c *gin.Context) {
	ctx := c.Request.Context()

	req, errores := h.processAddProductReq(c)
	if len(errores) > 0 {
		response.BadRequest(c, response.MessageValidation, errores)
		return
	}

	item, err := h.uc.AddItem(ctx, req.toInput())
	if err != nil {
		if !errors.Is(err, shoppinglist.ErrListNotFound) && !errors.Is(err, shoppinglist.ErrListDeleted) {
			h.l.Errorf(ctx, "shoppinglist.http.AddProduct: %v", err)
		}
		h.respondListError(c, err, req.IDLista)
		return
	}

	response.Created(c, "Producto agregado exitosamente", newItemResp(item))
}

// DetailProduct godoc
// @Summary     Obtener un producto por ID
// @Tags        Productos
// @Produce     json
// @Param       id path string true "ID del producto"
// @Success     200 {object} response.Resp{datos=itemResp}
// @Failure     404 {object} response.Resp
// @Failure     500 {object} response.Resp
// @Router      /api/productos/{id} [GET]
func (h *handler) DetailProduct(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	item, err := h.uc.GetItem(ctx, id)
	if err != nil {
		h.respondItemError(c, err, id)
		return
	}

	response.OK(c, "", newItemResp(item))
}

// ProductsByList godoc
// @Summary     Productos de una lista
// @Description Devuelve los productos de una lista, pendientes primero y luego por nombre.
// @Tags        Productos
// @Produce     json
// @Param       idLista path string true "ID de la lista"
// @Success     200 {object} response.Resp{datos=[]itemResp}
// @Failure     500 {object} response.Resp
// @Router      /api/productos/lista/{idLista} [GET]
func (h *handler) ProductsByList(c *gin.Context) {
	ctx := c.Request.Context()
	listID := c.Param("idLista")

	items, err := h.uc.ListItems(ctx, listID)
	if err != nil {
		h.l.Errorf(ctx, "shoppinglist.http.ProductsByList: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, "", newItemsResp(items))
}

// DeleteProduct godoc
// @Summary     Eliminar un producto
// @Description Elimina el producto de forma permanente.
// @Tags        Productos
// @Produce     json
// @Param       id path string true "ID del producto"
// @Success     200 {object} response.Resp{datos=bool}
// @Failure     404 {object} response.Resp
// @Failure     500 {object} response.Resp
// @Router      /api/productos/{id} [DELETE]
func (h *handler) DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.uc.DeleteItem(ctx, id); err != nil {
		h.respondItemError(c, err, id)
		return
	}

	response.OK(c, "Producto eliminado exitosamente", true)
}

// ChangeProductStatus godoc
// @Summary     Cambiar el estado de un producto
// @Description Cambia el estado entre Pendiente y Comprado.
// @Tags        Productos
// @Accept      json
// @Produce     json
// @Param       body body changeStatusReq true "Nuevo estado"
// @Success     200 {object} response.Resp{datos=bool}
// @Failure     400 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Failure     500 {object} response.Resp
// @Router      /api/productos/estado [PATCH]
func (h *handler) ChangeProductStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, errores := h.processChangeStatusReq(c)
	if len(errores) > 0 {
		response.BadRequest(c, response.MessageValidation, errores)
		return
	}

	if err := h.uc.SetItemStatus(ctx, req.toInput()); err != nil {
		h.respondItemError(c, err, req.IDItem)
		return
	}

	response.OK(c, "Estado del producto actualizado exitosamente", true)
}
