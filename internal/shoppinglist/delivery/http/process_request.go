package http

import (
	"github.com/gin-gonic/gin"
)

const malformedBody = "El cuerpo de la petición no es válido"

// processCreateListReq binds and validates the create list request body.
func (h *handler) processCreateListReq(c *gin.Context) (createListReq, []string) {
	var req createListReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, []string{malformedBody}
	}
	return req, req.validate()
}

// processAddProductReq binds and validates the add product request body.
func (h *handler) processAddProductReq(c *gin.Context) (addProductReq, []string) {
	var req addProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, []string{malformedBody}
	}
	return req, req.validate()
}

// processChangeStatusReq binds and validates the change status request body.
func (h *handler) processChangeStatusReq(c *gin.Context) (changeStatusReq, []string) {
	var req changeStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, []string{malformedBody}
	}
	return req, req.validate()
}
