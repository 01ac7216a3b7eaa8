package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new success envelope with the given data.
func NewOKResp(mensaje string, datos any) Resp {
	if mensaje == "" {
		mensaje = MessageSuccess
	}
	return Resp{
		Exitoso: true,
		Mensaje: mensaje,
		Datos:   datos,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, mensaje string, datos any) {
	c.JSON(http.StatusOK, NewOKResp(mensaje, datos))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, mensaje string, datos any) {
	c.JSON(http.StatusCreated, NewOKResp(mensaje, datos))
}

// BadRequest sends 400 with a message and optional per-field errors.
func BadRequest(c *gin.Context, mensaje string, errores []string) {
	c.JSON(http.StatusBadRequest, Resp{
		Exitoso: false,
		Mensaje: mensaje,
		Errores: errores,
	})
}

// NotFound sends 404 with a message.
func NotFound(c *gin.Context, mensaje string) {
	c.JSON(http.StatusNotFound, Resp{
		Exitoso: false,
		Mensaje: mensaje,
	})
}

// InternalError sends 500 with the generic message, never leaking internals.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		Exitoso: false,
		Mensaje: DefaultErrorMessage,
	})
}
