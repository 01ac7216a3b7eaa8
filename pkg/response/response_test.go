package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func perform(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/t", handler)

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOKDefaultsMessage(t *testing.T) {
	w := perform(func(c *gin.Context) { OK(c, "", gin.H{"x": 1}) })

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}

	var resp Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Exitoso {
		t.Error("expected exitoso=true")
	}
	if resp.Mensaje != MessageSuccess {
		t.Errorf("mensaje %q, want default", resp.Mensaje)
	}
}

func TestBadRequestCarriesErrors(t *testing.T) {
	w := perform(func(c *gin.Context) {
		BadRequest(c, MessageValidation, []string{"campo requerido"})
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}

	var resp Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Exitoso {
		t.Error("expected exitoso=false")
	}
	if len(resp.Errores) != 1 || resp.Errores[0] != "campo requerido" {
		t.Errorf("errores %v", resp.Errores)
	}
}

func TestInternalErrorNeverLeaks(t *testing.T) {
	w := perform(func(c *gin.Context) { InternalError(c) })

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", w.Code)
	}

	var resp Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Mensaje != DefaultErrorMessage {
		t.Errorf("mensaje %q", resp.Mensaje)
	}
	if resp.Datos != nil || resp.Errores != nil {
		t.Error("500 body must carry no datos/errores")
	}
}
