package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"voice-shopping-list/internal/model"
	"voice-shopping-list/internal/shoppinglist"
	slHTTP "voice-shopping-list/internal/shoppinglist/delivery/http"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockUseCase implements shoppinglist.UseCase with canned results.
type mockUseCase struct {
	createListResult model.ShoppingList
	createListErr    error

	getListResult model.ShoppingList
	getListErr    error

	listForDateResult []model.ShoppingList
	listActiveResult  []model.ShoppingList

	deleteListErr error

	addItemResult model.ListItem
	addItemErr    error

	getItemResult model.ListItem
	getItemErr    error

	listItemsResult []model.ListItem

	setStatusErr  error
	deleteItemErr error
}

func (m *mockUseCase) CreateList(ctx context.Context, input shoppinglist.CreateListInput) (model.ShoppingList, error) {
	return m.createListResult, m.createListErr
}
func (m *mockUseCase) GetList(ctx context.Context, id string) (model.ShoppingList, error) {
	return m.getListResult, m.getListErr
}
func (m *mockUseCase) ListForDate(ctx context.Context, date time.Time) ([]model.ShoppingList, error) {
	return m.listForDateResult, nil
}
func (m *mockUseCase) ListActive(ctx context.Context) ([]model.ShoppingList, error) {
	return m.listActiveResult, nil
}
func (m *mockUseCase) DeleteList(ctx context.Context, id string) error {
	return m.deleteListErr
}
func (m *mockUseCase) AddItem(ctx context.Context, input shoppinglist.AddItemInput) (model.ListItem, error) {
	return m.addItemResult, m.addItemErr
}
func (m *mockUseCase) GetItem(ctx context.Context, id string) (model.ListItem, error) {
	return m.getItemResult, m.getItemErr
}
func (m *mockUseCase) ListItems(ctx context.Context, listID string) ([]model.ListItem, error) {
	return m.listItemsResult, nil
}
func (m *mockUseCase) SetItemStatus(ctx context.Context, input shoppinglist.SetItemStatusInput) error {
	return m.setStatusErr
}
func (m *mockUseCase) DeleteItem(ctx context.Context, id string) error {
	return m.deleteItemErr
}

func newTestRouter(uc shoppinglist.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	slHTTP.RegisterRoutes(router.Group("/api"), slHTTP.New(mockLogger{}, uc))
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Exitoso bool            `json:"exitoso"`
	Mensaje string          `json:"mensaje"`
	Datos   json.RawMessage `json:"datos"`
	Errores []string        `json:"errores"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	return e
}

func TestCreateListValidation(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	w := do(router, http.MethodPost, "/api/listas", `{"nombre":"x","fechaObjetivo":"2020-01-01"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}

	e := decode(t, w)
	if e.Exitoso {
		t.Error("expected exitoso=false")
	}
	if e.Mensaje != "Errores de validación" {
		t.Errorf("mensaje %q", e.Mensaje)
	}
	wantErrors := []string{
		"El nombre debe tener al menos 2 caracteres",
		"La fecha objetivo no puede ser anterior al día de hoy",
	}
	for _, want := range wantErrors {
		found := false
		for _, got := range e.Errores {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing validation error %q in %v", want, e.Errores)
		}
	}
}

func TestCreateListConflict(t *testing.T) {
	router := newTestRouter(&mockUseCase{createListErr: shoppinglist.ErrListConflict})

	w := do(router, http.MethodPost, "/api/listas", `{"nombre":"Mercado","fechaObjetivo":"2030-05-20"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}

	e := decode(t, w)
	if e.Mensaje != "Ya existe una lista con el nombre 'Mercado' para la fecha 20/05/2030" {
		t.Errorf("mensaje %q", e.Mensaje)
	}
}

func TestCreateListOK(t *testing.T) {
	created := model.ShoppingList{
		ID:         "l1",
		Name:       "Mercado",
		TargetDate: time.Date(2030, 5, 20, 0, 0, 0, 0, time.UTC),
		Status:     model.ListStatusActive,
		CreatedAt:  time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	router := newTestRouter(&mockUseCase{createListResult: created})

	w := do(router, http.MethodPost, "/api/listas", `{"nombre":"Mercado","fechaObjetivo":"2030-05-20"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201: %s", w.Code, w.Body.String())
	}

	e := decode(t, w)
	if !e.Exitoso {
		t.Error("expected exitoso=true")
	}
	if e.Mensaje != "Lista creada exitosamente" {
		t.Errorf("mensaje %q", e.Mensaje)
	}

	var datos map[string]any
	if err := json.Unmarshal(e.Datos, &datos); err != nil {
		t.Fatalf("decode datos: %v", err)
	}
	if datos["idLista"] != "l1" || datos["nombre"] != "Mercado" {
		t.Errorf("datos %v", datos)
	}
	if datos["fechaObjetivo"] != "2030-05-20" {
		t.Errorf("fechaObjetivo %v", datos["fechaObjetivo"])
	}
	if datos["estado"] != "Activa" {
		t.Errorf("estado %v", datos["estado"])
	}
	if productos, ok := datos["productos"].([]any); !ok || len(productos) != 0 {
		t.Errorf("productos should be an empty array, got %v", datos["productos"])
	}
}

func TestDetailListNotFound(t *testing.T) {
	router := newTestRouter(&mockUseCase{getListErr: shoppinglist.ErrListNotFound})

	w := do(router, http.MethodGet, "/api/listas/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}

	e := decode(t, w)
	if e.Mensaje != "No se encontró la lista con ID nope" {
		t.Errorf("mensaje %q", e.Mensaje)
	}
}

func TestDeleteListAlreadyDeleted(t *testing.T) {
	router := newTestRouter(&mockUseCase{deleteListErr: shoppinglist.ErrListAlreadyDeleted})

	w := do(router, http.MethodDelete, "/api/listas/l1", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	if e := decode(t, w); e.Mensaje != "La lista ya está eliminada" {
		t.Errorf("mensaje %q", e.Mensaje)
	}
}

func TestListsByDateBadFormat(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	w := do(router, http.MethodGet, "/api/listas/por-fecha?fecha=20-05-2030", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestAddProductValidation(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	w := do(router, http.MethodPost, "/api/productos", `{"idLista":"","nombreProducto":"x","cantidad":0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}

	e := decode(t, w)
	wantErrors := []string{
		"El ID de la lista es requerido",
		"El nombre del producto debe tener al menos 2 caracteres",
		"La cantidad debe ser mayor a cero",
	}
	for _, want := range wantErrors {
		found := false
		for _, got := range e.Errores {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing validation error %q in %v", want, e.Errores)
		}
	}
}

func TestAddProductQuantityTooLarge(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	w := do(router, http.MethodPost, "/api/productos", `{"idLista":"l1","nombreProducto":"arroz","cantidad":10000}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	e := decode(t, w)
	if len(e.Errores) != 1 || e.Errores[0] != "La cantidad no puede exceder 9999" {
		t.Errorf("errores %v", e.Errores)
	}
}

func TestAddProductToDeletedList(t *testing.T) {
	router := newTestRouter(&mockUseCase{addItemErr: shoppinglist.ErrListDeleted})

	w := do(router, http.MethodPost, "/api/productos", `{"idLista":"l1","nombreProducto":"arroz","cantidad":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	if e := decode(t, w); e.Mensaje != "No se pueden agregar productos a una lista eliminada" {
		t.Errorf("mensaje %q", e.Mensaje)
	}
}

func TestAddProductListNotFound(t *testing.T) {
	router := newTestRouter(&mockUseCase{addItemErr: shoppinglist.ErrListNotFound})

	w := do(router, http.MethodPost, "/api/productos", `{"idLista":"l1","nombreProducto":"arroz","cantidad":1}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	if e := decode(t, w); e.Mensaje != "No se encontró la lista con ID l1" {
		t.Errorf("mensaje %q", e.Mensaje)
	}
}

func TestAddProductOK(t *testing.T) {
	item := model.ListItem{
		ID:          "i1",
		ListID:      "l1",
		ProductName: "arroz",
		Quantity:    decimal.NewFromInt(2),
		Status:      model.ItemStatusPending,
		CreatedAt:   time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	router := newTestRouter(&mockUseCase{addItemResult: item})

	w := do(router, http.MethodPost, "/api/productos", `{"idLista":"l1","nombreProducto":"arroz","cantidad":2}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201: %s", w.Code, w.Body.String())
	}

	e := decode(t, w)
	if e.Mensaje != "Producto agregado exitosamente" {
		t.Errorf("mensaje %q", e.Mensaje)
	}

	var datos map[string]any
	if err := json.Unmarshal(e.Datos, &datos); err != nil {
		t.Fatalf("decode datos: %v", err)
	}
	if datos["idItem"] != "i1" || datos["estado"] != "Pendiente" {
		t.Errorf("datos %v", datos)
	}
	if _, present := datos["unidad"]; present {
		t.Error("empty unidad must be omitted")
	}
}

func TestChangeStatusValidation(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	w := do(router, http.MethodPatch, "/api/productos/estado", `{"idItem":"i1","nuevoEstado":"Volando"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	e := decode(t, w)
	if len(e.Errores) != 1 || e.Errores[0] != "El estado debe ser Pendiente o Comprado" {
		t.Errorf("errores %v", e.Errores)
	}
}

func TestChangeStatusOK(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	w := do(router, http.MethodPatch, "/api/productos/estado", `{"idItem":"i1","nuevoEstado":"Comprado"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", w.Code, w.Body.String())
	}
	if e := decode(t, w); e.Mensaje != "Estado del producto actualizado exitosamente" {
		t.Errorf("mensaje %q", e.Mensaje)
	}
}

func TestDeleteProductNotFound(t *testing.T) {
	router := newTestRouter(&mockUseCase{deleteItemErr: shoppinglist.ErrItemNotFound})

	w := do(router, http.MethodDelete, "/api/productos/i9", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	if e := decode(t, w); e.Mensaje != "No se encontró el producto con ID i9" {
		t.Errorf("mensaje %q", e.Mensaje)
	}
}
