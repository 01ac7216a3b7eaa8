package http

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"voice-shopping-list/internal/model"
	"voice-shopping-list/internal/shoppinglist"
)

const dateLayout = "2006-01-02"

// --- Request DTOs ---

type createListReq struct {
	Nombre        string `json:"nombre"`
	FechaObjetivo string `json:"fechaObjetivo"`
}

// fecha parses the target date. The companion apps send yyyy-MM-dd but
// full RFC3339 timestamps are accepted as well.
func (r createListReq) fecha() (time.Time, bool) {
	if t, err := time.Parse(dateLayout, r.FechaObjetivo); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, r.FechaObjetivo); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (r createListReq) validate() []string {
	var errores []string

	nombre := strings.TrimSpace(r.Nombre)
	if nombre == "" {
		errores = append(errores, "El nombre de la lista es requerido")
	} else {
		if len([]rune(nombre)) < 2 {
			errores = append(errores, "El nombre debe tener al menos 2 caracteres")
		}
		if len([]rune(nombre)) > 100 {
			errores = append(errores, "El nombre no puede exceder 100 caracteres")
		}
	}

	if r.FechaObjetivo == "" {
		errores = append(errores, "La fecha objetivo es requerida")
	} else if fecha, ok := r.fecha(); !ok {
		errores = append(errores, "La fecha objetivo no tiene un formato válido")
	} else {
		hoy := time.Now().UTC().Truncate(24 * time.Hour)
		if fecha.Truncate(24 * time.Hour).Before(hoy) {
			errores = append(errores, "La fecha objetivo no puede ser anterior al día de hoy")
		}
	}

	return errores
}

func (r createListReq) toInput() shoppinglist.CreateListInput {
	fecha, _ := r.fecha()
	return shoppinglist.CreateListInput{
		Name:       r.Nombre,
		TargetDate: fecha,
	}
}

// ---

type addProductReq struct {
	IDLista        string          `json:"idLista"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad"`
}

func (r addProductReq) validate() []string {
	var errores []string

	if strings.TrimSpace(r.IDLista) == "" {
		errores = append(errores, "El ID de la lista es requerido")
	}

	nombre := strings.TrimSpace(r.NombreProducto)
	if nombre == "" {
		errores = append(errores, "El nombre del producto es requerido")
	} else {
		if len([]rune(nombre)) < 2 {
			errores = append(errores, "El nombre del producto debe tener al menos 2 caracteres")
		}
		if len([]rune(nombre)) > 200 {
			errores = append(errores, "El nombre del producto no puede exceder 200 caracteres")
		}
	}

	if !r.Cantidad.IsPositive() {
		errores = append(errores, "La cantidad debe ser mayor a cero")
	} else if r.Cantidad.GreaterThan(decimal.NewFromInt(9999)) {
		errores = append(errores, "La cantidad no puede exceder 9999")
	}

	if len([]rune(r.Unidad)) > 50 {
		errores = append(errores, "La unidad no puede exceder 50 caracteres")
	}

	return errores
}

func (r addProductReq) toInput() shoppinglist.AddItemInput {
	return shoppinglist.AddItemInput{
		ListID:      r.IDLista,
		ProductName: r.NombreProducto,
		Quantity:    r.Cantidad,
		Unit:        r.Unidad,
	}
}

// ---

type changeStatusReq struct {
	IDItem      string `json:"idItem"`
	NuevoEstado string `json:"nuevoEstado"`
}

func (r changeStatusReq) validate() []string {
	var errores []string

	if strings.TrimSpace(r.IDItem) == "" {
		errores = append(errores, "El ID del producto es requerido")
	}
	if r.NuevoEstado != string(model.ItemStatusPending) && r.NuevoEstado != string(model.ItemStatusPurchased) {
		errores = append(errores, "El estado debe ser Pendiente o Comprado")
	}

	return errores
}

func (r changeStatusReq) toInput() shoppinglist.SetItemStatusInput {
	return shoppinglist.SetItemStatusInput{
		ItemID: r.IDItem,
		Status: model.ItemStatus(r.NuevoEstado),
	}
}

// --- Response DTOs ---

type itemResp struct {
	IDItem         string          `json:"idItem"`
	IDLista        string          `json:"idLista"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad,omitempty"`
	Estado         string          `json:"estado"`
	FechaCreacion  time.Time       `json:"fechaCreacion"`
}

func newItemResp(item model.ListItem) itemResp {
	return itemResp{
		IDItem:         item.ID,
		IDLista:        item.ListID,
		NombreProducto: item.ProductName,
		Cantidad:       item.Quantity,
		Unidad:         item.Unit,
		Estado:         string(item.Status),
		FechaCreacion:  item.CreatedAt,
	}
}

func newItemsResp(items []model.ListItem) []itemResp {
	resp := make([]itemResp, 0, len(items))
	for _, item := range items {
		resp = append(resp, newItemResp(item))
	}
	return resp
}

type listResp struct {
	IDLista       string     `json:"idLista"`
	Nombre        string     `json:"nombre"`
	FechaObjetivo string     `json:"fechaObjetivo"`
	Estado        string     `json:"estado"`
	FechaCreacion time.Time  `json:"fechaCreacion"`
	Productos     []itemResp `json:"productos"`
}

func newListResp(list model.ShoppingList, items []model.ListItem) listResp {
	return listResp{
		IDLista:       list.ID,
		Nombre:        list.Name,
		FechaObjetivo: list.TargetDate.Format(dateLayout),
		Estado:        string(list.Status),
		FechaCreacion: list.CreatedAt,
		Productos:     newItemsResp(items),
	}
}
