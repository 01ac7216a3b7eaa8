package nlu_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-shopping-list/internal/nlu"
)

func TestExtractListName(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"crea una lista llamada mercado", "mercado"},
		{"crea una lista de nombre cena del viernes", "cena del viernes"},
		{"crea una lista mercado", "mercado"},
		{"nueva lista supermercado por favor", "supermercado"},
		{"crea una lista", "Mi Lista"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, nlu.ExtractListName(tt.text))
		})
	}
}

func TestExtractListNameToDelete(t *testing.T) {
	assert.Equal(t, "compras", nlu.ExtractListNameToDelete("elimina la lista compras"))
	assert.Equal(t, "mercado", nlu.ExtractListNameToDelete("borra la lista mercado"))
	assert.Equal(t, "", nlu.ExtractListNameToDelete("elimina la lista"))
}

func TestExtractProductWithQuantity(t *testing.T) {
	tests := []struct {
		text    string
		product string
		qty     string
		unit    string
	}{
		{"agrega 3 kilos de tomate", "tomate", "3", "kilos"},
		{"agrega 2 litros de leche", "leche", "2", "litros"},
		{"agrega 2 manzanas", "manzanas", "2", ""},
		{"agrega leche", "leche", "1", ""},
		{"agrega leche por favor", "leche", "1", ""},
		{"añade pan a la lista", "pan", "1", ""},
		{"necesito 500 gramos de carne molida", "carne molida", "500", "gramos"},
		{"agrega 1 kilo arroz", "arroz", "1", "kilo"},
		{"agrega 3", "producto", "3", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			product, qty, unit := nlu.ExtractProductWithQuantity(tt.text)
			assert.Equal(t, tt.product, product)
			assert.Equal(t, tt.unit, unit)

			want, err := decimal.NewFromString(tt.qty)
			require.NoError(t, err)
			assert.True(t, qty.Equal(want), "quantity %s, want %s", qty, want)
		})
	}
}

func TestExtractProductForMark(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"ya compré la leche", "leche"},
		{"marca el pan como comprado", "pan"},
		{"marca tomates como comprado", "tomates"},
		{"la leche está comprado", "leche"},
		{"qué más da", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, nlu.ExtractProductForMark(tt.text))
		})
	}
}

func TestExtractProductToDelete(t *testing.T) {
	assert.Equal(t, "leche", nlu.ExtractProductToDelete("elimina la leche de la lista"))
	assert.Equal(t, "pan", nlu.ExtractProductToDelete("quita el pan por favor"))
	assert.Equal(t, "", nlu.ExtractProductToDelete("no hay nada"))
}

// Parse combines classification and extraction into one command.
func TestParse(t *testing.T) {
	cmd := nlu.Parse("agrega 3 kilos de tomate")
	assert.Equal(t, nlu.IntentAddProduct, cmd.Intent)
	assert.Equal(t, "tomate", cmd.ProductName)
	assert.Equal(t, "kilos", cmd.Unit)
	assert.True(t, cmd.Quantity.Equal(decimal.NewFromInt(3)))

	cmd = nlu.Parse("crea una lista llamada mercado")
	assert.Equal(t, nlu.IntentCreateList, cmd.Intent)
	assert.Equal(t, "mercado", cmd.ListName)

	cmd = nlu.Parse("qué listas tengo")
	assert.Equal(t, nlu.IntentListLists, cmd.Intent)
	assert.True(t, cmd.Quantity.Equal(decimal.NewFromInt(1)))

	cmd = nlu.Parse("")
	assert.Equal(t, nlu.IntentUnknown, cmd.Intent)
}
