package http

import (
	"github.com/shopspring/decimal"

	"voice-shopping-list/internal/nlu"
)

// skillRequest is the structured envelope sent by the voice platform.
// Only the fields the engine reads are declared; everything else in the
// payload is ignored.
type skillRequest struct {
	Request struct {
		Type   string `json:"type"`
		Intent struct {
			Name  string          `json:"name"`
			Slots map[string]slot `json:"slots"`
		} `json:"intent"`
	} `json:"request"`
}

type slot struct {
	Value string `json:"value"`
}

// slotValue returns the slot's value or "" when the slot is missing.
// Absent and empty are deliberately indistinguishable.
func (r skillRequest) slotValue(name string) string {
	return r.Request.Intent.Slots[name].Value
}

// toCommand converts a structured intent request into the canonical
// command the free-text grammar also produces.
func (r skillRequest) toCommand() nlu.Command {
	cmd := nlu.Command{
		Intent:   nlu.MapIntentName(r.Request.Intent.Name),
		Quantity: decimal.NewFromInt(1),
	}

	cmd.ListName = r.slotValue(nlu.SlotListName)
	cmd.ProductName = r.slotValue(nlu.SlotProduct)
	cmd.Unit = r.slotValue(nlu.SlotUnit)

	if raw := r.slotValue(nlu.SlotQuantity); raw != "" {
		if q, err := decimal.NewFromString(raw); err == nil {
			cmd.Quantity = q
		}
	}

	return cmd
}
