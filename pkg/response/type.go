package response

// Resp is the standard JSON envelope of the management API.
// Field names are part of the wire contract consumed by the companion apps.
type Resp struct {
	Exitoso bool     `json:"exitoso"`
	Mensaje string   `json:"mensaje"`
	Datos   any      `json:"datos,omitempty"`
	Errores []string `json:"errores,omitempty"`
}
