package response

// User-facing messages are Spanish across the whole API surface.
const (
	MessageSuccess      = "Operación exitosa"
	MessageValidation   = "Errores de validación"
	DefaultErrorMessage = "Ocurrió un error interno en el servidor"
)
