package nlu

// Structured request type sentinels sent by the voice platform.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Structured slot names from the skill's interaction model.
const (
	SlotListName = "nombreLista"
	SlotProduct  = "producto"
	SlotQuantity = "cantidad"
	SlotUnit     = "unidad"
)

// MapIntentName maps a structured intent name to the canonical intent the
// free-text grammar also produces. Unrecognized or empty names degrade to
// Unknown, never an error.
func MapIntentName(name string) Intent {
	switch name {
	case "CrearListaIntent":
		return IntentCreateList
	case "EliminarListaIntent":
		return IntentDeleteList
	case "ListarListasIntent":
		return IntentListLists
	case "ListarProductosIntent":
		return IntentListProducts
	case "AgregarProductoIntent":
		return IntentAddProduct
	case "EliminarProductoIntent":
		return IntentDeleteProduct
	case "MarcarProductoIntent":
		return IntentMarkProduct
	case "AMAZON.HelpIntent":
		return IntentHelp
	case "AMAZON.CancelIntent", "AMAZON.StopIntent":
		return IntentStop
	default:
		return IntentUnknown
	}
}
