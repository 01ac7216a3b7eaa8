package nlu

// WakeWord is stripped from free-text commands during normalization.
const WakeWord = "alexa"

// DefaultListName is used when a create-list command names no list.
const DefaultListName = "Mi Lista"

// PlaceholderProduct is returned when an add command consists of a bare
// quantity ("agrega 3"). Kept for compatibility with the original skill.
const PlaceholderProduct = "producto"

// Trigger tables are ordered: the FIRST table entry found anywhere in the
// text wins, regardless of where later entries would match. Do not reorder.

var createListTriggers = []string{
	"llamada ", "llamado ", "de nombre ", "nombre ",
	"lista ", "nueva lista ", "crear lista ",
}

var deleteListTriggers = []string{
	"elimina la lista ", "borra la lista ", "quita la lista ",
	"eliminar lista ", "borrar la lista ", "borrar lista ",
}

var addProductTriggers = []string{
	"agrega ", "añade ", "anade ", "agregar ", "añadir ",
	"pon ", "quiero agregar ", "necesito ",
}

var markProductTriggers = []string{
	"marca ", "marcar ", "compré ", "compre ", "ya compré ", "ya compre ",
}

var deleteProductTriggers = []string{
	"elimina ", "borra ", "quita ", "quiero quitar ",
	"eliminar ", "borrar ",
}

// Trailing filler stripped from extracted slots, applied in order.
var courtesyFillers = []string{" por favor", " gracias"}

var addProductFillers = []string{" en la lista", " a la lista", " por favor", " gracias"}

var deleteProductFillers = []string{" de la lista", " por favor", " gracias"}

// Purchase wording removed from mark-product remainders, applied in order:
// " comprado" must run before the longer variants it truncates.
var markProductFillers = []string{
	" como comprado", " como comprada", " comprado",
	" está comprado", " esta comprado", " a comprado",
	" ya está comprado", " ya esta comprado",
}

// Leading articles stripped from product fragments so "la leche" finds "leche".
var productArticles = []string{"el ", "la "}

// Closed set of measure words recognized by containment, not equality.
var unitWords = []string{
	"kilo", "kilos", "litro", "litros",
	"gramo", "gramos", "unidad", "unidades",
}
