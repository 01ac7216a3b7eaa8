package voice

// Every user-facing phrase of the skill. Handlers format the few that
// take arguments with fmt.Sprintf; the rest are spoken verbatim.
const (
	SpeechWelcome = "¡Bienvenido a Lista de Compras! " +
		"Puedes crear una lista, agregar productos, consultar tus listas o marcar productos como comprados. " +
		"¿Qué te gustaría hacer?"
	RepromptWelcome = "¿Necesitas ayuda para comenzar?"

	SpeechHelp = "Con esta skill puedes crear listas de compras y agregar productos. " +
		"Puedes decir: crea una lista llamada supermercado, " +
		"agrega leche a la lista, " +
		"qué hay en mi lista, " +
		"o marca la leche como comprada. " +
		"¿Qué te gustaría hacer?"
	RepromptHelp = "¿Necesitas ayuda con algo específico?"

	SpeechGoodbye = "¡Hasta luego! Que tengas buenas compras."

	SpeechUnknown   = "No entendí eso. Puedes pedirme crear una lista, agregar productos, o consultar tus listas."
	RepromptUnknown = "¿Qué te gustaría hacer?"

	SpeechAskListName    = "No escuché el nombre de la lista. ¿Cómo quieres llamar a tu lista?"
	RepromptAskListName  = "¿Qué nombre le ponemos a la lista?"
	SpeechListCreated    = "Perfecto, he creado la lista %s. ¿Deseas agregar productos ahora?"
	RepromptListCreated  = "¿Quieres agregar algún producto?"
	SpeechListConflict   = "Ya existe una lista con el nombre '%s' para la fecha %s"

	SpeechAskListToDelete   = "¿Qué lista quieres eliminar?"
	RepromptAskListToDelete = "Dime el nombre de la lista que quieres eliminar"
	SpeechListNotFound      = "No encontré ninguna lista llamada %s."
	SpeechListDeleted       = "He eliminado la lista %s."

	SpeechNoListsToday   = "No tienes listas para hoy. ¿Quieres crear una?"
	RepromptNoListsToday = "¿Deseas crear una nueva lista?"
	SpeechOneListToday   = "Tienes una lista para hoy: %s"
	SpeechManyListsToday = "Tienes %d listas para hoy: %s"
	SpeechListsFollowUp  = ". ¿Quieres ver los productos de alguna lista?"
	RepromptListsToday   = "¿Qué lista quieres revisar?"

	SpeechAskProduct       = "No escuché qué producto quieres agregar. ¿Qué producto necesitas?"
	RepromptAskProduct     = "¿Qué producto quieres agregar?"
	SpeechNoActiveList     = "No tienes ninguna lista activa para hoy. Primero crea una lista diciendo: crea una lista."
	RepromptNoActiveList   = "¿Quieres crear una lista ahora?"
	SpeechProductAdded     = "He agregado %s%s%s a tu lista %s. ¿Algo más?"
	RepromptProductAdded   = "¿Quieres agregar otro producto?"

	SpeechNoActiveListsToday = "No tienes listas activas para hoy."
	SpeechListEmpty          = "Tu lista %s está vacía. ¿Quieres agregar productos?"
	RepromptListEmpty        = "¿Deseas agregar algún producto?"

	SpeechAskProductToMark = "¿Qué producto quieres marcar?"
	SpeechProductMarked    = "Perfecto, he marcado %s como comprado en tu lista %s."
	SpeechProductNotFound  = "No encontré %s en tus listas."

	SpeechAskProductToDelete   = "¿Qué producto quieres eliminar?"
	RepromptAskProductToDelete = "Dime el nombre del producto que quieres eliminar"
	SpeechProductDeleted       = "He eliminado %s de tu lista %s."

	SpeechErrorGeneric      = "Lo siento, ocurrió un error procesando tu solicitud. Por favor intenta nuevamente."
	SpeechErrorCreatingList = "Hubo un problema al crear la lista. Intenta nuevamente."
	SpeechErrorDeletingList = "Hubo un problema al eliminar la lista. Intenta nuevamente."
	SpeechErrorListingLists = "Hubo un problema al obtener tus listas. Intenta nuevamente."
	SpeechErrorAddingItem   = "Hubo un problema al agregar el producto. Intenta nuevamente."
	SpeechErrorListingItems = "Hubo un problema al obtener los productos."
	SpeechErrorMarkingItem  = "Hubo un problema al marcar el producto."
	SpeechErrorDeletingItem = "Hubo un problema al eliminar el producto. Intenta nuevamente."
)
