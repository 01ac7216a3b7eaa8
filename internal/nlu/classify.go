package nlu

import (
	"strings"

	"github.com/shopspring/decimal"
)

// rule pairs a predicate over normalized text with the intent it selects.
type rule struct {
	intent Intent
	match  func(s string) bool
}

func has(phrase string) func(string) bool {
	return func(s string) bool { return strings.Contains(s, phrase) }
}

func anyOf(phrases ...string) func(string) bool {
	return func(s string) bool {
		for _, p := range phrases {
			if strings.Contains(s, p) {
				return true
			}
		}
		return false
	}
}

func allOf(preds ...func(string) bool) func(string) bool {
	return func(s string) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

func not(pred func(string) bool) func(string) bool {
	return func(s string) bool { return !pred(s) }
}

func or(preds ...func(string) bool) func(string) bool {
	return func(s string) bool {
		for _, p := range preds {
			if p(s) {
				return true
			}
		}
		return false
	}
}

// rules is evaluated top-down, first match wins. The order encodes the
// disambiguation priority between overlapping vocabulary (e.g. "elimina X"
// only reaches DeleteProduct after DeleteList, which requires "lista",
// has failed) and must not be rearranged.
var rules = []rule{
	{IntentLaunch, anyOf(
		"abre lista de compras",
		"abrir lista de compras",
		"iniciar lista de compras",
	)},
	{IntentCreateList, anyOf(
		"crea una lista",
		"crear lista",
		"nueva lista",
		"quiero crear una lista",
		"agrega una nueva lista",
		"inicia una lista",
	)},
	{IntentDeleteList, anyOf(
		"elimina la lista",
		"borra la lista",
		"quita la lista",
		"eliminar lista",
		"borrar la lista",
		"quiero borrar la lista",
	)},
	{IntentListLists, anyOf(
		"qué listas tengo",
		"que listas tengo",
		"muéstrame mis listas",
		"cuáles son mis listas",
		"cuales son mis listas",
		"lista mis listas",
		"listas de hoy",
		"mis listas",
	)},
	{IntentListProducts, anyOf(
		"qué hay en",
		"que hay en",
		"qué productos tengo",
		"que productos tengo",
		"lista los productos",
		"cuáles son los productos",
		"cuales son los productos",
		"qué necesito comprar",
		"que necesito comprar",
		"lee mi lista",
	)},
	{IntentMarkProduct, or(
		allOf(has("marca"), has("comprado")),
		has("está comprado"),
		has("esta comprado"),
		allOf(has("cambiar"), has("a comprado")),
		has("ya está comprado"),
		has("ya esta comprado"),
		has("compré"),
		has("compre"),
	)},
	{IntentDeleteProduct, or(
		allOf(has("elimina"), not(has("lista"))),
		allOf(has("borra"), not(has("lista"))),
		allOf(has("quita"), not(has("lista"))),
		has("quiero quitar"),
	)},
	{IntentAddProduct, or(
		has("agrega"),
		has("añade"),
		has("anade"),
		allOf(has("pon"), has("en la lista")),
		has("quiero agregar"),
		has("necesito"),
	)},
	{IntentHelp, anyOf(
		"ayuda",
		"ayúdame",
		"ayudame",
		"qué puedo hacer",
		"que puedo hacer",
		"qué puedes hacer",
		"que puedes hacer",
		"cómo funciona",
		"como funciona",
	)},
	{IntentStop, anyOf(
		"cancelar",
		"olvídalo",
		"olvidalo",
		"déjalo",
		"dejalo",
		"detener",
		"parar",
		"terminar",
		"salir",
		"adiós",
		"adios",
	)},
}

// Classify maps normalized free text to exactly one canonical intent.
func Classify(text string) Intent {
	if text == "" {
		return IntentUnknown
	}
	for _, r := range rules {
		if r.match(text) {
			return r.intent
		}
	}
	return IntentUnknown
}

// Parse classifies normalized free text and extracts the slot values the
// matched intent needs, producing the canonical Command.
func Parse(text string) Command {
	cmd := Command{
		Intent:   Classify(text),
		Quantity: decimal.NewFromInt(1),
	}

	switch cmd.Intent {
	case IntentCreateList:
		cmd.ListName = ExtractListName(text)
	case IntentDeleteList:
		cmd.ListName = ExtractListNameToDelete(text)
	case IntentAddProduct:
		cmd.ProductName, cmd.Quantity, cmd.Unit = ExtractProductWithQuantity(text)
	case IntentMarkProduct:
		cmd.ProductName = ExtractProductForMark(text)
	case IntentDeleteProduct:
		cmd.ProductName = ExtractProductToDelete(text)
	}

	return cmd
}
