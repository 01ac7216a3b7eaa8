package nlu

import "github.com/shopspring/decimal"

// Intent is the canonical action a command requests, independent of
// whether it arrived as free text or as a structured skill request.
type Intent string

const (
	IntentLaunch       Intent = "Launch"
	IntentCreateList   Intent = "CreateList"
	IntentDeleteList   Intent = "DeleteList"
	IntentListLists    Intent = "ListLists"
	IntentListProducts Intent = "ListProducts"
	IntentMarkProduct  Intent = "MarkProduct"
	IntentDeleteProduct Intent = "DeleteProduct"
	IntentAddProduct   Intent = "AddProduct"
	IntentHelp         Intent = "Help"
	IntentStop         Intent = "Stop"
	IntentSessionEnded Intent = "SessionEnded"
	IntentUnknown      Intent = "Unknown"
)

// Command is the canonical intent + slot structure both input grammars
// converge on. Absent slots are empty strings, never sentinel values;
// handlers branch on emptiness.
type Command struct {
	Intent      Intent
	ListName    string
	ProductName string
	Quantity    decimal.Decimal // defaults to 1 when the command names none
	Unit        string
}
