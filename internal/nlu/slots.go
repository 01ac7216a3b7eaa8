package nlu

import (
	"strings"

	"github.com/shopspring/decimal"
)

// remainderAfter returns the text following the first trigger (in table
// order) found anywhere in the text, and whether any trigger matched.
func remainderAfter(text string, triggers []string) (string, bool) {
	for _, t := range triggers {
		if idx := strings.Index(text, t); idx >= 0 {
			return strings.TrimSpace(text[idx+len(t):]), true
		}
	}
	return "", false
}

// stripFillers removes every filler occurrence, in table order.
func stripFillers(s string, fillers []string) string {
	for _, f := range fillers {
		s = strings.ReplaceAll(s, f, "")
	}
	return strings.TrimSpace(s)
}

// stripArticle drops a single leading article so spoken fragments like
// "la leche" match the stored product "leche".
func stripArticle(s string) string {
	for _, a := range productArticles {
		if strings.HasPrefix(s, a) {
			return strings.TrimSpace(strings.TrimPrefix(s, a))
		}
	}
	return s
}

// ExtractListName pulls the list name from a create-list command.
// Triggers that yield an empty name are skipped in favor of later ones;
// when nothing usable is found the fixed default name applies.
func ExtractListName(text string) string {
	for _, t := range createListTriggers {
		idx := strings.Index(text, t)
		if idx < 0 {
			continue
		}
		name := stripFillers(strings.TrimSpace(text[idx+len(t):]), courtesyFillers)
		if name != "" {
			return name
		}
	}
	return DefaultListName
}

// ExtractListNameToDelete pulls the target list name from a delete-list
// command. Empty means the command named no list and the caller must ask.
func ExtractListNameToDelete(text string) string {
	name, _ := remainderAfter(text, deleteListTriggers)
	return name
}

// ExtractProductWithQuantity parses an add-product remainder into
// (product, quantity, unit). Grammar, matching the skill's voice model:
//
//	agrega <producto>
//	agrega <cantidad> <producto>
//	agrega <cantidad> <unidad> [de] <producto>
//
// A remainder that is a bare number keeps the quantity and takes the
// placeholder product name instead of reporting an absent slot.
func ExtractProductWithQuantity(text string) (string, decimal.Decimal, string) {
	one := decimal.NewFromInt(1)

	rest, ok := remainderAfter(text, addProductTriggers)
	if !ok {
		return "", one, ""
	}
	rest = stripFillers(rest, addProductFillers)

	parts := strings.Fields(rest)
	if len(parts) == 0 {
		return rest, one, ""
	}

	qty, err := decimal.NewFromString(parts[0])
	if err != nil {
		// No leading quantity: whole remainder is the product.
		return rest, one, ""
	}

	if len(parts) == 1 {
		return PlaceholderProduct, qty, ""
	}

	if isUnitWord(parts[1]) {
		unit := parts[1]
		if len(parts) > 2 && parts[2] == "de" {
			return strings.Join(parts[3:], " "), qty, unit
		}
		return strings.Join(parts[2:], " "), qty, unit
	}

	return strings.Join(parts[1:], " "), qty, ""
}

// ExtractProductForMark pulls the product fragment from a mark-as-purchased
// command, dropping the purchase wording around it.
func ExtractProductForMark(text string) string {
	if rest, ok := remainderAfter(text, markProductTriggers); ok {
		return stripArticle(stripFillers(rest, markProductFillers))
	}

	// Statements like "la leche está comprado" carry no trigger verb:
	// strip the purchase wording and the article to recover the fragment.
	if strings.Contains(text, " está comprado") || strings.Contains(text, " esta comprado") {
		s := strings.ReplaceAll(text, " está comprado", "")
		s = strings.ReplaceAll(s, " esta comprado", "")
		s = strings.ReplaceAll(s, "el ", "")
		s = strings.ReplaceAll(s, "la ", "")
		return strings.TrimSpace(s)
	}

	return ""
}

// ExtractProductToDelete pulls the product fragment from a delete-product
// command. Empty means the command named no product.
func ExtractProductToDelete(text string) string {
	rest, ok := remainderAfter(text, deleteProductTriggers)
	if !ok {
		return ""
	}
	return stripArticle(stripFillers(rest, deleteProductFillers))
}

func isUnitWord(token string) bool {
	for _, u := range unitWords {
		if strings.Contains(token, u) {
			return true
		}
	}
	return false
}
