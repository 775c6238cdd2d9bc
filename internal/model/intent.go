package model

// Intent is the advisor category selected for a query.
type Intent string

const (
	IntentGeneral Intent = "general"
	IntentFinance Intent = "finance"
	IntentHR      Intent = "hr"
	IntentOrders  Intent = "orders"
	IntentReports Intent = "reports"
)

// Intents lists every valid intent in routing order.
var Intents = []Intent{IntentGeneral, IntentFinance, IntentHR, IntentOrders, IntentReports}

// ParseIntent returns the intent matching s, or false when s is not a valid label.
func ParseIntent(s string) (Intent, bool) {
	for _, it := range Intents {
		if string(it) == s {
			return it, true
		}
	}
	return "", false
}
