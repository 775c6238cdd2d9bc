package router

import "enterprise-advisors/internal/model"

// Log prefixes
const (
	LogPrefixRoute    = "internal.router.Route"
	LogPrefixClassify = "internal.router.classify"
)

// Classification prompt
const promptClassify = `You are an intent classification assistant for a multi-agent advisory system.
Based on the user's question, determine which advisor should handle it.

Available advisors:
- general: General inquiries, help, capabilities, services overview
- finance: Revenue, budget, expenses, costs, financial reports, profit/loss
- hr: HR policies, benefits, leave, employee matters, work policies, holidays
- orders: Sales orders, inventory, delivery, returns, shipping, stock, products
- reports: Analytics, workbooks, dashboards, exports, visualizations

Respond with ONLY ONE WORD - the advisor name (general, finance, hr, orders, or reports).
If the query could match multiple advisors, choose the most relevant one.

User question: %s

Answer (one word only):`

// Classifier sampling parameters. Low temperature and a tiny token budget
// keep the answer to a single word.
const (
	classifyTemperature = 0.1
	classifyMaxTokens   = 10
)

// Per-advisor keyword sets, matched as substrings of the lower-cased query.
var advisorKeywords = map[model.Intent][]string{
	model.IntentGeneral: {"general", "help", "what can you do", "capabilities", "services", "assist", "how can", "what do you", "tell me about", "who are you", "what services", "nlp", "nlp2sql"},
	model.IntentFinance: {"finance", "revenue", "budget", "expense", "cost", "money", "financial", "profit", "loss"},
	model.IntentHR:      {"hr", "policy", "benefit", "leave", "employee", "work", "holiday", "vacation", "staff"},
	model.IntentOrders:  {"order", "inventory", "delivery", "return", "shipping", "stock", "product", "item", "sales"},
	model.IntentReports: {"workbook", "analytics", "export", "oac", "dashboard", "visualization"},
}
