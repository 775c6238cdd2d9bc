package usecase

import (
	"fmt"
	"strings"

	"enterprise-advisors/internal/model"
)

const sectionSeparator = "----------------------------"

// Contextual follow-up hints, appended when exactly one advisor answered.
var followUpHints = map[model.Intent]string{
	model.IntentGeneral: "I can route your questions to Finance, HR, Orders, or Reports advisors.",
	model.IntentFinance: "You can also ask about budgets, expenses, or revenue forecasts.",
	model.IntentHR:      "Feel free to ask about benefits, leaves, or company policies.",
	model.IntentOrders:  "You can inquire about inventory levels or return rates as well.",
	model.IntentReports: "You can request analytics dashboards or workbook exports.",
}

// assembleMessage merges advisor results into one user-facing message.
// Artifact-bearing results are special-cased into a download notice rather
// than getting the generic advisor formatting.
func assembleMessage(results []model.AdvisorResult) string {
	if len(results) == 0 {
		return "No advisor was able to answer this query."
	}

	if len(results) == 1 {
		res := results[0]
		msg := "Here's what I found: " + resultBody(res)
		if hint, ok := followUpHints[res.Intent]; ok {
			msg += "\n\nHint: " + hint
		}
		return msg
	}

	var b strings.Builder
	b.WriteString("Multiple advisors have insights to share:\n\n")
	for i, res := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(res.Advisor)
		b.WriteString("\n")
		b.WriteString(sectionSeparator)
		b.WriteString("\n")
		b.WriteString(resultBody(res))
	}
	return b.String()
}

func resultBody(res model.AdvisorResult) string {
	if res.Artifact == nil {
		return res.Text
	}

	switch res.Artifact.Status {
	case model.StatusReady:
		return fmt.Sprintf("Your report is ready for download: %s", res.Artifact.Filename)
	case model.StatusPending:
		return fmt.Sprintf("%s Check artifact %s for the download once it completes.", res.Text, res.Artifact.ID)
	default:
		return res.Text
	}
}
