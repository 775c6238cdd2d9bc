package router

import (
	"context"
	"fmt"
	"strings"

	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/genai"
)

// Route decides which advisors handle the query. The remote classifier, when
// enabled and healthy, always picks exactly one advisor; the keyword fallback
// may fan out to several.
func (r *IntentRouter) Route(ctx context.Context, query string) Decision {
	if r.mode != ModeOff && r.llm != nil {
		if intent, ok := r.classify(ctx, query); ok {
			r.l.Infof(ctx, "%s: classifier routed to %s", LogPrefixRoute, intent)
			return Decision{Intents: []model.Intent{intent}, Source: SourceClassifier}
		}
		if r.mode == ModeForce {
			r.l.Warnf(ctx, "%s: classifier returned no intent but mode is force, continuing with keyword fallback", LogPrefixRoute)
		}
	}

	intents := classifyKeywords(query)
	r.l.Infof(ctx, "%s: keywords routed to %v", LogPrefixRoute, intents)
	return Decision{Intents: intents, Source: SourceKeywords}
}

// classify asks the remote model for a one-word advisor label. Any transport
// error, empty answer, or label outside the closed set counts as failure and
// is reported via the bool, never as an error.
func (r *IntentRouter) classify(ctx context.Context, query string) (model.Intent, bool) {
	resp, err := r.llm.Chat(ctx, &genai.Request{
		Message:     fmt.Sprintf(promptClassify, query),
		Temperature: classifyTemperature,
		MaxTokens:   classifyMaxTokens,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: classification call failed: %v", LogPrefixClassify, err)
		return "", false
	}

	label, _, _ := strings.Cut(resp.Text, "\n")
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		r.l.Warnf(ctx, "%s: empty classification response", LogPrefixClassify)
		return "", false
	}

	intent, ok := model.ParseIntent(label)
	if !ok {
		r.l.Warnf(ctx, "%s: invalid intent from classifier: %q", LogPrefixClassify, label)
		return "", false
	}
	return intent, true
}

// classifyKeywords matches the lower-cased query against each advisor's
// keyword set. General keywords win outright. Otherwise every matching
// advisor is returned, in the fixed finance, hr, orders, reports order.
// With no match at all the advisors are ranked by total keyword occurrence
// count; a zero maximum falls back to general.
func classifyKeywords(query string) []model.Intent {
	q := strings.ToLower(query)

	if keywordMatch(q, model.IntentGeneral) {
		return []model.Intent{model.IntentGeneral}
	}

	var intents []model.Intent
	for _, intent := range model.Intents[1:] {
		if keywordMatch(q, intent) {
			intents = append(intents, intent)
		}
	}
	if len(intents) > 0 {
		return intents
	}

	best, bestCount := model.IntentGeneral, 0
	for _, intent := range model.Intents[1:] {
		count := 0
		for _, kw := range advisorKeywords[intent] {
			count += strings.Count(q, kw)
		}
		if count > bestCount {
			best, bestCount = intent, count
		}
	}
	return []model.Intent{best}
}

func keywordMatch(q string, intent model.Intent) bool {
	for _, kw := range advisorKeywords[intent] {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
