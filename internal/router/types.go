package router

import "enterprise-advisors/internal/model"

// Mode controls how the remote classifier participates in routing.
type Mode string

const (
	// ModeOff never calls the remote classifier.
	ModeOff Mode = "off"
	// ModeAuto tries the remote classifier and falls back to keywords.
	ModeAuto Mode = "auto"
	// ModeForce expects the remote classifier to decide; an invalid or failed
	// classification is logged as a warning before falling back to keywords.
	ModeForce Mode = "force"
)

// ParseMode normalizes a configured mode string, defaulting to auto.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeOff, ModeForce:
		return Mode(s)
	default:
		return ModeAuto
	}
}

// DecisionSource records which classifier produced the routing decision.
type DecisionSource string

const (
	SourceClassifier DecisionSource = "classifier"
	SourceKeywords   DecisionSource = "keywords"
)

// Decision is the outcome of routing one query. The classifier path always
// yields exactly one intent; the keyword path may fan out to several.
type Decision struct {
	Intents []model.Intent
	Source  DecisionSource
}
