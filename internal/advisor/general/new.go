package general

import (
	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/genai"
	"enterprise-advisors/pkg/log"
	"enterprise-advisors/pkg/ords"
)

// General handles everything the specialized advisors don't: data questions
// through a natural-language-to-SQL endpoint, open questions through the
// text-generation service.
type General struct {
	nl2sql *ords.Client
	llm    genai.IGenAI
	opts   advisor.Options
	l      log.Logger
}

var _ advisor.Advisor = (*General)(nil)

// New creates the general adapter. Both clients may be nil; the adapter
// degrades to canned responses when neither can answer.
func New(nl2sql *ords.Client, llm genai.IGenAI, opts advisor.Options, l log.Logger) *General {
	return &General{
		nl2sql: nl2sql,
		llm:    llm,
		opts:   opts.Normalize(),
		l:      l,
	}
}

func (g *General) Name() string { return "General Agent" }

func (g *General) Intent() model.Intent { return model.IntentGeneral }
