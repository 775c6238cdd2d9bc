package usecase

import (
	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/artifact"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/internal/router"
	pkgLog "enterprise-advisors/pkg/log"
)

// Config tunes the chat use case.
type Config struct {
	// MaxInlineBytes is the largest advisor text returned inline; anything
	// bigger is stored as a text artifact instead.
	MaxInlineBytes int
}

const defaultMaxInlineBytes = 18000

type implUseCase struct {
	l         pkgLog.Logger
	router    router.Router
	advisors  map[model.Intent]advisor.Advisor
	artifacts artifact.Manager
	cfg       Config
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	r router.Router,
	advisors []advisor.Advisor,
	artifacts artifact.Manager,
	cfg Config,
) *implUseCase {
	if cfg.MaxInlineBytes <= 0 {
		cfg.MaxInlineBytes = defaultMaxInlineBytes
	}

	byIntent := make(map[model.Intent]advisor.Advisor, len(advisors))
	for _, a := range advisors {
		byIntent[a.Intent()] = a
	}

	return &implUseCase{
		l:         l,
		router:    r,
		advisors:  byIntent,
		artifacts: artifacts,
		cfg:       cfg,
	}
}
