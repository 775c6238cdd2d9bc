package chat

import (
	"context"

	"enterprise-advisors/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Process routes the query to the matching advisors, persists any
	// artifacts they produce, and assembles the final message.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)

	// Artifact reports an artifact's status, driving one finalize step when
	// it is still pending and issuing a download handle once ready.
	Artifact(ctx context.Context, sc model.Scope, id string) (ArtifactOutput, error)
}
