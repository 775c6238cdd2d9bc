package usecase

import (
	"context"
	"errors"
	"fmt"

	"enterprise-advisors/internal/artifact"
	"enterprise-advisors/internal/chat"
	"enterprise-advisors/internal/model"
)

// Artifact reports status for one artifact. A pending artifact gets exactly
// one finalize step per call, so callers poll by repeating the request; a
// ready one gets a fresh presigned handle.
func (uc *implUseCase) Artifact(ctx context.Context, sc model.Scope, id string) (chat.ArtifactOutput, error) {
	a, err := uc.artifacts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, artifact.ErrNotFound) {
			return chat.ArtifactOutput{}, chat.ErrArtifactNotFound
		}
		return chat.ArtifactOutput{}, fmt.Errorf("chat: artifact lookup failed: %w", err)
	}

	if a.Status == model.StatusPending {
		a, err = uc.artifacts.Finalize(ctx, id)
		if err != nil {
			return chat.ArtifactOutput{}, fmt.Errorf("chat: artifact finalize failed: %w", err)
		}
	}

	out := chat.ArtifactOutput{Artifact: a}
	if a.Status == model.StatusReady {
		handle, err := uc.artifacts.Presign(ctx, id)
		if err != nil {
			return chat.ArtifactOutput{}, fmt.Errorf("chat: presign failed: %w", err)
		}
		out.Handle = &handle
	}
	return out, nil
}
