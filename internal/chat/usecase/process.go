package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"enterprise-advisors/internal/chat"
	"enterprise-advisors/internal/model"
)

// Process is the main chat pipeline: route, call the matched advisors in
// order, persist whatever binaries or pending exports they produced, and
// assemble one user-facing message.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return chat.ProcessOutput{}, chat.ErrEmptyPrompt
	}

	sessionID := sc.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	decision := uc.router.Route(ctx, prompt)

	results := make([]model.AdvisorResult, 0, len(decision.Intents))
	for _, intent := range decision.Intents {
		adapter, ok := uc.advisors[intent]
		if !ok {
			uc.l.Warnf(ctx, "internal.chat.Process: no adapter registered for intent %s", intent)
			continue
		}
		res := adapter.Handle(ctx, prompt)
		uc.persistArtifact(ctx, &res)
		results = append(results, res)
	}

	out := chat.ProcessOutput{
		SessionID:     sessionID,
		RoutedIntents: decision.Intents,
		RoutingSource: string(decision.Source),
		Message:       assembleMessage(results),
	}
	for _, res := range results {
		if res.Artifact == nil {
			continue
		}
		out.Artifacts = append(out.Artifacts, chat.ArtifactRef{
			ID:       res.Artifact.ID,
			Kind:     res.Artifact.Kind,
			Status:   res.Artifact.Status,
			Advisor:  res.Artifact.Advisor,
			Filename: res.Artifact.Filename,
		})
		if res.Artifact.Status == model.StatusPending {
			out.ArtifactsPending = true
		}
	}

	return out, nil
}

// persistArtifact hands the adapter's binary or pending marker to the
// artifact manager. Storage failures never fake a ready artifact; they are
// reported as an explicit error text on the result.
func (uc *implUseCase) persistArtifact(ctx context.Context, res *model.AdvisorResult) {
	switch {
	case res.Payload != nil:
		a, err := uc.artifacts.Store(ctx, res.Payload.Data, res.Payload.Kind, res.Advisor)
		if err != nil {
			uc.l.Errorf(ctx, "internal.chat.Process: artifact store failed for %s: %v", res.Advisor, err)
			res.Source = model.SourceError
			res.Text = "The report was generated but could not be stored. Please try again later."
			res.Payload = nil
			return
		}
		res.Artifact = &a
		res.Payload = nil

	case res.Pending != nil:
		a, err := uc.artifacts.StorePending(ctx, *res.Pending, res.Advisor)
		if err != nil {
			uc.l.Errorf(ctx, "internal.chat.Process: pending registration failed for %s: %v", res.Advisor, err)
			res.Source = model.SourceError
			res.Text = "The export was started but could not be tracked. Please try again later."
			res.Pending = nil
			return
		}
		res.Artifact = &a
		res.Pending = nil

	case len(res.Text) > uc.cfg.MaxInlineBytes:
		a, err := uc.artifacts.Store(ctx, []byte(res.Text), model.KindText, res.Advisor)
		if err != nil {
			uc.l.Errorf(ctx, "internal.chat.Process: oversize text store failed for %s: %v", res.Advisor, err)
			return
		}
		res.Artifact = &a
		res.Text = fmt.Sprintf("The full response is %d bytes and has been stored as a downloadable text file.", len(res.Text))
	}
}
