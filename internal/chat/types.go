package chat

import "enterprise-advisors/internal/model"

// ProcessInput is the input for one chat turn.
type ProcessInput struct {
	Prompt string
}

// ArtifactRef is the caller-visible view of one produced artifact.
type ArtifactRef struct {
	ID       string               `json:"id"`
	Kind     model.ArtifactKind   `json:"kind"`
	Status   model.ArtifactStatus `json:"status"`
	Advisor  string               `json:"advisor"`
	Filename string               `json:"filename,omitempty"`
}

// ProcessOutput is the assembled result of one chat turn.
type ProcessOutput struct {
	SessionID        string
	RoutedIntents    []model.Intent
	RoutingSource    string
	Message          string
	Artifacts        []ArtifactRef
	ArtifactsPending bool
}

// ArtifactOutput is the result of an artifact status/finalize call. Handle
// is only set once the artifact is ready.
type ArtifactOutput struct {
	Artifact model.Artifact
	Handle   *model.DownloadHandle
}
