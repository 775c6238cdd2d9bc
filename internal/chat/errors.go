package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyPrompt      = errors.New("prompt is empty")
	ErrArtifactNotFound = errors.New("artifact not found")
)
