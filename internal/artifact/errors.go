package artifact

import "errors"

var (
	// ErrNotFound means no artifact or blob exists under the given id/key.
	ErrNotFound = errors.New("artifact: not found")

	// ErrNotReady means the artifact is still pending or has failed, so no
	// download handle can be issued.
	ErrNotReady = errors.New("artifact: not ready")

	// ErrNoCompleter means a pending artifact has no registered way to
	// finish its export job.
	ErrNoCompleter = errors.New("artifact: no completer registered for advisor")
)

// FailureRetryExhausted is recorded when a pending export spends its whole
// download attempt budget.
const FailureRetryExhausted = "retry-exhausted"
