package artifact

import (
	"context"
	"time"

	"enterprise-advisors/internal/model"
)

// Manager owns the artifact lifecycle: persistence, pending exports, the
// finalize state machine, and download handle issuance. Adapters never touch
// storage; they hand the manager bytes or a pending marker.
type Manager interface {
	// Store persists bytes as a ready artifact.
	Store(ctx context.Context, data []byte, kind model.ArtifactKind, advisor string) (model.Artifact, error)

	// StorePending registers an asynchronous export as a pending artifact.
	StorePending(ctx context.Context, pending model.PendingExport, advisor string) (model.Artifact, error)

	// Finalize drives a pending artifact one step: a single download attempt
	// against the backing job. Ready and failed artifacts are returned
	// unchanged; a pending artifact whose attempt budget is spent becomes
	// failed.
	Finalize(ctx context.Context, id string) (model.Artifact, error)

	// Presign issues a time-limited download handle for a ready artifact.
	Presign(ctx context.Context, id string) (model.DownloadHandle, error)

	// Get returns artifact metadata without touching the payload.
	Get(ctx context.Context, id string) (model.Artifact, error)
}

// Store is a key/blob store with presigned read access. Writes are
// idempotent by key.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, string, error)
	Presign(ctx context.Context, key, filename string, ttl time.Duration) (string, error)
}

// Completer finishes one advisor's asynchronous export jobs, returning the
// binary and its content type once the remote job is done.
type Completer interface {
	Fetch(ctx context.Context, job model.ExportJob) (data []byte, contentType string, err error)
}
