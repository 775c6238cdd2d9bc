package model

import "time"

// ArtifactKind classifies the binary an advisor produced.
type ArtifactKind string

const (
	KindPDF         ArtifactKind = "pdf"
	KindImage       ArtifactKind = "image"
	KindSpreadsheet ArtifactKind = "spreadsheet"
	KindCSV         ArtifactKind = "csv"
	KindText        ArtifactKind = "text"
)

// ArtifactStatus is the lifecycle state of an artifact.
// Ready and failed are terminal: status never reverts to pending.
type ArtifactStatus string

const (
	StatusPending ArtifactStatus = "pending"
	StatusReady   ArtifactStatus = "ready"
	StatusFailed  ArtifactStatus = "failed"
)

// Artifact is a binary or large-text result tracked through the
// pending/ready lifecycle. Only the artifact manager mutates it.
type Artifact struct {
	ID          string         `json:"id"`
	Kind        ArtifactKind   `json:"kind"`
	Advisor     string         `json:"advisor"`
	Status      ArtifactStatus `json:"status"`
	Filename    string         `json:"filename,omitempty"`
	ContentType string         `json:"content_type,omitempty"`
	Size        int64          `json:"size,omitempty"`
	Created     time.Time      `json:"created"`
	StorageKey  string         `json:"storage_key,omitempty"`

	// Job and Attempts drive the finalize state machine for pending exports.
	Job           *ExportJob `json:"job,omitempty"`
	Attempts      int        `json:"attempts,omitempty"`
	FailureReason string     `json:"failure_reason,omitempty"`
}

// DownloadHandle is a time-limited reference to a stored binary.
// It is recomputed on each issuance, never persisted.
type DownloadHandle struct {
	ArtifactID string
	URL        string
	Filename   string
	ExpiresIn  time.Duration
}
