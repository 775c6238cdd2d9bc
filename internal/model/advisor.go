package model

// ResultSource tells where an advisor answer came from.
type ResultSource string

const (
	SourceMock  ResultSource = "mock"
	SourceAPI   ResultSource = "api"
	SourceError ResultSource = "error"
)

// BinaryPayload carries raw bytes an adapter produced synchronously.
// The artifact manager decides where they are persisted; adapters never
// touch storage themselves.
type BinaryPayload struct {
	Data []byte
	Kind ArtifactKind
}

// PendingExport marks an asynchronous export an adapter initiated.
// The job reference is what the artifact manager needs to finish it later.
type PendingExport struct {
	Kind ArtifactKind
	Job  ExportJob
}

// ExportJob identifies a remote export job that produces a binary once complete.
type ExportJob struct {
	ExportID   string `json:"export_id"`
	WorkbookID string `json:"workbook_id"`
	Format     string `json:"format"`
}

// AdvisorResult is the normalized outcome of one adapter call.
// Created by an adapter, consumed once by the response assembler.
type AdvisorResult struct {
	Advisor string
	Intent  Intent
	Source  ResultSource
	Text    string

	// Payload holds bytes ready to persist; Pending marks an export in flight.
	// At most one of the two is set.
	Payload *BinaryPayload
	Pending *PendingExport

	// Artifact is populated by the chat use case after the artifact manager
	// has persisted a payload or registered a pending export.
	Artifact *Artifact
}
