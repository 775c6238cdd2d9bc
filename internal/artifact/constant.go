package artifact

import (
	"time"

	"enterprise-advisors/internal/model"
)

// Defaults for the manager configuration.
const (
	DefaultPresignTTL          = 15 * time.Minute
	DefaultMaxDownloadAttempts = 3

	metaCacheSize = 256
	metaCacheTTL  = time.Hour

	metaContentType = "application/json"
)

// kindInfo maps an artifact kind to its file extension and content type.
type kindInfo struct {
	ext         string
	contentType string
}

var kinds = map[model.ArtifactKind]kindInfo{
	model.KindPDF:         {"pdf", "application/pdf"},
	model.KindImage:       {"png", "image/png"},
	model.KindSpreadsheet: {"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	model.KindCSV:         {"csv", "text/csv"},
	model.KindText:        {"txt", "text/plain"},
}

func kindOf(kind model.ArtifactKind) kindInfo {
	if info, ok := kinds[kind]; ok {
		return info
	}
	return kindInfo{"bin", "application/octet-stream"}
}
