package http

import (
	"github.com/gin-gonic/gin"

	"enterprise-advisors/internal/artifact"
	"enterprise-advisors/internal/chat"
	pkgLog "enterprise-advisors/pkg/log"
)

// Handler exposes the chat domain over HTTP.
type Handler interface {
	ProcessChat(c *gin.Context)
	GetArtifact(c *gin.Context)
	DownloadRaw(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase

	// raw serves locally signed downloads; nil when an object store
	// presigns its own URLs.
	raw *artifact.MemoryStore
}

// New creates a new chat HTTP handler.
func New(l pkgLog.Logger, uc chat.UseCase, raw *artifact.MemoryStore) Handler {
	return handler{
		l:   l,
		uc:  uc,
		raw: raw,
	}
}
