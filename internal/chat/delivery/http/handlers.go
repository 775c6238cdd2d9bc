package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"enterprise-advisors/internal/chat"
	"enterprise-advisors/internal/model"
	pkgResponse "enterprise-advisors/pkg/response"
)

// ProcessChat handles one chat turn
// @Summary Process a chat message
// @Description Routes the prompt to the matching advisors and returns one assembled answer
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body processReq true "Chat request"
// @Success 200 {object} response.Resp "Assembled advisor answer"
// @Router /api/v1/chat [post]
func (h handler) ProcessChat(c *gin.Context) {
	ctx := c.Request.Context()

	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.chat.delivery.http.ProcessChat: invalid body: %v", err)
		pkgResponse.Error(c, errWrongBody, nil)
		return
	}
	if err := req.validate(); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	sc := scopeFromRequest(req, c.ClientIP())
	out, err := h.uc.Process(ctx, sc, req.toInput())
	if err != nil {
		if errors.Is(err, chat.ErrEmptyPrompt) {
			pkgResponse.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "internal.chat.delivery.http.ProcessChat: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, newProcessResp(out))
}

// GetArtifact reports artifact status
// @Summary Get artifact status
// @Description Returns artifact state; a pending export is advanced one download attempt, a ready one gets a fresh download URL
// @Tags Chat
// @Produce json
// @Param id path string true "Artifact ID"
// @Success 200 {object} response.Resp "Artifact status"
// @Router /api/v1/artifacts/{id} [get]
func (h handler) GetArtifact(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	out, err := h.uc.Artifact(ctx, model.Scope{ClientIP: c.ClientIP()}, id)
	if err != nil {
		if errors.Is(err, chat.ErrArtifactNotFound) {
			pkgResponse.NotFound(c, "artifact not found")
			return
		}
		h.l.Errorf(ctx, "internal.chat.delivery.http.GetArtifact: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, newArtifactResp(out))
}

// DownloadRaw serves a locally signed artifact download. Only wired when the
// in-memory store is active; object stores presign their own URLs.
func (h handler) DownloadRaw(c *gin.Context) {
	ctx := c.Request.Context()
	if h.raw == nil {
		pkgResponse.NotFound(c, "raw downloads not available")
		return
	}

	key := c.Query("key")
	filename := c.Query("filename")
	signature := c.Query("signature")
	expires, err := strconv.ParseInt(c.Query("expires"), 10, 64)
	if err != nil || key == "" || signature == "" {
		pkgResponse.Unauthorized(c)
		return
	}

	if !h.raw.Verify(key, expires, signature) {
		h.l.Warnf(ctx, "internal.chat.delivery.http.DownloadRaw: rejected signature for %s", key)
		pkgResponse.Unauthorized(c)
		return
	}

	data, contentType, err := h.raw.Get(ctx, key)
	if err != nil {
		pkgResponse.NotFound(c, "artifact not found")
		return
	}

	if filename != "" {
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	}
	c.Data(http.StatusOK, contentType, data)
}
