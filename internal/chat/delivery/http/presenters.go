package http

import (
	"strings"

	"enterprise-advisors/internal/chat"
	"enterprise-advisors/internal/model"
)

type processReq struct {
	Prompt    string `json:"prompt"`
	SessionID string `json:"session_id"`
}

func (req processReq) validate() error {
	if strings.TrimSpace(req.Prompt) == "" {
		return errWrongBody
	}
	return nil
}

func (req processReq) toInput() chat.ProcessInput {
	return chat.ProcessInput{Prompt: req.Prompt}
}

type processResp struct {
	SessionID        string             `json:"session_id"`
	Intents          []string           `json:"intents"`
	RoutingSource    string             `json:"routing_source"`
	Message          string             `json:"message"`
	Artifacts        []chat.ArtifactRef `json:"artifacts,omitempty"`
	ArtifactsPending bool               `json:"artifacts_pending"`
}

func newProcessResp(out chat.ProcessOutput) processResp {
	intents := make([]string, 0, len(out.RoutedIntents))
	for _, intent := range out.RoutedIntents {
		intents = append(intents, string(intent))
	}

	return processResp{
		SessionID:        out.SessionID,
		Intents:          intents,
		RoutingSource:    out.RoutingSource,
		Message:          out.Message,
		Artifacts:        out.Artifacts,
		ArtifactsPending: out.ArtifactsPending,
	}
}

type artifactResp struct {
	ID               string `json:"id"`
	Kind             string `json:"kind"`
	Status           string `json:"status"`
	Advisor          string `json:"advisor"`
	Filename         string `json:"filename,omitempty"`
	Attempts         int    `json:"attempts,omitempty"`
	FailureReason    string `json:"failure_reason,omitempty"`
	DownloadURL      string `json:"download_url,omitempty"`
	ExpiresInSeconds int64  `json:"expires_in_seconds,omitempty"`
}

func newArtifactResp(out chat.ArtifactOutput) artifactResp {
	resp := artifactResp{
		ID:            out.Artifact.ID,
		Kind:          string(out.Artifact.Kind),
		Status:        string(out.Artifact.Status),
		Advisor:       out.Artifact.Advisor,
		Filename:      out.Artifact.Filename,
		Attempts:      out.Artifact.Attempts,
		FailureReason: out.Artifact.FailureReason,
	}
	if out.Handle != nil {
		resp.DownloadURL = out.Handle.URL
		resp.ExpiresInSeconds = int64(out.Handle.ExpiresIn.Seconds())
	}
	return resp
}

func scopeFromRequest(req processReq, clientIP string) model.Scope {
	return model.Scope{
		SessionID: strings.TrimSpace(req.SessionID),
		ClientIP:  clientIP,
	}
}
