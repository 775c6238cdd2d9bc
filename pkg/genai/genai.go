package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type genAIImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func newGenAIImpl(cfg Config) *genAIImpl {
	return &genAIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Chat sends a generation request to the chat completions endpoint.
func (g *genAIImpl) Chat(ctx context.Context, req *Request) (*Response, error) {
	wireReq := &openAIRequest{
		Model:       g.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		wireReq.Messages = append(wireReq.Messages, openAIMessage{Role: "system", Content: req.System})
	}
	wireReq.Messages = append(wireReq.Messages, openAIMessage{Role: "user", Content: req.Message})

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("genai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("genai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("genai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("genai: API error %d: %s", resp.StatusCode, string(raw))
	}

	var wireResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("genai: failed to decode response: %w", err)
	}

	out := &Response{
		Usage: Usage{
			InputTokens:  wireResp.Usage.PromptTokens,
			OutputTokens: wireResp.Usage.CompletionTokens,
			TotalTokens:  wireResp.Usage.TotalTokens,
		},
	}
	if len(wireResp.Choices) > 0 {
		out.Text = wireResp.Choices[0].Message.Content
	}
	return out, nil
}

// Model returns the model being used.
func (g *genAIImpl) Model() string {
	return g.model
}
