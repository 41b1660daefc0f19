package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"scaffolder/internal/config"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Gemini calls the Generative Language API generateContent endpoint.
type Gemini struct {
	apiKey string
	model  string
	base   string
	client *http.Client
}

// NewGemini creates a Gemini client from the resolved configuration
func NewGemini(cfg *config.LLMConfig) *Gemini {
	base := cfg.BaseURL
	if base == "" {
		base = defaultGeminiBaseURL
	}
	return &Gemini{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

func (g *Gemini) Name() string {
	return fmt.Sprintf("Gemini (%s)", g.model)
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
	MaxOutputTokens  int    `json:"maxOutputTokens,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

// Complete sends one prompt and returns the reply text
func (g *Gemini) Complete(ctx context.Context, req Request) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}},
		},
	}
	if req.System != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}

	genCfg := &geminiGenerationConfig{MaxOutputTokens: req.MaxTokens}
	if req.JSON {
		genCfg.ResponseMIMEType = "application/json"
	}
	if genCfg.ResponseMIMEType != "" || genCfg.MaxOutputTokens > 0 {
		payload.GenerationConfig = genCfg
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.base, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var apiResponse struct {
		Candidates []struct {
			Content struct {
				Parts []geminiPart `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", fmt.Errorf("failed to decode API response: %w", err)
	}

	if len(apiResponse.Candidates) == 0 {
		return "", ErrEmptyCompletion
	}

	var text strings.Builder
	for _, part := range apiResponse.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", ErrEmptyCompletion
	}
	return text.String(), nil
}
