package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"scaffolder/internal/config"
)

// OpenAI implements Client using the official openai-go SDK (chat
// completions). Any OpenAI-compatible endpoint works via base_url.
type OpenAI struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAI creates an OpenAI client from the resolved configuration
func NewOpenAI(cfg *config.LLMConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAI{model: cfg.Model, opts: opts}, nil
}

func (o *OpenAI) Name() string {
	return fmt.Sprintf("OpenAI (%s)", o.model)
}

// Complete sends one prompt and returns the reply text
func (o *OpenAI) Complete(ctx context.Context, req Request) (string, error) {
	client := openai.NewClient(o.opts...)

	var msgs []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		msgs = append(msgs, openai.SystemMessage(req.System))
	}
	msgs = append(msgs, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.model),
		Messages: msgs,
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.JSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
