package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scaffolder/internal/config"
)

// ErrEmptyCompletion is returned when the service answers successfully but
// produces no text.
var ErrEmptyCompletion = errors.New("model returned an empty completion")

// Request is one completion call. JSON hints that the reply must be a JSON
// document; providers translate the hint into their own response-format knob.
type Request struct {
	System    string
	Prompt    string
	JSON      bool
	MaxTokens int
}

// Client abstracts the completion service so providers can be swapped or
// mocked.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// New builds the configured provider client wrapped with the retry policy.
func New(cfg *config.LLMConfig) (Client, error) {
	var (
		client Client
		err    error
	)
	switch cfg.Provider {
	case "gemini":
		client = NewGemini(cfg)
	case "openai":
		client, err = NewOpenAI(cfg)
	default:
		err = fmt.Errorf("llm provider %q not supported", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return WithRetry(client, cfg.RetryCount, time.Duration(cfg.RetryDelaySeconds)*time.Second), nil
}
