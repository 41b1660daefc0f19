package services

import (
	"context"
	"encoding/json"
	"fmt"

	"scaffolder/internal/llm"
	"scaffolder/internal/models"
	"scaffolder/internal/seeds"
)

// IdeaService generates batches of new project ideas from the seed corpus
type IdeaService struct {
	client    llm.Client
	store     *seeds.Store
	log       *seeds.ResponseLog
	maxTokens int
}

// NewIdeaService creates a new idea service
func NewIdeaService(client llm.Client, store *seeds.Store, log *seeds.ResponseLog, maxTokens int) *IdeaService {
	return &IdeaService{
		client:    client,
		store:     store,
		log:       log,
		maxTokens: maxTokens,
	}
}

// Generate asks the model for count new ideas distinct from the example
// corpus and, when compareWithLog is set, from previously logged responses.
// When saveToLog is set, the parsed ideas are appended to the response log;
// a malformed reply never touches the log.
func (s *IdeaService) Generate(ctx context.Context, count int, compareWithLog, saveToLog bool) ([]string, error) {
	examples, err := s.store.ExampleIdeas()
	if err != nil {
		return nil, err
	}

	var previous string
	if compareWithLog {
		previous, err = s.log.Text()
		if err != nil {
			return nil, err
		}
	}

	prompt, err := buildIdeaPrompt(examples, count, compareWithLog, previous)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Complete(ctx, llm.Request{
		Prompt:    prompt,
		JSON:      true,
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("idea generation: %w", err)
	}

	ideas, err := models.ParseIdeaStrings(raw)
	if err != nil {
		return nil, err
	}

	if saveToLog {
		if err := s.log.Append(ideas); err != nil {
			return nil, err
		}
	}
	return ideas, nil
}

func buildIdeaPrompt(examples []string, count int, compareWithLog bool, previous string) (string, error) {
	exampleJSON, err := json.Marshal(examples)
	if err != nil {
		return "", fmt.Errorf("failed to marshal example ideas: %w", err)
	}

	comparison := ""
	if compareWithLog {
		comparison = "and previous responses (lines from the file) "
	}

	prompt := fmt.Sprintf(`Analyze the array, containing %d ideas for learning React by building projects, %sprovided below and generate another such array with %d different idea(s).

The array is as follows:
%s

Make sure not to repeat any of the ideas from the original array, or any other ideas that are too similar to them. Give the output in the following format:
{
"ideas": [] // Array of %d idea(s)
}
`, len(examples), comparison, count, exampleJSON, count)

	if compareWithLog {
		prompt += fmt.Sprintf(`
Make sure ideas are not copied (verbatim) from previous responses as well. The previous responses are as follows:
%s
`, previous)
	}
	return prompt, nil
}
