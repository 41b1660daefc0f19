package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedResponse marks a model reply that is not the JSON envelope we
// asked for, or that lacks the "ideas" key.
var ErrMalformedResponse = errors.New("malformed model response")

// Idea represents one structured project idea. The JSON keys match the seed
// corpus and the shape the model is asked to produce.
type Idea struct {
	Title          string   `json:"idea"`
	ShortDesc      string   `json:"short description"`
	DetailedDesc   string   `json:"detailed description"`
	Categories     []string `json:"categories"`
	Complexity     string   `json:"complexity"`
	EstimatedHours float64  `json:"estimated time in hours"`
	Concepts       []string `json:"react concepts"`
}

// Validate checks the fields needed downstream
func (i Idea) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return fmt.Errorf("%w: idea has no title", ErrMalformedResponse)
	}
	return nil
}

// PromptBlock renders the descriptive block embedded in guide prompts
func (i Idea) PromptBlock() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Idea: %s - %s\n", i.Title, i.ShortDesc))
	b.WriteString(fmt.Sprintf("Description: %s\n", i.DetailedDesc))
	b.WriteString(fmt.Sprintf("Categories: %s\n", strings.Join(i.Categories, ", ")))
	b.WriteString(fmt.Sprintf("Complexity of the project (estimated time in hours): %s (%s hours)\n",
		i.Complexity, strconv.FormatFloat(i.EstimatedHours, 'f', -1, 64)))
	b.WriteString(fmt.Sprintf("React concepts used: %s", strings.Join(i.Concepts, ", ")))
	return b.String()
}

type ideaStringsEnvelope struct {
	Ideas *[]string `json:"ideas"`
}

type detailedIdeasEnvelope struct {
	Ideas *[]Idea `json:"ideas"`
}

// ParseIdeaStrings parses a model reply (or seed file) of the shape
// {"ideas": ["...", ...]}. Order is preserved. A reply that is not JSON or
// has no "ideas" key fails with ErrMalformedResponse.
func ParseIdeaStrings(raw string) ([]string, error) {
	var envelope ideaStringsEnvelope
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if envelope.Ideas == nil {
		return nil, fmt.Errorf("%w: reply has no \"ideas\" key", ErrMalformedResponse)
	}

	ideas := make([]string, 0, len(*envelope.Ideas))
	for n, idea := range *envelope.Ideas {
		idea = strings.TrimSpace(idea)
		if idea == "" {
			return nil, fmt.Errorf("%w: idea %d is empty", ErrMalformedResponse, n+1)
		}
		ideas = append(ideas, idea)
	}
	return ideas, nil
}

// ParseDetailedIdeas parses {"ideas": [{...}, ...]} with structured records
func ParseDetailedIdeas(raw string) ([]Idea, error) {
	var envelope detailedIdeasEnvelope
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if envelope.Ideas == nil {
		return nil, fmt.Errorf("%w: reply has no \"ideas\" key", ErrMalformedResponse)
	}

	for n, idea := range *envelope.Ideas {
		if err := idea.Validate(); err != nil {
			return nil, fmt.Errorf("idea %d: %w", n+1, err)
		}
	}
	return *envelope.Ideas, nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models add around
// JSON replies even when told not to.
func stripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
