// Package seeds reads the static reference corpus used to ground prompts,
// and manages the append-only response log.
package seeds

import (
	"fmt"

	"scaffolder/internal/config"
	"scaffolder/internal/helpers"
	"scaffolder/internal/models"
)

// Store provides read-only access to the seed corpus
type Store struct {
	cfg config.SeedsConfig
}

// NewStore creates a seed store over the configured paths
func NewStore(cfg config.SeedsConfig) *Store {
	return &Store{cfg: cfg}
}

// ExampleIdeas returns the example-idea corpus, in file order
func (s *Store) ExampleIdeas() ([]string, error) {
	var envelope struct {
		Ideas []string `json:"ideas"`
	}
	if err := helpers.LoadJSON(s.cfg.ExampleIdeas, &envelope); err != nil {
		return nil, fmt.Errorf("example ideas %s: %w", s.cfg.ExampleIdeas, err)
	}
	return envelope.Ideas, nil
}

// DetailedIdeas returns the structured detailed-idea corpus, in file order
func (s *Store) DetailedIdeas() ([]models.Idea, error) {
	raw, err := helpers.ReadFile(s.cfg.DetailedIdeas)
	if err != nil {
		return nil, fmt.Errorf("detailed ideas %s: %w", s.cfg.DetailedIdeas, err)
	}
	ideas, err := models.ParseDetailedIdeas(raw)
	if err != nil {
		return nil, fmt.Errorf("detailed ideas %s: %w", s.cfg.DetailedIdeas, err)
	}
	return ideas, nil
}

// ProjectListing returns the sample project's source listing
func (s *Store) ProjectListing() (string, error) {
	text, err := helpers.ReadFile(s.cfg.ProjectListing)
	if err != nil {
		return "", fmt.Errorf("project listing %s: %w", s.cfg.ProjectListing, err)
	}
	return text, nil
}

// Playlist returns the sample video-playlist transcript
func (s *Store) Playlist() (string, error) {
	text, err := helpers.ReadFile(s.cfg.Playlist)
	if err != nil {
		return "", fmt.Errorf("playlist %s: %w", s.cfg.Playlist, err)
	}
	return text, nil
}

// ScaffoldingPrinciples returns the scaffolding-principles document
func (s *Store) ScaffoldingPrinciples() (string, error) {
	text, err := helpers.ReadFile(s.cfg.ScaffoldingPrinciples)
	if err != nil {
		return "", fmt.Errorf("scaffolding principles %s: %w", s.cfg.ScaffoldingPrinciples, err)
	}
	return text, nil
}
