package services

import (
	"context"
	"fmt"
	"path/filepath"

	"scaffolder/internal/helpers"
	"scaffolder/internal/llm"
)

// ImprovedDirName is the subdirectory of the output dir that holds reviewed
// guides. Originals are never deleted or overwritten by a review.
const ImprovedDirName = "improved"

// ReviewService asks the model to critique and rewrite a generated guide
type ReviewService struct {
	client    llm.Client
	maxTokens int
}

// NewReviewService creates a new review service
func NewReviewService(client llm.Client, maxTokens int) *ReviewService {
	return &ReviewService{client: client, maxTokens: maxTokens}
}

// Review reads {outputDir}/{fileName}, asks the model for a rewritten
// version, and writes the reply verbatim to {outputDir}/improved/{fileName},
// creating the subdirectory when missing. Returns the written path.
func (s *ReviewService) Review(ctx context.Context, fileName, outputDir string) (string, error) {
	guide, err := helpers.ReadFile(filepath.Join(outputDir, fileName))
	if err != nil {
		return "", fmt.Errorf("guide %s: %w", fileName, err)
	}

	raw, err := s.client.Complete(ctx, llm.Request{
		Prompt:    buildReviewPrompt(guide),
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("guide review for %s: %w", fileName, err)
	}

	improvedDir := filepath.Join(outputDir, ImprovedDirName)
	if err := helpers.EnsureDir(improvedDir); err != nil {
		return "", err
	}

	path := filepath.Join(improvedDir, fileName)
	if err := helpers.WriteFile(path, raw); err != nil {
		return "", err
	}
	return path, nil
}

func buildReviewPrompt(guide string) string {
	return fmt.Sprintf(`Analyze the scaffolded project guide (markdown format) given below, targeted at students learning React by building projects, and modify it to fill the gaps you find in order to improve the student's experience and make learning effective. Feel free to change the order, add or remove sections, phases or code snippets, etc, without hand-holding or spoon-feeding.

The scaffolded project guide:
%s

No need to provide any other comments or explanations, just the scaffolded project guide.`, guide)
}
