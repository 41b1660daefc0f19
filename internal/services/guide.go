package services

import (
	"context"
	"fmt"
	"path/filepath"

	"scaffolder/internal/helpers"
	"scaffolder/internal/llm"
	"scaffolder/internal/models"
	"scaffolder/internal/seeds"
)

// GuideService expands one idea into a scaffolded project guide on disk
type GuideService struct {
	client    llm.Client
	store     *seeds.Store
	slugs     *slugger
	maxTokens int
}

// GuideFile describes a guide written by the service
type GuideFile struct {
	Path   string
	Slug   string
	Title  string
	Digest string
}

// NewGuideService creates a new guide service. Slug-collision tracking is
// scoped to the service instance, so use one instance per run.
func NewGuideService(client llm.Client, store *seeds.Store, maxTokens int) *GuideService {
	return &GuideService{
		client:    client,
		store:     store,
		slugs:     newSlugger(),
		maxTokens: maxTokens,
	}
}

// GenerateDetailed writes a guide for a structured idea record into
// outputDir. The model reply is written verbatim.
func (s *GuideService) GenerateDetailed(ctx context.Context, idea models.Idea, outputDir string) (GuideFile, error) {
	if err := idea.Validate(); err != nil {
		return GuideFile{}, err
	}
	return s.generate(ctx, detailedGuideInstruction, idea.PromptBlock(), idea.Title, outputDir)
}

// GenerateFromText writes a guide for a free-text idea into outputDir; the
// file name derives from the text before the first colon.
func (s *GuideService) GenerateFromText(ctx context.Context, idea string, outputDir string) (GuideFile, error) {
	return s.generate(ctx, freeTextGuideInstruction, idea, TitleFromText(idea), outputDir)
}

func (s *GuideService) generate(ctx context.Context, instruction, ideaBlock, title, outputDir string) (GuideFile, error) {
	listing, err := s.store.ProjectListing()
	if err != nil {
		return GuideFile{}, err
	}
	playlist, err := s.store.Playlist()
	if err != nil {
		return GuideFile{}, err
	}
	principles, err := s.store.ScaffoldingPrinciples()
	if err != nil {
		return GuideFile{}, err
	}

	prompt := buildGuidePrompt(instruction, listing, playlist, principles, ideaBlock)

	raw, err := s.client.Complete(ctx, llm.Request{
		Prompt:    prompt,
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		return GuideFile{}, fmt.Errorf("guide generation for %q: %w", title, err)
	}

	slug, collided := s.slugs.Claim(title)
	if collided {
		helpers.PrintWarning("Idea %q collides with an earlier file name; writing %s.md instead", title, slug)
	}

	path := filepath.Join(outputDir, slug+".md")
	if err := helpers.WriteFile(path, raw); err != nil {
		return GuideFile{}, err
	}

	guideTitle := extractGuideTitle(raw)
	if guideTitle == "" {
		guideTitle = title
	}

	return GuideFile{
		Path:   path,
		Slug:   slug,
		Title:  guideTitle,
		Digest: extractGuideDigest(raw),
	}, nil
}

const detailedGuideInstruction = `Analyze the project files of an online scaffolded React project provided below (in markdown format with syntax highlighting) and the list of the titles of the videos in its playlist, to get inspiration and create a detailed scaffolded project guide (in markdown format) for the idea provided below, for beginner programming students learning React by building projects themselves, breaking the project into phases and steps with clear instructions (without hand-holding or spoon-feeding) along with the necessary hints or code snippets/examples and essential resources.`

const freeTextGuideInstruction = `Analyze the project files of an online scaffolded React project provided below (in markdown format with syntax highlighting) and the list of the titles of the videos in its playlist, to create a detailed scaffolded project guide (in markdown format) with similar complexity and depth, for students learning React by building projects themselves, breaking the project into phases and steps with clear instructions (without hand-holding or spoon-feeding) along with only the necessary hints and code snippets/examples, based on the idea provided below.`

func buildGuidePrompt(instruction, listing, playlist, principles, ideaBlock string) string {
	return fmt.Sprintf(`%s

## The content of the online project files with relative path:
%s

## The playlist of the online scaffolded project for learning React:
%s

## Please create a detailed scaffolded project guide, for programming students learning React by building projects themselves, for the idea:
%s

## To scaffold a React project for your students effectively, follow these steps:
%s

Provide just the detailed scaffolded project guide (in markdown format) as the output, without any other comments or explanations.`,
		instruction, listing, playlist, ideaBlock, principles)
}
