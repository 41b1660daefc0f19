package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"scaffolder/internal/config"
	"scaffolder/internal/helpers"
	"scaffolder/internal/llm"
	"scaffolder/internal/models"
	"scaffolder/internal/seeds"
)

// Pipeline drives one run: idea phase, expansion phase (one guide per
// idea), review phase. Completion calls are sequential with a fixed delay
// between them to stay under the service rate limit.
type Pipeline struct {
	cfg    *config.Config
	client llm.Client
	ideas  *IdeaService
	guides *GuideService
	review *ReviewService
	delay  time.Duration
}

// NewPipeline wires the services for one run
func NewPipeline(cfg *config.Config, client llm.Client) *Pipeline {
	store := seeds.NewStore(cfg.Seeds)
	log := seeds.NewResponseLog(cfg.Seeds.ResponseLog)
	maxTokens := cfg.LLM.MaxTokens

	return &Pipeline{
		cfg:    cfg,
		client: client,
		ideas:  NewIdeaService(client, store, log, maxTokens),
		guides: NewGuideService(client, store, maxTokens),
		review: NewReviewService(client, maxTokens),
		delay:  time.Duration(cfg.Pipeline.CallDelaySeconds) * time.Second,
	}
}

// Ideas exposes the idea service for idea-only invocations
func (p *Pipeline) Ideas() *IdeaService { return p.ideas }

type guideJob struct {
	label    string
	generate func(ctx context.Context) (GuideFile, error)
}

// RunRandom generates a fresh idea batch and expands every idea into a
// guide, then reviews the written guides.
func (p *Pipeline) RunRandom(ctx context.Context) (*models.RunManifest, error) {
	count := p.cfg.Pipeline.IdeaCount
	helpers.PrintInfo("Generating %d ideas with %s...", count, p.client.Name())

	ideas, err := p.ideas.Generate(ctx, count, p.cfg.Pipeline.CompareWithLog, p.cfg.Pipeline.SaveToLog)
	if err != nil {
		return nil, fmt.Errorf("idea phase failed: %w", err)
	}

	helpers.PrintTitle("New Ideas")
	for n, idea := range ideas {
		helpers.PrintIdea(n+1, idea)
	}

	if err := p.pause(ctx); err != nil {
		return nil, err
	}

	outputDir := p.cfg.Pipeline.OutputDir
	jobs := make([]guideJob, 0, len(ideas))
	for _, idea := range ideas {
		idea := idea
		jobs = append(jobs, guideJob{
			label: TitleFromText(idea),
			generate: func(ctx context.Context) (GuideFile, error) {
				return p.guides.GenerateFromText(ctx, idea, outputDir)
			},
		})
	}
	return p.run(ctx, "random", jobs)
}

// RunDetailed expands the structured detailed-idea seed corpus
func (p *Pipeline) RunDetailed(ctx context.Context) (*models.RunManifest, error) {
	ideas, err := p.guides.store.DetailedIdeas()
	if err != nil {
		return nil, fmt.Errorf("idea phase failed: %w", err)
	}

	outputDir := p.cfg.Pipeline.OutputDir
	jobs := make([]guideJob, 0, len(ideas))
	for _, idea := range ideas {
		idea := idea
		jobs = append(jobs, guideJob{
			label: idea.Title,
			generate: func(ctx context.Context) (GuideFile, error) {
				return p.guides.GenerateDetailed(ctx, idea, outputDir)
			},
		})
	}
	return p.run(ctx, "detailed", jobs)
}

// run executes the expansion and review phases. One idea's failure is
// reported and recorded while its siblings continue; the run fails only
// when nothing could be generated at all.
func (p *Pipeline) run(ctx context.Context, source string, jobs []guideJob) (*models.RunManifest, error) {
	outputDir := p.cfg.Pipeline.OutputDir
	if err := helpers.EnsureDir(outputDir); err != nil {
		return nil, err
	}

	manifest := &models.RunManifest{
		RunID:     uuid.NewString(),
		Source:    source,
		Model:     p.client.Name(),
		OutputDir: outputDir,
		StartedAt: time.Now(),
	}

	for n, job := range jobs {
		if n > 0 {
			if err := p.pause(ctx); err != nil {
				return nil, err
			}
		}
		helpers.PrintProgress(n+1, len(jobs), fmt.Sprintf("Generating guide for %q", job.label))

		guide, err := job.generate(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			helpers.PrintWarning("Skipping %q: %v", job.label, err)
			manifest.Failures = append(manifest.Failures, models.RunFailure{
				Idea:  job.label,
				Phase: "generate",
				Error: err.Error(),
			})
			continue
		}

		manifest.Guides = append(manifest.Guides, models.GuideRecord{
			Slug:   guide.Slug,
			File:   filepath.Base(guide.Path),
			Title:  guide.Title,
			Digest: guide.Digest,
			Idea:   job.label,
		})
	}

	if len(jobs) > 0 && len(manifest.Guides) == 0 {
		return nil, fmt.Errorf("expansion phase failed: every guide generation failed")
	}

	if p.cfg.Pipeline.Review {
		if err := p.reviewPhase(ctx, manifest); err != nil {
			return nil, err
		}
	}

	manifest.FinishedAt = time.Now()
	if err := p.saveManifest(manifest); err != nil {
		return nil, err
	}

	helpers.PrintSuccess("Run %s complete: %d guides, %d failures", manifest.RunID, len(manifest.Guides), len(manifest.Failures))
	return manifest, nil
}

// reviewPhase reviews every plain markdown file in the output directory,
// including guides left over from earlier runs.
func (p *Pipeline) reviewPhase(ctx context.Context, manifest *models.RunManifest) error {
	files, err := helpers.ListFiles(manifest.OutputDir)
	if err != nil {
		return fmt.Errorf("review phase failed: %w", err)
	}

	var guides []string
	for _, name := range files {
		if strings.HasSuffix(name, ".md") {
			guides = append(guides, name)
		}
	}

	reviewed := make(map[string]bool)
	for n, name := range guides {
		if err := p.pause(ctx); err != nil {
			return err
		}
		helpers.PrintProgress(n+1, len(guides), fmt.Sprintf("Reviewing %s", name))

		if _, err := p.review.Review(ctx, name, manifest.OutputDir); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			helpers.PrintWarning("Review of %s failed: %v", name, err)
			manifest.Failures = append(manifest.Failures, models.RunFailure{
				Idea:  name,
				Phase: "review",
				Error: err.Error(),
			})
			continue
		}
		reviewed[name] = true
	}

	for n := range manifest.Guides {
		if reviewed[manifest.Guides[n].File] {
			manifest.Guides[n].Reviewed = true
		}
	}
	return nil
}

// ReviewDir runs the review phase alone over an existing guide directory.
// Returns how many guides were reviewed.
func (p *Pipeline) ReviewDir(ctx context.Context, dir string) (int, error) {
	files, err := helpers.ListFiles(dir)
	if err != nil {
		return 0, err
	}

	reviewed := 0
	var lastErr error
	for _, name := range files {
		if !strings.HasSuffix(name, ".md") {
			continue
		}
		if reviewed > 0 {
			if err := p.pause(ctx); err != nil {
				return reviewed, err
			}
		}
		if _, err := p.review.Review(ctx, name, dir); err != nil {
			if ctx.Err() != nil {
				return reviewed, ctx.Err()
			}
			helpers.PrintWarning("Review of %s failed: %v", name, err)
			lastErr = err
			continue
		}
		reviewed++
	}

	if reviewed == 0 && lastErr != nil {
		return 0, fmt.Errorf("every review failed: %w", lastErr)
	}
	return reviewed, nil
}

func (p *Pipeline) pause(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.delay):
		return nil
	}
}

func (p *Pipeline) saveManifest(manifest *models.RunManifest) error {
	name := helpers.GenerateOutputFilename("manifest", "json")
	path := helpers.GetOutputPath(manifest.OutputDir, name)
	if err := helpers.SaveJSON(manifest, path); err != nil {
		return fmt.Errorf("failed to save run manifest: %w", err)
	}
	helpers.PrintSuccess("Saved run manifest to: %s", path)
	return nil
}
