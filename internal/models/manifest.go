package models

import "time"

// RunManifest records one pipeline run, linking every written guide back to
// the idea that produced it. Without it the slug is the only connection
// between an output file and its source idea.
type RunManifest struct {
	RunID      string        `json:"run_id"`
	Source     string        `json:"source"`
	Model      string        `json:"model"`
	OutputDir  string        `json:"output_dir"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Guides     []GuideRecord `json:"guides"`
	Failures   []RunFailure  `json:"failures,omitempty"`
}

// GuideRecord represents one written guide
type GuideRecord struct {
	Slug     string `json:"slug"`
	File     string `json:"file"`
	Title    string `json:"title"`
	Digest   string `json:"digest,omitempty"`
	Idea     string `json:"idea"`
	Reviewed bool   `json:"reviewed"`
}

// RunFailure records an idea whose pipeline failed while siblings continued
type RunFailure struct {
	Idea  string `json:"idea"`
	Phase string `json:"phase"`
	Error string `json:"error"`
}
