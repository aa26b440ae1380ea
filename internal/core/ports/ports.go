package ports

import (
	"context"

	"fnoutline/internal/engine/outline"
	"fnoutline/internal/engine/parser"
)

// Outliner abstracts the declaration extractor for one dialect.
type Outliner interface {
	Analyze(src []byte) outline.Result
	Dialect() parser.Dialect
}

// RunRequest defines a batch outline request for driving adapters.
type RunRequest struct {
	// Paths are files or directories. Empty means the configured paths.
	Paths []string
}

// FileOutline is the outline of one source file.
type FileOutline struct {
	Path         string                `json:"path"`
	Dialect      parser.Dialect        `json:"dialect"`
	Recovered    bool                  `json:"recovered,omitempty"`
	Declarations []outline.Declaration `json:"declarations"`
}

// RunResult summarizes a completed batch run. Files are sorted by path.
type RunResult struct {
	RunID    string        `json:"runId"`
	Files    []FileOutline `json:"files"`
	Warnings []string      `json:"warnings,omitempty"`
}

// OutlineService is the driving port used by the CLI.
type OutlineService interface {
	Run(ctx context.Context, req RunRequest) (RunResult, error)
	OutlineFile(ctx context.Context, path string) (FileOutline, error)
}
