package pipeline

import (
	"context"

	"github.com/videochef/recipe-api/internal/models"
	"github.com/videochef/recipe-api/internal/services/extraction"
)

// URLResolver canonicalizes share/short links before classification
type URLResolver interface {
	Resolve(ctx context.Context, rawURL string) string
}

// Extraction is the output of a stateless pipeline run
type Extraction struct {
	Recipe       *extraction.Result `json:"recipe"`
	EmbedHTML    string             `json:"embedHtml,omitempty"`
	ThumbnailURL string             `json:"thumbnailUrl,omitempty"`
}

// Orchestrator runs the video-to-recipe pipeline
type Orchestrator interface {
	// Run executes the full pipeline for the owner and records the result.
	// When a record was created it is returned even on failure, marked
	// failed; an unsupported URL is rejected before any record exists.
	Run(ctx context.Context, ownerID, rawURL string) (*models.Recipe, error)

	// Extract executes the pipeline without persisting anything
	Extract(ctx context.Context, rawURL string) (*Extraction, error)
}
