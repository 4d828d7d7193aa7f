package pipeline

import (
	"context"
	"log"
	"sync"

	"github.com/videochef/recipe-api/internal/models"
	"github.com/videochef/recipe-api/internal/platform"
	"github.com/videochef/recipe-api/internal/services/embeds"
	"github.com/videochef/recipe-api/internal/services/extraction"
	"github.com/videochef/recipe-api/internal/services/recipes"
	"github.com/videochef/recipe-api/internal/services/transcripts"
	apperrors "github.com/videochef/recipe-api/pkg/errors"
)

// Service wires the pipeline stages together
type Service struct {
	resolver    URLResolver
	transcripts transcripts.Provider
	embeds      embeds.Resolver
	extractor   extraction.Extractor
	repository  recipes.RecipeRepository
}

var _ Orchestrator = (*Service)(nil)

// NewService creates a pipeline orchestrator
func NewService(
	resolver URLResolver,
	provider transcripts.Provider,
	embedResolver embeds.Resolver,
	extractor extraction.Extractor,
	repository recipes.RecipeRepository,
) *Service {
	return &Service{
		resolver:    resolver,
		transcripts: provider,
		embeds:      embedResolver,
		extractor:   extractor,
		repository:  repository,
	}
}

// Run executes the pipeline: resolve, classify, create the record, fetch
// embed and transcript concurrently, extract, then finalize the record.
// The record transitions to exactly one terminal state.
func (s *Service) Run(ctx context.Context, ownerID, rawURL string) (*models.Recipe, error) {
	videoURL, p, err := s.classify(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	recipe, err := s.repository.Create(ctx, ownerID, videoURL, p)
	if err != nil {
		return nil, apperrors.DatabaseError("create recipe", err)
	}
	log.Printf("[INFO] Recipe %s: processing %s video %s", recipe.ID, p, videoURL)

	result, err := s.process(ctx, videoURL, p)
	if err != nil {
		s.fail(ctx, recipe, err)
		return recipe, err
	}

	if err := s.repository.Complete(ctx, recipe.ID, result.Recipe, result.EmbedHTML, result.ThumbnailURL); err != nil {
		// The record must not stay in processing; finalize it as failed
		wrapped := apperrors.DatabaseError("complete recipe", err)
		s.fail(ctx, recipe, wrapped)
		return recipe, wrapped
	}

	updated, err := s.repository.GetByID(ctx, recipe.ID)
	if err != nil {
		return recipe, err
	}
	log.Printf("[INFO] Recipe %s: completed (%q)", updated.ID, updated.Title)
	return updated, nil
}

// Extract runs the pipeline without touching storage
func (s *Service) Extract(ctx context.Context, rawURL string) (*Extraction, error) {
	videoURL, p, err := s.classify(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return s.process(ctx, videoURL, p)
}

// classify resolves share links and detects the platform. Unsupported
// URLs are rejected here, before any record exists.
func (s *Service) classify(ctx context.Context, rawURL string) (string, platform.Platform, error) {
	videoURL := s.resolver.Resolve(ctx, rawURL)

	p, ok := platform.Detect(videoURL)
	if !ok {
		log.Printf("[WARN] Unsupported video URL: %s", rawURL)
		return "", "", apperrors.UnsupportedPlatformError(rawURL)
	}
	return videoURL, p, nil
}

// process fetches the embed and transcript concurrently, then extracts
// the recipe. Embed failures are absorbed; a missing transcript is fatal.
func (s *Service) process(ctx context.Context, videoURL string, p platform.Platform) (*Extraction, error) {
	var (
		wg            sync.WaitGroup
		embed         *embeds.Embed
		transcript    *transcripts.Transcript
		transcriptErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		embed = s.embeds.GetEmbed(ctx, videoURL, p)
	}()
	go func() {
		defer wg.Done()
		transcript, transcriptErr = s.transcripts.GetTranscript(ctx, videoURL, p)
	}()
	wg.Wait()

	if transcriptErr != nil {
		return nil, transcriptErr
	}

	result, err := s.extractor.Extract(ctx, transcript.Text)
	if err != nil {
		return nil, err
	}

	out := &Extraction{Recipe: result}
	if embed != nil {
		out.EmbedHTML = embed.HTML
		out.ThumbnailURL = embed.ThumbnailURL
	}
	// The embed thumbnail is higher quality; fall back to whatever the
	// transcript backend scraped.
	if out.ThumbnailURL == "" {
		out.ThumbnailURL = transcript.ThumbnailURL
	}
	return out, nil
}

// fail transitions the record to its failed terminal state with the
// captured cause. The HTTP layer answers with a generic message; the
// record keeps the detail for the owner.
func (s *Service) fail(ctx context.Context, recipe *models.Recipe, cause error) {
	log.Printf("[ERROR] Recipe %s: pipeline failed: %v", recipe.ID, cause)
	message := cause.Error()
	if err := s.repository.MarkFailed(ctx, recipe.ID, message); err != nil {
		log.Printf("[ERROR] Recipe %s: could not mark failed: %v", recipe.ID, err)
		return
	}
	recipe.Status = models.StatusFailed
	recipe.ExtractionError = message
}
