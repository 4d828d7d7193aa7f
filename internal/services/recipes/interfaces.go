package recipes

import (
	"context"

	"github.com/videochef/recipe-api/internal/models"
	"github.com/videochef/recipe-api/internal/platform"
	"github.com/videochef/recipe-api/internal/services/extraction"
)

// RecipeRepository defines the interface for recipe record persistence.
// Records are created in processing state and transition exactly once to
// completed or failed; terminal states are never re-entered.
type RecipeRepository interface {
	// Create inserts a new record in processing state with empty
	// ingredient/instruction/tag lists
	Create(ctx context.Context, ownerID, url string, p platform.Platform) (*models.Recipe, error)

	// Complete merges the extraction result into the record and marks it
	// completed. Fails if the record is already in a terminal state.
	Complete(ctx context.Context, id string, result *extraction.Result, embedHTML, thumbnailURL string) error

	// MarkFailed transitions the record to failed with an error message.
	// Fails if the record is already in a terminal state.
	MarkFailed(ctx context.Context, id, message string) error

	// GetByID returns a record by its ID
	GetByID(ctx context.Context, id string) (*models.Recipe, error)

	// ListByOwner returns the owner's records newest first. The returned
	// cursor is opaque; pass it back to continue, empty means done.
	ListByOwner(ctx context.Context, ownerID string, limit int, cursor string) ([]models.Recipe, string, error)

	// Delete removes a record
	Delete(ctx context.Context, id string) error
}
