package recipes

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/videochef/recipe-api/internal/models"
	"github.com/videochef/recipe-api/internal/platform"
	"github.com/videochef/recipe-api/internal/services/extraction"
)

const defaultListLimit = 50

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements RecipeRepository interface
var _ RecipeRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, ownerID, url string, p platform.Platform) (*models.Recipe, error) {
	// UUIDv7 is time-ordered, so record IDs sort by creation time and
	// double as the pagination cursor.
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating recipe id: %w", err)
	}

	recipe := &models.Recipe{
		ID:           id.String(),
		OwnerID:      ownerID,
		URL:          url,
		Platform:     string(p),
		Status:       models.StatusProcessing,
		Ingredients:  []models.Ingredient{},
		Instructions: []string{},
		Tags:         []string{},
	}

	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("creating recipe: %w", err)
	}
	return recipe, nil
}

func (r *Repository) Complete(ctx context.Context, id string, result *extraction.Result, embedHTML, thumbnailURL string) error {
	recipe, err := r.getMutable(ctx, id)
	if err != nil {
		return err
	}

	recipe.Title = result.Title
	recipe.TitleHe = result.TitleHe
	recipe.Description = result.Description
	recipe.DescriptionHe = result.DescriptionHe
	recipe.Ingredients = result.Ingredients
	recipe.Instructions = result.Instructions
	recipe.InstructionsHe = result.InstructionsHe
	recipe.PrepTime = result.PrepTime
	recipe.CookTime = result.CookTime
	recipe.Servings = result.Servings
	recipe.Tags = result.Tags
	recipe.SourceLanguage = result.SourceLanguage
	recipe.EmbedHTML = embedHTML
	recipe.ThumbnailURL = thumbnailURL
	recipe.Status = models.StatusCompleted

	if err := r.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return fmt.Errorf("completing recipe: %w", err)
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id, message string) error {
	recipe, err := r.getMutable(ctx, id)
	if err != nil {
		return err
	}

	if message == "" {
		message = "Unknown error"
	}
	recipe.Status = models.StatusFailed
	recipe.ExtractionError = message

	if err := r.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return fmt.Errorf("marking recipe failed: %w", err)
	}
	return nil
}

// getMutable loads a record and rejects terminal-state mutation
func (r *Repository) getMutable(ctx context.Context, id string) (*models.Recipe, error) {
	recipe, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.Status.Terminal() {
		return nil, fmt.Errorf("recipe %s is %s: %w", id, recipe.Status, ErrAlreadyFinal)
	}
	return recipe, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("getting recipe: %w", err)
	}
	return &recipe, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID string, limit int, cursor string) ([]models.Recipe, string, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}

	query := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id DESC").
		Limit(limit + 1)

	if cursor != "" {
		lastID, err := decodeCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		query = query.Where("id < ?", lastID)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, "", fmt.Errorf("listing recipes: %w", err)
	}

	var nextCursor string
	if len(recipes) > limit {
		recipes = recipes[:limit]
		nextCursor = encodeCursor(recipes[len(recipes)-1].ID)
	}
	return recipes, nextCursor, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Recipe{})
	if result.Error != nil {
		return fmt.Errorf("deleting recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NotFoundError{ID: id}
	}
	return nil
}

func encodeCursor(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

func decodeCursor(cursor string) (string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	return string(decoded), nil
}
