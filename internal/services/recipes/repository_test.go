package recipes

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videochef/recipe-api/internal/database"
	"github.com/videochef/recipe-api/internal/models"
	"github.com/videochef/recipe-api/internal/platform"
	"github.com/videochef/recipe-api/internal/services/extraction"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.AutoMigrate(&models.Recipe{}))
	return NewRepository(db.DB)
}

func sampleResult() *extraction.Result {
	servings := 4
	return &extraction.Result{
		Title:   "Shakshuka",
		TitleHe: "שקשוקה",
		Ingredients: []models.Ingredient{
			{Name: "eggs", NameHe: "ביצים", Amount: "4", Unit: "pieces"},
			{Name: "tomatoes", Amount: "5", Unit: "pieces"},
		},
		Instructions:   []string{"Fry the tomatoes", "Crack in the eggs"},
		Tags:           []string{"Israeli", "breakfast"},
		Servings:       &servings,
		SourceLanguage: "en",
	}
}

func TestCreateStartsProcessing(t *testing.T) {
	repo := newTestRepository(t)

	recipe, err := repo.Create(context.Background(), "user-1", "https://youtu.be/abc12345678", platform.YouTube)
	require.NoError(t, err)

	assert.NotEmpty(t, recipe.ID)
	assert.Equal(t, models.StatusProcessing, recipe.Status)
	assert.Equal(t, "user-1", recipe.OwnerID)
	assert.Equal(t, "youtube", recipe.Platform)
	assert.NotNil(t, recipe.Ingredients)
	assert.Empty(t, recipe.Ingredients)
	assert.Empty(t, recipe.Instructions)
	assert.Empty(t, recipe.Tags)
}

func TestCreateIDsAreSortable(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, "user-1", "https://youtu.be/a1", platform.YouTube)
	require.NoError(t, err)
	second, err := repo.Create(ctx, "user-1", "https://youtu.be/a2", platform.YouTube)
	require.NoError(t, err)

	// UUIDv7 is time-ordered
	assert.Less(t, first.ID, second.ID)
}

func TestCompleteMergesExtraction(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	recipe, err := repo.Create(ctx, "user-1", "https://youtu.be/abc", platform.YouTube)
	require.NoError(t, err)

	err = repo.Complete(ctx, recipe.ID, sampleResult(), "<iframe></iframe>", "https://img.example/t.jpg")
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
	assert.Equal(t, "Shakshuka", stored.Title)
	assert.Equal(t, "שקשוקה", stored.TitleHe)
	require.Len(t, stored.Ingredients, 2)
	assert.Equal(t, "eggs", stored.Ingredients[0].Name)
	assert.Equal(t, []string{"Fry the tomatoes", "Crack in the eggs"}, stored.Instructions)
	assert.Equal(t, "<iframe></iframe>", stored.EmbedHTML)
	assert.Equal(t, "https://img.example/t.jpg", stored.ThumbnailURL)
	require.NotNil(t, stored.Servings)
	assert.Equal(t, 4, *stored.Servings)
}

func TestMarkFailed(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	recipe, err := repo.Create(ctx, "user-1", "https://youtu.be/abc", platform.YouTube)
	require.NoError(t, err)

	require.NoError(t, repo.MarkFailed(ctx, recipe.ID, "transcript backend unreachable"))

	stored, err := repo.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, stored.Status)
	assert.Equal(t, "transcript backend unreachable", stored.ExtractionError)
}

func TestMarkFailedEmptyMessage(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	recipe, err := repo.Create(ctx, "user-1", "https://youtu.be/abc", platform.YouTube)
	require.NoError(t, err)

	require.NoError(t, repo.MarkFailed(ctx, recipe.ID, ""))

	stored, err := repo.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unknown error", stored.ExtractionError)
}

func TestTerminalStateIsFinal(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	recipe, err := repo.Create(ctx, "user-1", "https://youtu.be/abc", platform.YouTube)
	require.NoError(t, err)
	require.NoError(t, repo.Complete(ctx, recipe.ID, sampleResult(), "", ""))

	assert.ErrorIs(t, repo.MarkFailed(ctx, recipe.ID, "too late"), ErrAlreadyFinal)
	assert.ErrorIs(t, repo.Complete(ctx, recipe.ID, sampleResult(), "", ""), ErrAlreadyFinal)

	stored, err := repo.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
	assert.Empty(t, stored.ExtractionError)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestGetByIDIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	recipe, err := repo.Create(ctx, "user-1", "https://youtu.be/abc", platform.YouTube)
	require.NoError(t, err)
	require.NoError(t, repo.Complete(ctx, recipe.ID, sampleResult(), "<iframe></iframe>", ""))

	first, err := repo.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, recipe.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListByOwnerPagination(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, "user-1", fmt.Sprintf("https://youtu.be/vid%d", i), platform.YouTube)
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, "user-2", "https://youtu.be/other", platform.YouTube)
	require.NoError(t, err)

	page1, cursor, err := repo.ListByOwner(ctx, "user-1", 2, "")
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.NotEmpty(t, cursor)
	// Newest first
	assert.Equal(t, "https://youtu.be/vid4", page1[0].URL)
	assert.Equal(t, "https://youtu.be/vid3", page1[1].URL)

	page2, cursor, err := repo.ListByOwner(ctx, "user-1", 2, cursor)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	require.NotEmpty(t, cursor)
	assert.Equal(t, "https://youtu.be/vid2", page2[0].URL)

	page3, cursor, err := repo.ListByOwner(ctx, "user-1", 2, cursor)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Empty(t, cursor)
	assert.Equal(t, "https://youtu.be/vid0", page3[0].URL)
}

func TestListByOwnerInvalidCursor(t *testing.T) {
	repo := newTestRepository(t)

	_, _, err := repo.ListByOwner(context.Background(), "user-1", 10, "!!not-base64!!")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCursor))
}

func TestDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	recipe, err := repo.Create(ctx, "user-1", "https://youtu.be/abc", platform.YouTube)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, recipe.ID))

	_, err = repo.GetByID(ctx, recipe.ID)
	assert.True(t, IsNotFound(err))

	assert.True(t, IsNotFound(repo.Delete(ctx, recipe.ID)))
}
