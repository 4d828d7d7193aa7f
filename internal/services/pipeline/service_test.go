package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/videochef/recipe-api/internal/database"
	"github.com/videochef/recipe-api/internal/models"
	"github.com/videochef/recipe-api/internal/platform"
	"github.com/videochef/recipe-api/internal/services/embeds"
	"github.com/videochef/recipe-api/internal/services/extraction"
	"github.com/videochef/recipe-api/internal/services/recipes"
	"github.com/videochef/recipe-api/internal/services/transcripts"
	apperrors "github.com/videochef/recipe-api/pkg/errors"
)

// passthroughResolver skips redirect resolution in tests
type passthroughResolver struct{}

func (passthroughResolver) Resolve(_ context.Context, rawURL string) string { return rawURL }

type mockTranscriptProvider struct {
	mock.Mock
}

func (m *mockTranscriptProvider) GetTranscript(ctx context.Context, url string, p platform.Platform) (*transcripts.Transcript, error) {
	args := m.Called(ctx, url, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transcripts.Transcript), args.Error(1)
}

type mockEmbedResolver struct {
	mock.Mock
}

func (m *mockEmbedResolver) GetEmbed(ctx context.Context, videoURL string, p platform.Platform) *embeds.Embed {
	args := m.Called(ctx, videoURL, p)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*embeds.Embed)
}

type mockExtractor struct {
	mock.Mock
}

func (m *mockExtractor) Extract(ctx context.Context, transcript string) (*extraction.Result, error) {
	args := m.Called(ctx, transcript)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extraction.Result), args.Error(1)
}

type pipelineFixture struct {
	service     *Service
	repository  *recipes.Repository
	transcripts *mockTranscriptProvider
	embeds      *mockEmbedResolver
	extractor   *mockExtractor
}

func newFixture(t *testing.T) *pipelineFixture {
	t.Helper()
	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.AutoMigrate(&models.Recipe{}))

	f := &pipelineFixture{
		repository:  recipes.NewRepository(db.DB),
		transcripts: new(mockTranscriptProvider),
		embeds:      new(mockEmbedResolver),
		extractor:   new(mockExtractor),
	}
	f.service = NewService(passthroughResolver{}, f.transcripts, f.embeds, f.extractor, f.repository)
	return f
}

const testVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func extractionResult() *extraction.Result {
	return &extraction.Result{
		Title:          "Roasted Eggplant",
		TitleHe:        "חציל קלוי",
		Ingredients:    []models.Ingredient{{Name: "eggplant", Amount: "2"}},
		Instructions:   []string{"Roast at 220C"},
		Tags:           []string{"vegan"},
		SourceLanguage: "en",
	}
}

func TestRunCompletes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.transcripts.On("GetTranscript", mock.Anything, testVideoURL, platform.YouTube).
		Return(&transcripts.Transcript{Text: "roast the eggplant", ThumbnailURL: "https://fallback/thumb.jpg"}, nil)
	f.embeds.On("GetEmbed", mock.Anything, testVideoURL, platform.YouTube).
		Return(&embeds.Embed{HTML: "<iframe></iframe>", ThumbnailURL: "https://img/hq.jpg"})
	f.extractor.On("Extract", mock.Anything, "roast the eggplant").
		Return(extractionResult(), nil)

	recipe, err := f.service.Run(ctx, "user-1", testVideoURL)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, recipe.Status)
	assert.Equal(t, "Roasted Eggplant", recipe.Title)
	assert.Equal(t, "<iframe></iframe>", recipe.EmbedHTML)
	// Embed thumbnail wins over the transcript fallback
	assert.Equal(t, "https://img/hq.jpg", recipe.ThumbnailURL)

	stored, err := f.repository.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestRunUnsupportedURLCreatesNoRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	recipe, err := f.service.Run(ctx, "user-1", "https://vimeo.com/12345")
	require.Error(t, err)
	assert.Nil(t, recipe)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeUnsupportedPlatform))

	records, _, err := f.repository.ListByOwner(ctx, "user-1", 10, "")
	require.NoError(t, err)
	assert.Empty(t, records)

	f.transcripts.AssertNotCalled(t, "GetTranscript", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunTranscriptFailureMarksFailed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.embeds.On("GetEmbed", mock.Anything, testVideoURL, platform.YouTube).Return(nil)
	f.transcripts.On("GetTranscript", mock.Anything, testVideoURL, platform.YouTube).
		Return(nil, apperrors.New(apperrors.ErrCodeEmptyTranscript, "transcript is empty"))

	recipe, err := f.service.Run(ctx, "user-1", testVideoURL)
	require.Error(t, err)
	require.NotNil(t, recipe)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeEmptyTranscript))
	assert.Equal(t, models.StatusFailed, recipe.Status)

	stored, err := f.repository.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, stored.Status)
	// The captured cause is persisted on the record
	assert.Contains(t, stored.ExtractionError, "transcript is empty")

	f.extractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestRunExtractionFailureMarksFailed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.embeds.On("GetEmbed", mock.Anything, testVideoURL, platform.YouTube).Return(nil)
	f.transcripts.On("GetTranscript", mock.Anything, testVideoURL, platform.YouTube).
		Return(&transcripts.Transcript{Text: "unrelated chatter"}, nil)
	f.extractor.On("Extract", mock.Anything, "unrelated chatter").
		Return(nil, apperrors.New(apperrors.ErrCodeExtractionFailed, "no tool use block"))

	recipe, err := f.service.Run(ctx, "user-1", testVideoURL)
	require.Error(t, err)
	require.NotNil(t, recipe)

	stored, err := f.repository.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, stored.Status)
}

// completeFailingRepository simulates a storage fault on finalization
type completeFailingRepository struct {
	recipes.RecipeRepository
}

func (r *completeFailingRepository) Complete(ctx context.Context, id string, result *extraction.Result, embedHTML, thumbnailURL string) error {
	return errors.New("disk full")
}

func TestRunCompleteFailureFinalizesRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.service = NewService(passthroughResolver{}, f.transcripts, f.embeds, f.extractor,
		&completeFailingRepository{RecipeRepository: f.repository})

	f.embeds.On("GetEmbed", mock.Anything, testVideoURL, platform.YouTube).Return(nil)
	f.transcripts.On("GetTranscript", mock.Anything, testVideoURL, platform.YouTube).
		Return(&transcripts.Transcript{Text: "roast it"}, nil)
	f.extractor.On("Extract", mock.Anything, "roast it").Return(extractionResult(), nil)

	recipe, err := f.service.Run(ctx, "user-1", testVideoURL)
	require.Error(t, err)
	require.NotNil(t, recipe)

	// The record must not be stuck in processing
	stored, err := f.repository.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, stored.Status)
	assert.Contains(t, stored.ExtractionError, "disk full")
}

func TestRunEmbedFailureIsAbsorbed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.embeds.On("GetEmbed", mock.Anything, testVideoURL, platform.YouTube).Return(nil)
	f.transcripts.On("GetTranscript", mock.Anything, testVideoURL, platform.YouTube).
		Return(&transcripts.Transcript{Text: "roast it", ThumbnailURL: "https://fallback/thumb.jpg"}, nil)
	f.extractor.On("Extract", mock.Anything, "roast it").Return(extractionResult(), nil)

	recipe, err := f.service.Run(ctx, "user-1", testVideoURL)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, recipe.Status)
	assert.Empty(t, recipe.EmbedHTML)
	// Falls back to the transcript backend's thumbnail
	assert.Equal(t, "https://fallback/thumb.jpg", recipe.ThumbnailURL)
}

func TestExtractStateless(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.embeds.On("GetEmbed", mock.Anything, testVideoURL, platform.YouTube).
		Return(&embeds.Embed{HTML: "<iframe></iframe>"})
	f.transcripts.On("GetTranscript", mock.Anything, testVideoURL, platform.YouTube).
		Return(&transcripts.Transcript{Text: "roast it", ThumbnailURL: "https://fallback/thumb.jpg"}, nil)
	f.extractor.On("Extract", mock.Anything, "roast it").Return(extractionResult(), nil)

	out, err := f.service.Extract(ctx, testVideoURL)
	require.NoError(t, err)
	assert.Equal(t, "Roasted Eggplant", out.Recipe.Title)
	assert.Equal(t, "<iframe></iframe>", out.EmbedHTML)
	assert.Equal(t, "https://fallback/thumb.jpg", out.ThumbnailURL)

	records, _, err := f.repository.ListByOwner(ctx, "user-1", 10, "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestExtractShareLinkResolution(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// The passthrough resolver leaves the share URL alone; the share
	// pattern itself classifies as TikTok.
	shareURL := "https://vm.tiktok.com/ZMabcdef/"
	f.embeds.On("GetEmbed", mock.Anything, shareURL, platform.TikTok).Return(nil)
	f.transcripts.On("GetTranscript", mock.Anything, shareURL, platform.TikTok).
		Return(&transcripts.Transcript{Text: "mix the dough"}, nil)
	f.extractor.On("Extract", mock.Anything, "mix the dough").Return(extractionResult(), nil)

	out, err := f.service.Extract(ctx, shareURL)
	require.NoError(t, err)
	assert.Equal(t, "Roasted Eggplant", out.Recipe.Title)
}
