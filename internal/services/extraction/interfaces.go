package extraction

import (
	"context"

	"github.com/videochef/recipe-api/internal/models"
)

// Result is the structured recipe extracted from a transcript.
// Required fields: Title, Ingredients, Instructions, Tags and
// SourceLanguage; the Hebrew translations are present only when the
// source language is not Hebrew (and vice versa for English).
type Result struct {
	Title          string              `json:"title"`
	TitleHe        string              `json:"titleHe,omitempty"`
	Description    string              `json:"description,omitempty"`
	DescriptionHe  string              `json:"descriptionHe,omitempty"`
	Ingredients    []models.Ingredient `json:"ingredients"`
	Instructions   []string            `json:"instructions"`
	InstructionsHe []string            `json:"instructionsHe,omitempty"`
	PrepTime       *int                `json:"prepTime,omitempty"`
	CookTime       *int                `json:"cookTime,omitempty"`
	Servings       *int                `json:"servings,omitempty"`
	Tags           []string            `json:"tags"`
	SourceLanguage string              `json:"sourceLanguage"`
}

// Extractor turns transcript text into a structured recipe
type Extractor interface {
	Extract(ctx context.Context, transcript string) (*Result, error)
}
