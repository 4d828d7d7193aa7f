package models

import (
	"time"

	"gorm.io/gorm"
)

// ExtractionStatus tracks the lifecycle of a recipe record
type ExtractionStatus string

const (
	StatusProcessing ExtractionStatus = "processing"
	StatusCompleted  ExtractionStatus = "completed"
	StatusFailed     ExtractionStatus = "failed"
)

// Terminal reports whether the status admits no further transitions
func (s ExtractionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Ingredient is a single recipe ingredient with quantity
// JSON keys match the extraction tool schema (camelCase, He suffix for Hebrew)
type Ingredient struct {
	Name   string `json:"name"`
	NameHe string `json:"nameHe,omitempty"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// Recipe represents a recipe extracted from a social-media cooking video.
// List-valued fields are stored as JSON columns via the GORM serializer.
type Recipe struct {
	ID      string `gorm:"primarykey" json:"id"`
	OwnerID string `gorm:"index;not null" json:"ownerId"`

	// Source video
	URL      string `gorm:"not null" json:"url"`
	Platform string `gorm:"not null" json:"platform"`

	// Extracted content (bilingual: source language + Hebrew)
	Title          string       `json:"title"`
	TitleHe        string       `json:"titleHe,omitempty"`
	Description    string       `json:"description,omitempty"`
	DescriptionHe  string       `json:"descriptionHe,omitempty"`
	Ingredients    []Ingredient `gorm:"serializer:json" json:"ingredients"`
	Instructions   []string     `gorm:"serializer:json" json:"instructions"`
	InstructionsHe []string     `gorm:"serializer:json" json:"instructionsHe,omitempty"`
	PrepTime       *int         `json:"prepTime,omitempty"`
	CookTime       *int         `json:"cookTime,omitempty"`
	Servings       *int         `json:"servings,omitempty"`
	Tags           []string     `gorm:"serializer:json" json:"tags"`
	SourceLanguage string       `json:"sourceLanguage,omitempty"`

	// Embed enrichment (best-effort)
	EmbedHTML    string `gorm:"type:text" json:"embedHtml,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`

	// Pipeline state
	Status          ExtractionStatus `gorm:"not null;index" json:"status"`
	ExtractionError string           `json:"extractionError,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}
