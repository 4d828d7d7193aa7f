package types

import "github.com/videochef/recipe-api/internal/models"

// Status constants for API responses
const (
	StatusOK         = "ok"
	StatusError      = "error"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`            // One of the Status constants above
	Message string `json:"message,omitempty"` // Human-readable message
}

// RecipeStatusResponse reports the outcome of a pipeline run
type RecipeStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`          // completed or failed
	Error  string `json:"error,omitempty"` // generic failure message
}

// RecipeListResponse for the paginated list endpoint
type RecipeListResponse struct {
	Recipes []models.Recipe `json:"recipes"`
	Cursor  string          `json:"cursor,omitempty"` // opaque; empty when exhausted
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
