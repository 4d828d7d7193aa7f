package types

import (
	"github.com/videochef/recipe-api/internal/database"
	"github.com/videochef/recipe-api/internal/services/auth"
	"github.com/videochef/recipe-api/internal/services/pipeline"
	"github.com/videochef/recipe-api/internal/services/recipes"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB            *database.DB
	AuthService   *auth.Service
	Pipeline      pipeline.Orchestrator
	RecipeService recipes.RecipeRepository
}
