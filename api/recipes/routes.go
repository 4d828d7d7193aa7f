package recipes

import (
	"github.com/gin-gonic/gin"
	"github.com/videochef/recipe-api/api/types"
)

// RegisterRoutes registers recipe routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/recipes - Run the extraction pipeline for a video URL
	router.POST("", Post(deps))

	// GET /api/v1/recipes - List the caller's recipes, newest first
	router.GET("", GetAll(deps))

	// GET /api/v1/recipes/:id - Get recipe details
	router.GET("/:id", GetByID(deps))

	// DELETE /api/v1/recipes/:id - Delete a recipe
	router.DELETE("/:id", Delete(deps))
}
