package recipes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videochef/recipe-api/api/auth"
	"github.com/videochef/recipe-api/api/types"
	"github.com/videochef/recipe-api/internal/services/recipes"
)

// GetByID returns a single recipe
// @Summary Get a recipe
// @Description Returns a recipe by ID; callers can only read their own recipes
// @Tags recipes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} models.Recipe
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/recipes/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		recipe, err := deps.RecipeService.GetByID(c.Request.Context(), id)
		if err != nil {
			if recipes.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			} else {
				log.Printf("[ERROR] Failed to fetch recipe %s: %v", id, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
			}
			return
		}

		if recipe.OwnerID != auth.UserID(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.JSON(http.StatusOK, recipe)
	}
}
