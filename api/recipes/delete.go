package recipes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videochef/recipe-api/api/auth"
	"github.com/videochef/recipe-api/api/types"
	"github.com/videochef/recipe-api/internal/services/recipes"
)

// Delete removes a recipe
// @Summary Delete a recipe
// @Description Deletes a recipe by ID; callers can only delete their own recipes
// @Tags recipes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} types.BaseResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/recipes/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		recipe, err := deps.RecipeService.GetByID(c.Request.Context(), id)
		if err != nil {
			if recipes.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			} else {
				log.Printf("[ERROR] Failed to fetch recipe %s: %v", id, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
			}
			return
		}

		if recipe.OwnerID != auth.UserID(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		if err := deps.RecipeService.Delete(c.Request.Context(), id); err != nil {
			log.Printf("[ERROR] Failed to delete recipe %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Recipe deleted"})
	}
}
