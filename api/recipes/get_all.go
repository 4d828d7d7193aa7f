package recipes

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/videochef/recipe-api/api/auth"
	"github.com/videochef/recipe-api/api/types"
	"github.com/videochef/recipe-api/internal/services/recipes"
)

// GetAll lists the caller's recipes
// @Summary List recipes
// @Description Lists the caller's recipes newest first with cursor pagination
// @Tags recipes
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param cursor query string false "Opaque pagination cursor"
// @Success 200 {object} types.RecipeListResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/recipes [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		cursor := c.Query("cursor")

		ownerID := auth.UserID(c)
		records, nextCursor, err := deps.RecipeService.ListByOwner(c.Request.Context(), ownerID, limit, cursor)
		if err != nil {
			if errors.Is(err, recipes.ErrInvalidCursor) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cursor"})
				return
			}
			log.Printf("[ERROR] Failed to list recipes for user %s: %v", ownerID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recipes"})
			return
		}

		c.JSON(http.StatusOK, types.RecipeListResponse{
			Recipes: records,
			Cursor:  nextCursor,
		})
	}
}
