package recipes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videochef/recipe-api/api/auth"
	"github.com/videochef/recipe-api/api/types"
	apperrors "github.com/videochef/recipe-api/pkg/errors"
)

// Post runs the extraction pipeline for a video URL and records the result
// @Summary Extract a recipe from a video
// @Description Classifies the video URL, fetches its transcript and extracts a structured recipe
// @Tags recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body types.CreateRecipeRequest true "Video URL"
// @Success 200 {object} types.RecipeStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} types.RecipeStatusResponse
// @Router /api/v1/recipes [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateRecipeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A video URL is required"})
			return
		}

		ownerID := auth.UserID(c)
		recipe, err := deps.Pipeline.Run(c.Request.Context(), ownerID, req.URL)
		if err != nil {
			if recipe == nil {
				// Rejected before a record existed
				if apperrors.Is(err, apperrors.ErrCodeUnsupportedPlatform) {
					c.JSON(apperrors.GetHTTPCode(err), gin.H{"error": "This video platform is not supported"})
					return
				}
				log.Printf("[ERROR] Recipe creation failed for user %s: %v", ownerID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Extraction failed"})
				return
			}

			// Detailed cause stays in the logs
			log.Printf("[ERROR] Recipe %s failed for user %s: %v", recipe.ID, ownerID, err)
			c.JSON(http.StatusInternalServerError, types.RecipeStatusResponse{
				ID:     recipe.ID,
				Status: types.StatusFailed,
				Error:  "Extraction failed",
			})
			return
		}

		c.JSON(http.StatusOK, types.RecipeStatusResponse{
			ID:     recipe.ID,
			Status: types.StatusCompleted,
		})
	}
}
