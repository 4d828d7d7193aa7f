package extract

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videochef/recipe-api/api/types"
	apperrors "github.com/videochef/recipe-api/pkg/errors"
)

// Post runs the extraction pipeline without persisting a record
// @Summary Stateless recipe extraction
// @Description Extracts a structured recipe from a video URL without saving anything
// @Tags extract
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body types.CreateRecipeRequest true "Video URL"
// @Success 200 {object} pipeline.Extraction
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/extract [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateRecipeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A video URL is required"})
			return
		}

		result, err := deps.Pipeline.Extract(c.Request.Context(), req.URL)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrCodeUnsupportedPlatform) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "This video platform is not supported"})
				return
			}
			log.Printf("[ERROR] Stateless extraction failed for %s: %v", req.URL, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Extraction failed"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
