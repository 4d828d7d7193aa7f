package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Build information, overridden at link time via -ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Get handles version requests
// @Summary Service version
// @Description Reports the service name and build information
// @Tags version
// @Produce json
// @Success 200 {object} map[string]string
// @Router /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Recipe Extraction API",
			"version":     Version,
			"commit":      GitCommit,
			"buildTime":   BuildTime,
			"description": "Extracts structured bilingual recipes from social media cooking videos",
			"status":      "running",
		})
	}
}
