package extract

import (
	"github.com/gin-gonic/gin"
	"github.com/videochef/recipe-api/api/types"
)

// RegisterRoutes registers stateless extraction routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/extract - Extract without persisting
	router.POST("", Post(deps))
}
