package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authapi "github.com/videochef/recipe-api/api/auth"
	"github.com/videochef/recipe-api/api/extract"
	"github.com/videochef/recipe-api/api/health"
	"github.com/videochef/recipe-api/api/recipes"
	"github.com/videochef/recipe-api/api/types"
	"github.com/videochef/recipe-api/api/version"
	_ "github.com/videochef/recipe-api/docs/swagger"
	"github.com/videochef/recipe-api/internal/platform"
	authService "github.com/videochef/recipe-api/internal/services/auth"
	"github.com/videochef/recipe-api/internal/services/embeds"
	"github.com/videochef/recipe-api/internal/services/extraction"
	"github.com/videochef/recipe-api/internal/services/pipeline"
	recipesService "github.com/videochef/recipe-api/internal/services/recipes"
	"github.com/videochef/recipe-api/internal/services/transcripts"
	"github.com/videochef/recipe-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.AuthService == nil {
		deps.AuthService = authService.NewService()
		if cfg.Auth.DevToken != "" {
			deps.AuthService.SetDevAuth(true, cfg.Auth.DevToken)
		}
	}

	if deps.Pipeline == nil {
		if err := initializePipeline(deps, cfg); err != nil {
			return err
		}
	}

	authHandler := authapi.NewHandler(deps.AuthService)

	rps, burst := cfg.RateLimiting.RPS, cfg.RateLimiting.Burst
	if !cfg.RateLimiting.Enabled {
		rps, burst = 0, 0
	}

	// API v1 routes, all behind bearer auth
	v1 := engine.Group("/api/v1")
	v1.Use(authHandler.Middleware())

	v1.GET("/me", authHandler.Me)

	// Recipe routes carry the pipeline's external API cost, so they get
	// per-client rate limiting
	recipesGroup := v1.Group("/recipes")
	if rps > 0 {
		recipesGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}
	recipes.RegisterRoutes(recipesGroup, deps)

	extractGroup := v1.Group("/extract")
	if rps > 0 {
		extractGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}
	extract.RegisterRoutes(extractGroup, deps)

	return nil
}

// initializePipeline builds the pipeline orchestrator and its stages
func initializePipeline(deps *types.Dependencies, cfg *config.Config) error {
	if deps.DB == nil || deps.DB.DB == nil {
		return fmt.Errorf("database is required for the recipe pipeline")
	}

	if deps.RecipeService == nil {
		deps.RecipeService = recipesService.NewRepository(deps.DB.DB)
	}

	resolver := platform.NewResolver(cfg.Transcript.Timeout)

	transcriptClient := transcripts.NewClient(transcripts.Config{
		APIKey:  cfg.Transcript.APIKey,
		Host:    cfg.Transcript.Host,
		Timeout: cfg.Transcript.Timeout,
	})

	embedResolver := embeds.NewResolver(cfg.Transcript.Timeout)

	extractor := extraction.NewClient(extraction.Config{
		APIKey:    cfg.Extraction.APIKey,
		BaseURL:   cfg.Extraction.BaseURL,
		Model:     cfg.Extraction.Model,
		MaxTokens: cfg.Extraction.MaxTokens,
		Timeout:   cfg.Extraction.Timeout,
	})

	deps.Pipeline = pipeline.NewService(resolver, transcriptClient, embedResolver, extractor, deps.RecipeService)
	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
