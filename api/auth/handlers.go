package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/videochef/recipe-api/internal/services/auth"
)

// Handler manages auth endpoints and middleware
type Handler struct {
	authService *auth.Service
}

// NewHandler creates a new auth handler
func NewHandler(authService *auth.Service) *Handler {
	return &Handler{authService: authService}
}

// Me returns current user info from the bearer token
// @Summary Get current user
// @Description Get current user information from the bearer token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} auth.UserInfo
// @Failure 401 {object} map[string]string
// @Router /api/v1/me [get]
func (h *Handler) Me(c *gin.Context) {
	claims, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, auth.GetUserInfo(claims.(*auth.Claims)))
}

// Middleware validates bearer tokens and stores the caller identity in
// the request context
func (h *Handler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := h.authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("user_id", claims.Sub)
		c.Set("email", claims.Email)

		c.Next()
	}
}

// UserID returns the authenticated caller's ID from the context
func UserID(c *gin.Context) string {
	return c.GetString("user_id")
}
