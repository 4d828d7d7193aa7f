package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims represents the identity-provider JWT claims we care about
type Claims struct {
	Sub   string `json:"sub"`   // User ID
	Email string `json:"email"` // User email

	jwt.RegisteredClaims
}

// Service validates bearer tokens issued by the upstream identity
// provider. The API gateway in front of this service verifies token
// signatures, so here we decode the claims and enforce expiry.
type Service struct {
	parser         *jwt.Parser
	devAuthEnabled bool
	devAuthToken   string
}

// NewService creates a new auth service
func NewService() *Service {
	return &Service{
		parser: jwt.NewParser(),
	}
}

// SetDevAuth configures development authentication bypass
func (s *Service) SetDevAuth(enabled bool, token string) {
	s.devAuthEnabled = enabled
	s.devAuthToken = token
}

// ValidateToken decodes a bearer token and returns its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	// Check if it's the dev token first
	if s.devAuthEnabled && s.devAuthToken != "" &&
		subtle.ConstantTimeCompare([]byte(tokenString), []byte(s.devAuthToken)) == 1 {
		return s.GetDevClaims(), nil
	}

	claims := &Claims{}
	if _, _, err := s.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}

	if claims.Sub == "" {
		return nil, ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}

// GetDevClaims returns fixed claims for development mode
func (s *Service) GetDevClaims() *Claims {
	return &Claims{
		Sub:   "dev-user-001",
		Email: "dev@recipe-api.local",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(365 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

// UserInfo represents public user information
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// GetUserInfo extracts user info from claims
func GetUserInfo(claims *Claims) *UserInfo {
	return &UserInfo{
		ID:    claims.Sub,
		Email: claims.Email,
	}
}
