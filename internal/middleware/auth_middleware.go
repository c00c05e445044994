package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appAuth "github.com/hackathon-manager/hackathon/internal/app/auth"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/hackathon-manager/hackathon/internal/pkg/auth"
)

// claimsKey is the gin context key holding *auth.Claims
const claimsKey = "claims"

// TokenValidator validates access tokens
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// AuthMiddleware authenticates requests and gates them by role
type AuthMiddleware struct {
	tokens TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// authenticate validates the Bearer token and stores its claims. Any failure
// aborts with 403 "Invalid Token".
func (m *AuthMiddleware) authenticate(c *gin.Context) bool {
	tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		c.Abort()
		c.String(http.StatusForbidden, apperrors.MsgInvalidToken)
		return false
	}

	claims, err := m.tokens.ValidateToken(tokenString)
	if err != nil {
		c.Abort()
		c.String(http.StatusForbidden, apperrors.MsgInvalidToken)
		return false
	}

	c.Set(claimsKey, claims)
	return true
}

// AuthenticateToken requires a valid token
func (m *AuthMiddleware) AuthenticateToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.authenticate(c) {
			c.Next()
		}
	}
}

// AuthenticateAndAuthorize requires a valid token whose role is at least required.
// Insufficient rank aborts with 403 "No permission".
func (m *AuthMiddleware) AuthenticateAndAuthorize(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			return
		}
		claims := ClaimsFromContext(c)
		if !appAuth.CheckPermissions(claims.Role, required) {
			c.Abort()
			c.String(http.StatusForbidden, apperrors.MsgNoPermission)
			return
		}
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by the auth middleware, or nil
func ClaimsFromContext(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
