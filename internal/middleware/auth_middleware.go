package middleware

import (
	"github.com/gin-gonic/gin"
	appauth "github.com/yigit/ucsbapi/internal/app/auth"
	"github.com/yigit/ucsbapi/internal/pkg/apperrors"
	"github.com/yigit/ucsbapi/internal/pkg/auth"
	"github.com/yigit/ucsbapi/internal/pkg/logger"
)

// Context keys set by JWTAuth
const (
	ClaimsKey = "claims"
	EmailKey  = "email"
)

const accessDenied = "Access is denied"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth validates the bearer token and stores its claims in the context.
// Requests without a valid token are rejected with 403.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.NewForbiddenError(accessDenied))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			logger.Debug().
				Err(err).
				Str("path", c.Request.URL.Path).
				Msg("Rejected bearer token")
			HandleAPIError(c, apperrors.NewForbiddenError(accessDenied))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(EmailKey, claims.Email)

		c.Next()
	}
}

// RoleRequired rejects callers whose roles do not grant capability. It must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(capability appauth.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			HandleAPIError(c, apperrors.NewForbiddenError(accessDenied))
			return
		}

		if err := appauth.Authorize(claims.Roles, capability); err != nil {
			logger.Debug().
				Str("email", claims.Email).
				Str("capability", string(capability)).
				Msg("Capability check failed")
			HandleAPIError(c, err)
			return
		}

		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by JWTAuth
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
