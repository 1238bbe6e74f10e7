package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pharmacare_backend/internal/auth"
	"pharmacare_backend/internal/logger"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/pkg/apperrors"
)

const (
	// ContextUserIDKey - authenticated user's id on the gin context.
	ContextUserIDKey = "user_id"
	// ContextClaimsKey - full token claims on the gin context.
	ContextClaimsKey = "user_claims"
)

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// AuthMiddleware rejects requests without a valid access token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(token, auth.AccessToken)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextClaimsKey, claims)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// OptionalAuth resolves an identity when a valid token is present but never
// aborts the request.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token != "" {
			if claims, err := auth.ParseToken(token, auth.AccessToken); err == nil {
				c.Set(ContextUserIDKey, claims.UserID)
				c.Set(ContextClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// RequireRoles gates a route group by role. Requests with no identity get
// 401, authenticated requests with the wrong role get 403.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		if _, ok := allowed[models.UserRole(claims.Role)]; !ok {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Insufficient permissions"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user's id from the gin context.
func GetUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// GetClaims returns the full token claims from the gin context.
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// MustGetUserID is for handlers behind AuthMiddleware where a missing
// identity is a programming error.
func MustGetUserID(c *gin.Context) string {
	id, ok := GetUserID(c)
	if !ok {
		// Unreachable behind AuthMiddleware.
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		c.Abort()
	}
	return id
}
