package auth

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// claimsContextKey is the gin context key under which verified claims are stored.
const claimsContextKey = "authClaims"

// Middleware extracts and verifies the bearer token, injecting the claims
// into the request context. Requests without a valid token proceed without
// claims; handlers behind RequireAuth reject them.
//
// This design allows:
// - Public endpoints (no auth required)
// - Protected endpoints (RequireAuth)
// - Optional auth endpoints (use claims if available)
func Middleware(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		token, err := ExtractBearerToken(authHeader)
		if err != nil {
			slog.Debug("malformed authorization header", "error", err)
			c.Next()
			return
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			slog.Warn("failed to verify access token", "error", err)
			c.Next()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// RequireAuth aborts the request with 401 when no verified claims are present.
// It must be registered after Middleware.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetClaims(c) == nil {
			slog.Warn("authentication required but not provided",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "authentication required",
			})
			return
		}
		c.Next()
	}
}

// GetClaims extracts the verified claims from the request context.
// Returns nil if the request carried no valid token.
func GetClaims(c *gin.Context) *Claims {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// GetUserID returns the authenticated user's ID, or uuid.Nil when unauthenticated.
func GetUserID(c *gin.Context) uuid.UUID {
	claims := GetClaims(c)
	if claims == nil {
		return uuid.Nil
	}
	return claims.UserID
}
