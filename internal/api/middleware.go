package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gymtrack/core/internal/auth"
	"gymtrack/core/internal/domain"
)

// Context keys for values injected by the auth middleware.
const (
	ContextIdentityKey    = "identity"
	ContextAccessTokenKey = "accessToken"
)

// AuthMiddleware creates a Gin middleware that verifies the bearer token
// against the configured identity provider and injects the resolved
// identity into the request context.
func AuthMiddleware(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		identity, token, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ContextIdentityKey, identity)
		if token != nil {
			c.Set(ContextAccessTokenKey, *token)
		}
		c.Next()
	}
}

// CORSMiddleware allows the configured browser origin, mainly for local
// frontend development.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// identityFromContext returns the identity set by AuthMiddleware.
func identityFromContext(c *gin.Context) (domain.Identity, bool) {
	value, exists := c.Get(ContextIdentityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}

// mustIdentity aborts with 401 when no identity is present. Handlers behind
// AuthMiddleware use it to avoid repeating the existence check.
func mustIdentity(c *gin.Context) (domain.Identity, bool) {
	identity, ok := identityFromContext(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
	}
	return identity, ok
}

// abortWithError returns a JSON error response and aborts the request.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
