package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
)

// IdentityKey is the gin context key the session middleware stores the
// authenticated *domain.User under.
const IdentityKey = "identity"

// Session resolves the Authorization header into an identity. It never
// aborts: a missing header, a malformed or expired token, or an unknown
// subject all leave the request anonymous and let the route decide whether
// that matters.
func Session(tokens domain.TokenService, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(IdentityKey); exists {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		tokenString = strings.TrimSpace(tokenString)
		if !ok || tokenString == "" {
			c.Next()
			return
		}

		subject, err := tokens.ExtractSubject(tokenString)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), subject)
		if err != nil || user == nil {
			c.Next()
			return
		}

		c.Set(IdentityKey, user)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests. It must run after Session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(IdentityKey); !exists {
			abortJSON(c, http.StatusUnauthorized, "Authentication required", "UNAUTHENTICATED")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity set by Session, or nil for anonymous
// requests.
func CurrentUser(c *gin.Context) *domain.User {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return user
}

func abortJSON(c *gin.Context, code int, message, errorCode string) {
	c.JSON(code, gin.H{
		"error": message,
		"code":  errorCode,
	})
	c.Abort()
}
