package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/antoninkin/parkmate-app/internal/domain/user"
	"github.com/antoninkin/parkmate-app/internal/handler/httperr"
	"github.com/antoninkin/parkmate-app/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errMissingToken = httperr.New("access token required")
	errNoActor      = httperr.New("no authenticated actor in context")
	errNotAdmin     = httperr.New("admin role required")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errNoActor, "Internal server error", nil)
			return
		}
		if !actor.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, errNotAdmin, "Admin privileges required", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetActor(c *gin.Context) (user.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return user.Actor{}, false
	}
	actor, ok := v.(user.Actor)
	return actor, ok
}

// SetActor is used by tests that bypass token validation.
func SetActor(c *gin.Context, actor user.Actor) {
	c.Set(ctxActorKey, actor)
}
