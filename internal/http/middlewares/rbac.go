package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/astrolaunch/launchpad/internal/config"
	"github.com/astrolaunch/launchpad/internal/domain/user"
	"github.com/gin-gonic/gin"
)

type UserGetter interface {
	GetByID(ctx context.Context, id string) (user.User, error)
}

// RequireAdmin runs after RequireAuth. The role baked into the token is not
// trusted; the user record is re-fetched so a demoted or deleted account
// loses admin access as soon as its next request, not when the token expires.
func (m *AuthMiddleware) RequireAdmin(users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := UserIDFromContext(c)

		if !ok || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}

		ctx, cancel := config.WithTimeout(2 * time.Second)
		defer cancel()

		u, err := users.GetByID(ctx, id)

		if err != nil || u.Role != user.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			return
		}

		c.Next()
	}
}
