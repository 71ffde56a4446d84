package middlewares

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/messaging-api/internal/domain/user"
	"jan-server/services/messaging-api/internal/infrastructure/auth"
	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

const currentUserKey = "current_user"

// UserResolver maps a verified identity to a stored user, registering it on first sight.
type UserResolver func(ctx context.Context, identity user.Identity) (*user.User, error)

// CurrentUser loads the caller's user record. It must run after the auth middleware.
func CurrentUser(resolve UserResolver, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := auth.IdentityFrom(c)
		if !ok {
			platformerrors.WriteUnauthorized(c, "unauthenticated request")
			return
		}

		current, err := resolve(c.Request.Context(), identity)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}

		c.Set(currentUserKey, current)
		c.Next()
	}
}

// CurrentUserFrom returns the user stored by CurrentUser.
func CurrentUserFrom(c *gin.Context) (*user.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	current, ok := value.(*user.User)
	return current, ok && current != nil
}
