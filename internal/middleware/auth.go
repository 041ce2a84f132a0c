package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mettlehq/ats-api/internal/auth"
	apierrors "github.com/mettlehq/ats-api/internal/errors"
	"github.com/mettlehq/ats-api/internal/models"
	"github.com/mettlehq/ats-api/internal/services"
)

// ContextKeyUser is the gin context key the authenticated user is stored under.
const ContextKeyUser = "current_user"

// RequireAuth authenticates the request from its bearer token. The token is
// validated statelessly, then the subject is resolved against the user table;
// a token whose user no longer exists is rejected. Inactive accounts are
// turned away before any handler runs.
func RequireAuth(authService *services.AuthService, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ParseBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			apierrors.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		userID, err := auth.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			apierrors.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		user, err := authService.GetUser(userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				apierrors.Unauthorized(c, "Could not validate credentials")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		if !user.IsActive {
			apierrors.BadRequest(c, "Inactive user")
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// RequireRole passes requests through only when the authenticated user's role
// is in the allowed set. It must run after RequireAuth.
func RequireRole(allowed ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := GetCurrentUser(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		for _, role := range allowed {
			if user.Role == role {
				c.Next()
				return
			}
		}

		apierrors.Forbidden(c, "Operation not permitted")
		c.Abort()
	}
}

// GetCurrentUser retrieves the authenticated user from the context
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, false
	}
	return user, true
}
