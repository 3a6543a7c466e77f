package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trapham24065/api-contact-book/internal/auth"
	"github.com/trapham24065/api-contact-book/internal/logger"
	"github.com/trapham24065/api-contact-book/internal/models"
	"github.com/trapham24065/api-contact-book/internal/repositories"
)

// CurrentUserKey is where AuthMiddleware stores the authenticated user in
// the gin context. The user travels as an explicit request-scoped value;
// nothing downstream re-parses the token.
const CurrentUserKey = "currentUser"

// AuthMiddleware validates the bearer token and loads the account fresh
// from the database, so status changes and soft deletes take effect on the
// very next request of an already-issued token.
func AuthMiddleware(issuer *auth.TokenIssuer, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authorization header missing or invalid",
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
			})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
			})
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
			})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user set by AuthMiddleware, or nil outside an
// authenticated route.
func CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequireAdmin rejects non-administrator accounts.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !auth.CanManageUsers(user) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Access denied: insufficient permissions",
			})
			return
		}
		c.Next()
	}
}
