package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopping-cart/models"
	"shopping-cart/repositories"
	"shopping-cart/utils"
)

// AuthMiddleware validates the bearer token and attaches the referenced
// user to the context. A valid token whose user no longer exists is
// treated the same as an invalid token.
func AuthMiddleware(users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid or expired token"})
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid or expired token"})
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to load user"})
			}
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// AdminMiddleware layers on top of AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user")
		user, ok := value.(*models.User)
		if !exists || !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Authentication required"})
			c.Abort()
			return
		}

		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, models.ErrorResponse{Message: "Access denied. Admin role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
