package middleware

import (
	"net/http"
	"strings"

	"gorent/internal/models"
	"gorent/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the bearer token and resolves the caller's identity
// and role into the request context. Handlers downstream read typed values,
// never raw header data.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Bearer token required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		role := models.UserRole(claims.Role)
		if !role.Valid() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid role in token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", role)

		c.Next()
	}
}

// OwnerRequired guards routes only vehicle owners may use.
func OwnerRequired() gin.HandlerFunc {
	return roleRequired(models.UserRoleOwner)
}

// RenterRequired guards routes only renters may use.
func RenterRequired() gin.HandlerFunc {
	return roleRequired(models.UserRoleRenter)
}

func roleRequired(want models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		role, ok := value.(models.UserRole)
		if !ok || role != want {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
