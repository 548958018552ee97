package middleware

import (
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/response"
	"github.com/nftpro1212/frons-pos/pkg/utils"
)

// AuthMiddleware authenticates requests with a Bearer access token and
// stores the staff member's identity and permissions on the context.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_roles", claims.Roles)
		c.Set("user_permissions", claims.Permissions)

		c.Next()
	}
}

// RequirePermission rejects requests whose token does not carry the
// named permission. Permissions are granted through roles; the token
// holds the flattened set.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get("user_permissions")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		permissions, ok := val.([]string)
		if !ok || !slices.Contains(permissions, permission) {
			response.Forbidden(c, "You do not have permission to perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole rejects requests unless the token carries at least one of
// the named roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get("user_roles")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		userRoles, ok := val.([]string)
		if !ok {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		for _, role := range userRoles {
			if slices.Contains(roles, role) {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Insufficient role privileges")
		c.Abort()
	}
}
