package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
)

// Context keys set by RequireAuth.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// RequireAuth validates the bearer token and stores the caller's identity in
// the gin context.
func RequireAuth(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := m.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects callers whose token does not carry the admin role.
// Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if RoleFrom(c) != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// UserIDFrom returns the authenticated user id set by RequireAuth.
func UserIDFrom(c *gin.Context) string {
	id, _ := c.Value(ContextUserID).(string)
	return id
}

// RoleFrom returns the authenticated role set by RequireAuth.
func RoleFrom(c *gin.Context) model.Role {
	role, _ := c.Value(ContextRole).(model.Role)
	return role
}
