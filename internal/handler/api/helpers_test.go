//go:build unit

package api_test

import (
	"net/http"

	"hecho-core/internal/domain/user"
	"hecho-core/internal/handler/middleware"
	"hecho-core/internal/usecase"

	"github.com/gin-gonic/gin"
)

var testPrincipal = usecase.Principal{UserID: "user-1", OrgID: "org-1", Role: user.RoleAdmin}

// mockAuth stands in for RequireAuth: any bearer header authenticates as p.
func mockAuth(p usecase.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetPrincipal(c, p)
		c.Next()
	}
}
