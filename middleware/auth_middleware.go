package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/response"
	"github.com/venturemate/marketplace-go/types"
)

func claimsFrom(c *gin.Context) (*types.Claims, bool) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claims, ok := claimsVal.(*types.Claims)
	return claims, ok
}

// RequireRole gates a route on the caller's role from the JWT claims.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// AuthorizeUserOrAdmin allows the target user themselves or an admin.
func AuthorizeUserOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		idParam := c.Param("id")
		targetUID64, err := strconv.ParseUint(idParam, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
			return
		}

		if claims.UserID == uint(targetUID64) || claims.Role == models.RoleAdmin {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
	}
}
