package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/venturemate/marketplace-go/types"
)

// GetActorFromContext turns the JWT claims set by the auth middleware into
// the explicit actor the service layer works with.
var GetActorFromContext = func(c *gin.Context) (types.Actor, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return types.Actor{}, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return types.Actor{}, errors.New("invalid user claims type")
	}

	return types.Actor{UserID: claims.UserID, Role: claims.Role}, nil
}
