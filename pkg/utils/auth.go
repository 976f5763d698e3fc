package utils

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/pkg/types"
)

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return 0, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return 0, errors.New("invalid user claims type")
	}

	return claims.UserID, nil
}

var GetUserNameFromContext = func(c *gin.Context) (string, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return "", errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return "", errors.New("invalid user claims type")
	}

	return claims.Username, nil
}

// IsSuperuserFromContext reads the superuser flag baked into the token.
func IsSuperuserFromContext(c *gin.Context) bool {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return false
	}
	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return false
	}
	return claims.IsSuperuser
}
