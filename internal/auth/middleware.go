package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wenlaunch/proposal-backend/internal/apperrors"
)

// TokenHeader carries the access token on protected routes.
const TokenHeader = "X-Auth-Token"

// RequireAuth aborts with 401 unless the request carries a valid token.
func RequireAuth(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !svc.Verify(c.GetHeader(TokenHeader)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "Unauthorized",
				"code":  apperrors.ErrCodeUnauthorized,
			})
			return
		}

		c.Next()
	}
}
