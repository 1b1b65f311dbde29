package middleware

import (
	"net/http"
	"strings"

	"github.com/KwnLnrd/Gallopin/internal/apperr"
	"github.com/KwnLnrd/Gallopin/internal/auth"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// AuthMiddleware requires "Authorization: Bearer <token>" and stores the
// subject and role on the context.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apperr.Message(c, http.StatusUnauthorized, apperr.MsgUnauthorized)
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apperr.Message(c, http.StatusUnauthorized, apperr.MsgUnauthorized)
			return
		}

		claims, err := validator.Validate(parts[1])
		if err != nil {
			apperr.Message(c, http.StatusUnauthorized, apperr.MsgUnauthorized)
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("role", claims.Role)
		c.Next()
	}
}
