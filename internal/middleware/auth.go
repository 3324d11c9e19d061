package middleware

import (
	"net/http"
	"strings"

	"qa-forum-backend/internal/apperrors"
	"qa-forum-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key carrying the verified session
// identity.
const UserIDKey = "userId"

type errorBody struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// SessionAuth verifies the Bearer token on protected routes and stores
// the embedded user id on the context. A missing, expired or invalid
// token is a 403; identity mismatches are judged later, in the services.
func SessionAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, errorBody{Message: "Missing authentication token in request."})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusForbidden, errorBody{Message: "Invalid authorization header format."})
			return
		}

		userID, err := authService.ValidateToken(parts[1])
		if err != nil {
			status := http.StatusForbidden
			if appErr, ok := err.(*apperrors.Error); ok {
				status = appErr.Status
			}
			c.AbortWithStatusJSON(status, errorBody{Message: err.Error()})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
