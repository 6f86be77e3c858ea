package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Abaneee/social-pulse/cmd/api/auth"
	"github.com/Abaneee/social-pulse/cmd/api/services"
	"github.com/Abaneee/social-pulse/internal/logger"
)

// ContextUserID is the gin context key holding the authenticated
// user's ID.
const ContextUserID = "user_id"

// AuthRequired verifies the Bearer access token and stores the user ID
// in the gin context.
func AuthRequired(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		userID, err := authSvc.ParseAccessToken(token)
		if err != nil {
			logger.Log.Debugf("token parse error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID reads the authenticated user's ID from the gin context.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
