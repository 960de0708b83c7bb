package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"detailwave.be/booking-api/pkg/global"
)

// CartSessionMiddleware validates the session id carried by every cart route
// before any store access happens.
func CartSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		if len(sessionID) < 3 || len(sessionID) > 100 {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid session id", []global.ValidationError{
				{Field: "sessionId", Message: "Session id must be between 3 and 100 characters", Code: "invalid_format"},
			}))
			c.Abort()
			return
		}

		c.Set("sessionId", sessionID)
		c.Next()
	}
}
