package server

import (
	"net/http"
	"strconv"
	"time"

	"auction-bidding-engine/services/bidding/helpers"
	"auction-bidding-engine/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing and a request id
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	requestID := utils.NewRequestID()
	c.Set("request_id", requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}

// CurrentUserMiddleware resolves the caller's identity from the X-User-ID
// header set by the external identity layer. The core trusts this id and
// performs no authentication itself.
func CurrentUserMiddleware(c *gin.Context) {
	raw := c.GetHeader("X-User-ID")
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		utils.JSONError(c, http.StatusUnauthorized, errMissingIdentity, "authentication required")
		c.Abort()
		return
	}
	c.Set(helpers.UserIDKey, userID)
	c.Next()
}
