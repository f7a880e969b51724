package middleware

import (
	"log"
	"main/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// EnhancedRecoveryMiddleware converts panics into 500s and records them in
// the error counter instead of tearing down the connection.
func EnhancedRecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID, _ := c.Get("request_id")
				log.Printf("Panic recovered (request %v): %v", requestID, err)
				utils.TrackError("http", "panic")
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
