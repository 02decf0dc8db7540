package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoStore marks responses that change with every booking write.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
	}
}
