package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"kdexpertise/config"
)

// AppTokenMiddleware gates write endpoints behind the shared application
// token sent by the site frontend in X-App-Token. It is a spam gate, not an
// authentication scheme; the captcha does the heavy lifting.
func AppTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := config.AppConfig.AppToken
		if expected == "" {
			// Token not configured; leave the gate open.
			c.Next()
			return
		}
		got := c.GetHeader("X-App-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Accès refusé"})
			return
		}
		c.Next()
	}
}
