package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/sjperalta/fintera-amortization/pkg/logger"
)

// RateLimit rejects requests beyond rps (with burst) across the whole service.
// A non-positive rps disables the limit.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			logger.FromContext(c.Request.Context()).Warn("Rate limit exceeded", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "demasiadas solicitudes, intente más tarde"})
			return
		}
		c.Next()
	}
}
