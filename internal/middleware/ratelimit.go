package middleware

import (
	"net/http"
	"time"

	"github.com/KwnLnrd/Gallopin/internal/apperr"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit allows perMinute requests per minute across all callers, with
// bursts up to perMinute. The budget is shared by every route it wraps.
// A non-positive budget disables the limiter.
func RateLimit(name string, perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			rateLimitRejects.WithLabelValues(name).Inc()
			c.Header("Retry-After", "60")
			apperr.Message(c, http.StatusTooManyRequests, apperr.MsgRateLimited)
			return
		}
		c.Next()
	}
}
