package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sunward-optics/frametag/internal/logger"
	"github.com/sunward-optics/frametag/internal/processor"
)

// RequestLogger logs each request after it completes.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
		)
	}
}

// RateLimit rejects requests once the limiter's burst is exhausted.
func RateLimit(limiter *processor.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorMessage("rate limit exceeded"))
			return
		}
		c.Next()
	}
}
