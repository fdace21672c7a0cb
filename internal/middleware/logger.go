package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RequestLogger 记录每个请求的方法、路由、状态码和耗时
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"route":   c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Info("Request")
	}
}
