package middleware

import (
    "time"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"
)

// RequestLogger logs one line per request through zap.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
    return func(c *gin.Context) {
        start := time.Now()
        c.Next()

        fields := []zap.Field{
            zap.String("method", c.Request.Method),
            zap.String("path", c.Request.URL.Path),
            zap.Int("status", c.Writer.Status()),
            zap.Duration("latency", time.Since(start)),
            zap.String("client_ip", c.ClientIP()),
        }
        if len(c.Errors) > 0 {
            fields = append(fields, zap.String("errors", c.Errors.String()))
        }
        switch {
        case c.Writer.Status() >= 500:
            logger.Error("request", fields...)
        case c.Writer.Status() >= 400:
            logger.Warn("request", fields...)
        default:
            logger.Debug("request", fields...)
        }
    }
}

// Recovery turns panics into 500 responses and logs them.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
    return gin.CustomRecovery(func(c *gin.Context, recovered any) {
        logger.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
        c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
    })
}
