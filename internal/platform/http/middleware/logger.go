package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// LoggerKey is the gin context key for the request-scoped logger.
const LoggerKey = "logger"

// ContextLogger attaches a logger carrying request_id, method, path and ip.
// It must run after RequestID.
func ContextLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := base.With().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("ip", c.ClientIP()).
			Logger()

		c.Set(LoggerKey, &log)
		c.Request = c.Request.WithContext(log.WithContext(c.Request.Context()))

		c.Next()
	}
}

// Logger returns the request-scoped logger, or a no-op logger outside a request chain.
func Logger(c *gin.Context) *zerolog.Logger {
	if log, ok := c.Get(LoggerKey); ok {
		if l, ok := log.(*zerolog.Logger); ok {
			return l
		}
	}
	nop := zerolog.Nop()
	return &nop
}

// AccessLog writes one line per request once the handler chain has finished.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		log := Logger(c)

		var e *zerolog.Event
		switch {
		case status >= 500:
			e = log.Error()
		case status >= 400:
			e = log.Warn()
		default:
			e = log.Info()
		}
		if len(c.Errors) > 0 {
			e = e.Str("errors", c.Errors.String())
		}

		e.Int("status", status).
			Dur("latency", time.Since(start)).
			Int("size", c.Writer.Size()).
			Str("user_agent", c.Request.UserAgent()).
			Msg("API")
	}
}
