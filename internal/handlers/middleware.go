package handlers

import (
	"bytes"
	"io"
	"time"

	"tesoro-api/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog represents a structured log entry for an HTTP request
type RequestLog struct {
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Query     string    `json:"query"`
	UserAgent string    `json:"user_agent"`
	ClientIP  string    `json:"client_ip"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// maxLoggedBodyBytes caps how much of a candidate transition ends up in the
// request log; full transitions can be large and are hashed into the audit
// row anyway.
const maxLoggedBodyBytes = 4096

// LogRequest logs incoming requests with a truncated body. Only wired
// outside release mode.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}
		if len(body) > maxLoggedBodyBytes {
			body = body[:maxLoggedBodyBytes]
		}

		entry := RequestLog{
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Query:     c.Request.URL.RawQuery,
			UserAgent: c.Request.UserAgent(),
			ClientIP:  c.ClientIP(),
			Body:      string(body),
			Timestamp: time.Now().UTC(),
		}
		logger.Debug("Incoming request",
			zap.String("method", entry.Method),
			zap.String("path", entry.Path),
			zap.String("query", entry.Query),
			zap.String("client_ip", entry.ClientIP),
			zap.String("body", entry.Body),
		)

		c.Next()
	}
}
