package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"tesoro-api/internal/db"
	"tesoro-api/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	// ErrMissingAPIKey is returned when no API key accompanies the request
	ErrMissingAPIKey = errors.New("missing API key")
	// ErrInvalidAPIKey is returned when the presented API key is unknown
	ErrInvalidAPIKey = errors.New("invalid API key")
	// ErrExpiredAPIKey is returned when the presented API key has expired
	ErrExpiredAPIKey = errors.New("API key has expired")
)

// apiKeyFromRequest extracts the API key from the X-API-Key header or a
// "Bearer" Authorization header.
func apiKeyFromRequest(c *gin.Context) string {
	if key := c.GetHeader("X-API-Key"); key != "" {
		return key
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// validateAPIKey validates the API key: it must exist and not be expired.
func validateAPIKey(c *gin.Context, queries db.Querier, apiKey string) (db.ApiKey, error) {
	key, err := queries.GetAPIKeyByKey(c.Request.Context(), apiKey)
	if err != nil {
		return db.ApiKey{}, ErrInvalidAPIKey
	}
	if key.ExpiresAt.Valid && key.ExpiresAt.Time.Before(time.Now()) {
		return db.ApiKey{}, ErrExpiredAPIKey
	}
	return key, nil
}

// EnsureValidAPIKey is the authentication middleware for the protected
// route group. On success the resolved key record is stored in the request
// context under "api_key".
func EnsureValidAPIKey(queries db.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := apiKeyFromRequest(c)
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrMissingAPIKey.Error()})
			return
		}

		key, err := validateAPIKey(c, queries, apiKey)
		if err != nil {
			logger.Debug("API key rejected",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set("api_key", key)
		c.Next()
	}
}
