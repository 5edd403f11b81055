package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Websocket upgrades hold the connection open; their duration
		// is connection lifetime, not handler latency.
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"author", extractAuthor(c),
		)
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// corsHeaders answers preflights and opens the API to browser clients.
// The dashboard is served from a different origin in every deployment.
func corsHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// apiKeyAuth requires the configured key in the X-API-Key header.
func apiKeyAuth(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
			return
		}
		c.Next()
	}
}

// extractAuthor reads the acting user from proxy headers.
// Priority: X-Forwarded-User > X-Forwarded-Email > X-Remote-User >
// "api-client".
func extractAuthor(c *gin.Context) string {
	if user := c.GetHeader("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.GetHeader("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.GetHeader("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}
