package middleware

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/chamberhq/venuebook/internal/helpers"
	"github.com/chamberhq/venuebook/internal/metrics"
	"github.com/chamberhq/venuebook/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoginPath is where unauthenticated admin calls are pointed back to.
const LoginPath = "/admin/login"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// Process request
		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// ErrorHandler provides centralized error handling
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			// Don't return error details in production
			c.JSON(500, gin.H{
				"error":      "Internal server error",
				"request_id": requestID,
			})
		}
	}
}

// Metrics counts requests per route and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTP(route, strconv.Itoa(c.Writer.Status()))
	}
}

// AdminAuth gates the admin console. It validates the access_token cookie
// against the Supabase JWKS, attempting one refresh via the refresh_token
// cookie when validation fails, and stores the verified identity in the
// request context for the handlers to pass down explicitly.
func AdminAuth(authService *services.AuthService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil {
			rejectToLogin(c, "admin session not found")
			return
		}

		claims, err := helpers.ValidateToken(token)
		if err != nil {
			refreshToken, refreshErr := c.Cookie("refresh_token")
			if refreshErr != nil {
				rejectToLogin(c, err.Error())
				return
			}

			tokenRes, refreshErr := authService.RefreshToken(c.Request.Context(), refreshToken)
			if refreshErr != nil {
				logger.Error("Token refresh failed", "error", refreshErr)
				rejectToLogin(c, "session expired and refresh failed")
				return
			}

			logger.Info("Admin token refreshed",
				"user_id", tokenRes.User.ID,
				"expires_in", tokenRes.ExpiresIn,
			)
			SetSessionCookies(c, tokenRes.AccessToken, tokenRes.RefreshToken, tokenRes.ExpiresIn)

			token = tokenRes.AccessToken
			claims, err = helpers.ValidateToken(token)
			if err != nil {
				rejectToLogin(c, "refreshed token validation failed")
				return
			}
		}

		ident := &helpers.AdminIdentity{
			UserID:      claims.Subject,
			Email:       claims.Email,
			AccessToken: token,
		}

		c.Set("admin", ident)
		c.Next()
	}
}

// AdminFromContext returns the identity AdminAuth stored, or nil when the
// request never passed the gate.
func AdminFromContext(c *gin.Context) *helpers.AdminIdentity {
	value, exists := c.Get("admin")
	if !exists {
		return nil
	}
	ident, ok := value.(*helpers.AdminIdentity)
	if !ok {
		return nil
	}
	return ident
}

// SetSessionCookies installs the admin session tokens.
func SetSessionCookies(c *gin.Context, accessToken, refreshToken string, expiresIn int) {
	isProduction := os.Getenv("GIN_MODE") == "production"
	c.SetCookie("access_token", accessToken, expiresIn, "/", "", isProduction, true)
	c.SetCookie("refresh_token", refreshToken, 3600*24*30, "/", "", isProduction, true)
}

// ClearSessionCookies logs the admin out.
func ClearSessionCookies(c *gin.Context) {
	isProduction := os.Getenv("GIN_MODE") == "production"
	c.SetCookie("access_token", "", -1, "/", "", isProduction, true)
	c.SetCookie("refresh_token", "", -1, "/", "", isProduction, true)
}

func rejectToLogin(c *gin.Context, reason string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"message":     "Unauthorized access",
		"error":       reason,
		"redirect_to": LoginPath,
	})
	c.Abort()
}
