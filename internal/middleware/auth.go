package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/checkin/backend/internal/apierror"
	"github.com/JonnyWalker81/checkin/backend/internal/logger"
	"github.com/JonnyWalker81/checkin/backend/internal/metrics"
	"github.com/JonnyWalker81/checkin/backend/pkg/supabase"
)

// UserIDHeader names the trusted user header read by HeaderAuth
const UserIDHeader = "X-User-ID"

// TokenVerifier resolves a bearer token to its user
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*supabase.User, error)
}

// Auth middleware to verify JWT tokens
func Auth(verifier TokenVerifier, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Ctx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Debug("authentication failed: missing authorization header")
			reject(c, m, "missing_header")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			log.Debug("authentication failed: invalid authorization format")
			reject(c, m, "malformed_header")
			return
		}

		user, err := verifier.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			log.Warn("authentication failed: token verification error", logger.Err(err))
			reject(c, m, "invalid_token")
			return
		}

		c.Set("user_email", user.Email)
		setUser(c, user.ID)
		log.Debug("authentication successful", logger.String("user_id", user.ID))

		c.Next()
	}
}

// HeaderAuth trusts the X-User-ID header set by an upstream gateway. Only for
// local development and deployments behind an authenticating proxy.
func HeaderAuth(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			logger.Ctx(c.Request.Context()).Debug("authentication failed: missing user header")
			reject(c, m, "missing_header")
			return
		}

		setUser(c, userID)
		c.Next()
	}
}

func setUser(c *gin.Context, userID string) {
	c.Set("user_id", userID)
	ctx := logger.WithUserID(c.Request.Context(), userID)
	c.Request = c.Request.WithContext(ctx)
}

func reject(c *gin.Context, m *metrics.Metrics, reason string) {
	m.AuthRejected(reason)
	apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
}
