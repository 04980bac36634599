package api

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger tags each request with an id (taken from X-Request-ID or
// freshly generated) and logs one line per request once it is served.
func RequestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(common.RequestIDHeaderName)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(RequestIDKey, reqID)
		c.Header(common.RequestIDHeaderName, reqID)

		c.Next()

		l.Info(c.Request.Context(), "request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// Recovery turns a handler panic into a logged 500.
func Recovery(l logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		l.Error(c.Request.Context(), "panic recovered", "request_id", c.GetString(RequestIDKey), "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": internalErrorMessage})
	})
}

// RequireToken admits requests carrying "Authorization: Bearer <token>" with a
// valid token and exposes the token's user id under UserIDKey.
func (h *Handler) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader(common.AuthorizationHeaderName))
		if err != nil {
			h.respondError(c, err)
			c.Abort()
			return
		}

		userID, err := h.users.Authenticate(token)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				h.logger.Debug(c.Request.Context(), "expired token", "request_id", c.GetString(RequestIDKey))
				err = common.ErrInvalidToken
			}
			h.respondError(c, err)
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header. A header
// without the Bearer scheme or without a token is ErrAccessDenied; a Bearer
// header carrying more than one token is ErrInvalidToken.
func bearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) < 2 || !strings.EqualFold(parts[0], common.BearerScheme) {
		return "", common.ErrAccessDenied
	}
	if len(parts) > 2 {
		return "", common.ErrInvalidToken
	}
	return parts[1], nil
}
