package api

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "internal error, try again later"

// statusFor maps a service error onto an HTTP status code. Anything that is
// not a known client error is a 500.
func statusFor(err error) int {
	switch common.KindOf(err) {
	case common.KindValidation:
		return http.StatusUnprocessableEntity
	case common.KindNotFound:
		return http.StatusNotFound
	case common.KindAuth:
		switch {
		case errors.Is(err, common.ErrAccessDenied):
			return http.StatusUnauthorized
		case errors.Is(err, common.ErrIncorrectPassword):
			return http.StatusUnprocessableEntity
		default:
			return http.StatusBadRequest
		}
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"msg": ...}. Server errors are logged with their cause
// and answered with a generic message.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "request failed",
			"request_id", c.GetString(RequestIDKey), "path", c.Request.URL.Path, "error", err)
		c.JSON(status, gin.H{"msg": internalErrorMessage})
		return
	}
	c.JSON(status, gin.H{"msg": err.Error()})
}
