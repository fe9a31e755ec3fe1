package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/UoaWDCC/uabc-web-sub002/internal/errs"
)

// respondError maps domain errors to HTTP responses. Anything outside the
// known taxonomy is logged and surfaced as a generic internal error.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	var vErr *errs.ValidationError
	switch {
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrSemesterNotFound),
		errors.Is(err, errs.ErrScheduleNotFound),
		errors.Is(err, errs.ErrSessionNotFound),
		errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrBookingNotOpen):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrSessionFull),
		errors.Is(err, errs.ErrAlreadyBooked),
		errors.Is(err, errs.ErrSessionPassed),
		errors.Is(err, errs.ErrNoRemainingSessions),
		errors.Is(err, errs.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": vErr.Fields})
	default:
		log.Error("internal error", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "message": err.Error()})
}
