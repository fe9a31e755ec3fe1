package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain sentinel errors, mapped to HTTP codes in handlers.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSemesterNotFound = errors.New("semester not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrBookingNotFound  = errors.New("booking not found")

	// Booking eligibility rejections. Each maps to exactly one check so
	// callers see a single deterministic reason.
	ErrBookingNotOpen      = errors.New("booking not open yet")
	ErrSessionPassed       = errors.New("session start time has already passed")
	ErrSessionFull         = errors.New("session full for role")
	ErrAlreadyBooked       = errors.New("already booked")
	ErrNoRemainingSessions = errors.New("no remaining sessions")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// ValidationError carries field-level messages for a rejected input.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for one field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation: " + strings.Join(parts, "; ")
}
