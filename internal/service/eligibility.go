package service

import (
	"time"

	"github.com/UoaWDCC/uabc-web-sub002/internal/errs"
	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
)

// EligibilityInput is everything EvaluateBooking needs to decide a booking
// attempt. Session is nil when the target session did not resolve. Existing
// is the user's current booking on the session, nil when there is none.
// ExcludeBookingID names the booking being updated so it never counts
// against capacity or the duplicate rule.
type EligibilityInput struct {
	Session          *model.GameSession
	User             *model.User
	SessionBookings  []model.Booking
	Existing         *model.Booking
	Now              time.Time
	ForUpdate        bool
	ExcludeBookingID string
}

// EvaluateBooking decides whether a booking attempt is admitted. It returns
// nil to admit, or exactly one rejection sentinel from internal/errs. Checks
// run in a fixed order and short-circuit at the first failure, so callers
// always see a single deterministic reason. The function reads its inputs
// only; it never touches the store.
func EvaluateBooking(in EligibilityInput) error {
	if in.Session == nil {
		return errs.ErrSessionNotFound
	}
	if in.Now.Before(in.Session.OpenTime) {
		return errs.ErrBookingNotOpen
	}
	if in.ForUpdate && in.Session.StartTime.Before(in.Now) {
		return errs.ErrSessionPassed
	}

	// Casual bookings count against the casual pool; member and admin
	// bookings count against the full pool. The pool a booking belongs to
	// is the role recorded on the booking, not the booker's current role.
	var count, limit int
	switch in.User.Role {
	case model.RoleCasual:
		limit = in.Session.CasualCapacity
		for _, b := range in.SessionBookings {
			if b.ID != in.ExcludeBookingID && b.Role == model.RoleCasual {
				count++
			}
		}
	case model.RoleMember, model.RoleAdmin:
		limit = in.Session.Capacity
		for _, b := range in.SessionBookings {
			if b.ID != in.ExcludeBookingID {
				count++
			}
		}
	}
	if count >= limit {
		return errs.ErrSessionFull
	}

	if in.Existing != nil && in.Existing.ID != in.ExcludeBookingID {
		return errs.ErrAlreadyBooked
	}

	if in.User.Role == model.RoleCasual && in.User.RemainingSessions <= 0 && !in.ForUpdate {
		return errs.ErrNoRemainingSessions
	}
	return nil
}
