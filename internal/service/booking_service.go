package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/UoaWDCC/uabc-web-sub002/internal/errs"
	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
)

// BookingService manages the booking lifecycle: admission, creation, moves
// and cancellation.
type BookingService struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

// NewBookingService creates a booking service. now defaults to time.Now when
// nil; tests inject a fixed clock.
func NewBookingService(store Store, log *zap.Logger, now func() time.Time) *BookingService {
	if now == nil {
		now = time.Now
	}
	return &BookingService{store: store, log: log, now: now}
}

// Create books the user into a session. The attempt is evaluated against a
// fresh read of the session's bookings; on admission the booking is persisted
// with the user's current role stamped on it, and a casual user's remaining
// session count is decremented in the same transaction.
func (s *BookingService) Create(ctx context.Context, userID string, req model.CreateBookingRequest) (*model.Booking, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	session, bookings, existing, err := s.sessionState(ctx, userID, req.GameSessionID)
	if err != nil {
		return nil, err
	}
	if err := EvaluateBooking(EligibilityInput{
		Session:         session,
		User:            user,
		SessionBookings: bookings,
		Existing:        existing,
		Now:             s.now(),
	}); err != nil {
		return nil, err
	}

	booking := &model.Booking{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		GameSessionID: session.ID,
		Role:          user.Role,
		PlayerLevel:   req.PlayerLevel,
	}
	err = s.store.InTransaction(ctx, func(tx Store) error {
		if err := tx.CreateBooking(ctx, booking); err != nil {
			return err
		}
		if user.Role == model.RoleCasual {
			user.RemainingSessions--
			return tx.UpdateUser(ctx, user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("user_id", user.ID),
		zap.String("session_id", session.ID))
	return booking, nil
}

// Update patches the user's booking. Changing the session is a move and is
// re-evaluated in full against the new session, with the booking itself
// excluded so a move back to a previous session is not rejected against its
// own seat. A player-level-only patch only requires the current session not
// to have started.
func (s *BookingService) Update(ctx context.Context, userID, bookingID string, patch model.UpdateBookingRequest) (*model.Booking, error) {
	// Lookup is filtered by owner: a foreign booking reads as not found.
	booking, err := s.store.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	if patch.GameSessionID != nil && *patch.GameSessionID != booking.GameSessionID {
		user, err := s.store.GetUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		session, bookings, existing, err := s.sessionState(ctx, userID, *patch.GameSessionID)
		if err != nil {
			return nil, err
		}
		if err := EvaluateBooking(EligibilityInput{
			Session:          session,
			User:             user,
			SessionBookings:  bookings,
			Existing:         existing,
			Now:              s.now(),
			ForUpdate:        true,
			ExcludeBookingID: booking.ID,
		}); err != nil {
			return nil, err
		}
		booking.GameSessionID = session.ID
	} else {
		session, err := s.store.GetGameSession(ctx, booking.GameSessionID)
		if err != nil {
			return nil, err
		}
		if session.StartTime.Before(s.now()) {
			return nil, errs.ErrSessionPassed
		}
	}

	if patch.PlayerLevel != nil {
		booking.PlayerLevel = *patch.PlayerLevel
	}
	if err := s.store.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Cancel removes the user's booking before the session starts and refunds a
// casual booking back onto the user's remaining count.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID string) error {
	booking, err := s.store.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return err
	}
	session, err := s.store.GetGameSession(ctx, booking.GameSessionID)
	if err != nil && !errors.Is(err, errs.ErrSessionNotFound) {
		return err
	}
	if session != nil && session.StartTime.Before(s.now()) {
		return errs.ErrSessionPassed
	}

	return s.store.InTransaction(ctx, func(tx Store) error {
		if err := tx.DeleteBooking(ctx, booking.ID); err != nil {
			return err
		}
		if booking.Role != model.RoleCasual {
			return nil
		}
		user, err := tx.GetUser(ctx, booking.UserID)
		if err != nil {
			return err
		}
		user.RemainingSessions++
		return tx.UpdateUser(ctx, user)
	})
}

// ListForUser returns the user's bookings.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]model.Booking, error) {
	return s.store.ListBookingsByUser(ctx, userID)
}

// sessionState loads the target session together with its bookings and the
// user's existing booking on it. A session that does not resolve comes back
// nil so the evaluator reports it as the first failing check.
func (s *BookingService) sessionState(ctx context.Context, userID, sessionID string) (*model.GameSession, []model.Booking, *model.Booking, error) {
	session, err := s.store.GetGameSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errs.ErrSessionNotFound) {
			return nil, nil, nil, nil
		}
		return nil, nil, nil, err
	}
	bookings, err := s.store.ListBookingsBySession(ctx, session.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	existing, err := s.store.FindBookingByUserAndSession(ctx, userID, session.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	return session, bookings, existing, nil
}
