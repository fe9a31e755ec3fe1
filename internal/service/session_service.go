package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/UoaWDCC/uabc-web-sub002/internal/errs"
	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
)

// GameSessionService manages individual game sessions, including ad-hoc
// sessions created without a schedule.
type GameSessionService struct {
	store Store
	log   *zap.Logger
}

// NewGameSessionService creates a game session service.
func NewGameSessionService(store Store, log *zap.Logger) *GameSessionService {
	return &GameSessionService{store: store, log: log}
}

// Create persists an ad-hoc session. When a schedule ref is given it must
// belong to the same semester as the session.
func (s *GameSessionService) Create(ctx context.Context, req model.CreateGameSessionRequest) (*model.GameSession, error) {
	if _, err := s.store.GetSemester(ctx, req.SemesterID); err != nil {
		return nil, err
	}
	if req.ScheduleID != nil {
		schedule, err := s.store.GetSchedule(ctx, *req.ScheduleID)
		if err != nil {
			return nil, err
		}
		if schedule.SemesterID != req.SemesterID {
			return nil, errs.NewValidationError("schedule_id", "schedule belongs to a different semester")
		}
	}
	session := &model.GameSession{
		ID:                    uuid.New().String(),
		Name:                  req.Name,
		Location:              req.Location,
		StartTime:             req.StartTime,
		EndTime:               req.EndTime,
		OpenTime:              req.OpenTime,
		Capacity:              req.Capacity,
		CasualCapacity:        req.CasualCapacity,
		SemesterID:            req.SemesterID,
		GameSessionScheduleID: req.ScheduleID,
	}
	if err := s.store.CreateGameSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns a session by id.
func (s *GameSessionService) Get(ctx context.Context, id string) (*model.GameSession, error) {
	return s.store.GetGameSession(ctx, id)
}

// ListBySemester returns the semester's sessions, materialized and ad hoc.
func (s *GameSessionService) ListBySemester(ctx context.Context, semesterID string) ([]model.GameSession, error) {
	return s.store.ListGameSessionsBySemester(ctx, semesterID)
}

// Attendance returns how many bookings the session holds in total and in the
// casual pool.
func (s *GameSessionService) Attendance(ctx context.Context, sessionID string) (total, casual int, err error) {
	bookings, err := s.store.ListBookingsBySession(ctx, sessionID)
	if err != nil {
		return 0, 0, err
	}
	for _, b := range bookings {
		if b.Role == model.RoleCasual {
			casual++
		}
	}
	return len(bookings), casual, nil
}

// Update patches the session's own fields.
func (s *GameSessionService) Update(ctx context.Context, id string, req model.UpdateGameSessionRequest) (*model.GameSession, error) {
	session, err := s.store.GetGameSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		session.Name = *req.Name
	}
	if req.Location != nil {
		session.Location = *req.Location
	}
	if req.StartTime != nil {
		session.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		session.EndTime = *req.EndTime
	}
	if req.OpenTime != nil {
		session.OpenTime = *req.OpenTime
	}
	if req.Capacity != nil {
		session.Capacity = *req.Capacity
	}
	if req.CasualCapacity != nil {
		session.CasualCapacity = *req.CasualCapacity
	}
	if err := s.store.UpdateGameSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Delete removes a session; with cascade its bookings are removed in the same
// transaction.
func (s *GameSessionService) Delete(ctx context.Context, id string, cascade bool) error {
	if _, err := s.store.GetGameSession(ctx, id); err != nil {
		return err
	}
	err := s.store.InTransaction(ctx, func(tx Store) error {
		if cascade {
			if err := tx.DeleteBookingsBySession(ctx, id); err != nil {
				return err
			}
		}
		return tx.DeleteGameSession(ctx, id)
	})
	if err != nil {
		// Only the lookup above reports not-found; transaction failures
		// are internal.
		return fmt.Errorf("delete session %s: %v", id, err)
	}
	return nil
}
