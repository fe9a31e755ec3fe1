package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
	"github.com/UoaWDCC/uabc-web-sub002/internal/recurrence"
)

// ScheduleService manages weekly game-session schedules and the sessions
// materialized from them. Expansion runs in the club's local timezone: stored
// timestamps come back from postgres as bare instants, so the term dates are
// re-anchored into loc before the weekday walk.
type ScheduleService struct {
	store Store
	loc   *time.Location
	log   *zap.Logger
}

// NewScheduleService creates a schedule service.
func NewScheduleService(store Store, loc *time.Location, log *zap.Logger) *ScheduleService {
	return &ScheduleService{store: store, loc: loc, log: log}
}

// Create persists the schedule and materializes one game session per
// occurrence of its weekday within the semester, as one transaction: either
// the schedule and all of its sessions exist afterwards, or none do.
func (s *ScheduleService) Create(ctx context.Context, req model.CreateScheduleRequest) (*model.GameSessionSchedule, []*model.GameSession, error) {
	semester, err := s.store.GetSemester(ctx, req.SemesterID)
	if err != nil {
		return nil, nil, err
	}

	schedule := &model.GameSessionSchedule{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Location:       req.Location,
		Day:            req.Day,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Capacity:       req.Capacity,
		CasualCapacity: req.CasualCapacity,
		SemesterID:     semester.ID,
	}
	sessions := BuildSessions(schedule, semester, s.loc)

	err = s.store.InTransaction(ctx, func(tx Store) error {
		if err := tx.CreateSchedule(ctx, schedule); err != nil {
			return err
		}
		if len(sessions) == 0 {
			return nil
		}
		return tx.CreateGameSessions(ctx, sessions)
	})
	if err != nil {
		return nil, nil, err
	}
	s.log.Info("schedule created",
		zap.String("schedule_id", schedule.ID),
		zap.String("semester_id", semester.ID),
		zap.Int("sessions", len(sessions)))
	return schedule, sessions, nil
}

// Get returns a schedule by id.
func (s *ScheduleService) Get(ctx context.Context, id string) (*model.GameSessionSchedule, error) {
	return s.store.GetSchedule(ctx, id)
}

// ListBySemester returns the semester's schedules.
func (s *ScheduleService) ListBySemester(ctx context.Context, semesterID string) ([]model.GameSessionSchedule, error) {
	return s.store.ListSchedulesBySemester(ctx, semesterID)
}

// Update replaces the schedule's own fields. Already-materialized sessions
// are left as they are; regenerating them is a create-time concern.
func (s *ScheduleService) Update(ctx context.Context, id string, req model.CreateScheduleRequest) (*model.GameSessionSchedule, error) {
	schedule, err := s.store.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	schedule.Name = req.Name
	schedule.Location = req.Location
	schedule.Day = req.Day
	schedule.StartTime = req.StartTime
	schedule.EndTime = req.EndTime
	schedule.Capacity = req.Capacity
	schedule.CasualCapacity = req.CasualCapacity
	if err := s.store.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// Delete removes a schedule. With cascade, its sessions and their bookings go
// with it in one transaction; a failure at any step rolls the whole deletion
// back. Without cascade only the schedule row is removed and its sessions are
// left referencing the deleted id.
func (s *ScheduleService) Delete(ctx context.Context, id string, cascade bool) error {
	// Resolve before opening the transaction so a missing target surfaces
	// as not-found rather than a transaction failure.
	if _, err := s.store.GetSchedule(ctx, id); err != nil {
		return err
	}
	err := s.store.InTransaction(ctx, func(tx Store) error {
		if cascade {
			if err := deleteScheduleChildren(ctx, tx, id); err != nil {
				return err
			}
		}
		return tx.DeleteSchedule(ctx, id)
	})
	if err != nil {
		// Only the lookup above reports not-found; transaction failures
		// are internal.
		return fmt.Errorf("delete schedule %s: %v", id, err)
	}
	return nil
}

// deleteScheduleChildren removes the schedule's sessions and their bookings,
// deepest level first. Shared with the semester cascade.
func deleteScheduleChildren(ctx context.Context, tx Store, scheduleID string) error {
	sessions, err := tx.ListGameSessionsBySchedule(ctx, scheduleID)
	if err != nil {
		return err
	}
	for _, session := range sessions {
		if err := tx.DeleteBookingsBySession(ctx, session.ID); err != nil {
			return err
		}
	}
	for _, session := range sessions {
		if err := tx.DeleteGameSession(ctx, session.ID); err != nil {
			return err
		}
	}
	return nil
}

// BuildSessions expands the schedule's weekday over the semester and builds
// one unpersisted session per date. The session's date comes from the
// expansion, its clock from the schedule, and its open time from the
// semester's booking-open day and clock. Term dates are re-anchored into loc
// so the weekday and break-boundary comparisons key on club-local calendar
// dates, whatever location the stored timestamps came back in.
func BuildSessions(schedule *model.GameSessionSchedule, semester *model.Semester, loc *time.Location) []*model.GameSession {
	dates := recurrence.Weekly(schedule.Day.Time(), recurrence.Term{
		Start:      semester.StartDate.In(loc),
		End:        semester.EndDate.In(loc),
		BreakStart: semester.BreakStart.In(loc),
		BreakEnd:   semester.BreakEnd.In(loc),
	})
	sessions := make([]*model.GameSession, 0, len(dates))
	for _, date := range dates {
		scheduleID := schedule.ID
		sessions = append(sessions, &model.GameSession{
			ID:                    uuid.New().String(),
			Name:                  schedule.Name,
			Location:              schedule.Location,
			StartTime:             recurrence.CombineDateTime(date, schedule.StartTime),
			EndTime:               recurrence.CombineDateTime(date, schedule.EndTime),
			OpenTime:              recurrence.OpenTimeFor(date, semester.BookingOpenDay.Time(), semester.BookingOpenTime),
			Capacity:              schedule.Capacity,
			CasualCapacity:        schedule.CasualCapacity,
			SemesterID:            semester.ID,
			GameSessionScheduleID: &scheduleID,
		})
	}
	return sessions
}

// MaterializeSessions persists one session per expansion date for an existing
// schedule. Creation is a single batch: if any row fails the batch fails,
// and rows already written by the batch are not silently kept.
func (s *ScheduleService) MaterializeSessions(ctx context.Context, scheduleID string) ([]*model.GameSession, error) {
	schedule, err := s.store.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	semester, err := s.store.GetSemester(ctx, schedule.SemesterID)
	if err != nil {
		return nil, err
	}
	sessions := BuildSessions(schedule, semester, s.loc)
	if len(sessions) == 0 {
		return sessions, nil
	}
	err = s.store.InTransaction(ctx, func(tx Store) error {
		return tx.CreateGameSessions(ctx, sessions)
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
