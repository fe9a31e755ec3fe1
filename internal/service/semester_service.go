package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/UoaWDCC/uabc-web-sub002/internal/errs"
	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
)

// SemesterService manages semesters and their cascading deletion. Term dates
// are stored in the club's local timezone so break boundaries fall on the
// calendar days the operator entered.
type SemesterService struct {
	store Store
	loc   *time.Location
	log   *zap.Logger
}

// NewSemesterService creates a semester service.
func NewSemesterService(store Store, loc *time.Location, log *zap.Logger) *SemesterService {
	return &SemesterService{store: store, loc: loc, log: log}
}

// Create validates the term ordering and persists the semester.
func (s *SemesterService) Create(ctx context.Context, req model.CreateSemesterRequest) (*model.Semester, error) {
	if err := validateTermDates(req); err != nil {
		return nil, err
	}
	semester := &model.Semester{
		ID:              uuid.New().String(),
		Name:            req.Name,
		StartDate:       req.StartDate.In(s.loc),
		EndDate:         req.EndDate.In(s.loc),
		BreakStart:      req.BreakStart.In(s.loc),
		BreakEnd:        req.BreakEnd.In(s.loc),
		BookingOpenDay:  req.BookingOpenDay,
		BookingOpenTime: req.BookingOpenTime,
	}
	if err := s.store.CreateSemester(ctx, semester); err != nil {
		return nil, err
	}
	return semester, nil
}

// Get returns a semester by id.
func (s *SemesterService) Get(ctx context.Context, id string) (*model.Semester, error) {
	return s.store.GetSemester(ctx, id)
}

// List returns all semesters.
func (s *SemesterService) List(ctx context.Context) ([]model.Semester, error) {
	return s.store.ListSemesters(ctx)
}

// Update replaces the semester's fields after re-validating the term
// ordering. Sessions already materialized from it are untouched.
func (s *SemesterService) Update(ctx context.Context, id string, req model.CreateSemesterRequest) (*model.Semester, error) {
	if err := validateTermDates(req); err != nil {
		return nil, err
	}
	semester, err := s.store.GetSemester(ctx, id)
	if err != nil {
		return nil, err
	}
	semester.Name = req.Name
	semester.StartDate = req.StartDate.In(s.loc)
	semester.EndDate = req.EndDate.In(s.loc)
	semester.BreakStart = req.BreakStart.In(s.loc)
	semester.BreakEnd = req.BreakEnd.In(s.loc)
	semester.BookingOpenDay = req.BookingOpenDay
	semester.BookingOpenTime = req.BookingOpenTime
	if err := s.store.UpdateSemester(ctx, semester); err != nil {
		return nil, err
	}
	return semester, nil
}

// Delete removes a semester. With cascade, every schedule under it is
// cascaded (bookings, then sessions, then the schedule), ad-hoc sessions and
// their bookings follow, and finally the semester itself, all in one
// transaction that rolls back entirely on any failure. Without cascade only
// the semester row is removed; children keep referencing the deleted id.
func (s *SemesterService) Delete(ctx context.Context, id string, cascade bool) error {
	if _, err := s.store.GetSemester(ctx, id); err != nil {
		return err
	}
	err := s.store.InTransaction(ctx, func(tx Store) error {
		if cascade {
			if err := s.deleteSemesterChildren(ctx, tx, id); err != nil {
				return err
			}
		}
		return tx.DeleteSemester(ctx, id)
	})
	if err != nil {
		// Only the lookup above reports not-found; transaction failures
		// are internal.
		return fmt.Errorf("delete semester %s: %v", id, err)
	}
	return nil
}

func (s *SemesterService) deleteSemesterChildren(ctx context.Context, tx Store, semesterID string) error {
	schedules, err := tx.ListSchedulesBySemester(ctx, semesterID)
	if err != nil {
		return err
	}
	for _, schedule := range schedules {
		if err := deleteScheduleChildren(ctx, tx, schedule.ID); err != nil {
			return err
		}
		if err := tx.DeleteSchedule(ctx, schedule.ID); err != nil {
			return err
		}
	}
	// Anything still listed is ad hoc or references a schedule that no
	// longer exists; neither is covered above.
	sessions, err := tx.ListGameSessionsBySemester(ctx, semesterID)
	if err != nil {
		return err
	}
	for _, session := range sessions {
		if err := tx.DeleteBookingsBySession(ctx, session.ID); err != nil {
			return err
		}
		if err := tx.DeleteGameSession(ctx, session.ID); err != nil {
			return err
		}
	}
	return nil
}

func validateTermDates(req model.CreateSemesterRequest) error {
	switch {
	case !req.StartDate.Before(req.BreakStart):
		return errs.NewValidationError("break_start", "must be after start_date")
	case !req.BreakStart.Before(req.BreakEnd):
		return errs.NewValidationError("break_end", "must be after break_start")
	case !req.BreakEnd.Before(req.EndDate):
		return errs.NewValidationError("end_date", "must be after break_end")
	}
	return nil
}
