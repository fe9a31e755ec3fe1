package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/UoaWDCC/uabc-web-sub002/internal/errs"
	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
	"github.com/UoaWDCC/uabc-web-sub002/internal/recurrence"
)

func seedSemesterOne(f *fakeStore) *model.Semester {
	semester := &model.Semester{
		ID:              "semester-1",
		Name:            "Semester 1",
		StartDate:       time.Date(2025, time.February, 24, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
		BreakStart:      time.Date(2025, time.April, 14, 0, 0, 0, 0, time.UTC),
		BreakEnd:        time.Date(2025, time.April, 25, 0, 0, 0, 0, time.UTC),
		BookingOpenDay:  model.Sunday,
		BookingOpenTime: time.Date(2000, time.January, 1, 10, 0, 0, 0, time.UTC),
	}
	_ = f.CreateSemester(context.Background(), semester)
	return semester
}

func tuesdayScheduleReq() model.CreateScheduleRequest {
	return model.CreateScheduleRequest{
		Name:           "Tuesday night",
		Location:       "ABA Hall",
		Day:            model.Tuesday,
		StartTime:      time.Date(2000, time.January, 1, 19, 30, 0, 0, time.UTC),
		EndTime:        time.Date(2000, time.January, 1, 22, 0, 0, 0, time.UTC),
		Capacity:       40,
		CasualCapacity: 10,
		SemesterID:     "semester-1",
	}
}

func TestScheduleService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("materializes one session per remaining Tuesday", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore()
		semester := seedSemesterOne(store)
		svc := NewScheduleService(store, time.UTC, zap.NewNop())

		schedule, sessions, err := svc.Create(ctx, tuesdayScheduleReq())
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		wantDates := recurrence.Weekly(time.Tuesday, recurrence.Term{
			Start:      semester.StartDate,
			End:        semester.EndDate,
			BreakStart: semester.BreakStart,
			BreakEnd:   semester.BreakEnd,
		})
		if len(sessions) != len(wantDates) {
			t.Fatalf("materialized %d sessions, want %d", len(sessions), len(wantDates))
		}
		stored, _ := store.ListGameSessionsBySchedule(ctx, schedule.ID)
		if len(stored) != len(wantDates) {
			t.Fatalf("stored %d sessions, want %d", len(stored), len(wantDates))
		}
		for _, s := range stored {
			if s.Capacity != 40 || s.CasualCapacity != 10 {
				t.Errorf("session %s capacities = %d/%d, want 40/10", s.ID, s.Capacity, s.CasualCapacity)
			}
			if s.StartTime.Weekday() != time.Tuesday {
				t.Errorf("session %s starts on %v, want Tuesday", s.ID, s.StartTime.Weekday())
			}
			if s.StartTime.Hour() != 19 || s.StartTime.Minute() != 30 {
				t.Errorf("session %s start clock = %v, want 19:30", s.ID, s.StartTime)
			}
			if s.SemesterID != semester.ID {
				t.Errorf("session %s semester = %q, want %q", s.ID, s.SemesterID, semester.ID)
			}
			if s.GameSessionScheduleID == nil || *s.GameSessionScheduleID != schedule.ID {
				t.Errorf("session %s not linked to schedule", s.ID)
			}
			if !s.OpenTime.Before(s.StartTime) {
				t.Errorf("session %s opens at %v, after its start %v", s.ID, s.OpenTime, s.StartTime)
			}
			if s.OpenTime.Weekday() != time.Sunday || s.OpenTime.Hour() != 10 {
				t.Errorf("session %s open time = %v, want Sunday 10:00", s.ID, s.OpenTime)
			}
		}
	})

	t.Run("a failing batch leaves neither schedule nor sessions", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore()
		seedSemesterOne(store)
		store.createSessionsErr = errors.New("insert refused")
		svc := NewScheduleService(store, time.UTC, zap.NewNop())

		if _, _, err := svc.Create(ctx, tuesdayScheduleReq()); err == nil {
			t.Fatal("expected error")
		}
		if len(store.schedules) != 0 || len(store.sessions) != 0 {
			t.Fatalf("partial state left: %d schedules, %d sessions", len(store.schedules), len(store.sessions))
		}
	})

	t.Run("unknown semester is rejected", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore()
		svc := NewScheduleService(store, time.UTC, zap.NewNop())
		if _, _, err := svc.Create(ctx, tuesdayScheduleReq()); !errors.Is(err, errs.ErrSemesterNotFound) {
			t.Fatalf("got %v, want ErrSemesterNotFound", err)
		}
	})
}

func TestBuildSessions_EmptyExpansion(t *testing.T) {
	t.Parallel()

	semester := &model.Semester{
		ID:              "semester-1",
		StartDate:       time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
		BreakStart:      time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC),
		BreakEnd:        time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC),
		BookingOpenDay:  model.Sunday,
		BookingOpenTime: time.Date(2000, time.January, 1, 10, 0, 0, 0, time.UTC),
	}
	schedule := &model.GameSessionSchedule{ID: "schedule-1", Day: model.Saturday, SemesterID: semester.ID}
	if sessions := BuildSessions(schedule, semester, time.UTC); len(sessions) != 0 {
		t.Fatalf("expected no sessions, got %d", len(sessions))
	}
}

func TestBuildSessions_StoredInstantsRoundTrip(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Pacific/Auckland")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// Entered as club-local midnights; stored timestamptz values come back
	// as the same instants in server time, here UTC. The break ends on a
	// Tuesday so the boundary date itself is on the line.
	semester := &model.Semester{
		ID:              "semester-1",
		StartDate:       time.Date(2025, time.February, 24, 0, 0, 0, 0, loc).UTC(),
		EndDate:         time.Date(2025, time.June, 20, 0, 0, 0, 0, loc).UTC(),
		BreakStart:      time.Date(2025, time.April, 14, 0, 0, 0, 0, loc).UTC(),
		BreakEnd:        time.Date(2025, time.April, 22, 0, 0, 0, 0, loc).UTC(),
		BookingOpenDay:  model.Sunday,
		BookingOpenTime: time.Date(2000, time.January, 1, 10, 0, 0, 0, loc).UTC(),
	}
	schedule := &model.GameSessionSchedule{
		ID:         "schedule-1",
		Day:        model.Tuesday,
		StartTime:  time.Date(2000, time.January, 1, 19, 30, 0, 0, loc).UTC(),
		EndTime:    time.Date(2000, time.January, 1, 22, 0, 0, 0, loc).UTC(),
		SemesterID: semester.ID,
	}

	sessions := BuildSessions(schedule, semester, loc)
	// Feb 24 to Jun 20 spans 17 Tuesdays; Apr 15 and the break-end Tuesday
	// Apr 22 are excluded.
	if len(sessions) != 15 {
		t.Fatalf("materialized %d sessions, want 15", len(sessions))
	}
	for _, s := range sessions {
		local := s.StartTime.In(loc)
		if local.Weekday() != time.Tuesday {
			t.Errorf("session %v is a %v in club time, want Tuesday", s.StartTime, local.Weekday())
		}
		if local.Hour() != 19 || local.Minute() != 30 {
			t.Errorf("session start clock = %v, want 19:30 club time", local)
		}
		if local.Month() == time.April && local.Day() == 22 {
			t.Errorf("session on the break-end date should be excluded: %v", local)
		}
		if local.Before(time.Date(2025, time.February, 24, 0, 0, 0, 0, loc)) {
			t.Errorf("session %v before the term start", local)
		}
	}
}

func seedScheduleWithChildren(t *testing.T, store *fakeStore) (scheduleID string) {
	t.Helper()
	ctx := context.Background()
	seedSemesterOne(store)
	scheduleID = "schedule-1"
	_ = store.CreateSchedule(ctx, &model.GameSessionSchedule{ID: scheduleID, SemesterID: "semester-1", Day: model.Tuesday})
	_ = store.CreateGameSession(ctx, &model.GameSession{ID: "session-1", SemesterID: "semester-1", GameSessionScheduleID: &scheduleID})
	_ = store.CreateBooking(ctx, &model.Booking{ID: "booking-1", UserID: "user-1", GameSessionID: "session-1", Role: model.RoleMember})
	_ = store.CreateBooking(ctx, &model.Booking{ID: "booking-2", UserID: "user-2", GameSessionID: "session-1", Role: model.RoleCasual})
	return scheduleID
}

func TestScheduleService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("cascade removes schedule, session and bookings", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore()
		id := seedScheduleWithChildren(t, store)
		svc := NewScheduleService(store, time.UTC, zap.NewNop())

		if err := svc.Delete(ctx, id, true); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if len(store.schedules) != 0 || len(store.sessions) != 0 || len(store.bookings) != 0 {
			t.Fatalf("leftovers: %d schedules, %d sessions, %d bookings",
				len(store.schedules), len(store.sessions), len(store.bookings))
		}
	})

	t.Run("without cascade only the schedule goes", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore()
		id := seedScheduleWithChildren(t, store)
		svc := NewScheduleService(store, time.UTC, zap.NewNop())

		if err := svc.Delete(ctx, id, false); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if len(store.schedules) != 0 {
			t.Fatal("schedule still present")
		}
		if len(store.sessions) != 1 || len(store.bookings) != 2 {
			t.Fatalf("children touched: %d sessions, %d bookings", len(store.sessions), len(store.bookings))
		}
	})

	t.Run("a mid-cascade failure rolls everything back", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore()
		id := seedScheduleWithChildren(t, store)
		store.failDeleteSessionAt = 1
		store.deleteSessionErr = errors.New("delete refused")
		svc := NewScheduleService(store, time.UTC, zap.NewNop())

		if err := svc.Delete(ctx, id, true); err == nil {
			t.Fatal("expected error")
		}
		if len(store.schedules) != 1 || len(store.sessions) != 1 || len(store.bookings) != 2 {
			t.Fatalf("rollback incomplete: %d schedules, %d sessions, %d bookings",
				len(store.schedules), len(store.sessions), len(store.bookings))
		}
	})

	t.Run("missing target fails fast with not found", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore()
		svc := NewScheduleService(store, time.UTC, zap.NewNop())
		if err := svc.Delete(ctx, "no-such-schedule", true); !errors.Is(err, errs.ErrScheduleNotFound) {
			t.Fatalf("got %v, want ErrScheduleNotFound", err)
		}
	})
}
