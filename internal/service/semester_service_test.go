package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/UoaWDCC/uabc-web-sub002/internal/errs"
	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
)

func semesterReq() model.CreateSemesterRequest {
	return model.CreateSemesterRequest{
		Name:            "Semester 1",
		StartDate:       time.Date(2025, time.February, 24, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
		BreakStart:      time.Date(2025, time.April, 14, 0, 0, 0, 0, time.UTC),
		BreakEnd:        time.Date(2025, time.April, 25, 0, 0, 0, 0, time.UTC),
		BookingOpenDay:  model.Sunday,
		BookingOpenTime: time.Date(2000, time.January, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSemesterService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("accepts an ordered term", func(t *testing.T) {
		t.Parallel()
		svc := NewSemesterService(newFakeStore(), time.UTC, zap.NewNop())
		if _, err := svc.Create(ctx, semesterReq()); err != nil {
			t.Fatalf("create: %v", err)
		}
	})

	t.Run("rejects a break outside the term", func(t *testing.T) {
		t.Parallel()
		svc := NewSemesterService(newFakeStore(), time.UTC, zap.NewNop())
		req := semesterReq()
		req.BreakEnd = req.EndDate.AddDate(0, 0, 7)

		_, err := svc.Create(ctx, req)
		var vErr *errs.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("got %v, want ValidationError", err)
		}
		if _, ok := vErr.Fields["end_date"]; !ok {
			t.Fatalf("fields = %v, want end_date", vErr.Fields)
		}
	})

	t.Run("rejects a break that starts before the term", func(t *testing.T) {
		t.Parallel()
		svc := NewSemesterService(newFakeStore(), time.UTC, zap.NewNop())
		req := semesterReq()
		req.BreakStart = req.StartDate.AddDate(0, 0, -1)

		_, err := svc.Create(ctx, req)
		var vErr *errs.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("got %v, want ValidationError", err)
		}
	})
}

func seedSemesterTree(t *testing.T, store *fakeStore) {
	t.Helper()
	ctx := context.Background()
	seedSemesterOne(store)
	scheduleID := "schedule-1"
	_ = store.CreateSchedule(ctx, &model.GameSessionSchedule{ID: scheduleID, SemesterID: "semester-1", Day: model.Tuesday})
	_ = store.CreateGameSession(ctx, &model.GameSession{ID: "session-1", SemesterID: "semester-1", GameSessionScheduleID: &scheduleID})
	_ = store.CreateGameSession(ctx, &model.GameSession{ID: "session-2", SemesterID: "semester-1"}) // ad hoc
	_ = store.CreateBooking(ctx, &model.Booking{ID: "booking-1", UserID: "user-1", GameSessionID: "session-1", Role: model.RoleMember})
	_ = store.CreateBooking(ctx, &model.Booking{ID: "booking-2", UserID: "user-2", GameSessionID: "session-2", Role: model.RoleCasual})
}

func TestSemesterService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("cascade removes the whole tree including ad-hoc sessions", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore()
		seedSemesterTree(t, store)
		svc := NewSemesterService(store, time.UTC, zap.NewNop())

		if err := svc.Delete(ctx, "semester-1", true); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if len(store.semesters)+len(store.schedules)+len(store.sessions)+len(store.bookings) != 0 {
			t.Fatalf("leftovers: %d semesters, %d schedules, %d sessions, %d bookings",
				len(store.semesters), len(store.schedules), len(store.sessions), len(store.bookings))
		}
	})

	t.Run("without cascade children survive, dangling", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore()
		seedSemesterTree(t, store)
		svc := NewSemesterService(store, time.UTC, zap.NewNop())

		if err := svc.Delete(ctx, "semester-1", false); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if len(store.semesters) != 0 {
			t.Fatal("semester still present")
		}
		if len(store.schedules) != 1 || len(store.sessions) != 2 || len(store.bookings) != 2 {
			t.Fatalf("children touched: %d schedules, %d sessions, %d bookings",
				len(store.schedules), len(store.sessions), len(store.bookings))
		}
	})

	t.Run("failure while deleting a child restores pre-call state", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore()
		seedSemesterTree(t, store)
		store.failDeleteSessionAt = 2
		store.deleteSessionErr = errors.New("delete refused")
		svc := NewSemesterService(store, time.UTC, zap.NewNop())

		if err := svc.Delete(ctx, "semester-1", true); err == nil {
			t.Fatal("expected error")
		}
		if len(store.semesters) != 1 || len(store.schedules) != 1 || len(store.sessions) != 2 || len(store.bookings) != 2 {
			t.Fatalf("rollback incomplete: %d semesters, %d schedules, %d sessions, %d bookings",
				len(store.semesters), len(store.schedules), len(store.sessions), len(store.bookings))
		}
	})

	t.Run("cascade sweeps sessions whose schedule is already gone", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore()
		seedSemesterOne(store)
		ghost := "schedule-ghost"
		_ = store.CreateGameSession(ctx, &model.GameSession{ID: "session-1", SemesterID: "semester-1", GameSessionScheduleID: &ghost})
		_ = store.CreateBooking(ctx, &model.Booking{ID: "booking-1", UserID: "user-1", GameSessionID: "session-1", Role: model.RoleMember})
		svc := NewSemesterService(store, time.UTC, zap.NewNop())

		if err := svc.Delete(ctx, "semester-1", true); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if len(store.sessions) != 0 || len(store.bookings) != 0 {
			t.Fatalf("orphaned children survived: %d sessions, %d bookings",
				len(store.sessions), len(store.bookings))
		}
	})

	t.Run("a not-found from inside the cascade is not reported as not-found", func(t *testing.T) {
		t.Parallel()
		store := newFakeStore()
		seedSemesterTree(t, store)
		store.failDeleteSessionAt = 1
		store.deleteSessionErr = errs.ErrSessionNotFound
		svc := NewSemesterService(store, time.UTC, zap.NewNop())

		err := svc.Delete(ctx, "semester-1", true)
		if err == nil {
			t.Fatal("expected error")
		}
		if errors.Is(err, errs.ErrSessionNotFound) || errors.Is(err, errs.ErrSemesterNotFound) {
			t.Fatalf("cascade failure surfaced as not-found: %v", err)
		}
	})

	t.Run("missing semester fails fast", func(t *testing.T) {
		t.Parallel()
		svc := NewSemesterService(newFakeStore(), time.UTC, zap.NewNop())
		if err := svc.Delete(ctx, "no-such-semester", true); !errors.Is(err, errs.ErrSemesterNotFound) {
			t.Fatalf("got %v, want ErrSemesterNotFound", err)
		}
	})
}
