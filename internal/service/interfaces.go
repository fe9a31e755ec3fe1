package service

import (
	"context"

	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
)

// Handler-facing interfaces, satisfied by the concrete services below and by
// stubs in handler tests.

type UserServicer interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error)
	Get(ctx context.Context, id string) (*model.User, error)
	AdminUpdate(ctx context.Context, id string, in AdminUpdateInput) (*model.User, error)
}

type SemesterServicer interface {
	Create(ctx context.Context, req model.CreateSemesterRequest) (*model.Semester, error)
	Get(ctx context.Context, id string) (*model.Semester, error)
	List(ctx context.Context) ([]model.Semester, error)
	Update(ctx context.Context, id string, req model.CreateSemesterRequest) (*model.Semester, error)
	Delete(ctx context.Context, id string, cascade bool) error
}

type ScheduleServicer interface {
	Create(ctx context.Context, req model.CreateScheduleRequest) (*model.GameSessionSchedule, []*model.GameSession, error)
	Get(ctx context.Context, id string) (*model.GameSessionSchedule, error)
	ListBySemester(ctx context.Context, semesterID string) ([]model.GameSessionSchedule, error)
	Update(ctx context.Context, id string, req model.CreateScheduleRequest) (*model.GameSessionSchedule, error)
	Delete(ctx context.Context, id string, cascade bool) error
}

type GameSessionServicer interface {
	Create(ctx context.Context, req model.CreateGameSessionRequest) (*model.GameSession, error)
	Get(ctx context.Context, id string) (*model.GameSession, error)
	ListBySemester(ctx context.Context, semesterID string) ([]model.GameSession, error)
	Attendance(ctx context.Context, sessionID string) (total, casual int, err error)
	Update(ctx context.Context, id string, req model.UpdateGameSessionRequest) (*model.GameSession, error)
	Delete(ctx context.Context, id string, cascade bool) error
}

type BookingServicer interface {
	Create(ctx context.Context, userID string, req model.CreateBookingRequest) (*model.Booking, error)
	Update(ctx context.Context, userID, bookingID string, patch model.UpdateBookingRequest) (*model.Booking, error)
	Cancel(ctx context.Context, userID, bookingID string) error
	ListForUser(ctx context.Context, userID string) ([]model.Booking, error)
}

var (
	_ UserServicer        = (*UserService)(nil)
	_ SemesterServicer    = (*SemesterService)(nil)
	_ ScheduleServicer    = (*ScheduleService)(nil)
	_ GameSessionServicer = (*GameSessionService)(nil)
	_ BookingServicer     = (*BookingService)(nil)
)
