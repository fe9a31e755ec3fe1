package service

import (
	"context"

	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
)

// Store is the persistence surface the services depend on. The GORM
// implementation lives in internal/database; tests substitute an in-memory
// fake. Get/Update/Delete return the entity-specific not-found sentinel from
// internal/errs when the id does not resolve.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error

	// Semesters
	CreateSemester(ctx context.Context, semester *model.Semester) error
	GetSemester(ctx context.Context, id string) (*model.Semester, error)
	ListSemesters(ctx context.Context) ([]model.Semester, error)
	UpdateSemester(ctx context.Context, semester *model.Semester) error
	DeleteSemester(ctx context.Context, id string) error

	// Schedules
	CreateSchedule(ctx context.Context, schedule *model.GameSessionSchedule) error
	GetSchedule(ctx context.Context, id string) (*model.GameSessionSchedule, error)
	ListSchedulesBySemester(ctx context.Context, semesterID string) ([]model.GameSessionSchedule, error)
	UpdateSchedule(ctx context.Context, schedule *model.GameSessionSchedule) error
	DeleteSchedule(ctx context.Context, id string) error

	// Game sessions
	CreateGameSession(ctx context.Context, session *model.GameSession) error
	CreateGameSessions(ctx context.Context, sessions []*model.GameSession) error
	GetGameSession(ctx context.Context, id string) (*model.GameSession, error)
	ListGameSessionsBySemester(ctx context.Context, semesterID string) ([]model.GameSession, error)
	ListGameSessionsBySchedule(ctx context.Context, scheduleID string) ([]model.GameSession, error)
	UpdateGameSession(ctx context.Context, session *model.GameSession) error
	DeleteGameSession(ctx context.Context, id string) error

	// Bookings
	CreateBooking(ctx context.Context, booking *model.Booking) error
	GetBookingForUser(ctx context.Context, id, userID string) (*model.Booking, error)
	ListBookingsBySession(ctx context.Context, sessionID string) ([]model.Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]model.Booking, error)
	// FindBookingByUserAndSession returns (nil, nil) when the user holds
	// no booking on the session.
	FindBookingByUserAndSession(ctx context.Context, userID, sessionID string) (*model.Booking, error)
	UpdateBooking(ctx context.Context, booking *model.Booking) error
	DeleteBooking(ctx context.Context, id string) error
	DeleteBookingsBySession(ctx context.Context, sessionID string) error

	// InTransaction runs fn against a transaction-scoped store. The
	// transaction commits when fn returns nil and rolls back when fn
	// returns an error or panics.
	InTransaction(ctx context.Context, fn func(Store) error) error
}
