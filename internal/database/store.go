package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/UoaWDCC/uabc-web-sub002/internal/errs"
	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
	"github.com/UoaWDCC/uabc-web-sub002/internal/service"
)

// Store is the GORM-backed implementation of service.Store.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err, errs.ErrUserNotFound)
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err, errs.ErrUserNotFound)
	}
	return &user, nil
}

func (s *Store) UpdateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

func (s *Store) CreateSemester(ctx context.Context, semester *model.Semester) error {
	return s.db.WithContext(ctx).Create(semester).Error
}

func (s *Store) GetSemester(ctx context.Context, id string) (*model.Semester, error) {
	var semester model.Semester
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&semester).Error; err != nil {
		return nil, notFound(err, errs.ErrSemesterNotFound)
	}
	return &semester, nil
}

func (s *Store) ListSemesters(ctx context.Context) ([]model.Semester, error) {
	var semesters []model.Semester
	if err := s.db.WithContext(ctx).Order("start_date").Find(&semesters).Error; err != nil {
		return nil, err
	}
	return semesters, nil
}

func (s *Store) UpdateSemester(ctx context.Context, semester *model.Semester) error {
	return s.db.WithContext(ctx).Save(semester).Error
}

func (s *Store) DeleteSemester(ctx context.Context, id string) error {
	return deleteByID[model.Semester](s.db.WithContext(ctx), id, errs.ErrSemesterNotFound)
}

func (s *Store) CreateSchedule(ctx context.Context, schedule *model.GameSessionSchedule) error {
	return s.db.WithContext(ctx).Create(schedule).Error
}

func (s *Store) GetSchedule(ctx context.Context, id string) (*model.GameSessionSchedule, error) {
	var schedule model.GameSessionSchedule
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&schedule).Error; err != nil {
		return nil, notFound(err, errs.ErrScheduleNotFound)
	}
	return &schedule, nil
}

func (s *Store) ListSchedulesBySemester(ctx context.Context, semesterID string) ([]model.GameSessionSchedule, error) {
	var schedules []model.GameSessionSchedule
	if err := s.db.WithContext(ctx).Where("semester_id = ?", semesterID).Order("day").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (s *Store) UpdateSchedule(ctx context.Context, schedule *model.GameSessionSchedule) error {
	return s.db.WithContext(ctx).Save(schedule).Error
}

func (s *Store) DeleteSchedule(ctx context.Context, id string) error {
	return deleteByID[model.GameSessionSchedule](s.db.WithContext(ctx), id, errs.ErrScheduleNotFound)
}

func (s *Store) CreateGameSession(ctx context.Context, session *model.GameSession) error {
	return s.db.WithContext(ctx).Create(session).Error
}

// CreateGameSessions inserts the batch in one statement; a failing row fails
// the whole insert.
func (s *Store) CreateGameSessions(ctx context.Context, sessions []*model.GameSession) error {
	if len(sessions) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(sessions).Error
}

func (s *Store) GetGameSession(ctx context.Context, id string) (*model.GameSession, error) {
	var session model.GameSession
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, notFound(err, errs.ErrSessionNotFound)
	}
	return &session, nil
}

func (s *Store) ListGameSessionsBySemester(ctx context.Context, semesterID string) ([]model.GameSession, error) {
	var sessions []model.GameSession
	if err := s.db.WithContext(ctx).Where("semester_id = ?", semesterID).Order("start_time").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *Store) ListGameSessionsBySchedule(ctx context.Context, scheduleID string) ([]model.GameSession, error) {
	var sessions []model.GameSession
	if err := s.db.WithContext(ctx).Where("game_session_schedule_id = ?", scheduleID).Order("start_time").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *Store) UpdateGameSession(ctx context.Context, session *model.GameSession) error {
	return s.db.WithContext(ctx).Save(session).Error
}

func (s *Store) DeleteGameSession(ctx context.Context, id string) error {
	return deleteByID[model.GameSession](s.db.WithContext(ctx), id, errs.ErrSessionNotFound)
}

func (s *Store) CreateBooking(ctx context.Context, booking *model.Booking) error {
	return s.db.WithContext(ctx).Create(booking).Error
}

func (s *Store) GetBookingForUser(ctx context.Context, id, userID string) (*model.Booking, error) {
	var booking model.Booking
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&booking).Error; err != nil {
		return nil, notFound(err, errs.ErrBookingNotFound)
	}
	return &booking, nil
}

func (s *Store) ListBookingsBySession(ctx context.Context, sessionID string) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := s.db.WithContext(ctx).Where("game_session_id = ?", sessionID).Order("created_at").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Store) ListBookingsByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindBookingByUserAndSession returns (nil, nil) when the user holds no
// booking on the session.
func (s *Store) FindBookingByUserAndSession(ctx context.Context, userID, sessionID string) (*model.Booking, error) {
	var booking model.Booking
	err := s.db.WithContext(ctx).Where("user_id = ? AND game_session_id = ?", userID, sessionID).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (s *Store) UpdateBooking(ctx context.Context, booking *model.Booking) error {
	return s.db.WithContext(ctx).Save(booking).Error
}

func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	return deleteByID[model.Booking](s.db.WithContext(ctx), id, errs.ErrBookingNotFound)
}

func (s *Store) DeleteBookingsBySession(ctx context.Context, sessionID string) error {
	return s.db.WithContext(ctx).Where("game_session_id = ?", sessionID).Delete(&model.Booking{}).Error
}

// InTransaction runs fn against a transaction-scoped store. GORM commits when
// fn returns nil and rolls back when it returns an error or panics.
func (s *Store) InTransaction(ctx context.Context, fn func(service.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func deleteByID[T any](db *gorm.DB, id string, sentinel error) error {
	var entity T
	res := db.Where("id = ?", id).Delete(&entity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return sentinel
	}
	return nil
}
