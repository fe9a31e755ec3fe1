package model

import "time"

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the response for register/login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the API view of a user (no credential fields).
type UserResponse struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Role              Role   `json:"role"`
	RemainingSessions int    `json:"remaining_sessions"`
}

// NewUserResponse strips credential fields from a user entity.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Role:              u.Role,
		RemainingSessions: u.RemainingSessions,
	}
}

// CreateSemesterRequest is the request body for POST /semesters.
type CreateSemesterRequest struct {
	Name            string    `json:"name" binding:"required"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	BreakStart      time.Time `json:"break_start" binding:"required"`
	BreakEnd        time.Time `json:"break_end" binding:"required"`
	BookingOpenDay  Weekday   `json:"booking_open_day" binding:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	BookingOpenTime time.Time `json:"booking_open_time" binding:"required"`
}

// CreateScheduleRequest is the request body for POST /game-session-schedules.
// Creating a schedule materializes one game session per matching week.
type CreateScheduleRequest struct {
	Name           string    `json:"name" binding:"required"`
	Location       string    `json:"location" binding:"required"`
	Day            Weekday   `json:"day" binding:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time" binding:"required"`
	Capacity       int       `json:"capacity" binding:"required,min=0"`
	CasualCapacity int       `json:"casual_capacity" binding:"min=0"`
	SemesterID     string    `json:"semester_id" binding:"required,uuid"`
}

// CreateGameSessionRequest is the request body for POST /game-sessions
// (ad-hoc session, no template unless schedule_id is given).
type CreateGameSessionRequest struct {
	Name           string    `json:"name" binding:"required"`
	Location       string    `json:"location" binding:"required"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time" binding:"required"`
	OpenTime       time.Time `json:"open_time" binding:"required"`
	Capacity       int       `json:"capacity" binding:"required,min=0"`
	CasualCapacity int       `json:"casual_capacity" binding:"min=0"`
	SemesterID     string    `json:"semester_id" binding:"required,uuid"`
	ScheduleID     *string   `json:"schedule_id" binding:"omitempty,uuid"`
}

// UpdateGameSessionRequest is the request body for PATCH /game-sessions/:id.
type UpdateGameSessionRequest struct {
	Name           *string    `json:"name"`
	Location       *string    `json:"location"`
	StartTime      *time.Time `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	OpenTime       *time.Time `json:"open_time"`
	Capacity       *int       `json:"capacity" binding:"omitempty,min=0"`
	CasualCapacity *int       `json:"casual_capacity" binding:"omitempty,min=0"`
}

// CreateBookingRequest is the request body for POST /bookings.
type CreateBookingRequest struct {
	GameSessionID string      `json:"game_session_id" binding:"required,uuid"`
	PlayerLevel   PlayerLevel `json:"player_level" binding:"required,oneof=beginner intermediate advanced"`
}

// UpdateBookingRequest is the request body for PATCH /bookings/:id. A session
// change is a move and is re-validated against the new session.
type UpdateBookingRequest struct {
	GameSessionID *string      `json:"game_session_id" binding:"omitempty,uuid"`
	PlayerLevel   *PlayerLevel `json:"player_level" binding:"omitempty,oneof=beginner intermediate advanced"`
}

// BookingResponse is the API view of a booking.
type BookingResponse struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	GameSessionID string      `json:"game_session_id"`
	Role          Role        `json:"role"`
	PlayerLevel   PlayerLevel `json:"player_level"`
	CreatedAt     time.Time   `json:"created_at"`
}

// NewBookingResponse maps a booking entity to its API view.
func NewBookingResponse(b *Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		GameSessionID: b.GameSessionID,
		Role:          b.Role,
		PlayerLevel:   b.PlayerLevel,
		CreatedAt:     b.CreatedAt,
	}
}

// SemesterResponse is the API view of a semester.
type SemesterResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	BreakStart      time.Time `json:"break_start"`
	BreakEnd        time.Time `json:"break_end"`
	BookingOpenDay  Weekday   `json:"booking_open_day"`
	BookingOpenTime time.Time `json:"booking_open_time"`
}

// NewSemesterResponse maps a semester entity to its API view.
func NewSemesterResponse(s *Semester) SemesterResponse {
	return SemesterResponse{
		ID:              s.ID,
		Name:            s.Name,
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		BreakStart:      s.BreakStart,
		BreakEnd:        s.BreakEnd,
		BookingOpenDay:  s.BookingOpenDay,
		BookingOpenTime: s.BookingOpenTime,
	}
}

// ScheduleResponse is the API view of a game-session schedule.
type ScheduleResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Day            Weekday   `json:"day"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Capacity       int       `json:"capacity"`
	CasualCapacity int       `json:"casual_capacity"`
	SemesterID     string    `json:"semester_id"`
}

// NewScheduleResponse maps a schedule entity to its API view.
func NewScheduleResponse(s *GameSessionSchedule) ScheduleResponse {
	return ScheduleResponse{
		ID:             s.ID,
		Name:           s.Name,
		Location:       s.Location,
		Day:            s.Day,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		Capacity:       s.Capacity,
		CasualCapacity: s.CasualCapacity,
		SemesterID:     s.SemesterID,
	}
}

// GameSessionResponse is the API view of a game session, including how many
// spots are taken per pool at read time.
type GameSessionResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	OpenTime        time.Time `json:"open_time"`
	Capacity        int       `json:"capacity"`
	CasualCapacity  int       `json:"casual_capacity"`
	SemesterID      string    `json:"semester_id"`
	ScheduleID      *string   `json:"schedule_id,omitempty"`
	Attendees       int       `json:"attendees"`
	CasualAttendees int       `json:"casual_attendees"`
}

// NewGameSessionResponse maps a session entity to its API view with the given
// pool counts.
func NewGameSessionResponse(s *GameSession, attendees, casualAttendees int) GameSessionResponse {
	return GameSessionResponse{
		ID:              s.ID,
		Name:            s.Name,
		Location:        s.Location,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		OpenTime:        s.OpenTime,
		Capacity:        s.Capacity,
		CasualCapacity:  s.CasualCapacity,
		SemesterID:      s.SemesterID,
		ScheduleID:      s.GameSessionScheduleID,
		Attendees:       attendees,
		CasualAttendees: casualAttendees,
	}
}
