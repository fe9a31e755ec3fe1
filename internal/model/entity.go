package model

import "time"

// User is a club member account.
type User struct {
	ID                string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email             string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash      string    `gorm:"size:72;not null"`
	FirstName         string    `gorm:"size:100"`
	LastName          string    `gorm:"size:100"`
	Role              Role      `gorm:"size:20;not null;default:casual"`
	RemainingSessions int       `gorm:"not null;default:0"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }

// Semester is an administrative term window with one excluded break window.
// Invariant: StartDate < BreakStart < BreakEnd < EndDate.
type Semester struct {
	ID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"size:100;not null"`
	StartDate  time.Time `gorm:"not null"`
	EndDate    time.Time `gorm:"not null"`
	BreakStart time.Time `gorm:"not null"`
	BreakEnd   time.Time `gorm:"not null"`
	// Bookings for a session open on this weekday of the session's week, at
	// the clock time carried by BookingOpenTime (date component ignored).
	BookingOpenDay  Weekday   `gorm:"size:10;not null"`
	BookingOpenTime time.Time `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Semester) TableName() string { return "semesters" }

// GameSessionSchedule is a weekly recurrence template bound to a semester.
// StartTime/EndTime carry the time of day; the date component is ignored.
type GameSessionSchedule struct {
	ID             string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"size:100;not null"`
	Location       string    `gorm:"size:255;not null"`
	Day            Weekday   `gorm:"size:10;not null"`
	StartTime      time.Time `gorm:"not null"`
	EndTime        time.Time `gorm:"not null"`
	Capacity       int       `gorm:"not null"`
	CasualCapacity int       `gorm:"not null"`
	SemesterID     string    `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (GameSessionSchedule) TableName() string { return "game_session_schedules" }

// GameSession is one concrete bookable occurrence. GameSessionScheduleID is nil
// for ad-hoc sessions created without a template.
type GameSession struct {
	ID                    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                  string    `gorm:"size:100;not null"`
	Location              string    `gorm:"size:255;not null"`
	StartTime             time.Time `gorm:"not null;index"`
	EndTime               time.Time `gorm:"not null"`
	OpenTime              time.Time `gorm:"not null"`
	Capacity              int       `gorm:"not null"`
	CasualCapacity        int       `gorm:"not null"`
	SemesterID            string    `gorm:"type:uuid;not null;index"`
	GameSessionScheduleID *string   `gorm:"type:uuid;index"`
	CreatedAt             time.Time `gorm:"autoCreateTime"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
}

func (GameSession) TableName() string { return "game_sessions" }

// Booking is one user's claim on one session. Role is the role the user held
// when the booking was made; the casual pool counts bookings by this field,
// not by the user's current role.
type Booking struct {
	ID            string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        string      `gorm:"type:uuid;not null;uniqueIndex:idx_bookings_user_session"`
	GameSessionID string      `gorm:"type:uuid;not null;index;uniqueIndex:idx_bookings_user_session"`
	Role          Role        `gorm:"size:20;not null"`
	PlayerLevel   PlayerLevel `gorm:"size:20;not null"`
	CreatedAt     time.Time   `gorm:"autoCreateTime"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime"`
}

func (Booking) TableName() string { return "bookings" }
