package model

import "time"

// Role is the membership tier of a user. It decides which capacity pool a
// booking counts against.
type Role string

const (
	RoleCasual Role = "casual"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCasual, RoleMember, RoleAdmin:
		return true
	}
	return false
}

// PlayerLevel is the self-reported skill level attached to a booking.
type PlayerLevel string

const (
	LevelBeginner     PlayerLevel = "beginner"
	LevelIntermediate PlayerLevel = "intermediate"
	LevelAdvanced     PlayerLevel = "advanced"
)

// Valid reports whether l is one of the known levels.
func (l PlayerLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Weekday is the lowercase weekday name used in schedules and semesters.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var weekdays = map[Weekday]time.Weekday{
	Sunday:    time.Sunday,
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
}

// Valid reports whether w names a weekday.
func (w Weekday) Valid() bool {
	_, ok := weekdays[w]
	return ok
}

// Time returns the time.Weekday for w. Unknown values map to Sunday; callers
// validate with Valid first.
func (w Weekday) Time() time.Weekday {
	return weekdays[w]
}
