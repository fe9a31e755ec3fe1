package service

import (
	"context"
	"sort"

	"github.com/UoaWDCC/uabc-web-sub002/internal/errs"
	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
)

// fakeStore is an in-memory Store. InTransaction snapshots all tables and
// restores them when the callback fails, mirroring rollback semantics.
type fakeStore struct {
	users     map[string]*model.User
	semesters map[string]*model.Semester
	schedules map[string]*model.GameSessionSchedule
	sessions  map[string]*model.GameSession
	bookings  map[string]*model.Booking

	// failure injection
	deleteSessionCalls  int
	failDeleteSessionAt int // 1-based call number; 0 disables
	deleteSessionErr    error
	createBookingErr    error
	createSessionsErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     map[string]*model.User{},
		semesters: map[string]*model.Semester{},
		schedules: map[string]*model.GameSessionSchedule{},
		sessions:  map[string]*model.GameSession{},
		bookings:  map[string]*model.Booking{},
	}
}

func (f *fakeStore) CreateUser(_ context.Context, u *model.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeStore) GetUser(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (f *fakeStore) UpdateUser(_ context.Context, u *model.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return errs.ErrUserNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeStore) CreateSemester(_ context.Context, s *model.Semester) error {
	cp := *s
	f.semesters[s.ID] = &cp
	return nil
}

func (f *fakeStore) GetSemester(_ context.Context, id string) (*model.Semester, error) {
	s, ok := f.semesters[id]
	if !ok {
		return nil, errs.ErrSemesterNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStore) ListSemesters(_ context.Context) ([]model.Semester, error) {
	out := make([]model.Semester, 0, len(f.semesters))
	for _, s := range f.semesters {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) UpdateSemester(_ context.Context, s *model.Semester) error {
	if _, ok := f.semesters[s.ID]; !ok {
		return errs.ErrSemesterNotFound
	}
	cp := *s
	f.semesters[s.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteSemester(_ context.Context, id string) error {
	if _, ok := f.semesters[id]; !ok {
		return errs.ErrSemesterNotFound
	}
	delete(f.semesters, id)
	return nil
}

func (f *fakeStore) CreateSchedule(_ context.Context, s *model.GameSessionSchedule) error {
	cp := *s
	f.schedules[s.ID] = &cp
	return nil
}

func (f *fakeStore) GetSchedule(_ context.Context, id string) (*model.GameSessionSchedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return nil, errs.ErrScheduleNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStore) ListSchedulesBySemester(_ context.Context, semesterID string) ([]model.GameSessionSchedule, error) {
	out := make([]model.GameSessionSchedule, 0)
	for _, s := range f.schedules {
		if s.SemesterID == semesterID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) UpdateSchedule(_ context.Context, s *model.GameSessionSchedule) error {
	if _, ok := f.schedules[s.ID]; !ok {
		return errs.ErrScheduleNotFound
	}
	cp := *s
	f.schedules[s.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteSchedule(_ context.Context, id string) error {
	if _, ok := f.schedules[id]; !ok {
		return errs.ErrScheduleNotFound
	}
	delete(f.schedules, id)
	return nil
}

func (f *fakeStore) CreateGameSession(_ context.Context, s *model.GameSession) error {
	cp := *s
	f.sessions[s.ID] = &cp
	return nil
}

func (f *fakeStore) CreateGameSessions(_ context.Context, sessions []*model.GameSession) error {
	if f.createSessionsErr != nil {
		return f.createSessionsErr
	}
	for _, s := range sessions {
		cp := *s
		f.sessions[s.ID] = &cp
	}
	return nil
}

func (f *fakeStore) GetGameSession(_ context.Context, id string) (*model.GameSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStore) ListGameSessionsBySemester(_ context.Context, semesterID string) ([]model.GameSession, error) {
	out := make([]model.GameSession, 0)
	for _, s := range f.sessions {
		if s.SemesterID == semesterID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) ListGameSessionsBySchedule(_ context.Context, scheduleID string) ([]model.GameSession, error) {
	out := make([]model.GameSession, 0)
	for _, s := range f.sessions {
		if s.GameSessionScheduleID != nil && *s.GameSessionScheduleID == scheduleID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) UpdateGameSession(_ context.Context, s *model.GameSession) error {
	if _, ok := f.sessions[s.ID]; !ok {
		return errs.ErrSessionNotFound
	}
	cp := *s
	f.sessions[s.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteGameSession(_ context.Context, id string) error {
	f.deleteSessionCalls++
	if f.failDeleteSessionAt > 0 && f.deleteSessionCalls >= f.failDeleteSessionAt && f.deleteSessionErr != nil {
		return f.deleteSessionErr
	}
	if _, ok := f.sessions[id]; !ok {
		return errs.ErrSessionNotFound
	}
	delete(f.sessions, id)
	return nil
}

func (f *fakeStore) CreateBooking(_ context.Context, b *model.Booking) error {
	if f.createBookingErr != nil {
		return f.createBookingErr
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeStore) GetBookingForUser(_ context.Context, id, userID string) (*model.Booking, error) {
	b, ok := f.bookings[id]
	if !ok || b.UserID != userID {
		return nil, errs.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeStore) ListBookingsBySession(_ context.Context, sessionID string) ([]model.Booking, error) {
	out := make([]model.Booking, 0)
	for _, b := range f.bookings {
		if b.GameSessionID == sessionID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) ListBookingsByUser(_ context.Context, userID string) ([]model.Booking, error) {
	out := make([]model.Booking, 0)
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) FindBookingByUserAndSession(_ context.Context, userID, sessionID string) (*model.Booking, error) {
	for _, b := range f.bookings {
		if b.UserID == userID && b.GameSessionID == sessionID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateBooking(_ context.Context, b *model.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return errs.ErrBookingNotFound
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteBooking(_ context.Context, id string) error {
	if _, ok := f.bookings[id]; !ok {
		return errs.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeStore) DeleteBookingsBySession(_ context.Context, sessionID string) error {
	for id, b := range f.bookings {
		if b.GameSessionID == sessionID {
			delete(f.bookings, id)
		}
	}
	return nil
}

func (f *fakeStore) InTransaction(_ context.Context, fn func(Store) error) error {
	users := snapshot(f.users)
	semesters := snapshot(f.semesters)
	schedules := snapshot(f.schedules)
	sessions := snapshot(f.sessions)
	bookings := snapshot(f.bookings)

	if err := fn(f); err != nil {
		f.users = users
		f.semesters = semesters
		f.schedules = schedules
		f.sessions = sessions
		f.bookings = bookings
		return err
	}
	return nil
}

func snapshot[V any](m map[string]*V) map[string]*V {
	out := make(map[string]*V, len(m))
	for k, v := range m {
		cp := *v
		out[k] = &cp
	}
	return out
}
