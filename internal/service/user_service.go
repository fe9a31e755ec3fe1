package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/UoaWDCC/uabc-web-sub002/internal/auth"
	"github.com/UoaWDCC/uabc-web-sub002/internal/errs"
	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
)

// UserService manages accounts: registration, login and admin updates.
type UserService struct {
	store  Store
	tokens *auth.Manager
	log    *zap.Logger
}

// NewUserService creates a user service.
func NewUserService(store Store, tokens *auth.Manager, log *zap.Logger) *UserService {
	return &UserService{store: store, tokens: tokens, log: log}
}

// Register creates a casual account and returns a signed token for it.
// Member and admin roles are granted later by an admin.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error) {
	_, err := s.store.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, "", errs.ErrEmailTaken
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         model.RoleCasual,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Sign(user)
	if err != nil {
		return nil, "", err
	}
	s.log.Info("user registered", zap.String("user_id", user.ID))
	return user, token, nil
}

// Login checks credentials and returns a signed token. A missing account and
// a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, "", errs.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, "", errs.ErrInvalidCredentials
	}
	token, err := s.tokens.Sign(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.store.GetUser(ctx, id)
}

// AdminUpdateInput is the admin-settable part of an account.
type AdminUpdateInput struct {
	Role              *model.Role
	RemainingSessions *int
}

// AdminUpdate changes a user's role or prepaid session count.
func (s *UserService) AdminUpdate(ctx context.Context, id string, in AdminUpdateInput) (*model.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, errs.NewValidationError("role", "unknown role")
		}
		user.Role = *in.Role
	}
	if in.RemainingSessions != nil {
		if *in.RemainingSessions < 0 {
			return nil, errs.NewValidationError("remaining_sessions", "must not be negative")
		}
		user.RemainingSessions = *in.RemainingSessions
	}
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
