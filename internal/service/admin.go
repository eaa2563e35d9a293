package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nishaantmazarallo/Mini-project/internal/config"
	"github.com/Nishaantmazarallo/Mini-project/internal/errs"
	"github.com/Nishaantmazarallo/Mini-project/internal/model"
	"github.com/rs/zerolog"
)

// UserCreator is the part of the user repository admin seeding needs.
type UserCreator interface {
	Create(ctx context.Context, in model.CreateUser) (*model.User, error)
}

type AdminService struct {
	log   *zerolog.Logger
	users UserCreator
}

func NewAdminService(logger *zerolog.Logger, users UserCreator) *AdminService {
	return &AdminService{log: logger, users: users}
}

// EnsureAdmin creates the admin account described by cfg unless a user
// with that email already exists. It reports whether a user was created.
//
// The insert itself is the existence check: the unique email index turns a
// concurrent or repeated run into a constraint error, which is treated as
// success.
func (s *AdminService) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) (bool, error) {
	if err := cfg.Validate(); err != nil {
		return false, err
	}

	user, err := s.users.Create(ctx, model.CreateUser{
		Email:    cfg.Email,
		Password: cfg.Password,
		Name:     cfg.Name,
		Role:     model.RoleAdmin,
	})
	if errors.Is(err, errs.ErrConstraint) {
		s.log.Info().Str("email", cfg.Email).Msg("admin user already exists")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating admin user: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("admin user created")
	return true, nil
}
