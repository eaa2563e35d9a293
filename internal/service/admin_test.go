package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Nishaantmazarallo/Mini-project/internal/config"
	"github.com/Nishaantmazarallo/Mini-project/internal/errs"
	"github.com/Nishaantmazarallo/Mini-project/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	created []model.CreateUser
	err     error
}

func (f *fakeUsers) Create(_ context.Context, in model.CreateUser) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, in)
	return &model.User{ID: int64(len(f.created)), Email: in.Email, Name: in.Name, Role: in.Role, IsActive: true}, nil
}

var adminCfg = config.AdminConfig{Email: "admin@example.com", Password: "change-me-now", Name: "Admin"}

func TestEnsureAdminCreates(t *testing.T) {
	log := zerolog.Nop()
	users := &fakeUsers{}

	created, err := NewAdminService(&log, users).EnsureAdmin(context.Background(), adminCfg)
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, users.created, 1)
	assert.Equal(t, model.RoleAdmin, users.created[0].Role)
	assert.Equal(t, "Admin", users.created[0].Name)
}

func TestEnsureAdminExisting(t *testing.T) {
	log := zerolog.Nop()
	users := &fakeUsers{err: errs.NewConstraintError("USER_ALREADY_EXISTS", "A User with this Email already exists", "users_email_key", nil, nil)}

	created, err := NewAdminService(&log, users).EnsureAdmin(context.Background(), adminCfg)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnsureAdminFailures(t *testing.T) {
	log := zerolog.Nop()

	_, err := NewAdminService(&log, &fakeUsers{}).EnsureAdmin(context.Background(), config.AdminConfig{Name: "Admin"})
	require.Error(t, err, "missing credentials")

	unavailable := errs.NewUnavailableError(errors.New("connection refused"))
	_, err = NewAdminService(&log, &fakeUsers{err: unavailable}).EnsureAdmin(context.Background(), adminCfg)
	require.ErrorIs(t, err, errs.ErrUnavailable)
}
