package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/gulfrate/gulfrate/internal/model"
	"github.com/gulfrate/gulfrate/internal/repository"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords so
// the login endpoint never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AdminStore interface {
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

type AuthService struct {
	admins AdminStore
}

func NewAuthService(admins AdminStore) *AuthService {
	return &AuthService{admins: admins}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.Admin, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.admins.UpdateLastLogin(ctx, admin.ID); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("failed to stamp last login")
	}

	return admin, nil
}
