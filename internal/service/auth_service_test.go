package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gulfrate/gulfrate/internal/model"
	"github.com/gulfrate/gulfrate/internal/repository"
)

type fakeAdminStore struct {
	admins     map[string]*model.Admin
	lastLogins []int64
	loginErr   error
}

func (f *fakeAdminStore) FindByUsername(_ context.Context, username string) (*model.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return admin, nil
}

func (f *fakeAdminStore) UpdateLastLogin(_ context.Context, id int64) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.lastLogins = append(f.lastLogins, id)
	return nil
}

func storeWithAdmin(t *testing.T, username, password, role string) *fakeAdminStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeAdminStore{admins: map[string]*model.Admin{
		username: {ID: 1, Username: username, PasswordHash: string(hash), Role: role},
	}}
}

func TestLogin_Success(t *testing.T) {
	store := storeWithAdmin(t, "admin", "secret123", model.RoleAdmin)
	svc := NewAuthService(store)

	admin, err := svc.Login(context.Background(), "admin", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, []int64{1}, store.lastLogins)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := storeWithAdmin(t, "admin", "secret123", model.RoleAdmin)
	svc := NewAuthService(store)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, store.lastLogins)
}

func TestLogin_UnknownUsername(t *testing.T) {
	svc := NewAuthService(&fakeAdminStore{admins: map[string]*model.Admin{}})

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_LastLoginFailureIsNotFatal(t *testing.T) {
	store := storeWithAdmin(t, "admin", "secret123", model.RoleAdmin)
	store.loginErr = errors.New("timeout")
	svc := NewAuthService(store)

	admin, err := svc.Login(context.Background(), "admin", "secret123")
	require.NoError(t, err)
	assert.NotNil(t, admin)
}
