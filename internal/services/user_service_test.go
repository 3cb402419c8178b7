package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, bcrypt.MinCost)

	created, err := svc.CreateUser("alice", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.Username)

	authed, err := svc.AuthenticateUser("alice", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, created.ID, authed.ID)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, bcrypt.MinCost)

	_, err := svc.CreateUser("alice", "password-one")
	require.NoError(t, err)

	_, err = svc.CreateUser("alice", "password-two")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticateUserBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, bcrypt.MinCost)

	_, err := svc.CreateUser("alice", "correct horse")
	require.NoError(t, err)

	// Wrong password and unknown username must be indistinguishable.
	_, err = svc.AuthenticateUser("alice", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.AuthenticateUser("nobody", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, bcrypt.MinCost)

	created, err := svc.CreateUser("alice", "correct horse")
	require.NoError(t, err)

	user, err := svc.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetUserByID("missing-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
