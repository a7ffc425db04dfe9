package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/types"
)

func signUpRequest(email, nickname string) types.SignUpRequest {
	return types.SignUpRequest{
		Email:    email,
		Password: "password123",
		Name:     "Tester",
		Nickname: nickname,
		Birth:    "1990-06-15",
		Gender:   "F",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	user, err := svc.Register(context.Background(), signUpRequest("t@example.com", "tester"))
	require.NoError(t, err)
	assert.Equal(t, "t@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash)

	token, err := svc.Login(context.Background(), "t@example.com", "password123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), signUpRequest("t@example.com", "tester"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), signUpRequest("t@example.com", "other"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterDuplicateNickname(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), signUpRequest("a@example.com", "tester"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), signUpRequest("b@example.com", "tester"))
	assert.ErrorIs(t, err, ErrDuplicateNickname)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), signUpRequest("t@example.com", "tester"))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "t@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newTestDB(t), "test-secret")

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := newTestDB(t)
	issuer := NewAuthService(db, "secret-a")
	verifier := NewAuthService(db, "secret-b")

	user, err := issuer.Register(context.Background(), signUpRequest("t@example.com", "tester"))
	require.NoError(t, err)
	token, err := issuer.GenerateToken(user.ID)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestGetUserByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	user, err := svc.Register(context.Background(), signUpRequest("t@example.com", "tester"))
	require.NoError(t, err)

	got, err := svc.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.GetUserByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
