package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibecation/internal/models/request_models"
	"vibecation/pkg/utils"
)

func signUpReq() request_models.SignUpRequest {
	return request_models.SignUpRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct-horse-battery",
	}
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()
	repo := &fakeAccountRepo{}
	service := NewAccountService(repo)

	account, err := service.CreateAccount(ctx, signUpReq())
	require.NoError(t, err)

	assert.NotEmpty(t, account.UserID)
	assert.Equal(t, "alice", account.Username)

	require.Len(t, repo.accounts, 1)
	// Stored hashed, never plaintext.
	stored := repo.accounts[0]
	assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(stored.PasswordHash, "correct-horse-battery"))
}

func TestCreateAccount_Duplicates(t *testing.T) {
	ctx := context.Background()
	service := NewAccountService(&fakeAccountRepo{})

	_, err := service.CreateAccount(ctx, signUpReq())
	require.NoError(t, err)

	_, err = service.CreateAccount(ctx, signUpReq())
	assert.ErrorIs(t, err, utils.ErrUsernameTaken)

	other := signUpReq()
	other.Username = "alice2"
	_, err = service.CreateAccount(ctx, other)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()
	service := NewAccountService(&fakeAccountRepo{})

	_, err := service.CreateAccount(ctx, signUpReq())
	require.NoError(t, err)

	token, err := service.Login(ctx, request_models.LoginRequest{Username: "alice", Password: "correct-horse-battery"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = service.Login(ctx, request_models.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = service.Login(ctx, request_models.LoginRequest{Username: "nobody", Password: "x"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()
	service := NewAccountService(&fakeAccountRepo{})

	_, err := service.CreateAccount(ctx, signUpReq())
	require.NoError(t, err)

	available, err := service.CheckAvailability(ctx, "alice", "")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = service.CheckAvailability(ctx, "newcomer", "")
	require.NoError(t, err)
	assert.True(t, available)

	available, err = service.CheckAvailability(ctx, "", "alice@example.com")
	require.NoError(t, err)
	assert.False(t, available)

	_, err = service.CheckAvailability(ctx, "", "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
