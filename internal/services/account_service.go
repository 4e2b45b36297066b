package services

import (
	"context"

	"vibecation/internal/models/db_models"
	"vibecation/internal/models/request_models"
	"vibecation/internal/models/response_models"
	"vibecation/internal/repositories"
	"vibecation/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CheckAvailability(ctx context.Context, username, email string) (bool, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	existing, err := a.accountRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	existing, err = a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := db_models.Account{
		Username:     request.Username,
		Email:        request.Email,
		Name:         request.Name,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}
	if err := a.accountRepo.Insert(ctx, &account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AccountResponse{
		UserID:   account.ID.String(),
		Username: account.Username,
		Email:    account.Email,
		Name:     account.Name,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil || !account.IsActive {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) CheckAvailability(ctx context.Context, username, email string) (bool, error) {
	if username == "" && email == "" {
		return false, utils.ErrInvalidInput
	}

	var existing *db_models.Account
	var err error
	if username != "" {
		existing, err = a.accountRepo.FindByUsername(ctx, username)
	} else {
		existing, err = a.accountRepo.FindByEmail(ctx, email)
	}
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return existing == nil, nil
}
