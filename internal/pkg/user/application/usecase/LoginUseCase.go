package usecase

import (
	"context"
	"fmt"

	"github.com/coderanik/Alumni-Connect/internal/pkg/auth"
	repository "github.com/coderanik/Alumni-Connect/internal/repository/port"

	"golang.org/x/crypto/bcrypt"
)

// LoginInput carries the credentials for an existing account.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult returns the authenticated account and its bearer token.
type LoginResult struct {
	User  repository.User
	Token string
}

// LoginUseCase verifies the credentials and issues a bearer token.
type LoginUseCase struct {
	Repo   repository.UserRepository
	Secret string
}

func NewLoginUseCase(repo repository.UserRepository, secret string) *LoginUseCase {
	return &LoginUseCase{Repo: repo, Secret: secret}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	user, err := uc.Repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.NewToken(uc.Secret, user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: *user, Token: token}, nil
}
