package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coderanik/Alumni-Connect/internal/pkg/auth"
	repository "github.com/coderanik/Alumni-Connect/internal/repository/port"

	"golang.org/x/crypto/bcrypt"
)

// SignupInput carries registration data for a student or alumni account.
type SignupInput struct {
	FullName       string
	Email          string
	Password       string
	GraduationYear int
	FieldOfStudy   string
	LinkedIn       string
	Role           string
	IsAlumni       bool
}

// SignupResult returns the created account id plus a ready-to-use bearer token.
type SignupResult struct {
	UserID string
	Token  string
}

// SignupUseCase registers a new account with a bcrypt password hash.
type SignupUseCase struct {
	Repo   repository.UserRepository
	Secret string
}

func NewSignupUseCase(repo repository.UserRepository, secret string) *SignupUseCase {
	return &SignupUseCase{Repo: repo, Secret: secret}
}

func (uc *SignupUseCase) Execute(ctx context.Context, in SignupInput) (*SignupResult, error) {
	if in.FullName == "" || in.Email == "" {
		return nil, fmt.Errorf("fullName and email are required")
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := uc.Repo.Create(ctx, repository.User{
		FullName:       in.FullName,
		Email:          in.Email,
		PasswordHash:   string(hash),
		GraduationYear: in.GraduationYear,
		FieldOfStudy:   in.FieldOfStudy,
		LinkedIn:       in.LinkedIn,
		Role:           in.Role,
		IsAlumni:       in.IsAlumni,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	token, err := auth.NewToken(uc.Secret, id)
	if err != nil {
		return nil, err
	}
	return &SignupResult{UserID: id, Token: token}, nil
}
