package usecase

import (
	"context"
	"fmt"

	repository "github.com/coderanik/Alumni-Connect/internal/repository/port"
)

// GetProfileUseCase fetches the caller's own account.
type GetProfileUseCase struct {
	Repo repository.UserRepository
}

func NewGetProfileUseCase(repo repository.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{Repo: repo}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID string) (*repository.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	user, err := uc.Repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
