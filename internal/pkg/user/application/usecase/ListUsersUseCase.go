package usecase

import (
	"context"
	"fmt"

	repository "github.com/coderanik/Alumni-Connect/internal/repository/port"
)

// ListUsersInput identifies the caller so their own account can be excluded
// from the message-partner picker.
type ListUsersInput struct {
	ExcludeUserID string
}

// ListUsersUseCase returns all accounts except the caller's.
type ListUsersUseCase struct {
	Repo repository.UserRepository
}

func NewListUsersUseCase(repo repository.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{Repo: repo}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, in ListUsersInput) ([]repository.User, error) {
	users, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	out := make([]repository.User, 0, len(users))
	for _, u := range users {
		if u.ID == in.ExcludeUserID {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}
