package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/coderanik/Alumni-Connect/internal/pkg/auth"
	repository "github.com/coderanik/Alumni-Connect/internal/repository/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "user-test-secret"

type memoryUserRepository struct {
	users  map[string]repository.User // id -> user
	nextID int
	fail   bool
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: map[string]repository.User{}}
}

func (r *memoryUserRepository) Create(ctx context.Context, u repository.User) (string, error) {
	if r.fail {
		return "", errors.New("db down")
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return "", repository.ErrDuplicateEmail
		}
	}
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[u.ID] = u
	return u.ID, nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (*repository.User, error) {
	if r.fail {
		return nil, errors.New("db down")
	}
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*repository.User, error) {
	if r.fail {
		return nil, errors.New("db down")
	}
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) List(ctx context.Context) ([]repository.User, error) {
	if r.fail {
		return nil, errors.New("db down")
	}
	out := make([]repository.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func signupAlice(t *testing.T, repo *memoryUserRepository) *SignupResult {
	t.Helper()
	res, err := NewSignupUseCase(repo, testSecret).Execute(context.Background(), SignupInput{
		FullName:       "Alice Doe",
		Email:          "alice@example.edu",
		Password:       "hunter22",
		GraduationYear: 2024,
		FieldOfStudy:   "Physics",
	})
	require.NoError(t, err)
	return res
}

func TestSignupIssuesUsableToken(t *testing.T) {
	repo := newMemoryUserRepository()
	res := signupAlice(t, repo)

	require.NotEmpty(t, res.UserID)
	userID, err := auth.ParseToken(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.UserID, userID)

	stored := repo.users[res.UserID]
	assert.NotEqual(t, "hunter22", stored.PasswordHash, "password must not be stored in clear")
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepository()
	signupAlice(t, repo)

	_, err := NewSignupUseCase(repo, testSecret).Execute(context.Background(), SignupInput{
		FullName: "Other Alice",
		Email:    "alice@example.edu",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	_, err := NewSignupUseCase(newMemoryUserRepository(), testSecret).Execute(context.Background(), SignupInput{
		FullName: "Alice Doe",
		Email:    "alice@example.edu",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestLoginWithCorrectCredentials(t *testing.T) {
	repo := newMemoryUserRepository()
	signed := signupAlice(t, repo)

	res, err := NewLoginUseCase(repo, testSecret).Execute(context.Background(), LoginInput{
		Email:    "alice@example.edu",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, signed.UserID, res.User.ID)

	userID, err := auth.ParseToken(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, signed.UserID, userID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := newMemoryUserRepository()
	signupAlice(t, repo)

	_, err := NewLoginUseCase(repo, testSecret).Execute(context.Background(), LoginInput{
		Email:    "alice@example.edu",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	_, err := NewLoginUseCase(newMemoryUserRepository(), testSecret).Execute(context.Background(), LoginInput{
		Email:    "nobody@example.edu",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestListUsersExcludesCaller(t *testing.T) {
	repo := newMemoryUserRepository()
	alice := signupAlice(t, repo)
	_, err := NewSignupUseCase(repo, testSecret).Execute(context.Background(), SignupInput{
		FullName: "Bob Roe",
		Email:    "bob@example.edu",
		Password: "hunter22",
	})
	require.NoError(t, err)

	users, err := NewListUsersUseCase(repo).Execute(context.Background(), ListUsersInput{ExcludeUserID: alice.UserID})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Bob Roe", users[0].FullName)
}

func TestGetProfileUnknownUser(t *testing.T) {
	_, err := NewGetProfileUseCase(newMemoryUserRepository()).Execute(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProfileReturnsAccount(t *testing.T) {
	repo := newMemoryUserRepository()
	alice := signupAlice(t, repo)

	user, err := NewGetProfileUseCase(repo).Execute(context.Background(), alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", user.FullName)
}
