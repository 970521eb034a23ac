package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	cacheport "github.com/coderanik/Alumni-Connect/internal/infrastructure/cache/port"
	repository "github.com/coderanik/Alumni-Connect/internal/repository/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepository struct {
	users []repository.User
	err   error
	calls int
}

func (r *stubUserRepository) Create(ctx context.Context, u repository.User) (string, error) {
	return "", errors.New("not implemented")
}
func (r *stubUserRepository) FindByID(ctx context.Context, id string) (*repository.User, error) {
	return nil, nil
}
func (r *stubUserRepository) FindByEmail(ctx context.Context, email string) (*repository.User, error) {
	return nil, nil
}
func (r *stubUserRepository) List(ctx context.Context) ([]repository.User, error) {
	r.calls++
	return r.users, r.err
}

type memoryCache struct {
	values map[string]string
	broken bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	if c.broken {
		return "", errors.New("cache down")
	}
	v, ok := c.values[key]
	if !ok {
		return "", cacheport.ErrMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if c.broken {
		return errors.New("cache down")
	}
	c.values[key] = value
	return nil
}

func (c *memoryCache) Close() error { return nil }

func directoryUsers() []repository.User {
	return []repository.User{
		{FullName: "Alice Doe", GraduationYear: 2026, FieldOfStudy: "Physics", LinkedIn: "in/alice"},
		{FullName: "Bob Roe", GraduationYear: 2018, Role: "Staff Engineer", LinkedIn: "in/bob", IsAlumni: true},
	}
}

func TestGetNetworkSplitsStudentsAndAlumni(t *testing.T) {
	repo := &stubUserRepository{users: directoryUsers()}
	uc := NewGetNetworkUseCase(repo, newMemoryCache())

	data, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Students, 1)
	assert.Equal(t, "Alice Doe", data.Students[0].Name)
	assert.Equal(t, "Physics", data.Students[0].Field)

	require.Len(t, data.Alumni, 1)
	assert.Equal(t, "Bob Roe", data.Alumni[0].Name)
	assert.Equal(t, "Staff Engineer", data.Alumni[0].Position)
}

func TestGetNetworkServesSecondCallFromCache(t *testing.T) {
	repo := &stubUserRepository{users: directoryUsers()}
	cache := newMemoryCache()
	uc := NewGetNetworkUseCase(repo, cache)

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)
}

func TestGetNetworkBypassesBrokenCache(t *testing.T) {
	repo := &stubUserRepository{users: directoryUsers()}
	uc := NewGetNetworkUseCase(repo, &memoryCache{broken: true})

	data, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, data.Students, 1)
}

func TestGetNetworkWorksWithoutCache(t *testing.T) {
	repo := &stubUserRepository{users: directoryUsers()}
	uc := NewGetNetworkUseCase(repo, nil)

	data, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, data.Alumni, 1)
}

func TestGetNetworkPersistenceFailure(t *testing.T) {
	repo := &stubUserRepository{err: errors.New("db down")}
	uc := NewGetNetworkUseCase(repo, nil)

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrPersistence)
}
