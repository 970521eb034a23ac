package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cacheport "github.com/coderanik/Alumni-Connect/internal/infrastructure/cache/port"
	repository "github.com/coderanik/Alumni-Connect/internal/repository/port"
)

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = fmt.Errorf("directory use case persistence error")

const (
	networkCacheKey = "network:directory"
	networkCacheTTL = 60 * time.Second
)

// Person is one entry in the public network directory.
type Person struct {
	Name           string `json:"name"`
	GraduationYear int    `json:"graduationYear"`
	Field          string `json:"field,omitempty"`
	Position       string `json:"position,omitempty"`
	LinkedIn       string `json:"linkedin"`
}

// NetworkData splits the directory into current students and alumni.
type NetworkData struct {
	Students []Person `json:"students"`
	Alumni   []Person `json:"alumni"`
}

// GetNetworkUseCase builds the network directory, serving from cache when a
// fresh copy exists. Cache failures fall through to the repository; the
// directory never fails because the cache is down.
type GetNetworkUseCase struct {
	Repo  repository.UserRepository
	Cache cacheport.Cache
}

func NewGetNetworkUseCase(repo repository.UserRepository, cache cacheport.Cache) *GetNetworkUseCase {
	return &GetNetworkUseCase{Repo: repo, Cache: cache}
}

func (uc *GetNetworkUseCase) Execute(ctx context.Context) (*NetworkData, error) {
	if cached := uc.fromCache(ctx); cached != nil {
		return cached, nil
	}

	users, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	data := &NetworkData{Students: []Person{}, Alumni: []Person{}}
	for _, u := range users {
		p := Person{
			Name:           u.FullName,
			GraduationYear: u.GraduationYear,
			LinkedIn:       u.LinkedIn,
		}
		if u.IsAlumni {
			p.Position = u.Role
			data.Alumni = append(data.Alumni, p)
		} else {
			p.Field = u.FieldOfStudy
			data.Students = append(data.Students, p)
		}
	}

	uc.toCache(ctx, data)
	return data, nil
}

func (uc *GetNetworkUseCase) fromCache(ctx context.Context) *NetworkData {
	if uc.Cache == nil {
		return nil
	}
	raw, err := uc.Cache.Get(ctx, networkCacheKey)
	if err != nil {
		return nil
	}
	var data NetworkData
	if json.Unmarshal([]byte(raw), &data) != nil {
		return nil
	}
	return &data
}

func (uc *GetNetworkUseCase) toCache(ctx context.Context, data *NetworkData) {
	if uc.Cache == nil {
		return
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	_ = uc.Cache.Set(ctx, networkCacheKey, string(raw), networkCacheTTL)
}
