package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	cacheport "github.com/coderanik/Alumni-Connect/internal/infrastructure/cache/port"
	"github.com/coderanik/Alumni-Connect/internal/pkg/directory/application/usecase"
	"github.com/coderanik/Alumni-Connect/internal/repository/adapter"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NetworkController serves the public network directory (one controller per endpoint)
type NetworkController struct {
	UC *usecase.GetNetworkUseCase
}

func NewNetworkController(pool *pgxpool.Pool, cache cacheport.Cache) *NetworkController {
	repo := adapter.NewPgUserRepository(pool)
	return &NetworkController{UC: usecase.NewGetNetworkUseCase(repo, cache)}
}

func (h *NetworkController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		data, err := h.UC.Execute(ctx)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, data)
	}
}
