package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coderanik/Alumni-Connect/internal/pkg/events/application/usecase"
	"github.com/coderanik/Alumni-Connect/internal/pkg/events/persistence/repository/adapter"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListEventsController handles listing upcoming events (one controller per endpoint)
type ListEventsController struct {
	UC *usecase.ListEventsUseCase
}

func NewListEventsController(pool *pgxpool.Pool) *ListEventsController {
	repo := adapter.NewPgEventRepository(pool)
	return &ListEventsController{UC: usecase.NewListEventsUseCase(repo)}
}

func (h *ListEventsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		out, err := h.UC.Execute(ctx)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"events": out})
	}
}
