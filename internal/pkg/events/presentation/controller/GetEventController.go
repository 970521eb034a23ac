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

// GetEventController handles fetching one event (one controller per endpoint)
type GetEventController struct {
	UC *usecase.GetEventUseCase
}

func NewGetEventController(pool *pgxpool.Pool) *GetEventController {
	repo := adapter.NewPgEventRepository(pool)
	return &GetEventController{UC: usecase.NewGetEventUseCase(repo)}
}

func (h *GetEventController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		event, err := h.UC.Execute(ctx, c.Param("eventId"))
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrNotFound):
				status = http.StatusNotFound
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, event)
	}
}
