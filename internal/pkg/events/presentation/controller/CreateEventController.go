package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	qport "github.com/coderanik/Alumni-Connect/internal/infrastructure/queue/port"
	"github.com/coderanik/Alumni-Connect/internal/pkg/auth"
	"github.com/coderanik/Alumni-Connect/internal/pkg/events/application/usecase"
	"github.com/coderanik/Alumni-Connect/internal/pkg/events/persistence/repository/adapter"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateEventController handles event creation (one controller per endpoint)
type CreateEventController struct {
	UC *usecase.CreateEventUseCase
}

func NewCreateEventController(pool *pgxpool.Pool, queue qport.Client) *CreateEventController {
	repo := adapter.NewPgEventRepository(pool)
	return &CreateEventController{UC: usecase.NewCreateEventUseCase(repo, queue)}
}

type createEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
}

func (h *CreateEventController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		event, err := h.UC.Execute(ctx, usecase.CreateEventInput{
			Title:       req.Title,
			Description: req.Description,
			Location:    req.Location,
			StartsAt:    req.StartsAt,
			CreatedBy:   auth.UserID(c),
		})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, event)
	}
}
