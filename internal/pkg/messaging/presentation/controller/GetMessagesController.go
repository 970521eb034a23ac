package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coderanik/Alumni-Connect/internal/pkg/auth"
	"github.com/coderanik/Alumni-Connect/internal/pkg/messaging/application/usecase"
	"github.com/coderanik/Alumni-Connect/internal/pkg/messaging/persistence/repository/adapter"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GetMessagesController handles fetching the full history with one other user
// (one controller per endpoint)
type GetMessagesController struct {
	UC *usecase.GetMessagesUseCase
}

func NewGetMessagesController(pool *pgxpool.Pool) *GetMessagesController {
	repo := adapter.NewPgMessageRepository(pool)
	return &GetMessagesController{UC: usecase.NewGetMessagesUseCase(repo)}
}

// Handle returns a gin handler for GET /api/messages/:userToChatId
func (h *GetMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.UserID(c)
		otherUserID := c.Param("userToChatId")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msgs, err := h.UC.Execute(ctx, usecase.GetMessagesInput{
			UserID:      userID,
			OtherUserID: otherUserID,
		})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrUnauthenticated):
				status = http.StatusUnauthorized
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, msgs)
	}
}
