package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coderanik/Alumni-Connect/internal/infrastructure/realtime"
	"github.com/coderanik/Alumni-Connect/internal/pkg/auth"
	messaging "github.com/coderanik/Alumni-Connect/internal/pkg/messaging/application/domain"
	"github.com/coderanik/Alumni-Connect/internal/pkg/messaging/application/delivery"
	"github.com/coderanik/Alumni-Connect/internal/pkg/messaging/application/usecase"
	"github.com/coderanik/Alumni-Connect/internal/pkg/messaging/persistence/repository/adapter"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SendMessageController handles the send-message endpoint only (one controller per endpoint)
type SendMessageController struct {
	UC *usecase.SendMessageUseCase
}

func NewSendMessageController(pool *pgxpool.Pool, registry *realtime.Registry) *SendMessageController {
	repo := adapter.NewPgMessageRepository(pool)
	uc := usecase.NewSendMessageUseCase(repo, delivery.NewDispatcher(registry))
	return &SendMessageController{UC: uc}
}

// sendMessageRequest is the DTO for the HTTP request body. The body is
// deliberately unvalidated: empty messages are accepted as-is.
type sendMessageRequest struct {
	Message string `json:"message"`
}

// Handle returns a gin handler for POST /api/messages/send/:receiverId
func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		senderID := auth.UserID(c)
		receiverID := c.Param("receiverId")

		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msg, err := h.UC.Execute(ctx, usecase.SendMessageInput{
			SenderID:   senderID,
			ReceiverID: receiverID,
			Body:       req.Message,
		})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrUnauthenticated):
				status = http.StatusUnauthorized
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			case errors.Is(err, messaging.ErrMissingReceiver):
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, msg)
	}
}
