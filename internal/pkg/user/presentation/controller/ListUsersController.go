package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coderanik/Alumni-Connect/internal/pkg/auth"
	"github.com/coderanik/Alumni-Connect/internal/pkg/user/application/usecase"
	"github.com/coderanik/Alumni-Connect/internal/repository/adapter"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListUsersController handles the message-partner picker (one controller per endpoint)
type ListUsersController struct {
	UC *usecase.ListUsersUseCase
}

func NewListUsersController(pool *pgxpool.Pool) *ListUsersController {
	repo := adapter.NewPgUserRepository(pool)
	return &ListUsersController{UC: usecase.NewListUsersUseCase(repo)}
}

func (h *ListUsersController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		users, err := h.UC.Execute(ctx, usecase.ListUsersInput{ExcludeUserID: auth.UserID(c)})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(users))
		for _, u := range users {
			out = append(out, gin.H{
				"_id":      u.ID,
				"fullName": u.FullName,
				"isAlumni": u.IsAlumni,
			})
		}
		c.JSON(http.StatusOK, gin.H{"users": out})
	}
}
