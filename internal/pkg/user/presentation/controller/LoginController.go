package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coderanik/Alumni-Connect/internal/pkg/user/application/usecase"
	"github.com/coderanik/Alumni-Connect/internal/repository/adapter"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LoginController handles credential verification (one controller per endpoint)
type LoginController struct {
	UC *usecase.LoginUseCase
}

func NewLoginController(pool *pgxpool.Pool, secret string) *LoginController {
	repo := adapter.NewPgUserRepository(pool)
	return &LoginController{UC: usecase.NewLoginUseCase(repo, secret)}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *LoginController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		res, err := h.UC.Execute(ctx, usecase.LoginInput{
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrInvalidCredentials):
				status = http.StatusUnauthorized
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"userId":   res.User.ID,
			"fullName": res.User.FullName,
			"isAlumni": res.User.IsAlumni,
			"token":    res.Token,
		})
	}
}
