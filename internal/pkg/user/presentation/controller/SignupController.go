package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coderanik/Alumni-Connect/internal/pkg/user/application/usecase"
	"github.com/coderanik/Alumni-Connect/internal/repository/adapter"
	repository "github.com/coderanik/Alumni-Connect/internal/repository/port"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SignupController handles account registration (one controller per endpoint)
type SignupController struct {
	UC *usecase.SignupUseCase
}

func NewSignupController(pool *pgxpool.Pool, secret string) *SignupController {
	repo := adapter.NewPgUserRepository(pool)
	return &SignupController{UC: usecase.NewSignupUseCase(repo, secret)}
}

type signupRequest struct {
	FullName       string `json:"fullName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	GraduationYear int    `json:"graduationYear"`
	FieldOfStudy   string `json:"fieldOfStudy"`
	LinkedIn       string `json:"linkedin"`
	Role           string `json:"role"`
	IsAlumni       bool   `json:"isAlumni"`
}

func (h *SignupController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		res, err := h.UC.Execute(ctx, usecase.SignupInput{
			FullName:       req.FullName,
			Email:          req.Email,
			Password:       req.Password,
			GraduationYear: req.GraduationYear,
			FieldOfStudy:   req.FieldOfStudy,
			LinkedIn:       req.LinkedIn,
			Role:           req.Role,
			IsAlumni:       req.IsAlumni,
		})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, repository.ErrDuplicateEmail):
				status = http.StatusConflict
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"userId": res.UserID,
			"token":  res.Token,
		})
	}
}
