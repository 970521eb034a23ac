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

// ProfileController serves the caller's own account (one controller per endpoint)
type ProfileController struct {
	UC *usecase.GetProfileUseCase
}

func NewProfileController(pool *pgxpool.Pool) *ProfileController {
	repo := adapter.NewPgUserRepository(pool)
	return &ProfileController{UC: usecase.NewGetProfileUseCase(repo)}
}

func (h *ProfileController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		user, err := h.UC.Execute(ctx, auth.UserID(c))
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

		c.JSON(http.StatusOK, gin.H{
			"_id":            user.ID,
			"fullName":       user.FullName,
			"email":          user.Email,
			"graduationYear": user.GraduationYear,
			"fieldOfStudy":   user.FieldOfStudy,
			"linkedin":       user.LinkedIn,
			"role":           user.Role,
			"isAlumni":       user.IsAlumni,
		})
	}
}
