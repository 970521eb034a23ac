package http

import (
	"github.com/coderanik/Alumni-Connect/internal/pkg/user/presentation/controller"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterAuthRoutes registers signup/login endpoints under the given group.
func RegisterAuthRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, secret string) {
	signupCtl := controller.NewSignupController(pool, secret)
	loginCtl := controller.NewLoginController(pool, secret)

	// POST /auth/signup -> register a student or alumni account
	g.POST("/signup", signupCtl.Handle())

	// POST /auth/login -> verify credentials, issue bearer token
	g.POST("/login", loginCtl.Handle())
}

// RegisterUserRoutes registers authenticated account endpoints under the given group.
func RegisterUserRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, requireAuth gin.HandlerFunc) {
	listCtl := controller.NewListUsersController(pool)
	profileCtl := controller.NewProfileController(pool)

	// GET /api/user -> all accounts except the caller (message-partner picker)
	g.GET("", requireAuth, listCtl.Handle())

	// GET /api/user/profile -> caller's own account
	g.GET("/profile", requireAuth, profileCtl.Handle())
}
