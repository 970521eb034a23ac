package http

import (
	qport "github.com/coderanik/Alumni-Connect/internal/infrastructure/queue/port"
	"github.com/coderanik/Alumni-Connect/internal/pkg/events/presentation/controller"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes registers event endpoints under the given router group.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, queue qport.Client, requireAuth gin.HandlerFunc) {
	createCtl := controller.NewCreateEventController(pool, queue)
	listCtl := controller.NewListEventsController(pool)
	getCtl := controller.NewGetEventController(pool)

	// POST /api/events -> post a new event and schedule its reminder
	g.POST("", requireAuth, createCtl.Handle())

	// GET /api/events -> upcoming events, soonest first
	g.GET("", listCtl.Handle())

	// GET /api/events/:eventId -> one event posting
	g.GET("/:eventId", getCtl.Handle())
}
