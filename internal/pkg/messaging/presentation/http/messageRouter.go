package http

import (
	"github.com/coderanik/Alumni-Connect/internal/infrastructure/realtime"
	"github.com/coderanik/Alumni-Connect/internal/pkg/messaging/presentation/controller"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes registers messaging HTTP endpoints under the given router group.
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, registry *realtime.Registry, requireAuth gin.HandlerFunc) {
	sendCtl := controller.NewSendMessageController(pool, registry)
	getCtl := controller.NewGetMessagesController(pool)

	// POST /api/messages/send/:receiverId -> persist and fan out one message
	g.POST("/send/:receiverId", requireAuth, sendCtl.Handle())

	// GET /api/messages/:userToChatId -> full history with one other user
	g.GET("/:userToChatId", requireAuth, getCtl.Handle())
}

// RegisterSocketRoute mounts the websocket endpoint for realtime delivery.
func RegisterSocketRoute(r *gin.Engine, registry *realtime.Registry) {
	socketCtl := controller.NewMessageSocketController(registry)
	r.GET("/ws", socketCtl.Handle())
}
