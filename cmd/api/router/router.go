package router

import (
	cacheport "github.com/coderanik/Alumni-Connect/internal/infrastructure/cache/port"
	qport "github.com/coderanik/Alumni-Connect/internal/infrastructure/queue/port"
	"github.com/coderanik/Alumni-Connect/internal/infrastructure/realtime"
	"github.com/coderanik/Alumni-Connect/internal/pkg/auth"
	directoryHTTP "github.com/coderanik/Alumni-Connect/internal/pkg/directory/presentation/http"
	eventsHTTP "github.com/coderanik/Alumni-Connect/internal/pkg/events/presentation/http"
	messagingHTTP "github.com/coderanik/Alumni-Connect/internal/pkg/messaging/presentation/http"
	userHTTP "github.com/coderanik/Alumni-Connect/internal/pkg/user/presentation/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps bundles the shared infrastructure handed down to every context.
type Deps struct {
	Pool     *pgxpool.Pool
	Registry *realtime.Registry
	Cache    cacheport.Cache
	Queue    qport.Client
	Secret   string
}

// RegisterRoutes mounts every HTTP and websocket endpoint on the engine.
// Paths mirror the public API consumed by the frontend.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	requireAuth := auth.Middleware(deps.Secret)

	userHTTP.RegisterAuthRoutes(r.Group("/auth"), deps.Pool, deps.Secret)
	userHTTP.RegisterUserRoutes(r.Group("/api/user"), deps.Pool, requireAuth)
	messagingHTTP.RegisterRoutes(r.Group("/api/messages"), deps.Pool, deps.Registry, requireAuth)
	messagingHTTP.RegisterSocketRoute(r, deps.Registry)
	directoryHTTP.RegisterRoutes(r.Group("/api"), deps.Pool, deps.Cache)
	eventsHTTP.RegisterRoutes(r.Group("/api/events"), deps.Pool, deps.Queue, requireAuth)
}
