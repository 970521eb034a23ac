package http

import (
	cacheport "github.com/coderanik/Alumni-Connect/internal/infrastructure/cache/port"
	"github.com/coderanik/Alumni-Connect/internal/pkg/directory/presentation/controller"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes registers the network directory endpoint under the given group.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, cache cacheport.Cache) {
	networkCtl := controller.NewNetworkController(pool, cache)

	// GET /api/network -> students and alumni directory (public)
	g.GET("/network", networkCtl.Handle())
}
