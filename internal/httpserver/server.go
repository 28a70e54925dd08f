package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/srvwb/core-api/internal/handlers"
	"github.com/srvwb/core-api/internal/middleware"
)

// NewRouter wires the gateway endpoints.
// Operational: /health, /metrics
// Ingestion:   /ingest/raw, /ads/change_event
func NewRouter(log zerolog.Logger, st handlers.Store) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))

	handlers.RegisterHealthRoutes(r, st)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterIngestRoutes(r, st, log)
	handlers.RegisterAdRoutes(r, st, log)

	return r
}
