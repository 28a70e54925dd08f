package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/srvwb/core-api/internal/models"
)

// pingTimeout bounds the health round-trip so a hung DB cannot hang /health.
const pingTimeout = time.Second

// RegisterHealthRoutes registers the health endpoint.
//
// GET /health
// - Always 200; DB reachability is reported in the db field, never as a 5xx
// - db is "ok" or "error: <kind>"
func RegisterHealthRoutes(r gin.IRoutes, st Store) {
	r.GET("/health", func(c *gin.Context) {
		ts := time.Now().UnixMilli()

		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()

		db := "ok"
		if err := st.Ping(ctx); err != nil {
			db = "error: " + classifyDBError(err)
		}

		c.JSON(http.StatusOK, models.HealthResponse{
			OK:   db == "ok",
			TsMs: ts,
			DB:   db,
		})
	})
}

// classifyDBError maps a ping failure to a short descriptor: the Postgres
// SQLSTATE when the server answered with an error, "timeout" when the
// round-trip deadline expired, "unreachable" otherwise.
func classifyDBError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "unreachable"
}
