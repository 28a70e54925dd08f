package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/srvwb/core-api/internal/metrics"
	"github.com/srvwb/core-api/internal/middleware"
	"github.com/srvwb/core-api/internal/models"
)

// RegisterIngestRoutes registers the raw ingestion endpoint.
//
// POST /ingest/raw
// - Stores the payload verbatim, tagged with source/kind/shop
// - received_at_ms is always server-assigned; occurred_at_ms defaults to it
// - Durable: returns success only after the DB write commits
func RegisterIngestRoutes(r gin.IRoutes, st Store, log zerolog.Logger) {
	r.POST("/ingest/raw", func(c *gin.Context) {
		var req models.RawIngestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.RequestsRejected.WithLabelValues("raw", "invalid_json").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		// Required fields per contract.
		if req.Source == "" {
			metrics.RequestsRejected.WithLabelValues("raw", "missing_field").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "source required"})
			return
		}
		if req.Kind == "" {
			metrics.RequestsRejected.WithLabelValues("raw", "missing_field").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "kind required"})
			return
		}
		if req.Payload == nil {
			metrics.RequestsRejected.WithLabelValues("raw", "missing_field").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "payload required"})
			return
		}

		received := time.Now().UnixMilli()
		occurred := received
		if req.OccurredAtMs != nil {
			occurred = *req.OccurredAtMs
		}

		id, err := st.InsertRawIngest(
			c.Request.Context(),
			req.Source,
			req.Kind,
			req.ShopID,
			occurred,
			received,
			req.Payload,
		)
		if err != nil {
			metrics.StorageErrors.WithLabelValues("raw").Inc()
			log.Error().
				Err(err).
				Str("request_id", middleware.GetRequestID(c)).
				Str("source", req.Source).
				Str("kind", req.Kind).
				Msg("raw ingest insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
			return
		}

		metrics.RowsIngested.WithLabelValues("raw").Inc()
		c.JSON(http.StatusOK, models.RawIngestResponse{
			ID:           id,
			ReceivedAtMs: received,
		})
	})
}
