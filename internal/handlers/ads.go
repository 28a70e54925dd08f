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

// RegisterAdRoutes registers the campaign change-event endpoint.
//
// POST /ads/change_event
// - action must be one of: enable, disable, bid_set, kw_add, kw_remove
// - Invalid actions are rejected with 400 before anything is persisted
func RegisterAdRoutes(r gin.IRoutes, st Store, log zerolog.Logger) {
	r.POST("/ads/change_event", func(c *gin.Context) {
		var req models.AdChangeEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.RequestsRejected.WithLabelValues("ad_change", "invalid_json").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		// Required fields per contract.
		if req.CampaignID == "" {
			metrics.RequestsRejected.WithLabelValues("ad_change", "missing_field").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "campaign_id required"})
			return
		}
		if req.Actor == "" {
			metrics.RequestsRejected.WithLabelValues("ad_change", "missing_field").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "actor required"})
			return
		}

		if !models.IsValidAction(req.Action) {
			metrics.RequestsRejected.WithLabelValues("ad_change", "invalid_action").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
			return
		}

		occurred := time.Now().UnixMilli()
		if req.OccurredAtMs != nil {
			occurred = *req.OccurredAtMs
		}

		id, err := st.InsertAdChangeEvent(
			c.Request.Context(),
			req.ShopID,
			req.CampaignID,
			req.Action,
			req.Actor,
			occurred,
			req.Meta,
		)
		if err != nil {
			metrics.StorageErrors.WithLabelValues("ad_change").Inc()
			log.Error().
				Err(err).
				Str("request_id", middleware.GetRequestID(c)).
				Str("campaign_id", req.CampaignID).
				Str("action", req.Action).
				Msg("ad change event insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
			return
		}

		metrics.RowsIngested.WithLabelValues("ad_change").Inc()
		c.JSON(http.StatusOK, models.AdChangeEventResponse{
			ID:           id,
			OccurredAtMs: occurred,
		})
	})
}
