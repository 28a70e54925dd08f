package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ingestion metrics
	RowsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_rows_ingested_total",
			Help: "Total number of rows persisted, by endpoint",
		},
		[]string{"endpoint"},
	)

	RequestsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_rejected_total",
			Help: "Total number of rejected ingest requests, by endpoint and reason",
		},
		[]string{"endpoint", "reason"},
	)

	StorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_storage_errors_total",
			Help: "Total number of failed inserts, by endpoint",
		},
		[]string{"endpoint"},
	)
)
