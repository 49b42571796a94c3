package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worklog_records_created_total",
		Help: "Records successfully inserted.",
	})

	RecordsUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worklog_records_updated_total",
		Help: "Successful record updates.",
	})

	RecordsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worklog_records_deleted_total",
		Help: "Delete requests that completed, including ones for absent ids.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "worklog_http_request_duration_seconds",
		Help:    "Time from request receipt to response, by route pattern.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "route", "status"})
)
