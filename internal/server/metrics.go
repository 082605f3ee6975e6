package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lembar_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lembar_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Coordinate extraction metrics
	extractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lembar_extractions_total",
			Help: "Total number of coordinate extraction requests",
		},
		[]string{"status"}, // status: found, empty
	)

	extractionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lembar_extraction_duration_seconds",
			Help:    "Coordinate extraction duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 25, 50},
		},
	)

	// Report generation metrics
	reportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lembar_reports_generated_total",
			Help: "Total number of report generation requests",
		},
		[]string{"status"}, // status: ok, error
	)

	reportRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lembar_report_rows",
			Help:    "Number of rows per generated report",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		},
	)

	// File upload metrics
	uploadSizeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "lembar_upload_size_bytes",
			Help: "Size of uploaded files in bytes",
			Buckets: []float64{
				1024, 10 * 1024, 100 * 1024, 1024 * 1024,
				10 * 1024 * 1024, 50 * 1024 * 1024,
			},
		},
	)
)
