package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BackendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travel_backend_requests_total",
			Help: "Number of calls made to the REST backend",
		},
		[]string{"resource", "method", "status"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "travel_backend_request_duration_seconds",
			Help:    "Time taken by calls to the REST backend",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource", "method"},
	)

	ImageUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travel_image_uploads_total",
			Help: "Number of images sent to object storage",
		},
		[]string{"result"},
	)
)
