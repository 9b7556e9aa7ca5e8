// Package metrics holds the process-wide prometheus collectors and the
// helpers that record into them. Everything registers with the default
// registry, which is exposed on /metrics.
package metrics

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_mate_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parking_mate_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	CollectionWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_mate_collection_writes_total",
			Help: "Total number of collection file writes",
		},
		[]string{"collection", "result"},
	)

	CollectionWriteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parking_mate_collection_write_duration_seconds",
			Help:    "Duration of collection file writes in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"collection"},
	)

	ScoreRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_mate_score_refreshes_total",
			Help: "Total number of parking lot score refresh rounds",
		},
		[]string{"result"},
	)

	ScoredParkingLots = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "parking_mate_scored_parking_lots",
			Help: "Number of parking lots updated by the last successful score refresh",
		},
	)
)

// RecordAPIRequest records one finished request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordCollectionWrite records one write of the collection file at path.
func RecordCollectionWrite(path string, duration time.Duration, err error) {
	collection := filepath.Base(path)
	CollectionWrites.WithLabelValues(collection, result(err)).Inc()
	CollectionWriteDuration.WithLabelValues(collection).Observe(duration.Seconds())
}

func RecordScoreRefresh(updated int, err error) {
	ScoreRefreshes.WithLabelValues(result(err)).Inc()
	if err == nil {
		ScoredParkingLots.Set(float64(updated))
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
