// Package metrics provides Prometheus metrics for the messaging-api service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "jan"
	subsystem = "messaging_api"
)

// Refresh poll outcomes.
const (
	RefreshNoCheckpoint = "no_checkpoint"
	RefreshEmpty        = "empty"
	RefreshNewMessages  = "new_messages"
)

var (
	// RequestsTotal counts HTTP requests by route and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// ConversationsCreatedTotal counts created conversations.
	ConversationsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "conversations_created_total",
			Help:      "Total conversations created",
		},
	)

	// ConversationsDeletedTotal counts deleted conversations.
	ConversationsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "conversations_deleted_total",
			Help:      "Total conversations deleted",
		},
	)

	// MessagesPostedTotal counts stored messages.
	MessagesPostedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "messages_posted_total",
			Help:      "Total messages posted",
		},
	)

	// RefreshPollsTotal counts refresh_messages polls by outcome.
	RefreshPollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "refresh_polls_total",
			Help:      "Total incremental message polls by outcome",
		},
		[]string{"outcome"},
	)

	// RefreshBatchSize tracks how many messages a single poll returns.
	RefreshBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "refresh_batch_size",
			Help:      "Number of messages returned per incremental poll",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(method, endpoint, status string, durationSeconds float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSeconds)
}

// RecordRefresh records the outcome of one refresh poll.
func RecordRefresh(hadCheckpoint bool, returned int) {
	outcome := RefreshNewMessages
	switch {
	case !hadCheckpoint:
		outcome = RefreshNoCheckpoint
	case returned == 0:
		outcome = RefreshEmpty
	}
	RefreshPollsTotal.WithLabelValues(outcome).Inc()
	if hadCheckpoint {
		RefreshBatchSize.Observe(float64(returned))
	}
}
