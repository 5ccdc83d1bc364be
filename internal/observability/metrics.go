package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edidctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "edidctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
	encodeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edidctl",
			Subsystem: "encoder",
			Name:      "blocks_total",
			Help:      "EDID encode attempts by outcome.",
		},
		[]string{"service", "outcome"},
	)
	assistantRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edidctl",
			Subsystem: "assistant",
			Name:      "requests_total",
			Help:      "Assistant analyze requests.",
		},
		[]string{"service", "status", "updated"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, encodeTotal, assistantRequests)
	})
}

func RecordHTTPRequest(service, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(service, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(service, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordEncode counts one encode attempt. Outcome is "ok", "invalid"
// (validation refused), or "error" (length contract violated).
func RecordEncode(service, outcome string) {
	RegisterMetrics()
	encodeTotal.WithLabelValues(service, outcome).Inc()
}

func RecordAssistantRequest(service string, status int, updated bool) {
	RegisterMetrics()
	assistantRequests.WithLabelValues(service, strconv.Itoa(status), strconv.FormatBool(updated)).Inc()
}
