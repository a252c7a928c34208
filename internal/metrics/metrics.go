// Package metrics instruments the simulated endpoints with Prometheus
// counters and latency histograms. Registration is explicit (no init())
// so embedding programs control what lands in their registry.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mockdesk/mockdesk/internal/domain"
)

var (
	// OperationsTotal counts simulated endpoint invocations.
	OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mockdesk",
			Name:      "operations_total",
			Help:      "Total number of simulated API operations",
		},
		[]string{"api", "operation", "status"},
	)

	// OperationDuration tracks simulated endpoint latency.
	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mockdesk",
			Name:      "operation_duration_seconds",
			Help:      "Simulated API operation duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"api", "operation"},
	)
)

// Register registers the operation metrics with the default registry.
func Register() {
	prometheus.MustRegister(OperationsTotal)
	prometheus.MustRegister(OperationDuration)
}

// ObserveOperation records one completed operation. The status label is
// "ok" for successes, the simulated HTTP status for contract errors, and
// "error" otherwise.
func ObserveOperation(api, operation string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
		if code := domain.StatusOf(err); code != 0 {
			status = strconv.Itoa(code)
		}
	}
	OperationsTotal.WithLabelValues(api, operation, status).Inc()
	OperationDuration.WithLabelValues(api, operation).Observe(elapsed.Seconds())
}
