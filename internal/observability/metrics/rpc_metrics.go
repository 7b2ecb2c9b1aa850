package metrics

import (
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RPCMetrics captures remote ERP call health for scrape-based alerting.
type RPCMetrics struct {
	callDuration *prometheus.HistogramVec
	callErrors   *prometheus.CounterVec
}

// NewRPCMetrics registers the ERP RPC instruments on the default registry.
func NewRPCMetrics() *RPCMetrics {
	m := &RPCMetrics{
		callDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "erpbridge_rpc_call_duration_seconds",
			Help:    "Duration of ERP RPC calls by model and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"model", "method"}),
		callErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "erpbridge_rpc_call_errors_total",
			Help: "Failed ERP RPC calls by model, method and error class.",
		}, []string{"model", "method", "class"}),
	}
	prometheus.MustRegister(m.callDuration, m.callErrors)
	return m
}

// ObserveCall records one completed RPC round-trip.
func (m *RPCMetrics) ObserveCall(model, method string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.callDuration.WithLabelValues(model, method).Observe(elapsed.Seconds())
	if err != nil {
		m.callErrors.WithLabelValues(model, method, classifyRPCError(err)).Inc()
	}
}

func classifyRPCError(err error) string {
	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return "timeout"
	}
	// Faults embedded in 200 responses carry this prefix; matching on it
	// here avoids an import cycle with the client package.
	if strings.HasPrefix(err.Error(), "erp rpc error") {
		return "remote_fault"
	}
	return "transport"
}
