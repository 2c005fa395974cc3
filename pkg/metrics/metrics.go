// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

var (
	IPNReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ipn_received_total",
			Help:      "Payment notifications received by gateway and topic.",
		},
		[]string{"gateway", "topic"},
	)

	// ReconcileOutcomes counts matcher results: identifier, amount,
	// manual, unmatched, ambiguous, ignored or failed.
	ReconcileOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_outcomes_total",
			Help:      "Deposit reconciliation attempts by outcome.",
		},
		[]string{"source", "outcome"},
	)

	GatewayCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_calls_total",
			Help:      "External API calls by provider, operation and result.",
		},
		[]string{"provider", "operation", "result"},
	)

	GatewayLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_call_duration_seconds",
			Help:      "External API call latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"provider", "operation"},
	)

	CredentialReloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credential_cache_reloads_total",
			Help:      "Reloads of the merchant credential cache.",
		},
	)

	RealtimeClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realtime_clients",
			Help:      "Connected websocket clients.",
		},
	)

	RealtimeDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_dropped_messages_total",
			Help:      "Messages dropped because a client's outbound buffer was full.",
		},
	)
)

// Result labels a call outcome.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
