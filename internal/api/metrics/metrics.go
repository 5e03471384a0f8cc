// Package metrics defines and registers all custom Prometheus metrics for the
// tracking portal. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracking_portal"

// LookupsTotal counts shipment lookups by outcome.
// Label:
//   - result: "found", "not_found", "empty", "error"
var LookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of shipment lookups, by result.",
	},
	[]string{"result"},
)

// LookupDuration measures how long a lookup takes end-to-end, store read and
// code generation included.
var LookupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lookup_duration_seconds",
		Help:      "Duration of shipment lookups from request to assembled report.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// QRGeneratedTotal counts scannable-code generations.
// Label:
//   - result: "ok" or "error" (errors degrade to an empty image slot)
var QRGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "qr_generated_total",
		Help:      "Total number of scannable-code generations, by result.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts lookup requests rejected by the per-IP throttle.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of lookup requests rejected by the rate limiter.",
	},
)
