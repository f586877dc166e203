// Package metrics defines and registers all custom Prometheus metrics for the
// diary service. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// init through promauto, and exposed on /metrics by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "diary"

// ── Entry metrics ─────────────────────────────────────────────────────────────

// EntryWritesTotal counts successful entry mutations.
// Label:
//   - action: "created", "updated" or "deleted"
var EntryWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entry_writes_total",
		Help:      "Total number of successful entry writes, by action.",
	},
	[]string{"action"},
)

// EntryErrorsTotal counts entry workflows that ended in an error page or alert.
// Label:
//   - reason: "validation", "not_found", "persistence"
var EntryErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entry_errors_total",
		Help:      "Total number of entry operations that failed, by reason.",
	},
	[]string{"reason"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// AuthRedirectsTotal counts requests bounced to the sign-in page.
var AuthRedirectsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_redirects_total",
		Help:      "Total number of requests redirected to /login for lack of a session.",
	},
)

// AuthEventsTotal counts sign-up, sign-in and sign-out outcomes.
// Labels:
//   - event: "signup", "login", "callback", "logout"
//   - result: "ok" or "error"
var AuthEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Total number of authentication events, by event and result.",
	},
	[]string{"event", "result"},
)

// ThemeTogglesTotal counts theme switches.
// Label:
//   - theme: the theme switched to
var ThemeTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "theme_toggles_total",
		Help:      "Total number of theme toggles, by resulting theme.",
	},
	[]string{"theme"},
)

// ── Activity dispatcher metrics ───────────────────────────────────────────────

// ActivityQueueDepth tracks the records waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity records pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityErrorsTotal counts audit records that were not stored.
// Label:
//   - reason: "queue_full" or "insert_failed"
var ActivityErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity records dropped or failed, by reason.",
	},
	[]string{"reason"},
)

// ActivityWriteDuration measures how long a single audit insert takes.
var ActivityWriteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_write_duration_seconds",
		Help:      "Duration of activity record persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)
