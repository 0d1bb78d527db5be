// Package metrics defines and registers all custom Prometheus metrics for the
// raid-hub API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation; HTTP request metrics are added by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "raidhub"

// ── Video metrics ─────────────────────────────────────────────────────────────

// VideosCreatedTotal counts persisted video submissions.
// Label:
//   - raid: the submitted raid name
var VideosCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "videos_created_total",
		Help:      "Total number of raid videos created, by raid name.",
	},
	[]string{"raid"},
)

// VideosRejectedTotal counts submissions refused by a domain rule.
// Label:
//   - reason: e.g. "invalid_difficulty"
var VideosRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "videos_rejected_total",
		Help:      "Total number of raid video submissions rejected by domain rules.",
	},
	[]string{"reason"},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts that reached the service.
// Label:
//   - result: "created", "duplicate" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registrations, labelled by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts form login attempts.
// Label:
//   - result: "success", "disabled", "bad_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts playlistItems calls.
// Label:
//   - status: HTTP status code as text, or "error" when no response arrived
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "youtube_requests_total",
		Help:      "Total number of YouTube playlistItems requests, by response status.",
	},
	[]string{"status"},
)

// UpstreamRequestDuration measures a single playlistItems round trip.
var UpstreamRequestDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "youtube_request_duration_seconds",
		Help:      "Duration of YouTube playlistItems requests.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
