// Package metrics defines and registers the custom Prometheus metrics for the
// content API. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contentapi"

// SignupsTotal counts completed account registrations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created through /signup.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success" or "throttled"; rejected credentials are counted in
//     contentapi_auth_rejections_total under the local strategy.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts by outcome.",
	},
	[]string{"outcome"},
)

// AuthRejectionsTotal counts requests rejected by an authentication strategy
// before the handler ran.
// Label:
//   - strategy: the strategy name ("local", "bearer")
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by an authentication strategy.",
	},
	[]string{"strategy"},
)
