// Package metrics defines and registers all custom Prometheus metrics for
// the storefront API. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenRefreshesTotal counts refresh-token exchanges.
// Label:
//   - result: "success" or "failure"
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of refresh-token exchanges, labelled by result.",
	},
	[]string{"result"},
)

// ── Checkout metrics ──────────────────────────────────────────────────────────

// CheckoutSessionsTotal counts provider checkout sessions opened.
// Label:
//   - result: "created" or "failed"
var CheckoutSessionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_sessions_total",
		Help:      "Total number of payment-provider checkout sessions requested.",
	},
	[]string{"result"},
)

// OrdersConfirmedTotal counts orders persisted after a paid confirmation.
var OrdersConfirmedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_confirmed_total",
		Help:      "Total number of orders persisted from confirmed payments.",
	},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// FeaturedCacheTotal counts featured-products cache lookups.
// Label:
//   - result: "hit" or "miss"
var FeaturedCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "featured_cache_total",
		Help:      "Total number of featured-products cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
