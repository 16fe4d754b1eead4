// Package metrics defines and registers the custom Prometheus metrics of the
// shop API. HTTP request metrics come from the echoprometheus middleware; the
// collectors here count domain outcomes.
//
// All collectors are registered with the default registry via promauto, so
// they are exposed by the /metrics handler without further setup.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shop"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "success", "duplicate", "invalid_credentials"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of register/login attempts, by outcome.",
	},
	[]string{"action", "result"},
)

// SessionRejectionsTotal counts requests turned away by the session gate.
// Label:
//   - reason: "missing", "invalid", "expired", "revoked"
var SessionRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_rejections_total",
		Help:      "Total number of requests rejected for lack of a valid session.",
	},
	[]string{"reason"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductMutationsTotal counts admin changes to the catalog.
// Label:
//   - op: "create", "update", "delete"
var ProductMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_mutations_total",
		Help:      "Total number of product create/update/delete operations.",
	},
	[]string{"op"},
)

// CategoryCacheTotal counts category cache lookups.
// Label:
//   - result: "hit" or "miss"
var CategoryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_cache_total",
		Help:      "Total number of category cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Cart metrics ──────────────────────────────────────────────────────────────

// CartSavesTotal counts successful cart replacements.
var CartSavesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_saves_total",
		Help:      "Total number of carts saved.",
	},
)
