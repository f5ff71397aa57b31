// Package metrics defines all custom Prometheus metrics for the BookMyShoot
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics auto-register with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookmyshoot"

// SignupsTotal counts created accounts.
// Label:
//   - role: "customer", "photographer" or "admin"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure" or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts access-guard token checks.
// Label:
//   - result: "success", "expired", "invalid" or "user_gone"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// PasswordHashDuration measures how long a single password hash takes.
// Bcrypt is deliberately slow; this histogram makes cost-factor tuning visible.
var PasswordHashDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of bcrypt password hashing.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
	},
)
