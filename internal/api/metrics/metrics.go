// Package metrics defines and registers all custom Prometheus metrics for the
// salon API. It is the single source of truth for metric names, labels, and
// help strings; collectors register with the default registry at init time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salon"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "conflict", or "rejected" (validation failure)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests stopped by the auth middleware chain.
// Label:
//   - kind: "unauthorized" (401, bad/missing token) or "forbidden" (403, role outside allow-list)
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"kind"},
)

// AppointmentsBookedTotal counts successfully booked appointments.
var AppointmentsBookedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_booked_total",
		Help:      "Total number of appointments booked.",
	},
)
