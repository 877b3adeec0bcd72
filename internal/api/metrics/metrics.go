// Package metrics defines the portal's custom Prometheus metrics. It is the
// single source of truth for metric names, labels and help strings; the
// promauto constructors register everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: "admin", "jeng" or "user"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed user registrations, by role.",
	},
	[]string{"role"},
)

// ComplaintsSubmittedTotal counts stored complaints.
var ComplaintsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_submitted_total",
		Help:      "Total number of complaints submitted.",
	},
)

// AssignmentsCreatedTotal counts complaint→engineer assignment records.
// Double assignments count twice; the store keeps every record.
var AssignmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignments_created_total",
		Help:      "Total number of complaint assignment records created.",
	},
)
