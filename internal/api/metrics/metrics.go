// Package metrics defines and registers all custom Prometheus metrics for
// the clinic API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// init via promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// RegistrationsTotal counts created accounts.
// Label:
//   - role: the account role (admin, doctor, receptionist, patient)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
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

// AppointmentsBookedTotal counts newly booked appointments.
var AppointmentsBookedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_booked_total",
		Help:      "Total number of appointments booked.",
	},
)

// InvoicesCreatedTotal counts created invoices.
// Label:
//   - status: "Pending" or "Paid"
var InvoicesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_created_total",
		Help:      "Total number of invoices created, by status.",
	},
	[]string{"status"},
)

// ImportRowsTotal counts bulk-import row outcomes.
// Labels:
//   - entity: "patient" or "doctor"
//   - result: "imported" or "skipped"
var ImportRowsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_rows_total",
		Help:      "Total number of spreadsheet rows processed, by entity and result.",
	},
	[]string{"entity", "result"},
)

// ExportsTotal counts spreadsheet downloads (templates included).
// Label:
//   - entity: "patient" or "doctor"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of spreadsheet exports served, by entity.",
	},
	[]string{"entity"},
)
