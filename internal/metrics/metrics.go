// Package metrics holds the Prometheus collectors of the recurrence,
// reminder and budget alert engines.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var collectors = []prometheus.Collector{
	EntriesMaterialized,
	MaterializationFailures,
	RemindersSent,
	BudgetAlertsSent,
}

// Register registers all engine metrics with the default registry.
func Register() error {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// Unregister unregisters all engine metrics.
//
// This is needed to cleanly exit.
func Unregister() bool {
	for _, c := range collectors {
		if ok := prometheus.Unregister(c); !ok {
			return false
		}
	}

	return true
}

var EntriesMaterialized = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "tally_entries_materialized_total",
		Help: "How many ledger entries were materialized from recurring schedules.",
	},
)

var MaterializationFailures = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "tally_materialization_failures_total",
		Help: "How many schedule materializations failed.",
	},
)

var RemindersSent = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tally_bill_reminders_sent_total",
		Help: "How many bill reminders were sent, partitioned by lead days.",
	},
	[]string{"lead_days"},
)

var BudgetAlertsSent = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tally_budget_alerts_sent_total",
		Help: "How many budget alerts were sent, partitioned by level.",
	},
	[]string{"level"},
)
