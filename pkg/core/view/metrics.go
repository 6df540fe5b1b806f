package view

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	notificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "puremvc",
			Subsystem: "view",
			Name:      "notifications_total",
			Help:      "Total notifications routed by the View",
		},
		[]string{"notification"},
	)

	observersNotified = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "puremvc",
			Subsystem: "view",
			Name:      "observers_notified_total",
			Help:      "Observer callbacks scheduled by the View, counted per notification",
		},
		[]string{"notification"},
	)
)

// Register adds the View counters to r. Counters are updated whether or not
// they are registered. Registering them again with the same r is a no-op.
func Register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{notificationsTotal, observersNotified} {
		if err := r.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
