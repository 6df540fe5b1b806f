package controller

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	commandsExecuted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "puremvc",
			Subsystem: "controller",
			Name:      "commands_executed_total",
			Help:      "Total commands instantiated and executed",
		},
		[]string{"notification"},
	)

	commandErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "puremvc",
			Subsystem: "controller",
			Name:      "command_errors_total",
			Help:      "Command failures by kind (instantiation, execute)",
		},
		[]string{"notification", "kind"},
	)
)

// Register adds the Controller counters to r. Counters are updated whether or not
// they are registered. Registering them again with the same r is a no-op.
func Register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{commandsExecuted, commandErrors} {
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
