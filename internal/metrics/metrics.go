package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command outcomes
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
)

var (
	// CommandsTotal counts executed commands by command name and outcome
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polystat_commands_total",
		Help: "Total executed commands by command and outcome",
	}, []string{"command", "outcome"})

	// RecordsSkippedTotal counts malformed polygon records dropped by batch reads
	RecordsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polystat_records_skipped_total",
		Help: "Total malformed polygon records skipped while reading",
	})
)

// ObserveCommand records one executed command
func ObserveCommand(command string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeInvalid
	}
	CommandsTotal.WithLabelValues(command, outcome).Inc()
}

// ObserveSkipped records n skipped polygon records
func ObserveSkipped(n int) {
	if n > 0 {
		RecordsSkippedTotal.Add(float64(n))
	}
}
