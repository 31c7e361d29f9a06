package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command outcomes recorded by IncrementCommand.
const (
	OutcomeOK             = "ok"
	OutcomeParseError     = "parse_error"
	OutcomeExecutionError = "execution_error"
)

// Metrics holds the registry's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Commands        *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	Records         *prometheus.GaugeVec
	StorageFailures *prometheus.CounterVec
	CascadedPairs   prometheus.Counter
	PublishFailures prometheus.Counter
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Commands: f.NewCounterVec(prometheus.CounterOpts{
			Name: "friendlylink_commands_total",
			Help: "Commands processed, by command word and outcome",
		}, []string{"command", "outcome"}),
		CommandDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "friendlylink_command_duration_seconds",
			Help:    "Time from parse to persisted result per command",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"command"}),
		Records: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "friendlylink_records",
			Help: "Records currently held, by kind",
		}, []string{"kind"}),
		StorageFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "friendlylink_storage_failures_total",
			Help: "Storage read or write failures",
		}, []string{"op"}),
		CascadedPairs: f.NewCounter(prometheus.CounterOpts{
			Name: "friendlylink_cascaded_pairs_total",
			Help: "Pairs removed because one side was deleted",
		}),
		PublishFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "friendlylink_event_publish_failures_total",
			Help: "Change events that could not be published",
		}),
	}
}

func (m *Metrics) IncrementCommand(command, outcome string) {
	if m == nil {
		return
	}
	m.Commands.WithLabelValues(command, outcome).Inc()
}

func (m *Metrics) ObserveCommand(command string, start time.Time) {
	if m == nil {
		return
	}
	m.CommandDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())
}

func (m *Metrics) SetRecords(elderly, volunteers, pairs int) {
	if m == nil {
		return
	}
	m.Records.WithLabelValues("elderly").Set(float64(elderly))
	m.Records.WithLabelValues("volunteer").Set(float64(volunteers))
	m.Records.WithLabelValues("pair").Set(float64(pairs))
}

func (m *Metrics) IncrementStorageFailure(op string) {
	if m == nil {
		return
	}
	m.StorageFailures.WithLabelValues(op).Inc()
}

func (m *Metrics) AddCascadedPairs(n int) {
	if m == nil || n == 0 {
		return
	}
	m.CascadedPairs.Add(float64(n))
}

func (m *Metrics) IncrementPublishFailure() {
	if m == nil {
		return
	}
	m.PublishFailures.Inc()
}
