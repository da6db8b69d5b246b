package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gimbalworks/sbgcdec/internal/decode"
)

// Step outcomes recorded on the decode counters.
const (
	OutcomeGated   = "gated"
	OutcomeDecoded = "decoded"
	OutcomeEmpty   = "empty"
)

var (
	registerOnce sync.Once

	decodeSteps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sbgcdec",
			Subsystem: "decode",
			Name:      "steps_total",
			Help:      "Decode steps by outcome.",
		},
		[]string{"source", "outcome"},
	)
	decodeParseErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sbgcdec",
			Subsystem: "decode",
			Name:      "parse_errors_total",
			Help:      "Grammar faults observed during scans.",
		},
		[]string{"source"},
	)
	decodeCommands = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sbgcdec",
			Subsystem: "decode",
			Name:      "commands_total",
			Help:      "Decoded frames by command id.",
		},
		[]string{"source", "command_id"},
	)
	stepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sbgcdec",
			Subsystem: "decode",
			Name:      "step_duration_seconds",
			Help:      "Decode step duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sbgcdec",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sbgcdec",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			decodeSteps, decodeParseErrors, decodeCommands, stepDuration,
			httpRequests, httpDuration,
		)
	})
}

// RecordStep records the outcome of one decode step.
func RecordStep(source string, res decode.Result, duration time.Duration) {
	RegisterMetrics()
	outcome := OutcomeEmpty
	switch {
	case res.Completion == decode.GatedOff:
		outcome = OutcomeGated
	case res.Decoded():
		outcome = OutcomeDecoded
	}
	decodeSteps.WithLabelValues(source, outcome).Inc()
	if res.ParseErrors > 0 {
		decodeParseErrors.WithLabelValues(source).Add(float64(res.ParseErrors))
	}
	if res.Decoded() {
		decodeCommands.WithLabelValues(source, strconv.Itoa(int(res.CommandID))).Inc()
	}
	stepDuration.WithLabelValues(source).Observe(duration.Seconds())
}

func RecordHTTPRequest(service, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(service, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(service, method, path, statusLabel).Observe(duration.Seconds())
}
