package lisp

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "lisp"
	outcomeOK        = "ok"
)

// Metrics collects evaluation statistics. A nil *Metrics records nothing.
type Metrics struct {
	evaluations   *prometheus.CounterVec
	checkFailures *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "evaluations_total",
				Help:      "Evaluated expression trees by root operator and outcome",
			},
			[]string{"operator", "outcome"},
		),
		checkFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "check_failures_total",
				Help:      "Expression trees rejected by the checker",
			},
			[]string{"error_type"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "evaluation_duration_seconds",
				Help:      "Duration of expression tree evaluation",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"operator"},
		),
	}
	for _, c := range []prometheus.Collector{m.evaluations, m.checkFailures, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register evaluator metrics")
		}
	}
	return m, nil
}

func (m *Metrics) observeEvaluation(op Operator, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := outcomeOK
	if err != nil {
		outcome = GetErrorType(err).label()
	}
	m.evaluations.WithLabelValues(op.String(), outcome).Inc()
	m.duration.WithLabelValues(op.String()).Observe(time.Since(start).Seconds())
}

func (m *Metrics) observeCheckFailure(err error) {
	if m == nil {
		return
	}
	m.checkFailures.WithLabelValues(GetErrorType(err).label()).Inc()
}
