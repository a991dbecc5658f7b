package objective

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "forest"

const objectiveSubsystem = "objective"

// Metrics holds the Prometheus instruments updated by Evaluate.
//
// Fields:
//   - EvaluationsTotal: Evaluate calls by status (success, error).
//   - InstancesTotal: instances evaluated successfully.
//   - InstanceSeconds: per-instance inside/outside time.
//   - NegLogLikelihood: loss of the last successful evaluation.
type Metrics struct {
	EvaluationsTotal *prometheus.CounterVec
	InstancesTotal   prometheus.Counter
	InstanceSeconds  prometheus.Histogram
	NegLogLikelihood prometheus.Gauge
}

// NewMetrics creates the instruments and registers them with reg.
// Registering twice on one registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EvaluationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: objectiveSubsystem,
			Name:      "evaluations_total",
			Help:      "Objective evaluations by status.",
		}, []string{"status"}),
		InstancesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: objectiveSubsystem,
			Name:      "instances_total",
			Help:      "Training instances evaluated.",
		}),
		InstanceSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: objectiveSubsystem,
			Name:      "instance_seconds",
			Help:      "Time to evaluate one instance (both forests).",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		NegLogLikelihood: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: objectiveSubsystem,
			Name:      "neg_log_likelihood",
			Help:      "Negative log-likelihood of the last successful evaluation.",
		}),
	}
}

func (m *Metrics) recordEvaluation(ok bool, nll float64) {
	if m == nil {
		return
	}
	if !ok {
		m.EvaluationsTotal.WithLabelValues("error").Inc()
		return
	}
	m.EvaluationsTotal.WithLabelValues("success").Inc()
	m.NegLogLikelihood.Set(nll)
}

func (m *Metrics) recordInstance(seconds float64) {
	if m == nil {
		return
	}
	m.InstancesTotal.Inc()
	m.InstanceSeconds.Observe(seconds)
}
