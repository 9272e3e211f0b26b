package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeSuccess labels pipeline runs that produced a diagnosis.
	OutcomeSuccess = "success"
	// OutcomeError labels pipeline runs that failed at any stage.
	OutcomeError = "error"
)

var (
	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dps",
			Name:      "predictions_total",
			Help:      "Total number of prediction pipeline runs, partitioned by disease and outcome.",
		},
		[]string{"disease", "outcome"},
	)

	predictionSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dps",
			Name:      "prediction_seconds",
			Help:      "End-to-end prediction pipeline latency in seconds.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	emailsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dps",
			Name:      "result_emails_total",
			Help:      "Result emails attempted, partitioned by delivery status.",
		},
		[]string{"status"},
	)
)

// Register attaches the service collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		predictionsTotal,
		predictionSeconds,
		emailsTotal,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObservePrediction records one pipeline run.
func ObservePrediction(disease string, duration time.Duration, failed bool) {
	outcome := OutcomeSuccess
	if failed {
		outcome = OutcomeError
	}
	predictionsTotal.WithLabelValues(disease, outcome).Inc()
	if duration < 0 {
		duration = 0
	}
	predictionSeconds.Observe(duration.Seconds())
}

// ObserveEmail records one result-email attempt.
func ObserveEmail(sent bool) {
	status := "sent"
	if !sent {
		status = "failed"
	}
	emailsTotal.WithLabelValues(status).Inc()
}
