// Package metrics records the outcome of a releasefetch run for the node-exporter textfile collector.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/reactome/releasefetch"
)

// Outcomes of a fetch, used as the outcome label.
const (
	OutcomeOK               = "ok"
	OutcomeRetriesExceeded  = "retries_exceeded"
	OutcomeFTPTransfer      = "ftp_transfer"
	OutcomeRetrievalFailure = "retrieval_failure"
	OutcomeInvalidConfig    = "invalid_config"
	OutcomeError            = "error"
)

// Recorder owns a registry holding only the releasefetch metrics of one run.
type Recorder struct {
	registry *prometheus.Registry

	fetches          *prometheus.CounterVec
	fetchDuration    *prometheus.HistogramVec
	fileSize         *prometheus.GaugeVec
	lastSuccess      *prometheus.GaugeVec
	ensemblRemaining prometheus.Gauge
}

// NewRecorder creates a Recorder with an empty registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		// fetches counts retrievals per source and outcome
		fetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "releasefetch_fetches_total",
				Help: "Total number of data file retrievals",
			},
			[]string{"source", "outcome"},
		),
		fetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "releasefetch_fetch_duration_seconds",
				Help:    "Duration of data file retrievals in seconds",
				Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900, 3600},
			},
			[]string{"source"},
		),
		fileSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "releasefetch_file_size_bytes",
				Help: "Size of the data file at its destination after the retrieval",
			},
			[]string{"source"},
		),
		lastSuccess: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "releasefetch_last_success_timestamp_seconds",
				Help: "Unix time of the last successful retrieval",
			},
			[]string{"source"},
		),
		ensemblRemaining: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "releasefetch_ensembl_requests_remaining",
				Help: "Requests remaining in the Ensembl REST rate-limit window, as last reported",
			},
		),
	}
}

// Outcome maps a FetchData error to an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, releasefetch.ErrRetriesExceeded):
		return OutcomeRetriesExceeded
	case errors.Is(err, releasefetch.ErrFTPTransfer):
		return OutcomeFTPTransfer
	case errors.Is(err, releasefetch.ErrInvalidConfig), errors.Is(err, releasefetch.ErrUnsupportedScheme):
		return OutcomeInvalidConfig
	case errors.Is(err, releasefetch.ErrRetrievalFailure):
		return OutcomeRetrievalFailure
	default:
		return OutcomeError
	}
}

// ObserveFetch records one retrieval. size is ignored when negative.
func (r *Recorder) ObserveFetch(source string, err error, duration time.Duration, size int64, finished time.Time) {
	r.fetches.WithLabelValues(source, Outcome(err)).Inc()
	r.fetchDuration.WithLabelValues(source).Observe(duration.Seconds())

	if size >= 0 {
		r.fileSize.WithLabelValues(source).Set(float64(size))
	}
	if err == nil {
		r.lastSuccess.WithLabelValues(source).Set(float64(finished.Unix()))
	}
}

// SetEnsemblRemaining records the last reported Ensembl quota.
func (r *Recorder) SetEnsemblRemaining(remaining int64) {
	r.ensemblRemaining.Set(float64(remaining))
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile atomically writes the metrics in the text exposition format to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
