// Package metrics expõe contadores operacionais no formato Prometheus
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rafabene/docrepo-backend/internal/domain/ports"
)

const namespace = "docrepo"

var _ ports.Metrics = (*Recorder)(nil)

// Recorder implementa ports.Metrics sobre um registry próprio
type Recorder struct {
	registry *prometheus.Registry

	documentsStored  *prometheus.CounterVec
	documentsDeleted prometheus.Counter
	storageFailures  *prometheus.CounterVec
	accessDenied     *prometheus.CounterVec
}

// NewRecorder cria o registry com os contadores da aplicação e os
// coletores padrão de processo e runtime
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		documentsStored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_stored_total",
			Help:      "Documents persisted, by upload variant.",
		}, []string{"variant"}),
		documentsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_deleted_total",
			Help:      "Document rows removed.",
		}),
		storageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_failures_total",
			Help:      "Object storage calls that failed, by operation.",
		}, []string{"operation"}),
		accessDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_denied_total",
			Help:      "Requests refused by the access policy, by reason.",
		}, []string{"reason"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.documentsStored,
		r.documentsDeleted,
		r.storageFailures,
		r.accessDenied,
	)

	return r
}

func (r *Recorder) DocumentStored(variant string) {
	r.documentsStored.WithLabelValues(variant).Inc()
}

func (r *Recorder) DocumentDeleted() {
	r.documentsDeleted.Inc()
}

func (r *Recorder) StorageFailure(operation string) {
	r.storageFailures.WithLabelValues(operation).Inc()
}

func (r *Recorder) AccessDenied(reason string) {
	r.accessDenied.WithLabelValues(reason).Inc()
}

// Handler serve o registry em /metrics
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
