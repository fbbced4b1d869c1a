package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "campaign_insights"

// Resultados possíveis de uma busca do dataset
const (
	ResultSuccess   = "success"
	ResultFailure   = "failure"
	ResultCancelled = "cancelled"
)

// Metrics agrupa os coletores Prometheus da API
type Metrics struct {
	// Dataset
	DatasetFetches        *prometheus.CounterVec
	DatasetFetchDuration  *prometheus.HistogramVec
	RecomputeDuration     prometheus.Histogram
	SnapshotCampaigns     prometheus.Gauge
	SnapshotRegions       prometheus.Gauge
	SnapshotLastSuccessTS prometheus.Gauge

	// HTTP
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	registry prometheus.Gatherer
}

// NewMetrics cria e registra os coletores. Com registry nil usa o registro
// padrão do Prometheus.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if registry != nil {
		registerer, gatherer = registry, registry
	}
	factory := promauto.With(registerer)

	return &Metrics{
		DatasetFetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "dataset_fetches_total",
				Help:      "Total dataset fetches by result",
			},
			[]string{"source", "result"},
		),
		DatasetFetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "dataset_fetch_duration_seconds",
				Help:      "Dataset fetch latency in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"source"},
		),
		RecomputeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "snapshot_recompute_duration_seconds",
				Help:      "Time spent recomputing the aggregate snapshot",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
		),
		SnapshotCampaigns: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "snapshot_campaigns",
				Help:      "Campaigns in the current snapshot",
			},
		),
		SnapshotRegions: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "snapshot_regions",
				Help:      "Regions in the current snapshot",
			},
		),
		SnapshotLastSuccessTS: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "snapshot_last_success_timestamp_seconds",
				Help:      "Unix time of the last successful snapshot swap",
			},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method and status",
			},
			[]string{"method", "status"},
		),
		HTTPLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		registry: gatherer,
	}
}

// Handler expõe os coletores registrados no formato do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordFetch registra o resultado e a duração de uma busca do dataset
func (m *Metrics) RecordFetch(source, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DatasetFetches.WithLabelValues(source, result).Inc()
	m.DatasetFetchDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// RecordSnapshot atualiza os gauges após a troca do snapshot
func (m *Metrics) RecordSnapshot(campaigns, regions int, elapsed time.Duration, at time.Time) {
	if m == nil {
		return
	}
	m.RecomputeDuration.Observe(elapsed.Seconds())
	m.SnapshotCampaigns.Set(float64(campaigns))
	m.SnapshotRegions.Set(float64(regions))
	m.SnapshotLastSuccessTS.Set(float64(at.Unix()))
}

func (m *Metrics) RecordRequest(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(method).Observe(elapsed.Seconds())
}
