package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "expert_metrics"

// Metrics agrupa os coletores da API
type Metrics struct {
	registry *prometheus.Registry

	sheetFetches        *prometheus.CounterVec
	sheetFetchDuration  *prometheus.HistogramVec
	recordsBound        *prometheus.CounterVec
	rowsSkipped         *prometheus.CounterVec
	clientCacheRequests *prometheus.CounterVec

	snapshotRuns    *prometheus.CounterVec
	snapshotsStored prometheus.Counter

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

var defaultMetrics = New(prometheus.NewRegistry())

// New registra os coletores no registry informado
func New(registry *prometheus.Registry) *Metrics {
	auto := promauto.With(registry)

	m := &Metrics{registry: registry}

	m.sheetFetches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sheets",
		Name:      "fetches_total",
		Help:      "Leituras de abas da planilha por fonte e resultado",
	}, []string{"source", "result"})

	m.sheetFetchDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sheets",
		Name:      "fetch_duration_seconds",
		Help:      "Duração das leituras de abas da planilha",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source"})

	m.recordsBound = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "parsing",
		Name:      "records_total",
		Help:      "Registros diários convertidos por cliente",
	}, []string{"client"})

	m.rowsSkipped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "parsing",
		Name:      "rows_skipped_total",
		Help:      "Linhas descartadas (vazias ou sem data válida) por cliente",
	}, []string{"client"})

	m.clientCacheRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "client_list_requests_total",
		Help:      "Consultas ao cache da lista de clientes",
	}, []string{"result"})

	m.snapshotRuns = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "status_snapshot_runs_total",
		Help:      "Execuções do job de status por resultado",
	}, []string{"result"})

	m.snapshotsStored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "status_snapshots_stored_total",
		Help:      "Status diários gravados no banco",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Requisições HTTP por rota, método e status",
	}, []string{"path", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duração das requisições HTTP",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path", "method"})

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Default retorna as métricas globais da aplicação
func Default() *Metrics {
	return defaultMetrics
}

// Handler expõe as métricas no formato do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveSheetFetch(source string, started time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.sheetFetches.WithLabelValues(source, result).Inc()
	m.sheetFetchDuration.WithLabelValues(source).Observe(time.Since(started).Seconds())
}

func (m *Metrics) ObserveBinding(client string, records, skipped int) {
	m.recordsBound.WithLabelValues(client).Add(float64(records))
	m.rowsSkipped.WithLabelValues(client).Add(float64(skipped))
}

func (m *Metrics) ObserveClientCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.clientCacheRequests.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSnapshotRun(err error, stored int) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.snapshotRuns.WithLabelValues(result).Inc()
	m.snapshotsStored.Add(float64(stored))
}

func (m *Metrics) ObserveHTTPRequest(path, method string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}
