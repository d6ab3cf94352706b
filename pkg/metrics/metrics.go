package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
	DBWaitCount        prometheus.Gauge

	AgendaMovesTotal          *prometheus.CounterVec
	AgendaStatusUpdatesTotal  *prometheus.CounterVec
	AgendaSnapshotWriteErrors prometheus.Counter
}

// New регистрирует коллекторы в дефолтном registry (его отдает promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует коллекторы в переданном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		DBWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		AgendaMovesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "agenda_moves_total",
			Help:        "Appointment drag-and-drop moves by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		AgendaStatusUpdatesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "agenda_status_updates_total",
			Help:        "Appointment status updates by new status",
			ConstLabels: constLabels,
		}, []string{"status"}),

		AgendaSnapshotWriteErrors: factory.NewCounter(prometheus.CounterOpts{
			Name:        "agenda_snapshot_write_errors_total",
			Help:        "Failed best-effort agenda snapshot writes",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveMove учитывает исход перемещения записи (nil-safe)
func (m *Metrics) ObserveMove(outcome string) {
	if m == nil {
		return
	}
	m.AgendaMovesTotal.WithLabelValues(outcome).Inc()
}

// ObserveStatusUpdate учитывает смену статуса (nil-safe)
func (m *Metrics) ObserveStatusUpdate(status string) {
	if m == nil {
		return
	}
	m.AgendaStatusUpdatesTotal.WithLabelValues(status).Inc()
}

// ObserveSnapshotError учитывает неудачную запись снимка (nil-safe)
func (m *Metrics) ObserveSnapshotError() {
	if m == nil {
		return
	}
	m.AgendaSnapshotWriteErrors.Inc()
}
