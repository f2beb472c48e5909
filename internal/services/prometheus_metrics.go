package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	expensesCreated *prometheus.CounterVec
	expensesUpdated prometheus.Counter
	expensesDeleted prometheus.Counter
	writesRejected  *prometheus.CounterVec
	summaryDuration prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		expensesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_created_total",
				Help: "Total number of expense records created",
			},
			[]string{"category"},
		),
		expensesUpdated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "expenses_updated_total",
				Help: "Total number of expense records updated",
			},
		),
		expensesDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "expenses_deleted_total",
				Help: "Total number of expense records deleted",
			},
		),
		writesRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_writes_rejected_total",
				Help: "Total number of expense writes rejected at validation",
			},
			[]string{"reason"},
		),
		summaryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "expense_summary_duration_milliseconds",
				Help:    "Expense summary computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordExpenseCreated(category string) {
	m.expensesCreated.WithLabelValues(category).Inc()
}

func (m *PrometheusMetrics) RecordExpenseUpdated() {
	m.expensesUpdated.Inc()
}

func (m *PrometheusMetrics) RecordExpenseDeleted() {
	m.expensesDeleted.Inc()
}

func (m *PrometheusMetrics) RecordWriteRejected(reason string) {
	m.writesRejected.WithLabelValues(reason).Inc()
}

func (m *PrometheusMetrics) RecordSummaryDuration(durationMs float64) {
	m.summaryDuration.Observe(durationMs)
}
