package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "rental_billing_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	evaluationTotal   *prometheus.CounterVec
	evaluationLatency *prometheus.HistogramVec
	contractsByStatus *prometheus.GaugeVec

	remindersTotal     *prometheus.CounterVec
	reportExportsTotal *prometheus.CounterVec
)

// Init registers observability metrics.
func Init() {
	registerOnce.Do(func() {
		evaluationTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "evaluation_passes_total",
				Help: "Total billing evaluation passes by result",
			},
			[]string{"result"},
		)
		evaluationLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "evaluation_latency_seconds",
				Help:    "Billing evaluation pass latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		contractsByStatus = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "contracts_by_status",
				Help: "Active contracts by billing status from the latest pass",
			},
			[]string{"status"},
		)
		remindersTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "reminders_total",
				Help: "Total payment reminders by status and result",
			},
			[]string{"status", "result"},
		)
		reportExportsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_exports_total",
				Help: "Total financial report exports by format and result",
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			evaluationTotal,
			evaluationLatency,
			contractsByStatus,
			remindersTotal,
			reportExportsTotal,
		)
	})
}

// ObserveEvaluationPass records one evaluation pass.
func ObserveEvaluationPass(duration time.Duration, err error) {
	if evaluationTotal == nil {
		return
	}
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	evaluationTotal.WithLabelValues(result).Inc()
	evaluationLatency.WithLabelValues(result).Observe(duration.Seconds())
}

// SetContractStatusCounts publishes the latest per-status contract counts.
func SetContractStatusCounts(counts map[string]int) {
	if contractsByStatus == nil {
		return
	}
	for status, count := range counts {
		contractsByStatus.WithLabelValues(status).Set(float64(count))
	}
}

// IncReminder records a reminder dispatch attempt.
func IncReminder(status string, ok bool) {
	if remindersTotal == nil {
		return
	}
	result := resultSuccess
	if !ok {
		result = resultError
	}
	remindersTotal.WithLabelValues(status, result).Inc()
}

// IncReportExport records a financial report export.
func IncReportExport(format string, ok bool) {
	if reportExportsTotal == nil {
		return
	}
	result := resultSuccess
	if !ok {
		result = resultError
	}
	reportExportsTotal.WithLabelValues(format, result).Inc()
}
