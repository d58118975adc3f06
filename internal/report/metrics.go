package report

import "github.com/prometheus/client_golang/prometheus"

var (
	reportsSentCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "presence_bot",
		Subsystem: "report",
		Name:      "reports_sent_total",
		Help:      "Number of ranking reports delivered, labeled by period.",
	}, []string{"period"})

	reportsFailedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "presence_bot",
		Subsystem: "report",
		Name:      "reports_failed_total",
		Help:      "Number of ranking reports abandoned due to query or delivery failure.",
	}, []string{"period"})
)

func init() {
	prometheus.MustRegister(reportsSentCounter, reportsFailedCounter)
}

func recordReportSent(period string) {
	reportsSentCounter.WithLabelValues(period).Inc()
}

func recordReportFailed(period string) {
	reportsFailedCounter.WithLabelValues(period).Inc()
}
