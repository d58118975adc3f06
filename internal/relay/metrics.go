package relay

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "presence_bot",
		Subsystem: "relay",
		Name:      "records_published_total",
		Help:      "Number of activity records published to Kafka, labeled by action.",
	}, []string{"action"})

	publishFailedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "presence_bot",
		Subsystem: "relay",
		Name:      "publish_failures_total",
		Help:      "Number of Kafka publishes that failed.",
	})
)

func init() {
	prometheus.MustRegister(publishedCounter, publishFailedCounter)
}

func recordPublished(action string) {
	publishedCounter.WithLabelValues(action).Inc()
}

func recordPublishFailed() {
	publishFailedCounter.Inc()
}
