package source

import "github.com/prometheus/client_golang/prometheus"

var (
	ingestedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "presence_bot",
		Subsystem: "source",
		Name:      "events_ingested_total",
		Help:      "Number of presence events appended to the activity log, labeled by action.",
	}, []string{"action"})

	droppedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "presence_bot",
		Subsystem: "source",
		Name:      "events_dropped_total",
		Help:      "Number of presence events dropped before ingestion, labeled by reason.",
	}, []string{"reason"})

	appendFailureCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "presence_bot",
		Subsystem: "source",
		Name:      "append_failures_total",
		Help:      "Number of activity log inserts that failed.",
	})

	notifyFailureCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "presence_bot",
		Subsystem: "source",
		Name:      "notify_failures_total",
		Help:      "Number of room notifications that failed to deliver.",
	})

	occupancyGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "presence_bot",
		Subsystem: "source",
		Name:      "room_occupancy",
		Help:      "Players currently present according to join/exit events.",
	})
)

func init() {
	prometheus.MustRegister(ingestedCounter, droppedCounter, appendFailureCounter, notifyFailureCounter, occupancyGauge)
}

func recordEventIngested(action string) {
	ingestedCounter.WithLabelValues(action).Inc()
}

func recordEventDropped(reason string) {
	droppedCounter.WithLabelValues(reason).Inc()
}

func recordAppendFailure() {
	appendFailureCounter.Inc()
}

func recordNotifyFailure() {
	notifyFailureCounter.Inc()
}

func recordOccupancy(count int) {
	occupancyGauge.Set(float64(count))
}
