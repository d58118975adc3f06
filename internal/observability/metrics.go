// Package observability holds cross-cutting prometheus metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var activityPersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: "presence_bot",
	Subsystem: "persistence",
	Name:      "last_activity_persisted_timestamp_seconds",
	Help:      "Unix timestamp of the most recent activity record appended to Postgres.",
})

func init() {
	prometheus.MustRegister(activityPersistGauge)
}

// RecordActivityPersisted updates the persistence watermark gauge.
func RecordActivityPersisted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	activityPersistGauge.Set(float64(ts.Unix()))
}
