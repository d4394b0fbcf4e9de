package dashboard

import "github.com/prometheus/client_golang/prometheus"

var (
	chartsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "chartd",
			Subsystem: "dashboard",
			Name:      "charts",
			Help:      "Charts currently managed",
		},
	)

	chartEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chartd",
			Subsystem: "dashboard",
			Name:      "chart_events_total",
			Help:      "Tracked chart interaction events",
		},
		[]string{"chart", "event"},
	)

	themeFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chartd",
			Subsystem: "dashboard",
			Name:      "theme_fetch_total",
			Help:      "Theme fetch-and-register attempts by result",
		},
		[]string{"result"},
	)

	groupsConnected = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "chartd",
			Subsystem: "dashboard",
			Name:      "sync_groups",
			Help:      "Sync groups currently connected through the manager",
		},
	)
)

func init() {
	prometheus.MustRegister(chartsActive, chartEventsTotal, themeFetchTotal, groupsConnected)
}
