package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the customer recommendation handler
	RecommendDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "reco_recommend_latency_seconds",
		Help:    "Latency of the recommendation endpoint",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation responses served
	RecommendTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reco_recommend_requests_total",
		Help: "Total number of recommendation requests",
	})

	// Feedback events accepted into the sample store, by derived label
	FeedbackEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_feedback_events_total",
			Help: "Count of accepted feedback events by label.",
		},
		[]string{"label"},
	)

	// Times the fallback / top-up path had to fill the recommendation list
	FallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reco_fallback_total",
		Help: "How many times the low-risk fallback filled recommendations",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendDuration,
		RecommendTotal,
		FeedbackEventsTotal,
		FallbackTotal,
	)
}
