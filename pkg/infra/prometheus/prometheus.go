package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000, 60000,
	}

	RequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "inclusionguard_requests_total",
			Help: "Total number of API requests processed",
		},
		[]string{"method", "route", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inclusionguard_request_latency_ms",
			Help:    "API request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"route"},
	)

	EntitiesRedacted = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "inclusionguard_entities_redacted_total",
			Help: "Entities replaced by placeholders, by placeholder prefix",
		},
		[]string{"prefix"},
	)

	RedactionFailOpen = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "inclusionguard_redaction_fail_open_total",
			Help: "Redaction passes that fell back to the original text",
		},
		[]string{"reason"},
	)

	DetectorLatency = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inclusionguard_detector_latency_ms",
			Help:    "PII detector round trip for a whole text, in milliseconds",
			Buckets: latencyBuckets,
		},
	)

	LLMLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inclusionguard_llm_latency_ms",
			Help:    "LLM completion latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"provider", "status"},
	)

	LLMTokens = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "inclusionguard_llm_tokens_total",
			Help: "Tokens billed by the LLM provider",
		},
		[]string{"provider", "model", "direction"},
	)

	ParseOutcomes = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "inclusionguard_llm_parse_outcomes_total",
			Help: "LLM responses by parse outcome",
		},
		[]string{"kind", "outcome"},
	)

	HallucinatedIssues = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "inclusionguard_hallucinated_issues_total",
			Help: "Issues dropped because their offending text is not in the source",
		},
		[]string{"kind"},
	)

	EventsDropped = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "inclusionguard_events_dropped_total",
			Help: "Analysis events dropped because the export queue was full",
		},
	)
)

type MetricsConfig struct {
	EnableLatency  bool // Request latency histograms
	EnablePerRoute bool // Per-route request counters
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency:  true,
		EnablePerRoute: true,
	}
}

var Config = DefaultMetricsConfig()

func Initialize(cfg MetricsConfig) {
	Config = cfg
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}
