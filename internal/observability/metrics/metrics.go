// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "opd_extraction"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Session metrics
	SessionsCreated   prometheus.Counter
	SessionsActive    prometheus.Gauge
	SessionsFinalized prometheus.Counter
	SessionsDiscarded prometheus.Counter

	// Pipeline metrics
	UtterancesTotal   prometheus.Counter
	UtterancesEmpty   prometheus.Counter
	SegmentsTotal     *prometheus.CounterVec
	EntitiesExtracted *prometheus.CounterVec
	IngestDuration    prometheus.Histogram

	// Lexicon metrics
	LexiconReloads prometheus.Counter

	// Kafka publish metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		SessionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Total number of consultation sessions created",
		}),
		SessionsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of currently active consultation sessions",
		}),
		SessionsFinalized: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_finalized_total",
			Help:      "Total number of sessions finalized with a report",
		}),
		SessionsDiscarded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_discarded_total",
			Help:      "Total number of sessions discarded without a report",
		}),

		UtterancesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "utterances_total",
			Help:      "Total number of utterances ingested",
		}),
		UtterancesEmpty: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "utterances_empty_total",
			Help:      "Total number of utterances that normalized to nothing",
		}),
		SegmentsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_total",
			Help:      "Total number of segments, by attributed speaker",
		}, []string{"speaker"}),
		EntitiesExtracted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_extracted_total",
			Help:      "Total number of clinical records extracted, by type",
		}, []string{"type"}),
		IngestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingest_duration_seconds",
			Help:      "Pipeline processing time per utterance in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),

		LexiconReloads: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lexicon_reloads_total",
			Help:      "Total number of successful lexicon reloads",
		}),

		KafkaPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total number of Kafka messages published",
		}, []string{"topic", "event_type"}),
		KafkaPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total number of Kafka publish errors",
		}, []string{"topic", "event_type"}),
		KafkaPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),
	}
}

// RecordSessionCreated records a new session being created.
func (m *Metrics) RecordSessionCreated() {
	m.SessionsCreated.Inc()
	m.SessionsActive.Inc()
}

// RecordSessionFinalized records a session finalized with a report.
func (m *Metrics) RecordSessionFinalized() {
	m.SessionsActive.Dec()
	m.SessionsFinalized.Inc()
}

// RecordSessionDiscarded records a session discarded without a report.
func (m *Metrics) RecordSessionDiscarded() {
	m.SessionsActive.Dec()
	m.SessionsDiscarded.Inc()
}

// RecordUtterance records one ingested utterance and its processing time.
func (m *Metrics) RecordUtterance(empty bool, durationSeconds float64) {
	m.UtterancesTotal.Inc()
	m.IngestDuration.Observe(durationSeconds)
	if empty {
		m.UtterancesEmpty.Inc()
	}
}

// RecordSegment records one classified segment.
func (m *Metrics) RecordSegment(speaker string) {
	m.SegmentsTotal.WithLabelValues(speaker).Inc()
}

// RecordEntities records extracted clinical records of one type.
func (m *Metrics) RecordEntities(entityType string, count int) {
	if count > 0 {
		m.EntitiesExtracted.WithLabelValues(entityType).Add(float64(count))
	}
}

// RecordLexiconReload records a successful lexicon reload.
func (m *Metrics) RecordLexiconReload() {
	m.LexiconReloads.Inc()
}

// RecordKafkaPublish records a Kafka publish attempt.
func (m *Metrics) RecordKafkaPublish(topic, eventType string, err error, latencySeconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic, eventType).Inc()
	m.KafkaPublishLatency.WithLabelValues(topic).Observe(latencySeconds)
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic, eventType).Inc()
	}
}
