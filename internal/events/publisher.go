// Package events publishes consultation events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"opd-extraction-service/internal/observability/metrics"
)

// Publisher publishes consultation events to separate Kafka topics: one for
// per-utterance labeled segments, one for finalized reports.
type Publisher struct {
	writerUtterance *kafka.Writer
	writerReport    *kafka.Writer
	principal       string
	topicUtterance  string
	topicReport     string
	enabled         bool
	metrics         *metrics.Metrics
}

// Config holds Kafka publisher configuration.
type Config struct {
	Brokers        []string
	TopicUtterance string
	TopicReport    string
	Principal      string
	Enabled        bool
}

// New creates a Kafka event publisher. When disabled (or given no brokers)
// it runs in log-only mode: events are logged and counted, never sent.
func New(cfg *Config) *Publisher {
	m := metrics.DefaultMetrics

	if cfg == nil {
		log.Info().Msg("Kafka disabled (nil config), using log-only mode")
		return &Publisher{enabled: false, metrics: m}
	}

	if !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, using log-only mode")
		return &Publisher{
			principal:      cfg.Principal,
			topicUtterance: cfg.TopicUtterance,
			topicReport:    cfg.TopicReport,
			enabled:        false,
			metrics:        m,
		}
	}

	// Longer dial timeouts for DNS resolution in Kubernetes
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}
	transport := &kafka.Transport{
		Dial: dialer.DialFunc,
	}

	newWriter := func(topic string) *kafka.Writer {
		return &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			WriteTimeout: 10 * time.Second,
			RequiredAcks: kafka.RequireOne,
			Transport:    transport,
		}
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topicUtterance", cfg.TopicUtterance).
		Str("topicReport", cfg.TopicReport).
		Str("principal", cfg.Principal).
		Msg("Kafka publisher initialized")

	return &Publisher{
		writerUtterance: newWriter(cfg.TopicUtterance),
		writerReport:    newWriter(cfg.TopicReport),
		principal:       cfg.Principal,
		topicUtterance:  cfg.TopicUtterance,
		topicReport:     cfg.TopicReport,
		enabled:         true,
		metrics:         m,
	}
}

// PublishUtterance publishes a labeled-utterance event.
func (p *Publisher) PublishUtterance(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerUtterance, p.topicUtterance, "utterance", key, event)
}

// PublishReport publishes a finalized-report event.
func (p *Publisher) PublishReport(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerReport, p.topicReport, "report", key, event)
}

func (p *Publisher) publish(ctx context.Context, writer *kafka.Writer, topic, eventType, key string, event any) error {
	start := time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to marshal event")
		return err
	}

	log.Debug().
		Str("principal", p.principal).
		Str("topic", topic).
		Str("key", key).
		RawJSON("payload", payload).
		Msg("Publishing event")

	if !p.enabled || writer == nil {
		p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
		return nil
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(topic)},
			{Key: "principal", Value: []byte(p.principal)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Msg("Failed to write to Kafka")
		p.metrics.RecordKafkaPublish(topic, eventType, err, time.Since(start).Seconds())
		return err
	}

	p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
	return nil
}

// Close closes both Kafka writers.
func (p *Publisher) Close() error {
	var err error
	if p.writerUtterance != nil {
		if e := p.writerUtterance.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing utterance writer")
			err = e
		}
	}
	if p.writerReport != nil {
		if e := p.writerReport.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing report writer")
			err = e
		}
	}
	return err
}
