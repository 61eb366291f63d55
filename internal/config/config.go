// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Configuration holds all settings for the service.
type Configuration struct {
	Service       ServiceConfig
	Pipeline      PipelineConfig
	Lexicon       LexiconConfig
	Kafka         KafkaConfig
	Observability ObservabilityConfig
}

// ServiceConfig holds service identity and listener settings.
type ServiceConfig struct {
	Principal string
	HTTPPort  string
	GRPCPort  string
}

// PipelineConfig holds the extraction pipeline's named policy constants.
type PipelineConfig struct {
	// DefaultSpeaker labels a cue-less first segment ("doctor"/"patient").
	DefaultSpeaker string
	// NegationWindow is the rune window searched around a symptom match
	// for a negation marker.
	NegationWindow int
	// SpeakerHistory bounds the per-session speaker label history.
	SpeakerHistory int
	// Phonetic toggles phonetic correction of Latin-script tokens.
	Phonetic bool
}

// LexiconConfig selects the vocabulary source. An empty Path uses the
// built-in lexicon.
type LexiconConfig struct {
	Path  string
	Watch bool
}

// KafkaConfig holds event publisher settings.
type KafkaConfig struct {
	Enabled        bool
	Brokers        []string
	TopicUtterance string
	TopicReport    string
	Principal      string
}

// ObservabilityConfig holds logging and metrics settings.
type ObservabilityConfig struct {
	LogLevel    string
	LogFormat   string
	MetricsAddr string
}

// Load reads configuration from environment variables, applying defaults.
func Load() *Configuration {
	principal := envOrDefault("SERVICE_PRINCIPAL", "svc-opd-extraction")
	return &Configuration{
		Service: ServiceConfig{
			Principal: principal,
			HTTPPort:  envOrDefault("HTTP_PORT", "8080"),
			GRPCPort:  envOrDefault("GRPC_PORT", "50051"),
		},
		Pipeline: PipelineConfig{
			DefaultSpeaker: envOrDefault("PIPELINE_DEFAULT_SPEAKER", "patient"),
			NegationWindow: envOrDefaultInt("PIPELINE_NEGATION_WINDOW", 15),
			SpeakerHistory: envOrDefaultInt("PIPELINE_SPEAKER_HISTORY", 8),
			Phonetic:       envOrDefaultBool("PIPELINE_PHONETIC", true),
		},
		Lexicon: LexiconConfig{
			Path:  os.Getenv("LEXICON_PATH"),
			Watch: envOrDefaultBool("LEXICON_WATCH", false),
		},
		Kafka: KafkaConfig{
			Enabled:        envOrDefaultBool("KAFKA_ENABLED", false),
			Brokers:        envOrDefaultSlice("KAFKA_BROKERS", nil),
			TopicUtterance: envOrDefault("KAFKA_TOPIC_UTTERANCE", "consultation.utterance.labeled"),
			TopicReport:    envOrDefault("KAFKA_TOPIC_REPORT", "consultation.report.finalized"),
			Principal:      principal,
		},
		Observability: ObservabilityConfig{
			LogLevel:    envOrDefault("LOG_LEVEL", "info"),
			LogFormat:   envOrDefault("LOG_FORMAT", "json"),
			MetricsAddr: envOrDefault("METRICS_ADDR", ":9090"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultSlice(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
