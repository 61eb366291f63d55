package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	apihttp "opd-extraction-service/internal/api/http"
	"opd-extraction-service/internal/config"
	"opd-extraction-service/internal/events"
	"opd-extraction-service/internal/lexicon"
	"opd-extraction-service/internal/models"
	"opd-extraction-service/internal/observability"
	"opd-extraction-service/internal/observability/logging"
	"opd-extraction-service/internal/observability/metrics"
	"opd-extraction-service/internal/pipeline/report"
	"opd-extraction-service/internal/session"
)

func main() {
	cfg := config.Load()

	logging.Init(logging.Config{
		Level:  cfg.Observability.LogLevel,
		Format: cfg.Observability.LogFormat,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider, closeLexicon, err := buildLexiconProvider(ctx, cfg.Lexicon)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load lexicon")
	}
	defer closeLexicon()

	// Kafka publisher with separate topics for labeled utterances and reports
	publisher := events.New(&events.Config{
		Enabled:        cfg.Kafka.Enabled,
		Brokers:        cfg.Kafka.Brokers,
		TopicUtterance: cfg.Kafka.TopicUtterance,
		TopicReport:    cfg.Kafka.TopicReport,
		Principal:      cfg.Kafka.Principal,
	})
	defer publisher.Close()

	sessions := session.NewManager(provider, report.Config{
		DefaultSpeaker: models.Speaker(cfg.Pipeline.DefaultSpeaker),
		NegationWindow: cfg.Pipeline.NegationWindow,
		SpeakerHistory: cfg.Pipeline.SpeakerHistory,
		Phonetic:       cfg.Pipeline.Phonetic,
	})

	// Metrics and health endpoints on their own listener
	obsServer := observability.NewServer(cfg.Observability.MetricsAddr)
	obsServer.Start()

	httpServer := &http.Server{
		Addr:    ":" + cfg.Service.HTTPPort,
		Handler: apihttp.NewRouter(sessions, publisher),
	}
	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("HTTP server started")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP serve failed")
		}
	}()

	lis, err := net.Listen("tcp", ":"+cfg.Service.GRPCPort)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to listen for gRPC")
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(observability.UnaryServerInterceptor()),
	)

	// Register gRPC health check service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("opd.extraction.ConsultationService", grpc_health_v1.HealthCheckResponse_SERVING)

	// Enable gRPC reflection for debugging tools like grpcurl
	reflection.Register(grpcServer)

	go func() {
		log.Info().Str("addr", lis.Addr().String()).Msg("gRPC server started")
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("gRPC serve failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Int("activeSessions", sessions.Count()).Msg("Shutting down")
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown error")
	}
	if err := obsServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Observability shutdown error")
	}
	grpcServer.GracefulStop()
}

// buildLexiconProvider selects the vocabulary source: the built-in lexicon,
// a YAML file, or a YAML file watched for live reloads.
func buildLexiconProvider(ctx context.Context, cfg config.LexiconConfig) (lexicon.Provider, func(), error) {
	if cfg.Path == "" {
		return lexicon.Static{Lexicon: lexicon.Default()}, func() {}, nil
	}

	if cfg.Watch {
		w, err := lexicon.NewWatcher(ctx, cfg.Path, metrics.DefaultMetrics.RecordLexiconReload)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.Path).Msg("Lexicon loaded, watching for changes")
		return w, func() { _ = w.Close() }, nil
	}

	lex, err := lexicon.LoadFile(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("path", cfg.Path).Msg("Lexicon loaded")
	return lexicon.Static{Lexicon: lex}, func() {}, nil
}
