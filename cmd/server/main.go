package main

import (
	"alumni-chat/auth"
	"alumni-chat/infrastructure/grpc/server"
	"alumni-chat/infrastructure/httpapi"
	"alumni-chat/infrastructure/presence"
	"alumni-chat/infrastructure/search"
	"alumni-chat/internal"
	"alumni-chat/moderation"
	"alumni-chat/repositories"
	"alumni-chat/runtime"
	"alumni-chat/runtime/workers"
	"alumni-chat/services"
	"alumni-chat/sink"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes reported to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const healthService = "alumni.chat"

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run owns every resource so that deferred cleanups execute before the exit
// code is returned.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	issuer, err := auth.NewTokenIssuer(config.JWTSecret, config.JWTIssuer, config.AuthTokenDuration)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Stores
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s?prefix=conv:", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, ConversationMapper)
	}

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	presenceStore, err := presence.NewRedisPresence(ctx, config.RedisURL, config.PresenceTTL)
	if err != nil {
		return exitRuntime, fmt.Errorf("redis connection failed: %w", err)
	}
	defer func() { _ = presenceStore.Close() }()

	feed := runtime.NewFeed()
	messageRepository, err := repositories.NewMessageRepository(db, logger, feed)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = messageRepository.Close() }()
	conversationRepository := repositories.NewConversationRepository(db, logger, feed)

	// 3. Moderation & search
	dictionary, err := moderation.LoadDictionary(moderation.DefaultDictionaries(), config.ExtraCensoredWords()...)
	if err != nil {
		return exitConfig, fmt.Errorf("censored dictionary: %w", err)
	}
	moderator, err := moderation.NewModerator(dictionary.Words, charReplacement, logger)
	if err != nil {
		return exitConfig, err
	}
	logger.Info("Moderation dictionary loaded", "languages", dictionary.Languages, "words", len(dictionary.Words))
	index := search.NewMessageIndex(blugeWriter, logger)

	// 4. Supervision & event pipeline
	registry := runtime.NewRegistry()
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, sup, config.BufferSize, config.SinkTimeout)
	orchestrator.Add(
		sink.NewNotificationSink(logger, registry, sink.NewLogNotifier(logger), presenceStore),
		sink.NewSearchSink(index, logger),
	)

	healthServer := server.NewHealthServer(logger, healthService)
	orchestrator.AddWorkers(workers.NewHealthProbeWorker(logger, healthServer, config.ProbeInterval,
		workers.Probe{Name: "badger", Check: badgerProbe(db)},
		workers.Probe{Name: "redis", Check: presenceStore.Ping},
		workers.Probe{Name: "bluge", Check: blugeProbe(blugeWriter)},
	))
	orchestrator.AddWorkers(workers.NewResourceMonitorWorker(logger, orchestrator.Channels(),
		config.LowCapacityThreshold, config.MetricInterval))

	chatService := services.NewChatService(logger, messageRepository, conversationRepository,
		moderator, orchestrator, index, registry)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errChan := make(chan error, 3)

	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 6. gRPC health endpoint
	listener, err := net.Listen("tcp", config.GRPCAddress())
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", config.GRPCAddress(), err)
	}
	grpcServer := server.NewGrpcServer(logger, issuer, healthServer)
	go func() {
		logger.Info("Starting gRPC server", "address", config.GRPCAddress(), "at", time.Now().UTC())
		for serviceName := range grpcServer.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. HTTP & WebSocket API
	httpServer := httpapi.NewServer(logger, chatService, presenceStore, issuer, config.BodyLimit)
	go func() {
		if err := httpServer.Listen(config.HTTPAddress()); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 9. Graceful Shutdown
	logger.Info("Shutting down gracefully...")
	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server did not stop cleanly", "error", err)
	}
	grpcServer.GracefulStop()
	orchestrator.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}

func badgerProbe(db *badger.DB) func(ctx context.Context) error {
	return func(context.Context) error {
		if db.IsClosed() {
			return errors.New("badger is closed")
		}
		return db.View(func(*badger.Txn) error { return nil })
	}
}

func blugeProbe(writer *bluge.Writer) func(ctx context.Context) error {
	return func(context.Context) error {
		reader, err := writer.Reader()
		if err != nil {
			return err
		}
		return reader.Close()
	}
}
