package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatcast/contract"
	"chatcast/domain/chat"
	"chatcast/health"
	"chatcast/httpapi"
	"chatcast/infrastructure/delivery"
	"chatcast/infrastructure/redis"
	"chatcast/internal"
	"chatcast/observability"
	"chatcast/repositories"
	"chatcast/runtime"
	"chatcast/runtime/workers"
	"chatcast/services"
	"chatcast/socket"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const (
	shutdownTimeout = 10 * time.Second
	checkTimeout    = 2 * time.Second
	inspectEndpoint = "/inspect"
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run owns every resource so deferred cleanup happens before the exit code is returned.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.Load()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if config.DebugPort > 0 {
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, inspectEndpoint))
		database.StartDebugServer(db, config.DebugPort, inspectEndpoint, ChatMapper)
	}

	// 3. Observability
	monitoring := observability.NewMonitoringManager(logger)
	emitter := observability.NewEmitter(os.Stdout, config.MetricsNamespace, config.Stage, logger)
	checker := health.NewChecker(config.Version, checkTimeout, logger).
		Register("badger", true, func(context.Context) error {
			if db.IsClosed() {
				return errors.New("database closed")
			}
			return db.View(func(*badger.Txn) error { return nil })
		})

	// 4. Repositories
	rooms := repositories.NewRoomRepository(db, logger)
	messages := repositories.NewMessageRepository(db, logger, lo.ToPtr(config.LimitMessages))
	var connections contract.IConnectionRepository = repositories.NewConnectionRepository(db, logger)
	if config.RegistryBackend == internal.BackendRedis {
		client := redis.NewClient(config.RedisAddr, config.RedisPassword, config.RedisDB)
		defer func() { _ = client.Close() }()
		registry := redis.NewConnectionRepository(client, logger)
		checker.Register("redis", true, registry.Ping)
		connections = registry
	}

	// 5. Transport & Services
	hub := socket.NewHub(socket.Config{
		SendBuffer:      config.SendBuffer,
		WriteWait:       config.WriteWait,
		PongWait:        config.PongWait,
		PingPeriod:      config.PingPeriod,
		MaxMessageBytes: config.MaxMessageBytes,
	}, monitoring, logger)
	messageService := services.NewMessageService(rooms, messages, logger)
	connectionService := services.NewConnectionService(
		connections, emitter, logger, config.ChatMode(), config.BaseURL(), config.ConnectionTTL,
	)
	dispatcher := runtime.NewDispatcher(logger, runtime.DispatcherConfig{
		DispatchTimeout: config.DispatchTimeout,
		DeliveryTimeout: config.DeliveryTimeout,
		Concurrency:     config.FanoutConcurrency,
	}, connections, hub, delivery.NewLoopbackSink(config.DeliveryTimeout, logger), emitter, monitoring)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errChan := make(chan error, 2)

	// 7. Supervision
	var grpcServer *health.GRPCServer
	if config.GrpcHealthPort > 0 {
		grpcServer = health.NewGRPCServer(logger)
	}
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(
		workers.NewChangeFeedWorker(db, dispatcher, logger, repositories.MessagePrefix),
		workers.NewProcessStatsWorker(logger, monitoring, emitter, config.MetricInterval),
	)
	if grpcServer != nil {
		sup.Add(workers.NewHealthSyncWorker(logger, checker, grpcServer, config.MetricInterval))
	}
	supervised := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervised)
	}()

	if grpcServer != nil {
		address := fmt.Sprintf("%s:%d", config.Host, config.GrpcHealthPort)
		listener, err := net.Listen("tcp", address)
		if err != nil {
			return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
		}
		go func() {
			if err := grpcServer.Serve(ctx, listener); err != nil {
				errChan <- err
			}
		}()
	}

	// 8. HTTP Server
	deps := httpapi.Dependencies{
		Log:      logger,
		Messages: messageService,
		Health:   checker.Handler(),
		Metrics:  monitoring.Handler(),
		Socket:   socket.Handler(hub, connectionService, logger),
	}
	if config.ChatMode() == chat.ModeDevelopment {
		deps.Pusher = hub
	}
	server := &http.Server{
		Addr:              config.Address(),
		Handler:           httpapi.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Starting HTTP server", "address", server.Addr, "mode", config.Mode, "registry", config.RegistryBackend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 9. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		stop()
		<-supervised
		return exitRuntime, err
	}

	// 10. Graceful Shutdown
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	hub.CloseAll()
	// Workers see ctx cancelled, wait for them before the database closes
	<-supervised
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}
