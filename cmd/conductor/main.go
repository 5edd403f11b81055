// Conductor server — provides the run-control HTTP API, manages queue
// workers, and executes browser test runs against sandboxes.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dappsmith/conductor/pkg/api"
	"github.com/dappsmith/conductor/pkg/blob"
	"github.com/dappsmith/conductor/pkg/cleanup"
	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/database"
	"github.com/dappsmith/conductor/pkg/events"
	"github.com/dappsmith/conductor/pkg/generator"
	"github.com/dappsmith/conductor/pkg/masking"
	"github.com/dappsmith/conductor/pkg/notify"
	"github.com/dappsmith/conductor/pkg/queue"
	"github.com/dappsmith/conductor/pkg/runner"
	"github.com/dappsmith/conductor/pkg/sandbox"
	"github.com/dappsmith/conductor/pkg/selfheal"
	"github.com/dappsmith/conductor/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting Conductor",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Streaming infrastructure: the publisher is needed before the
	// orphan sweep so requeue/cancel transitions reach subscribers.
	eventService := services.NewEventService(dbClient.Client)
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 4. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID, eventPublisher); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 5. Blob store
	var store blob.Store
	switch cfg.Storage.Backend {
	case "fs":
		store, err = blob.NewFSStore(cfg.Storage.FSRoot)
	default:
		store, err = blob.NewS3Store(ctx, cfg.Storage)
	}
	if err != nil {
		slog.Error("Failed to initialize blob store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	slog.Info("Blob store initialized", "backend", cfg.Storage.Backend)

	// 6. Domain services
	seedCipher, err := services.NewSeedCipher(os.Getenv("WALLET_KEK"))
	if err != nil {
		slog.Error("Failed to initialize wallet seed cipher", "error", err)
		os.Exit(1)
	}
	maskingService := masking.NewService(cfg.Defaults.LogMasking)

	projectService := services.NewProjectService(dbClient.Client, seedCipher, store)
	recordingService := services.NewRecordingService(dbClient.Client, store)
	specService := services.NewSpecService(dbClient.Client, store)
	clarificationService := services.NewClarificationService(dbClient.Client)
	runService := services.NewRunService(dbClient.Client, store, cfg.Defaults)
	suiteRunService := services.NewSuiteRunService(dbClient.Client)
	artifactService := services.NewArtifactService(dbClient.Client, store)
	slog.Info("Services initialized")

	// 7. Execution infrastructure
	supervisor := sandbox.NewSupervisor(cfg.Sandbox)
	testRunner := runner.NewRunner(cfg.Runner, cfg.Sandbox, cfg.Storage, maskingService)

	// Note: calls dial lazily; a dead generator service surfaces on the
	// first generate or self-heal request, not at startup.
	generatorBaseURL := getEnv("GENERATOR_BASE_URL", "http://localhost:9090")
	gen := generator.NewHTTPGenerator(generatorBaseURL, os.Getenv("GENERATOR_API_KEY"))
	slog.Info("Generator client initialized", "base_url", generatorBaseURL)

	jobQueue := queue.NewQueue(dbClient.Client, cfg.Queue)

	healer := selfheal.NewService(selfheal.Deps{
		Runs:       runService,
		Specs:      specService,
		Recordings: recordingService,
		Artifacts:  artifactService,
		Queue:      jobQueue,
		Generator:  gen,
	})

	notifier := notify.NewService(cfg.Notifications, cfg.DashboardURL)
	if notifier != nil {
		slog.Info("Failure notifications enabled", "channel", cfg.Notifications.Slack.Channel)
	}

	executor := queue.NewRunExecutor(queue.ExecutorDeps{
		Config:     cfg,
		Client:     dbClient.Client,
		Queue:      jobQueue,
		Runs:       runService,
		Specs:      specService,
		Suites:     suiteRunService,
		Projects:   projectService,
		Artifacts:  artifactService,
		Publisher:  eventPublisher,
		Supervisor: supervisor,
		Runner:     testRunner,
		Masker:     maskingService,
		Healer:     healer,
		Notifier:   notifier,
		PodID:      podID,
	})

	// 8. Start worker pool (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Retention sweeps
	cleanupService := cleanup.NewService(cleanup.Deps{
		Retention:  cfg.Retention,
		Storage:    cfg.Storage,
		Runs:       runService,
		Events:     eventService,
		Projects:   projectService,
		Queue:      jobQueue,
		Supervisor: supervisor,
	})
	if err := cleanupService.Start(); err != nil {
		slog.Error("Failed to start cleanup service", "error", err)
		os.Exit(1)
	}

	// 10. Create HTTP server
	httpServer := api.NewServer(api.Deps{
		Config:         cfg,
		DB:             dbClient,
		Projects:       projectService,
		Recordings:     recordingService,
		Specs:          specService,
		Clarifications: clarificationService,
		Runs:           runService,
		Suites:         suiteRunService,
		Artifacts:      artifactService,
		Queue:          jobQueue,
		Pool:           workerPool,
		ConnManager:    connManager,
		Supervisor:     supervisor,
		Generator:      gen,
		APIKey:         os.Getenv("API_KEY"),
	})

	// 11. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Conductor started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.Concurrency)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown
	cleanupService.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	// Stop worker pool (wait for active runs to complete)
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
