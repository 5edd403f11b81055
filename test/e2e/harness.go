// Package e2e boots a complete Conductor instance against a real
// PostgreSQL database and exercises it over HTTP and the event
// websocket. The only fake is the run executor: a scripted stand-in
// for the sandbox layer (browsers have no place in CI).
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/pkg/api"
	"github.com/dappsmith/conductor/pkg/blob"
	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/database"
	"github.com/dappsmith/conductor/pkg/events"
	"github.com/dappsmith/conductor/pkg/queue"
	"github.com/dappsmith/conductor/pkg/services"
	testdb "github.com/dappsmith/conductor/test/database"
	"github.com/dappsmith/conductor/test/util"
)

// TestApp boots a complete Conductor instance for e2e testing.
type TestApp struct {
	// Core
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Test wiring
	Executor *ScriptedRunExecutor

	// Real infrastructure
	EventPublisher *events.EventPublisher
	ConnManager    *events.ConnectionManager
	NotifyListener *events.NotifyListener
	Queue          *queue.Queue
	WorkerPool     *queue.WorkerPool
	Server         *api.Server

	// Domain services, for direct seeding and assertions
	Projects   *services.ProjectService
	Recordings *services.RecordingService
	Specs      *services.SpecService
	Runs       *services.RunService
	Suites     *services.SuiteRunService

	// Runtime
	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSURL   string // e.g. "ws://127.0.0.1:54321/ws"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	workerCount int
	runTimeout  time.Duration
	dbClient    *database.Client // injected DB client (for multi-replica tests)
	podID       string           // custom pod ID (for multi-replica tests)
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithWorkerCount sets the number of worker pool goroutines. Zero
// workers leaves jobs pending — used by pending-cancellation tests.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithRunTimeout sets the per-run time budget.
func WithRunTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.runTimeout = d }
}

// WithDBClient injects a pre-created database client, skipping the
// default per-test schema creation. Used for multi-replica tests where
// multiple TestApp instances share the same database schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithPodID overrides the auto-generated pod ID. Required for
// multi-replica tests so each replica gets a distinct identity for job
// claiming and orphan detection.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// NewTestApp creates and starts a full Conductor test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		workerCount: 1,
		runTimeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(tc)
	}

	cfg := testConfig(t, tc)

	// 1. Database — *database.Client for the API server, *ent.Client
	// for the queue and services.
	var dbClient *database.Client
	if tc.dbClient != nil {
		dbClient = tc.dbClient
	} else {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Event publishing — real, backed by the test DB.
	eventPublisher := events.NewEventPublisher(dbClient.DB())

	// 3. Streaming infrastructure.
	eventService := services.NewEventService(entClient)
	adapter := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(adapter, 5*time.Second)

	// 4. NotifyListener — real, dedicated pgx connection. NOTIFY
	// channels are database-global, so the base connection works even
	// though each test gets its own schema.
	notifyListener := events.NewNotifyListener(util.GetBaseConnectionString(t), connManager)
	ctx := context.Background()
	require.NoError(t, notifyListener.Start(ctx))
	connManager.SetListener(notifyListener)

	// 5. Domain services over a throwaway blob store.
	store, err := blob.NewFSStore(t.TempDir())
	require.NoError(t, err)
	cipher, err := services.NewSeedCipher("e2e-test-wallet-kek")
	require.NoError(t, err)

	projectService := services.NewProjectService(entClient, cipher, store)
	recordingService := services.NewRecordingService(entClient, store)
	specService := services.NewSpecService(entClient, store)
	clarificationService := services.NewClarificationService(entClient)
	runService := services.NewRunService(entClient, store, cfg.Defaults)
	suiteService := services.NewSuiteRunService(entClient)
	artifactService := services.NewArtifactService(entClient, store)

	// 6. Queue with the scripted executor in place of the sandbox.
	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-test-%s", t.Name())
	}
	jobQueue := queue.NewQueue(entClient, cfg.Queue)
	executor := NewScriptedRunExecutor(podID, runService, suiteService, eventPublisher)

	workerPool := queue.NewWorkerPool(podID, entClient, cfg.Queue, executor, eventPublisher)
	require.NoError(t, workerPool.Start(ctx))

	// 7. HTTP server on a random port.
	server := api.NewServer(api.Deps{
		Config:         cfg,
		DB:             dbClient,
		Projects:       projectService,
		Recordings:     recordingService,
		Specs:          specService,
		Clarifications: clarificationService,
		Runs:           runService,
		Suites:         suiteService,
		Artifacts:      artifactService,
		Queue:          jobQueue,
		Pool:           workerPool,
		ConnManager:    connManager,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	addr := ln.Addr().String()

	app := &TestApp{
		Config:         cfg,
		DBClient:       dbClient,
		EntClient:      entClient,
		Executor:       executor,
		EventPublisher: eventPublisher,
		ConnManager:    connManager,
		NotifyListener: notifyListener,
		Queue:          jobQueue,
		WorkerPool:     workerPool,
		Server:         server,
		Projects:       projectService,
		Recordings:     recordingService,
		Specs:          specService,
		Runs:           runService,
		Suites:         suiteService,
		BaseURL:        fmt.Sprintf("http://%s", addr),
		WSURL:          fmt.Sprintf("ws://%s/ws", addr),
		t:              t,
	}

	// Register cleanup in reverse-creation order.
	t.Cleanup(func() {
		workerPool.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		notifyListener.Stop(context.Background())
		// DB cleanup handled by testdb.NewTestClient/SetupTestDatabase
	})

	return app
}

// testConfig builds a config tuned for fast tests: tight polling, no
// claim throttling, and a short shutdown budget.
func testConfig(t *testing.T, tc *testAppConfig) *config.Config {
	t.Helper()

	q := config.DefaultQueueConfig()
	q.Concurrency = tc.workerCount
	q.MaxConcurrentRuns = 10
	q.PollInterval = 100 * time.Millisecond
	q.PollIntervalJitter = 50 * time.Millisecond
	q.ClaimRatePerMinute = 600
	q.CancelPollInterval = 100 * time.Millisecond
	q.RunTimeout = tc.runTimeout
	q.GracefulShutdownTimeout = 10 * time.Second
	q.OrphanDetectionInterval = 1 * time.Minute

	return &config.Config{
		Defaults:      config.DefaultDefaults(),
		Queue:         q,
		Sandbox:       config.DefaultSandboxConfig(),
		Runner:        config.DefaultRunnerConfig(),
		Planner:       config.DefaultPlannerConfig(),
		Storage:       &config.StorageConfig{Backend: "fs", FSRoot: t.TempDir(), ArtifactsBasePath: t.TempDir()},
		Retention:     config.DefaultRetentionConfig(),
		Notifications: config.DefaultNotificationsConfig(),
		DashboardURL:  "http://dashboard.test",
	}
}
